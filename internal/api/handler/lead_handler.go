package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/leadsmanager/leads-api/internal/api/metrics"
	"github.com/leadsmanager/leads-api/internal/core/ports"
)

// LeadHandler handles HTTP requests for owner-scoped lead operations.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// Create handles POST /api/leads.
//
// @Summary      Create a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      leadRequest  true  "Lead fields"
// @Success      200   {object}  domain.Lead
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	lead, err := h.service.Create(c.Request().Context(), user.ID, toLeadInput(req))
	if err != nil {
		return err
	}

	metrics.LeadsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, lead)
}

// List handles GET /api/leads.
//
// @Summary      List the current user's leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Lead
// @Failure      401  {object}  errorResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	leads, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, leads)
}

// Get handles GET /api/leads/:id.
//
// @Summary      Get a lead by id
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Lead id"
// @Success      200  {object}  domain.Lead
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	leadID, err := parseLeadID(c)
	if err != nil {
		return err
	}

	lead, err := h.service.Get(c.Request().Context(), user.ID, leadID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, lead)
}

// Update handles PUT /api/leads/:id. All content fields are overwritten from
// the payload; partial updates are not supported.
//
// @Summary      Update a lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Lead id"
// @Param        body  body      leadRequest  true  "Lead fields"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	leadID, err := parseLeadID(c)
	if err != nil {
		return err
	}

	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.service.Update(c.Request().Context(), user.ID, leadID, toLeadInput(req)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Successfully Updated"})
}

// Delete handles DELETE /api/leads/:id.
//
// @Summary      Delete a lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Lead id"
// @Success      204  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	leadID, err := parseLeadID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, leadID); err != nil {
		return err
	}

	metrics.LeadsDeletedTotal.Inc()
	return c.JSON(http.StatusNoContent, messageResponse{Message: "Successfully Deleted"})
}

func parseLeadID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid lead id")
	}
	return uint(id), nil
}

func toLeadInput(req leadRequest) ports.LeadInput {
	return ports.LeadInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Company:   req.Company,
		Note:      req.Note,
	}
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/leadsmanager/leads-api/internal/core/domain"
	"github.com/leadsmanager/leads-api/internal/core/ports"
)

// LeadService implements owner-scoped lead CRUD. The ownership filter lives
// in the repository's FindByOwnerAndID, which backs Get, Update and Delete.
type LeadService struct {
	repo   ports.LeadRepository
	logger zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, logger: logger}
}

func (s *LeadService) Create(ctx context.Context, ownerID uint, in ports.LeadInput) (*domain.Lead, error) {
	lead := &domain.Lead{
		OwnerID:         ownerID,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Company:         in.Company,
		Note:            in.Note,
		DateLastUpdated: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		s.logger.Error().Err(err).Uint("owner_id", ownerID).Msg("failed to create lead")
		return nil, err
	}

	s.logger.Info().Uint("lead_id", lead.ID).Uint("owner_id", ownerID).Msg("lead created")
	return lead, nil
}

func (s *LeadService) List(ctx context.Context, ownerID uint) ([]domain.Lead, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *LeadService) Get(ctx context.Context, ownerID, leadID uint) (*domain.Lead, error) {
	return s.repo.FindByOwnerAndID(ctx, ownerID, leadID)
}

// Update overwrites all content fields from the input and refreshes
// date_last_updated. Partial updates are not supported.
func (s *LeadService) Update(ctx context.Context, ownerID, leadID uint, in ports.LeadInput) (*domain.Lead, error) {
	lead, err := s.repo.FindByOwnerAndID(ctx, ownerID, leadID)
	if err != nil {
		return nil, err
	}

	lead.FirstName = in.FirstName
	lead.LastName = in.LastName
	lead.Email = in.Email
	lead.Company = in.Company
	lead.Note = in.Note
	lead.DateLastUpdated = time.Now().UTC()

	if err := s.repo.Update(ctx, lead); err != nil {
		s.logger.Error().Err(err).Uint("lead_id", leadID).Msg("failed to update lead")
		return nil, err
	}

	return lead, nil
}

func (s *LeadService) Delete(ctx context.Context, ownerID, leadID uint) error {
	lead, err := s.repo.FindByOwnerAndID(ctx, ownerID, leadID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, lead); err != nil {
		s.logger.Error().Err(err).Uint("lead_id", leadID).Msg("failed to delete lead")
		return err
	}

	s.logger.Info().Uint("lead_id", leadID).Uint("owner_id", ownerID).Msg("lead deleted")
	return nil
}

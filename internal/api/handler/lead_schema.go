package handler

// leadRequest is the payload shared by create and update. Updates always
// carry the full set of fields.
type leadRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Company   string `json:"company"`
	Note      string `json:"note"`
}

type messageResponse struct {
	Message string `json:"message"`
}

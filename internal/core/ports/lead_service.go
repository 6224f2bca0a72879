package ports

import (
	"context"

	"github.com/leadsmanager/leads-api/internal/core/domain"
)

// LeadInput carries the writable lead fields. Updates overwrite all of them
// every time; partial updates are not supported.
type LeadInput struct {
	FirstName string
	LastName  string
	Email     string
	Company   string
	Note      string
}

// LeadService defines the owner-scoped use-case operations for leads.
type LeadService interface {
	Create(ctx context.Context, ownerID uint, in LeadInput) (*domain.Lead, error)
	List(ctx context.Context, ownerID uint) ([]domain.Lead, error)
	Get(ctx context.Context, ownerID, leadID uint) (*domain.Lead, error)
	Update(ctx context.Context, ownerID, leadID uint, in LeadInput) (*domain.Lead, error)
	Delete(ctx context.Context, ownerID, leadID uint) error
}

package ports

import (
	"context"

	"github.com/leadsmanager/leads-api/internal/core/domain"
)

// LeadRepository defines persistence operations for leads. Every lookup and
// mutation is owner-scoped: FindByOwnerAndID is the single shared
// find-or-not-found routine backing get, update and delete.
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
	// ListByOwner returns all leads owned by ownerID in storage-native order.
	ListByOwner(ctx context.Context, ownerID uint) ([]domain.Lead, error)
	// FindByOwnerAndID returns domain.ErrLeadNotFound when no lead matches
	// both the owner and the id.
	FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, lead *domain.Lead) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/leadsmanager/leads-api/internal/core/domain"
)

// LeadRepository is the GORM-backed implementation of ports.LeadRepository.
// All queries carry the owner filter; there is no unscoped access path.
type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	if err := r.db.WithContext(ctx).Create(lead).Error; err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return &lead, nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	if err := r.db.WithContext(ctx).Save(lead).Error; err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, lead *domain.Lead) error {
	if err := r.db.WithContext(ctx).Delete(lead).Error; err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

package opinionrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/opinion"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOpinionRepository implements OpinionRepository using GORM.
type GormOpinionRepository struct {
	db *gorm.DB
}

// NewGormOpinionRepository creates a new GORM opinion repository.
func NewGormOpinionRepository(db *gorm.DB) *GormOpinionRepository {
	return &GormOpinionRepository{db: db}
}

// ExistsForOrder reports whether an opinion is already recorded for the order.
func (r *GormOpinionRepository) ExistsForOrder(ctx context.Context, orderID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OpinionDTO{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add saves a new opinion and returns it rehydrated with the assigned id and
// creation timestamp. A concurrent duplicate insert hits the unique index on
// order_id and surfaces as a conflict, never as an untyped failure.
func (r *GormOpinionRepository) Add(ctx context.Context, aggregate *opinion.Opinion) (*opinion.Opinion, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewConflictErrorWithCause("opinion for this order already exists", err)
		}
		return nil, err
	}

	return toDomain(dto)
}

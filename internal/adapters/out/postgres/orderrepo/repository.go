package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	catalog status.Catalog
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, catalog status.Catalog) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		catalog: catalog,
	}
}

// Add saves a new order with its items and returns the assigned order id.
// The order row and the item rows go in together; a duplicate
// (order_id, product_id) pair violates the composite unique index and
// surfaces as a conflict. Requires the connection to run with
// TranslateError enabled.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.NewConflictErrorWithCause("order contains duplicate product rows", err)
		}
		return 0, err
	}

	return dto.ID, nil
}

// Get retrieves an order by id together with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto, r.catalog)
}

// UpdateStatus persists the aggregate's status and approval timestamp with a
// compare-and-swap conditioned on the status id the caller read. Zero rows
// affected means either the order vanished (not found) or another writer won
// the race (conflict).
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatusID int,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status_id = ?", aggregate.ID(), expectedStatusID).
		Updates(map[string]any{
			"status_id":   aggregate.Status().ID,
			"approved_at": aggregate.ApprovedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", aggregate.ID()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		return errs.NewConflictError("order status was changed concurrently")
	}

	return nil
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored as a foreign key into the statuses table; the status
// name is resolved through the injected catalog on rehydration.
type OrderDTO struct {
	ID         int `gorm:"primaryKey"`
	UserID     int `gorm:"index"`
	StatusID   int `gorm:"index"`
	ApprovedAt *time.Time
	CreatedAt  time.Time
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. The composite unique index on
// (order_id, product_id) is the final guard against duplicate product rows
// within one order.
type OrderItemDTO struct {
	ID        int             `gorm:"primaryKey"`
	OrderID   int             `gorm:"uniqueIndex:idx_order_items_order_product"`
	ProductID int             `gorm:"uniqueIndex:idx_order_items_order_product"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// A zero aggregate id is left unset so the database assigns one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		UserID:     aggregate.UserID(),
		StatusID:   aggregate.Status().ID,
		ApprovedAt: aggregate.ApprovedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order aggregate. The status id is
// resolved to its catalog entry so the aggregate carries the status name the
// lifecycle guards reason about.
func toDomain(dto OrderDTO, catalog status.Catalog) (*order.Order, error) {
	st, err := catalog.Resolve(status.IdentifierByID(dto.StatusID), false)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(item.ProductID, item.Quantity, item.UnitPrice))
	}

	return order.RestoreOrder(dto.ID, dto.UserID, st, dto.ApprovedAt, items)
}

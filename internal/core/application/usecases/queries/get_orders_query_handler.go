package queries

import (
	"context"

	"shop/internal/core/domain/model/status"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order views from the database. The status
// filter is resolved against the catalog before hitting storage so an
// unknown status name or id fails with a not-found error instead of an
// empty result.
type GetOrdersQueryHandler struct {
	db      *gorm.DB
	catalog status.Catalog
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB, catalog status.Catalog) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, catalog: catalog}
}

// Handle executes the query and returns the matching order views sorted by
// order id.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.user_id,
			o.status_id,
			s.name,
			o.approved_at,
			o.created_at
		FROM orders o
		JOIN statuses s ON s.id = o.status_id
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.UserID() > 0 {
		sql += " AND o.user_id = ?"
		args = append(args, query.UserID())
	}

	if !query.StatusRef().IsZero() {
		st, err := h.catalog.Resolve(query.StatusRef(), false)
		if err != nil {
			return nil, err
		}
		sql += " AND o.status_id = ?"
		args = append(args, st.ID)
	}

	sql += " ORDER BY o.id"

	orders, err := fetchOrders(ctx, h.db, sql, args...)
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return nil, err
	}
	if err = attachOpinions(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

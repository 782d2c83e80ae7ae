package queries

import (
	"context"

	"shop/internal/core/domain/model/status"

	"gorm.io/gorm"
)

// GetStaleOrdersQueryHandler finds unapproved orders that have sat untouched
// past the cutoff. Returns ids only; the caller cancels them one by one
// through the status-change path so every lifecycle guard still applies.
type GetStaleOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleOrdersQueryHandler creates a handler for stale order queries.
func NewGetStaleOrdersQueryHandler(db *gorm.DB) GetStaleOrdersQueryHandler {
	return GetStaleOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching order ids sorted
// ascending.
func (h GetStaleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleOrdersQuery,
) ([]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT o.id
		FROM orders o
		JOIN statuses s ON s.id = o.status_id
		WHERE s.name = ?
		  AND o.created_at < ?
		ORDER BY o.id
	`, status.Unapproved, query.OlderThan()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStatusesQueryHandler retrieves the status vocabulary from the database.
type GetStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusesQueryHandler creates a handler for status vocabulary queries.
func NewGetStatusesQueryHandler(db *gorm.DB) GetStatusesQueryHandler {
	return GetStatusesQueryHandler{db: db}
}

// Handle executes the query and returns every status sorted by id.
func (h GetStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetStatusesQuery,
) ([]StatusResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM statuses
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]StatusResponse, 0)
	for rows.Next() {
		var resp StatusResponse
		if err = rows.Scan(&resp.ID, &resp.Name); err != nil {
			return nil, err
		}
		statuses = append(statuses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

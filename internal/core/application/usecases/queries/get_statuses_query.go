package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrGetStatusesQueryIsNotConstructed = errors.New(
		"GetStatusesQuery must be created via NewGetStatusesQuery constructor",
	)
)

// GetStatusesQuery retrieves the order status vocabulary.
// This is a parameterless query.
type GetStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusesQuery creates a query for the status vocabulary.
func NewGetStatusesQuery() GetStatusesQuery {
	return GetStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusesQueryIsNotConstructed)
}

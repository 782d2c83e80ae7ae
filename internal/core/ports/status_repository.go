package ports

import (
	"context"

	"shop/internal/core/domain/model/status"
)

// StatusRepository loads the status reference data the catalog is built
// from. Statuses are immutable at runtime, so this is read once at
// composition time rather than per request.
type StatusRepository interface {
	GetAll(ctx context.Context) ([]status.Status, error)
}

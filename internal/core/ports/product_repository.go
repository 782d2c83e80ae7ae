package ports

import "context"

// ProductRepository exposes the product collaborator surface the order
// lifecycle needs: existence checks at order-creation time. Catalog CRUD
// is outside this system.
type ProductRepository interface {
	// ExistingIDs returns the subset of the given product ids that exist.
	ExistingIDs(ctx context.Context, ids []int) ([]int, error)
}

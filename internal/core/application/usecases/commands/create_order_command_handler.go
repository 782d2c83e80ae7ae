package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/status"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Validates the submitted lines, confirms every referenced product exists,
// assigns the default status and persists the order with its items in a
// single transaction: if any item row fails after the order row, the whole
// unit rolls back and the caller never observes a half-created order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	catalog    status.Catalog
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory for transactional persistence and the status catalog
// for default status resolution.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, catalog status.Catalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the order creation command and returns the id of the
// created order. The caller materializes the full aggregate through the
// read side.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	items, err := order.NewItems(cmd.Items())
	if err != nil {
		return 0, err
	}

	defaultStatus, err := h.catalog.Resolve(status.Identifier{}, true)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = h.assertProductsExist(ctx, uow.ProductRepository(), items); err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(cmd.UserID(), defaultStatus, items)
	if err != nil {
		return 0, err
	}

	orderID, err := uow.OrderRepository().Add(ctx, aggregate)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}

// assertProductsExist queries the product collaborator for the distinct set
// of referenced product ids and rejects the batch listing every missing id.
func (h *CreateOrderCommandHandler) assertProductsExist(
	ctx context.Context,
	products ports.ProductRepository,
	items []order.Item,
) error {
	ids := order.DistinctProductIDs(items)

	existing, err := products.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[int]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, strconv.Itoa(id))
		}
	}

	if len(missing) > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"items", fmt.Errorf("products not found for IDs: %s", strings.Join(missing, ", ")))
	}

	return nil
}

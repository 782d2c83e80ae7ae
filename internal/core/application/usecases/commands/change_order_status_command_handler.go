package commands

import (
	"context"
	"time"

	"shop/internal/core/domain/model/status"
)

// ChangeOrderStatusCommandHandler handles order status transitions. The
// aggregate enforces the lifecycle guards; persistence is a compare-and-swap
// conditioned on the status read within the transaction, so two concurrent
// transitions of the same order can never both commit. The loser observes
// a conflict and may retry against the new state.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    status.Catalog
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	catalog status.Catalog,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the status change command. Resolves the target status
// through the catalog, loads the order, applies the transition guards and
// persists the new status together with the approval timestamp stamped by
// the aggregate on first approval.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	target, err := h.catalog.Resolve(cmd.Target(), false)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expectedStatusID := aggregate.Status().ID
	if err = aggregate.ChangeStatus(target, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate, expectedStatusID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"fmt"
	"time"

	"shop/internal/core/domain/model/opinion"
	"shop/internal/pkg/errs"
)

// AddOpinionResponse is the created opinion returned to the caller.
type AddOpinionResponse struct {
	ID        int
	OrderID   int
	Rating    int
	Content   string
	CreatedAt time.Time
}

// AddOpinionCommandHandler admits opinions against orders. Checks run in a
// fixed sequence: the order must exist, carry no opinion yet, belong to the
// authenticated user and sit in a terminal status before the payload itself
// is validated and persisted. The storage unique index on order_id backs the
// one-per-order check; a concurrent duplicate insert surfaces as a conflict,
// never as an untyped failure.
type AddOpinionCommandHandler struct {
	uowFactory OpinionUoWFactory
}

// NewAddOpinionCommandHandler creates a handler for opinion admission.
func NewAddOpinionCommandHandler(uowFactory OpinionUoWFactory) AddOpinionCommandHandler {
	return AddOpinionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-opinion command and returns the created opinion.
func (h *AddOpinionCommandHandler) Handle(ctx context.Context, cmd AddOpinionCommand) (AddOpinionResponse, error) {
	if err := cmd.Validate(); err != nil {
		return AddOpinionResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddOpinionResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return AddOpinionResponse{}, err
	}

	opinionRepo := uow.OpinionRepository()
	exists, err := opinionRepo.ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return AddOpinionResponse{}, err
	}
	if exists {
		return AddOpinionResponse{}, errs.NewValueIsInvalidErrorWithCause(
			"opinion", fmt.Errorf("opinion for this order already exists"))
	}

	if cmd.UserID() <= 0 {
		return AddOpinionResponse{}, errs.NewForbiddenError("authentication required to add an opinion")
	}
	if !aggregate.IsOwnedBy(cmd.UserID()) {
		return AddOpinionResponse{}, errs.NewForbiddenError("you can only add an opinion to your own order")
	}

	if !aggregate.CanAcceptOpinion() {
		return AddOpinionResponse{}, errs.NewValueIsInvalidErrorWithCause(
			"opinion", fmt.Errorf("opinion can only be added for completed or cancelled orders"))
	}

	newOpinion, err := opinion.NewOpinion(cmd.OrderID(), cmd.Rating(), cmd.Content())
	if err != nil {
		return AddOpinionResponse{}, err
	}

	saved, err := opinionRepo.Add(ctx, newOpinion)
	if err != nil {
		return AddOpinionResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddOpinionResponse{}, err
	}

	return AddOpinionResponse{
		ID:        saved.ID(),
		OrderID:   saved.OrderID(),
		Rating:    saved.Rating(),
		Content:   saved.Content(),
		CreatedAt: saved.CreatedAt(),
	}, nil
}

package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order from a batch
// of submitted order lines on behalf of an authenticated user.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID int
	items  []order.ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The user id must be a positive integer and at least one item must be
// submitted; per-item validation happens in the domain layer.
func NewCreateOrderCommand(userID int, items []order.ItemInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the authenticated user creating the order.
func (c CreateOrderCommand) UserID() int {
	return c.userID
}

// Items returns the submitted order lines in request order.
func (c CreateOrderCommand) Items() []order.ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setUserID(userID int) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"user ID", fmt.Errorf("%d is not a positive integer", userID))
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause(
			"items", fmt.Errorf("order must include at least one item"))
	}
	c.items = items
	return nil
}

package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to another
// lifecycle status. The target is a tagged identifier (id or name) built at
// the request boundary.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int
	target  status.Identifier

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// The order id must be a positive integer; an absent target identifier is
// rejected during handling, where resolution against the catalog happens.
func NewChangeOrderStatusCommand(orderID int, target status.Identifier) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the id of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() int {
	return c.orderID
}

// Target returns the requested target status reference.
func (c ChangeOrderStatusCommand) Target() status.Identifier {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order ID", fmt.Errorf("%d is not a positive integer", orderID))
	}
	c.orderID = orderID
	return nil
}

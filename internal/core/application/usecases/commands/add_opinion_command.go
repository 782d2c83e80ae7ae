package commands

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrAddOpinionCommandIsNotConstructed = errors.New(
		"AddOpinionCommand must be created via NewAddOpinionCommand constructor",
	)
)

// AddOpinionCommand represents a request to record a rating and comment
// against an order on behalf of an authenticated user.
type AddOpinionCommand struct { //nolint:recvcheck //using for validation
	orderID int
	userID  int
	rating  int
	content string

	guard guard.ConstructorGuard
}

// NewAddOpinionCommand creates a command to add an opinion to an order.
// The order id must be a positive integer. The user id is carried as-is:
// a missing authenticated user is an authorization failure decided during
// handling, not a malformed command. Rating and content are validated by
// the opinion constructor in the domain layer.
func NewAddOpinionCommand(orderID int, userID int, rating int, content string) (AddOpinionCommand, error) {
	cmd := AddOpinionCommand{
		userID:  userID,
		rating:  rating,
		content: content,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AddOpinionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOpinionCommand) Validate() error {
	return c.guard.Validate(ErrAddOpinionCommandIsNotConstructed)
}

// OrderID returns the id of the order being reviewed.
func (c AddOpinionCommand) OrderID() int {
	return c.orderID
}

// UserID returns the authenticated user, zero when unauthenticated.
func (c AddOpinionCommand) UserID() int {
	return c.userID
}

// Rating returns the submitted rating.
func (c AddOpinionCommand) Rating() int {
	return c.rating
}

// Content returns the submitted comment text.
func (c AddOpinionCommand) Content() string {
	return c.content
}

func (c *AddOpinionCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order ID", fmt.Errorf("%d is not a positive integer", orderID))
	}
	c.orderID = orderID
	return nil
}

// Package opinion provides the Opinion entity: a single rating with a
// comment a user may leave on one of their own orders once it reaches a
// terminal status. Payload shape is validated here; ownership and order
// state are enforced by the application layer.
package opinion

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shop/internal/pkg/errs"
)

// Rating bounds of the 1-5 scale.
const (
	MinRating = 1
	MaxRating = 5
)

// ErrOpinionIsNotConstructed is returned when an Opinion instance was not
// created through the NewOpinion or RestoreOpinion factory methods.
var ErrOpinionIsNotConstructed = errors.New("Opinion must be created via NewOpinion constructor")

// Opinion is a rating and comment tied to exactly one order. At most one
// opinion exists per order; the storage layer's unique index is the final
// guard on that invariant.
type Opinion struct {
	id        int
	orderID   int
	rating    int
	content   string
	createdAt time.Time

	isConstructed bool
}

// NewOpinion validates an opinion payload for the given order. The rating
// must be an integer in [1,5] and the content non-empty after trimming.
func NewOpinion(orderID int, rating int, content string) (*Opinion, error) {
	o := &Opinion{isConstructed: true}

	if err := errors.Join(
		o.setOrderID(orderID),
		o.setRating(rating),
		o.setContent(content),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOpinion rehydrates a persisted opinion. Used by the persistence
// adapter only.
func RestoreOpinion(id int, orderID int, rating int, content string, createdAt time.Time) (*Opinion, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"opinion id", fmt.Errorf("%d is not a positive integer", id))
	}

	o, err := NewOpinion(orderID, rating, content)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Opinion instance was properly constructed.
func (o *Opinion) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOpinionIsNotConstructed
	}
	return nil
}

// ID returns the opinion's storage identifier, zero for an unsaved opinion.
func (o *Opinion) ID() int {
	return o.id
}

// OrderID returns the id of the order the opinion belongs to.
func (o *Opinion) OrderID() int {
	return o.orderID
}

// Rating returns the rating on the 1-5 scale.
func (o *Opinion) Rating() int {
	return o.rating
}

// Content returns the trimmed comment text.
func (o *Opinion) Content() string {
	return o.content
}

// CreatedAt returns the persistence timestamp, zero for an unsaved opinion.
func (o *Opinion) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Opinion) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order ID", fmt.Errorf("%d is not a positive integer", orderID))
	}
	o.orderID = orderID
	return nil
}

func (o *Opinion) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	o.rating = rating
	return nil
}

func (o *Opinion) setContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("opinion content")
	}
	o.content = trimmed
	return nil
}

package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/status"
	"shop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the order lifecycle. It owns the submitted
// order lines and enforces every status-transition rule.
//
// Order maintains these invariants:
//   - The owning user id is a positive integer
//   - The status always belongs to the fixed vocabulary
//   - Status transitions are monotonic along the sequence
//     NIEZATWIERDZONE -> ZATWIERDZONE -> ZREALIZOWANE; ANULOWANE is reachable
//     from any non-terminal state and is terminal itself
//   - approvedAt is stamped exactly once, on the first transition into
//     ZATWIERDZONE or later, and is never cleared
//   - At least one item exists; items are immutable after construction
type Order struct {
	// id is assigned by storage on insert; zero for an unsaved order
	id int

	// userID references the owning user
	userID int

	// status is the current lifecycle state
	status status.Status

	// approvedAt is nil until the order first reaches an approved-or-later status
	approvedAt *time.Time

	// items are the validated order lines
	items []Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates an order for the given user in the given initial status,
// normally the catalog default. The items must already have passed NewItems.
func NewOrder(userID int, initial status.Status, items []Item) (*Order, error) {
	o := &Order{
		status:        initial,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setItems(items),
		validateStatus(initial),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates a persisted order. The persistence adapter is the
// only caller; the values come from storage and are trusted to have passed
// construction-time validation.
func RestoreOrder(
	id int,
	userID int,
	st status.Status,
	approvedAt *time.Time,
	items []Item,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%d is not a positive integer", id))
	}
	if err := validateStatus(st); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        st,
		approvedAt:    approvedAt,
		items:         items,
		isConstructed: true,
	}
	if err := o.setUserID(userID); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method, preventing use of zero-value aggregates.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's storage identifier, zero for an unsaved order.
func (o *Order) ID() int {
	return o.id
}

// UserID returns the owning user's id.
func (o *Order) UserID() int {
	return o.userID
}

// Status returns the current lifecycle status.
func (o *Order) Status() status.Status {
	return o.status
}

// ApprovedAt returns the approval timestamp, nil until the order first
// reaches ZATWIERDZONE or later.
func (o *Order) ApprovedAt() *time.Time {
	return o.approvedAt
}

// Items returns the order lines in submission order.
func (o *Order) Items() []Item {
	return o.items
}

// IsOwnedBy reports whether the given user owns this order.
func (o *Order) IsOwnedBy(userID int) bool {
	return userID > 0 && o.userID == userID
}

// CanAcceptOpinion reports whether the order's current status admits an
// opinion. Opinions are only accepted on terminal orders.
func (o *Order) CanAcceptOpinion() bool {
	return status.AllowsOpinion(o.status.Name)
}

// ChangeStatus transitions the order to the next status, enforcing the
// lifecycle guards in order:
//
//  1. A cancelled order is terminal.
//  2. A fulfilled order is terminal.
//  3. Within the monotonic sequence the target's rank must not be lower than
//     the current rank; a backward transition names both statuses.
//
// On the first transition into ZATWIERDZONE or later the approval timestamp
// is stamped with now and is never reset afterwards.
func (o *Order) ChangeStatus(next status.Status, now time.Time) error {
	if err := validateStatus(next); err != nil {
		return err
	}

	if o.status.Name == status.Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot change status of a cancelled order"))
	}
	if o.status.Name == status.Fulfilled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot change status of a completed order"))
	}

	currentRank, currentRanked := status.Rank(o.status.Name)
	nextRank, nextRanked := status.Rank(next.Name)
	if currentRanked && nextRanked && nextRank < currentRank {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot change order status backwards (%s -> %s)",
				o.status.Name, next.Name))
	}

	if o.approvedAt == nil && (next.Name == status.Approved || next.Name == status.Fulfilled) {
		stamped := now
		o.approvedAt = &stamped
	}

	o.status = next
	return nil
}

func (o *Order) setUserID(userID int) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"user ID", fmt.Errorf("%d is not a positive integer", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

func validateStatus(s status.Status) error {
	if s.ID <= 0 || s.Name == "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("status is not part of the catalog"))
	}
	return nil
}

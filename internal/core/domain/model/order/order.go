package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"orderflow/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order flowing through one batch run.
//
// Order follows these invariants:
//   - Must have a positive identifier, unique within a batch
//   - Status and priority are always valid values from their closed sets
//   - Can only be created through NewOrder or RestoreOrder
//   - An order is exclusively owned by the pipeline invocation that fetched it
//
// Processing stages do not mutate orders in place. Reclassified returns a new
// snapshot carrying the stage's outcome; the pipeline folds snapshots into the
// next stage's input, keeping the data flow visible at every stage boundary.
type Order struct {
	// id is the unique identifier for the order within a batch
	id int64

	// orderType selects the classification path
	orderType Type

	// amount is the signed monetary value of the order
	amount decimal.Decimal

	// flag drives the classification of flag-type orders
	flag bool

	// status is the most recent processing outcome
	status Status

	// priority is derived from the amount
	priority Priority

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a fresh Order in status new with low priority.
//
// Parameters:
//   - id: unique identifier (must be positive)
//   - orderType: the order category (TypeUnknown is allowed)
//   - amount: signed order amount
//   - flag: the boolean condition used by flag-type classification
//
// Returns a validation error if the identifier is not positive.
func NewOrder(id int64, orderType Type, amount decimal.Decimal, flag bool) (*Order, error) {
	return RestoreOrder(id, orderType, amount, flag, StatusNew, PriorityLow)
}

// RestoreOrder rebuilds an Order from persisted state. Used by the store
// adapter when fetching a batch; status and priority must be valid values.
func RestoreOrder(
	id int64,
	orderType Type,
	amount decimal.Decimal,
	flag bool,
	status Status,
	priority Priority,
) (*Order, error) {
	o := &Order{
		orderType:     orderType,
		amount:        amount,
		flag:          flag,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Type returns the order category.
func (o *Order) Type() Type {
	return o.orderType
}

// Amount returns the signed order amount.
func (o *Order) Amount() decimal.Decimal {
	return o.amount
}

// Flag returns the boolean condition of the order.
func (o *Order) Flag() bool {
	return o.flag
}

// Status returns the most recent processing outcome.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the processing priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Reclassified returns a new snapshot of the order carrying the given status
// and priority. The receiver is left untouched, so the state an order held
// when fetched stays available for change detection.
func (o *Order) Reclassified(status Status, priority Priority) *Order {
	snapshot := *o
	snapshot.status = status
	snapshot.priority = priority
	return &snapshot
}

// StateEquals reports whether two snapshots of the same order carry the same
// status and priority. Used to compute the minimal persistence update set.
func (o *Order) StateEquals(other *Order) bool {
	return other != nil && o.status == other.status && o.priority == other.priority
}

// PendingUpdate stages the order's current state for persistence.
func (o *Order) PendingUpdate() PendingUpdate {
	return PendingUpdate{
		OrderID:  o.id,
		Status:   o.status,
		Priority: o.priority,
	}
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

package services

import (
	"context"

	"github.com/shopspring/decimal"

	"orderflow/internal/core/domain/model/lookup"
	"orderflow/internal/core/domain/model/order"
)

// Classification thresholds. The data threshold splits lookup payloads into
// pending vs. processed/review; the review threshold splits processed from
// review_required by amount.
var (
	lookupDataThreshold   = decimal.NewFromInt(50)
	reviewAmountThreshold = decimal.NewFromInt(100)
)

// LookupClient calls the external lookup service for one order.
// Transport and availability faults wrap ports.ErrLookupUnavailable.
type LookupClient interface {
	Lookup(ctx context.Context, orderID int64) (lookup.Response, error)
}

// OrderClassifier derives a new status and, independently, a new priority for
// a single order. Classification never mutates its input: the outcome is
// returned as a fresh snapshot.
//
// Example:
//
//	classifier := services.NewOrderClassifier(lookupClient)
//	snapshot, err := classifier.Classify(ctx, o)
//	if err != nil {
//	    // Lookup fault: snapshot carries lookup_failure, the error must be
//	    // surfaced to the batch failure list.
//	}
type OrderClassifier struct {
	lookupClient LookupClient
}

// NewOrderClassifier creates a classifier using the given lookup client.
func NewOrderClassifier(lookupClient LookupClient) OrderClassifier {
	return OrderClassifier{lookupClient: lookupClient}
}

// Classify returns a snapshot of the order carrying its new status and
// priority.
//
// Status by type: export-type orders keep their status (the export stage
// decides it later); lookup-type orders consult the lookup service; flag-type
// orders map their flag to completed/in_progress; unrecognized types become
// unknown_type.
//
// Priority is derived from the amount for every order, including the failure
// paths.
//
// A lookup fault yields a non-nil error together with a lookup_failure
// snapshot: the failure is never swallowed here, the caller records it and
// the snapshot still gets persisted.
func (c OrderClassifier) Classify(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	priority := order.PriorityFor(o.Amount())

	switch o.Type() {
	case order.TypeExport:
		return o.Reclassified(o.Status(), priority), nil

	case order.TypeLookup:
		resp, err := c.lookupClient.Lookup(ctx, o.ID())
		if err != nil {
			return o.Reclassified(order.StatusLookupFailure, priority), err
		}
		return o.Reclassified(lookupStatus(resp, o.Amount()), priority), nil

	case order.TypeFlag:
		if o.Flag() {
			return o.Reclassified(order.StatusCompleted, priority), nil
		}
		return o.Reclassified(order.StatusInProgress, priority), nil

	default:
		return o.Reclassified(order.StatusUnknownType, priority), nil
	}
}

// lookupStatus maps a lookup response and the order amount to a status.
func lookupStatus(resp lookup.Response, amount decimal.Decimal) order.Status {
	if !resp.Succeeded() {
		return order.StatusLookupError
	}

	value, ok := resp.Payload.Number()
	if !ok {
		return order.StatusLookupDataError
	}

	switch {
	case value.LessThan(lookupDataThreshold):
		return order.StatusPending
	case amount.LessThan(reviewAmountThreshold):
		return order.StatusProcessed
	default:
		return order.StatusReviewRequired
	}
}

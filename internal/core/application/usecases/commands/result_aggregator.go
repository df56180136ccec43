package commands

// ResultAggregator accumulates per-order failures across all pipeline stages.
//
// The failure list preserves insertion order and deduplicates by order id:
// an order that fails twice (e.g. export then persistence) keeps only its
// first recorded reason.
type ResultAggregator struct {
	failures []OrderFailure
	seen     map[int64]struct{}
}

// NewResultAggregator creates an empty aggregator.
func NewResultAggregator() *ResultAggregator {
	return &ResultAggregator{
		failures: make([]OrderFailure, 0),
		seen:     make(map[int64]struct{}),
	}
}

// Record adds a failure entry for the order unless one already exists.
// First reason wins.
func (a *ResultAggregator) Record(orderID int64, reason string) {
	if _, ok := a.seen[orderID]; ok {
		return
	}
	a.seen[orderID] = struct{}{}
	a.failures = append(a.failures, OrderFailure{OrderID: orderID, Reason: reason})
}

// HasFailures reports whether any failure was recorded.
func (a *ResultAggregator) HasFailures() bool {
	return len(a.failures) > 0
}

// Count returns the number of recorded failures.
func (a *ResultAggregator) Count() int {
	return len(a.failures)
}

// Failures returns the recorded failures in insertion order.
// The returned slice is never nil.
func (a *ResultAggregator) Failures() []OrderFailure {
	return a.failures
}

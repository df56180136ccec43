// Package commands contains business operations that modify system state.
// The central operation is ProcessOrdersCommand: one batch run of the order
// processing pipeline for a single user.
package commands

// SentinelOrderID keys the batch-level failure entry produced when the fetch
// itself fails and no real order id applies.
const SentinelOrderID int64 = -1

// OrderFailure records why one order (or the batch, see SentinelOrderID)
// failed during processing.
type OrderFailure struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason"`
}

// BatchResult summarizes one batch run.
//
// Success is true iff the fetch succeeded and no classification, export, or
// persistence failure occurred. ProcessedCount is the number of orders whose
// persisted state change was confirmed durable (or, when nothing needed
// persisting, the number of orders that went through cleanly). FailedOrders
// preserves insertion order and holds at most one entry per order id.
type BatchResult struct {
	Success        bool           `json:"success"`
	ProcessedCount int            `json:"processed_count"`
	FailedOrders   []OrderFailure `json:"failed_orders"`
}

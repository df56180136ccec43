package order

// PendingUpdate is a staged (orderID, status, priority) triple awaiting
// persistence. The persistence stage sends at most one PendingUpdate per
// order per batch.
type PendingUpdate struct {
	OrderID  int64
	Status   Status
	Priority Priority
}

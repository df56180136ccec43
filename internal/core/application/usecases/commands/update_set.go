package commands

import "orderflow/internal/core/domain/model/order"

// UpdateSet collects the pending updates for one batch, keyed by order id so
// at most one update per order reaches the store. Staging the same order
// twice keeps its original position in the set; the last staged state wins.
type UpdateSet struct {
	byID     map[int64]order.PendingUpdate
	sequence []int64
}

// NewUpdateSet creates an empty update set.
func NewUpdateSet() *UpdateSet {
	return &UpdateSet{byID: make(map[int64]order.PendingUpdate)}
}

// Stage adds or replaces the pending update for an order.
func (s *UpdateSet) Stage(update order.PendingUpdate) {
	if _, ok := s.byID[update.OrderID]; !ok {
		s.sequence = append(s.sequence, update.OrderID)
	}
	s.byID[update.OrderID] = update
}

// Len returns the number of staged orders.
func (s *UpdateSet) Len() int {
	return len(s.sequence)
}

// Updates returns the staged updates in staging order.
func (s *UpdateSet) Updates() []order.PendingUpdate {
	updates := make([]order.PendingUpdate, 0, len(s.sequence))
	for _, id := range s.sequence {
		updates = append(updates, s.byID[id])
	}
	return updates
}

// Package ports defines the collaborator contracts consumed by the core
// pipeline, along with the fault sentinels adapters wrap their failures in.
// Implementations live under internal/adapters; the pipeline behaves
// identically whether a port is backed by a database, a network call, or an
// in-memory fake.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// OrderStore is the durable store for order state.
type OrderStore interface {
	// GetOrdersByUser retrieves the full batch of orders for a user.
	// Failures wrap ErrStoreUnavailable; a user without orders yields an
	// empty slice, not an error.
	GetOrdersByUser(ctx context.Context, userID int64) ([]*order.Order, error)

	// UpdateOrderStates persists status and priority for the staged updates
	// in one bulk operation. The returned slice holds the ids that failed to
	// persist (empty means all succeeded); a non-nil error signals a
	// wholesale failure distinct from the partial list, wrapping
	// ErrStoreUnavailable.
	UpdateOrderStates(ctx context.Context, updates []order.PendingUpdate) ([]int64, error)
}

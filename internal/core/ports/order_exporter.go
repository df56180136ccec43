package ports

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
)

// OrderExporter writes a batch of export-type orders to the export sink.
type OrderExporter interface {
	// Export writes the given orders for the user and returns a handle to
	// the produced artifact (e.g. an object key). exportedAt is the batch
	// timestamp; the sink derives a collision-free resource name from it.
	// Failures wrap ErrExportFailed.
	Export(ctx context.Context, orders []*order.Order, userID int64, exportedAt time.Time) (string, error)
}

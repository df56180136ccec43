package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// ProcessOrdersCommandHandler drives the order processing pipeline:
// Fetching -> Classifying -> Exporting -> Persisting -> Done, strictly
// sequential, tracking partial failures at single-order granularity.
//
// Only a fetch fault aborts the batch. Every later fault is recovered locally
// into an order status and a failure-list entry, so the caller always
// receives a complete BatchResult for any failure occurring after a
// successful fetch — no order is dropped silently.
type ProcessOrdersCommandHandler struct {
	store      ports.OrderStore
	exporter   ports.OrderExporter
	classifier services.OrderClassifier
	logger     *slog.Logger
}

// NewProcessOrdersCommandHandler creates the pipeline handler. The logger is
// injected rather than taken from process-wide state; it must not be nil.
func NewProcessOrdersCommandHandler(
	store ports.OrderStore,
	exporter ports.OrderExporter,
	classifier services.OrderClassifier,
	logger *slog.Logger,
) ProcessOrdersCommandHandler {
	return ProcessOrdersCommandHandler{
		store:      store,
		exporter:   exporter,
		classifier: classifier,
		logger:     logger,
	}
}

// Handle runs one batch for the command's user and returns the consolidated
// report. The returned error is non-nil only for an invalid command; all
// processing faults are folded into the BatchResult.
func (h ProcessOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessOrdersCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	userID := cmd.UserID()
	log := h.logger.With("user_id", userID)
	log.InfoContext(ctx, "starting order processing")

	orders, err := h.store.GetOrdersByUser(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "failed to fetch orders", "error", err)
		return BatchResult{
			Success: false,
			FailedOrders: []OrderFailure{
				{OrderID: SentinelOrderID, Reason: "fetching orders failed: " + err.Error()},
			},
		}, nil
	}

	if len(orders) == 0 {
		log.InfoContext(ctx, "no orders found, processing finished")
		return BatchResult{Success: true, FailedOrders: []OrderFailure{}}, nil
	}

	aggregator := NewResultAggregator()
	updates := NewUpdateSet()

	exportables := h.classifyAll(ctx, orders, aggregator, updates)
	h.exportBatch(ctx, log, exportables, userID, aggregator, updates)
	result := h.persistBatch(ctx, log, len(orders), aggregator, updates)

	log.InfoContext(ctx, "order processing finished",
		"success", result.Success,
		"processed_count", result.ProcessedCount,
		"failed_count", len(result.FailedOrders))
	return result, nil
}

// classifyAll runs the classification stage over every fetched order. It
// never exits early: a fault in one order leaves all others untouched.
// Returns the export-type snapshots for the export stage.
func (h ProcessOrdersCommandHandler) classifyAll(
	ctx context.Context,
	orders []*order.Order,
	aggregator *ResultAggregator,
	updates *UpdateSet,
) []*order.Order {
	exportables := make([]*order.Order, 0)

	for _, fetched := range orders {
		snapshot, err := h.classifyOne(ctx, fetched)

		switch {
		case err == nil:
			if snapshot.Type() == order.TypeExport {
				exportables = append(exportables, snapshot)
			}

		case errors.Is(err, ports.ErrLookupUnavailable):
			// The snapshot already carries lookup_failure; re-surface the
			// collaborator's message to the batch failure list.
			aggregator.Record(fetched.ID(), err.Error())

		default:
			aggregator.Record(fetched.ID(), "unexpected error: "+err.Error())
			snapshot = fetched.Reclassified(order.StatusProcessingError, order.PriorityFor(fetched.Amount()))
			// The forced error state must reach the store even if it matches
			// the fetched state.
			updates.Stage(snapshot.PendingUpdate())
		}

		if !snapshot.StateEquals(fetched) {
			updates.Stage(snapshot.PendingUpdate())
		}
	}

	return exportables
}

// classifyOne shields the batch from a panicking collaborator: a panic is
// converted into an error and handled like any other unexpected failure.
func (h ProcessOrdersCommandHandler) classifyOne(
	ctx context.Context,
	o *order.Order,
) (snapshot *order.Order, err error) {
	defer func() {
		if r := recover(); r != nil {
			snapshot = nil
			err = fmt.Errorf("classification panicked: %v", r)
		}
	}()

	return h.classifier.Classify(ctx, o)
}

// exportBatch runs the export side effect over the export-type subset.
// Export-type orders are staged for persistence unconditionally: the side
// effect itself must be durably recorded whether it succeeded or failed.
func (h ProcessOrdersCommandHandler) exportBatch(
	ctx context.Context,
	log *slog.Logger,
	exportables []*order.Order,
	userID int64,
	aggregator *ResultAggregator,
	updates *UpdateSet,
) {
	if len(exportables) == 0 {
		return
	}

	handle, err := h.exporter.Export(ctx, exportables, userID, time.Now().UTC())
	if err != nil {
		log.ErrorContext(ctx, "order export failed", "count", len(exportables), "error", err)
		for _, snapshot := range exportables {
			failed := snapshot.Reclassified(order.StatusExportFailed, snapshot.Priority())
			updates.Stage(failed.PendingUpdate())
			aggregator.Record(snapshot.ID(), "export failed: "+err.Error())
		}
		return
	}

	log.InfoContext(ctx, "orders exported", "count", len(exportables), "handle", handle)
	for _, snapshot := range exportables {
		exported := snapshot.Reclassified(order.StatusExported, snapshot.Priority())
		updates.Stage(exported.PendingUpdate())
	}
}

// persistBatch drives the bulk update and computes the final counts. It
// always runs, even with an empty update set.
func (h ProcessOrdersCommandHandler) persistBatch(
	ctx context.Context,
	log *slog.Logger,
	totalOrders int,
	aggregator *ResultAggregator,
	updates *UpdateSet,
) BatchResult {
	staged := updates.Updates()

	if len(staged) == 0 {
		log.InfoContext(ctx, "no order states needed updating")
		return BatchResult{
			Success:        !aggregator.HasFailures(),
			ProcessedCount: totalOrders - aggregator.Count(),
			FailedOrders:   aggregator.Failures(),
		}
	}

	failedIDs, err := h.store.UpdateOrderStates(ctx, staged)
	if err != nil {
		log.ErrorContext(ctx, "bulk update failed", "attempted", len(staged), "error", err)
		for _, update := range staged {
			aggregator.Record(update.OrderID, "persistence error: "+err.Error())
		}
		return BatchResult{
			Success:        false,
			ProcessedCount: 0,
			FailedOrders:   aggregator.Failures(),
		}
	}

	for _, id := range failedIDs {
		aggregator.Record(id, "persistence failed")
	}

	if len(failedIDs) > 0 {
		log.WarnContext(ctx, "bulk update partially failed",
			"attempted", len(staged), "failed", len(failedIDs))
	}

	return BatchResult{
		Success:        !aggregator.HasFailures(),
		ProcessedCount: len(staged) - len(failedIDs),
		FailedOrders:   aggregator.Failures(),
	}
}

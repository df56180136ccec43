package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"orderflow/internal/core/application/usecases/commands"
)

// OrderProcessingJob runs the processing pipeline for a configured list of
// users on a cron schedule. Batches for different users are independent; one
// user's degraded batch never stops the others.
type OrderProcessingJob struct {
	handler  commands.ProcessOrdersCommandHandler
	userIDs  []int64
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderProcessingJob creates the job. The schedule uses the six-field
// cron format with seconds, e.g. "0 * * * * *" for once a minute.
func NewOrderProcessingJob(
	handler commands.ProcessOrdersCommandHandler,
	userIDs []int64,
	schedule string,
	logger *slog.Logger,
) *OrderProcessingJob {
	return &OrderProcessingJob{
		handler:  handler,
		userIDs:  userIDs,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_processing_job"),
	}
}

// Start begins the scheduled processing runs.
func (j *OrderProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		for _, userID := range j.userIDs {
			cmd, err := commands.NewProcessOrdersCommand(userID)
			if err != nil {
				j.logger.ErrorContext(ctx, "invalid user id in job configuration",
					"user_id", userID, "error", err)
				continue
			}

			result, err := j.handler.Handle(ctx, cmd)
			if err != nil {
				j.logger.ErrorContext(ctx, "order processing job failed",
					"user_id", userID, "error", err)
				continue
			}

			if !result.Success {
				j.logger.WarnContext(ctx, "order processing finished degraded",
					"user_id", userID,
					"processed_count", result.ProcessedCount,
					"failed_count", len(result.FailedOrders))
			}
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "order processing job started",
		"schedule", j.schedule, "users", len(j.userIDs))
	return nil
}

// Stop stops the scheduled runs.
func (j *OrderProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "order processing job stopped")
}

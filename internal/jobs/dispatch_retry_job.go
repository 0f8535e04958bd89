package jobs

import (
	"context"
	"errors"
	"log/slog"

	"pos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchRetryJob periodically retries driver assignment for delivery orders
// that checked out while the whole roster was busy. Orders are picked oldest
// first, one per tick, so a returning driver drains the backlog in checkout
// order.
type DispatchRetryJob struct {
	handler commands.AssignPendingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchRetryJob creates a new job for retrying driver dispatch.
// Uses AssignPendingOrderCommandHandler to process one pending order per run.
func NewDispatchRetryJob(handler commands.AssignPendingOrderCommandHandler, logger *slog.Logger) *DispatchRetryJob {
	return &DispatchRetryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_retry_job"),
	}
}

// Start begins the dispatch retry job to run every 15 seconds.
func (j *DispatchRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog and a busy roster are normal outcomes, not faults.
			if !errors.Is(err, commands.ErrNoUnassignedOrderFound) && !errors.Is(err, commands.ErrNoFreeDriversFound) {
				j.logger.ErrorContext(ctx, "Dispatch retry job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch retry job started (running every 15 seconds)")
	return nil
}

// Stop stops the dispatch retry job.
func (j *DispatchRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch retry job stopped")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"cashrun/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultExpirySchedule runs the expiry at the start of every minute.
const DefaultExpirySchedule = "0 * * * * *"

// PendingOrderExpirer cancels stale Pending orders.
type PendingOrderExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpirePendingOrdersCommand) (commands.ExpirePendingOrdersResult, error)
}

// PendingOrderExpiryJob cancels orders that no runner accepted within ttl.
// A run still in progress when the next one is due makes the next one skip.
type PendingOrderExpiryJob struct {
	handler   PendingOrderExpirer
	cron      *cron.Cron
	logger    *slog.Logger
	schedule  string
	ttl       time.Duration
	batchSize int
	timeout   time.Duration
}

// NewPendingOrderExpiryJob uses DefaultExpirySchedule when schedule is empty.
// The schedule is a six field cron expression with seconds.
func NewPendingOrderExpiryJob(
	handler PendingOrderExpirer,
	schedule string,
	ttl time.Duration,
	batchSize int,
	logger *slog.Logger,
) *PendingOrderExpiryJob {
	if schedule == "" {
		schedule = DefaultExpirySchedule
	}

	return &PendingOrderExpiryJob{
		handler: handler,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger:    logger.With("component", "pending_order_expiry_job"),
		schedule:  schedule,
		ttl:       ttl,
		batchSize: batchSize,
		timeout:   30 * time.Second,
	}
}

// Start validates the configuration and schedules the job.
func (j *PendingOrderExpiryJob) Start() error {
	if _, err := commands.NewExpirePendingOrdersCommand(j.ttl, j.batchSize); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.RunOnce(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

// RunOnce performs a single expiry run and logs its outcome.
func (j *PendingOrderExpiryJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewExpirePendingOrdersCommand(j.ttl, j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiry is misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order expiry failed",
			"expired", result.Expired, "skipped", result.Skipped, "error", err)
		return
	}

	if result.Expired > 0 || result.Skipped > 0 {
		j.logger.InfoContext(ctx, "Pending orders expired",
			"expired", result.Expired, "skipped", result.Skipped)
	}
}

// Stop waits for a running expiry to finish.
func (j *PendingOrderExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}

package jobs

import (
	"context"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/status"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StaleOrderFinder lists unapproved orders created before a cutoff.
// Satisfied by queries.GetStaleOrdersQueryHandler.
type StaleOrderFinder interface {
	Handle(ctx context.Context, query queries.GetStaleOrdersQuery) ([]int, error)
}

// OrderCanceller transitions a single order. Satisfied by
// commands.ChangeOrderStatusCommandHandler.
type OrderCanceller interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
}

// StaleOrderJob cancels unapproved orders that have sat past their TTL.
// Cancellation goes through the regular status-change path, so the lifecycle
// guards and the compare-and-swap update apply exactly as they do for any
// other caller; an order approved between the lookup and the cancellation
// simply loses the race and stays.
type StaleOrderJob struct {
	finder    StaleOrderFinder
	canceller OrderCanceller
	ttl       time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewStaleOrderJob creates a job that cancels unapproved orders older than
// ttl on the given cron schedule.
func NewStaleOrderJob(
	finder StaleOrderFinder,
	canceller OrderCanceller,
	ttl time.Duration,
	schedule string,
	logger *zap.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		finder:    finder,
		canceller: canceller,
		ttl:       ttl,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With(zap.String("component", "stale_order_job")),
	}
}

// Start begins the job on its cron schedule.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stale order job started",
		zap.String("schedule", j.schedule),
		zap.Duration("ttl", j.ttl),
	)
	return nil
}

// Stop stops the job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.Info("stale order job stopped")
}

// Run executes one pass: find stale unapproved orders and cancel each one.
// Failures on individual orders are logged and do not stop the pass.
func (j *StaleOrderJob) Run(ctx context.Context) {
	query, err := queries.NewGetStaleOrdersQuery(time.Now().UTC().Add(-j.ttl))
	if err != nil {
		j.logger.Error("stale order lookup failed", zap.Error(err))
		return
	}

	ids, err := j.finder.Handle(ctx, query)
	if err != nil {
		j.logger.Error("stale order lookup failed", zap.Error(err))
		return
	}

	for _, orderID := range ids {
		cmd, err := commands.NewChangeOrderStatusCommand(orderID, status.IdentifierByName(status.Cancelled))
		if err != nil {
			j.logger.Error("stale order cancellation failed",
				zap.Int("order_id", orderID), zap.Error(err))
			continue
		}

		if err := j.canceller.Handle(ctx, cmd); err != nil {
			j.logger.Warn("stale order not cancelled",
				zap.Int("order_id", orderID), zap.Error(err))
			continue
		}

		j.logger.Info("stale order cancelled", zap.Int("order_id", orderID))
	}
}

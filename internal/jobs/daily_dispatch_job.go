package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/Gmpatem/campus-cart-v2/internal/core/application/usecases/queries"
	"github.com/Gmpatem/campus-cart-v2/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchCronSpec fires at 18:00 every day, the campus dispatch cutoff.
const DefaultDispatchCronSpec = "0 0 18 * * *"

// DailyDispatchJob aggregates the current day's submissions at the dispatch
// cutoff and hands the summary to the notifier. The aggregation re-reads the
// day from storage, so a run always reflects every row received so far.
type DailyDispatchJob struct {
	handler  queries.GetDailyDispatchQueryHandler
	notifier ports.DispatchNotifier
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDailyDispatchJob creates the dispatch job. An empty cronSpec falls back
// to DefaultDispatchCronSpec.
func NewDailyDispatchJob(
	handler queries.GetDailyDispatchQueryHandler,
	notifier ports.DispatchNotifier,
	cronSpec string,
	logger *slog.Logger,
) *DailyDispatchJob {
	if cronSpec == "" {
		cronSpec = DefaultDispatchCronSpec
	}

	return &DailyDispatchJob{
		handler:  handler,
		notifier: notifier,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "daily_dispatch_job"),
	}
}

// Start schedules the dispatch job.
func (j *DailyDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		if err := j.Run(ctx, time.Now()); err != nil {
			j.logger.ErrorContext(ctx, "Daily dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily dispatch job started",
		"schedule", j.cronSpec)
	return nil
}

// Run aggregates the given day and notifies fulfillment. Exposed separately
// from the schedule so a missed day can be replayed manually.
func (j *DailyDispatchJob) Run(ctx context.Context, day time.Time) error {
	query, err := queries.NewGetDailyDispatchQuery(day)
	if err != nil {
		return err
	}

	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	return j.notifier.NotifyDispatch(ctx, query.Day(), summary)
}

// Stop stops the dispatch job.
func (j *DailyDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily dispatch job stopped")
}

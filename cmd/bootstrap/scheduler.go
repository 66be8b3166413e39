package bootstrap

import (
	"context"
	"log/slog"

	"glisten-lounge/internal/infra/bagstore"
	"glisten-lounge/internal/jobs"
	"glisten-lounge/internal/pkg/clock"
	"glisten-lounge/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(func(*jobs.Scheduler) {}),
)

func NewScheduler(lc fx.Lifecycle, cfg config.Config, businessClock *clock.BusinessClock, store *bagstore.BoltStore, logger *slog.Logger) (*jobs.Scheduler, error) {
	sched, err := jobs.NewScheduler(cfg.Bag, businessClock.Location(), store, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sched.Stop()
			return nil
		},
	})

	return sched, nil
}

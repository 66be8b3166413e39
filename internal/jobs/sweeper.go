package jobs

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"glisten-lounge/internal/infra/bagstore"
	"glisten-lounge/internal/pkg/config"
	"glisten-lounge/internal/pkg/errs"
)

// Scheduler runs periodic maintenance in the business timezone. Today that is
// only the stale-bag sweep.
type Scheduler struct {
	cron   *cron.Cron
	store  *bagstore.BoltStore
	ttl    time.Duration
	logger *slog.Logger
}

func NewScheduler(cfg config.BagConfig, loc *time.Location, store *bagstore.BoltStore, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		store:  store,
		ttl:    cfg.SessionTTL,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(cfg.SweepSchedule, s.sweepBags); err != nil {
		return nil, errs.Wrap(err, "failed to register bag sweep job")
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sweepBags() {
	swept, err := s.store.SweepStale(s.ttl)
	if err != nil {
		s.logger.Error("bag sweep failed", "error", err)
		return
	}
	if swept > 0 {
		s.logger.Info("swept stale bags", "count", swept)
	}
}

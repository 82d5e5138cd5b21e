package position

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tradequotes/internal/adapters"
)

const defaultTrailingJobDuration = 30 * time.Second

type Scheduler struct {
	positionRepo adapters.PositionRepository
	markRepo     adapters.MarkRepository
	pairs        *Pairs
	trail        decimal.Decimal
	// -----
	sched               gocron.Scheduler
	trailingJobDuration time.Duration
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if _, jobErr := ApplyTrailingStops(jobCtx, execID, s.positionRepo, s.markRepo, s.pairs, s.trail); jobErr != nil {
			logrus.Errorf("Trailing stop job %s failed: %v", execID, jobErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.trailingJobDuration),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(positionRepo adapters.PositionRepository, markRepo adapters.MarkRepository, pairs *Pairs, trail decimal.Decimal, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultTrailingJobDuration
	}
	return &Scheduler{
		positionRepo:        positionRepo,
		markRepo:            markRepo,
		pairs:               pairs,
		trail:               trail,
		trailingJobDuration: interval,
	}
}

// Package scheduler runs the periodic catalog refresh.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Refresher is the job being scheduled; app.Refresher satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) (bool, error)
}

type RefreshScheduler struct {
	job     Refresher
	timeout time.Duration
	cron    gocron.Scheduler
}

func New(job Refresher, timeout time.Duration) (*RefreshScheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("new scheduler: %w", err)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RefreshScheduler{job: job, timeout: timeout, cron: s}, nil
}

// Start runs the job every interval, the first run right away. Runs never
// overlap; a run still going when the next is due pushes that one back.
func (s *RefreshScheduler) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", interval)
	}
	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func(ctx context.Context) { s.RunOnce(ctx) }),
		gocron.WithName("catalog-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("schedule catalog refresh: %w", err)
	}
	s.cron.Start()
	log.Info().Dur("interval", interval).Msg("catalog refresh scheduled")
	return nil
}

// RunOnce performs one refresh, tagged with its own run id.
func (s *RefreshScheduler) RunOnce(ctx context.Context) {
	runID := uuid.New().String()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	swapped, err := s.job.Refresh(ctx)
	if err != nil {
		log.Error().Err(err).Str("run_id", runID).Msg("catalog refresh failed")
		return
	}
	log.Info().
		Str("run_id", runID).
		Bool("swapped", swapped).
		Dur("took", time.Since(start)).
		Msg("catalog refresh done")
}

func (s *RefreshScheduler) Shutdown() error { return s.cron.Shutdown() }

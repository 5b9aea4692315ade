package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// pollInterval is how often the scheduler compares the wall clock against
// the configured report time.
const pollInterval = time.Minute

// Scheduler triggers daily report generation at a configured wall-clock time
// (HH:MM, minute granularity). It polls once per interval and guards against
// double-firing within the same minute.
type Scheduler struct {
	engine    *Engine
	logger    *slog.Logger
	now       func() time.Time
	at        string
	lastFired string
	interval  time.Duration
}

// NewScheduler creates a scheduler firing daily at the given HH:MM time.
func NewScheduler(engine *Engine, at string, logger *slog.Logger) (*Scheduler, error) {
	if _, err := time.Parse("15:04", at); err != nil {
		return nil, fmt.Errorf("invalid daily report time %q: %w", at, err)
	}

	return &Scheduler{
		engine:   engine,
		at:       at,
		interval: pollInterval,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Run polls until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("daily reports scheduled", "at", s.at)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick fires the report when the current minute matches the configured time.
func (s *Scheduler) tick() {
	now := s.now()
	if now.Format("15:04") != s.at {
		return
	}

	stamp := now.Format("2006-01-02 15:04")
	if stamp == s.lastFired {
		return
	}
	s.lastFired = stamp

	if _, err := s.engine.GenerateDailyReport(); err != nil {
		s.logger.Error("daily report generation failed", "error", err)
	}
}

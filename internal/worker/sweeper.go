package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"lessonhub/internal/domain/lesson"
	"lessonhub/internal/infra/lock"
	"lessonhub/internal/pkg/clock"
	"lessonhub/internal/pkg/config"
	"lessonhub/internal/usecase/commands"

	"github.com/google/uuid"
)

const (
	sweepLockKey = "sweep:expired-lessons"
	sweepLockTTL = 5 * time.Minute
)

type StaleLessonSource interface {
	ExpiredPlanned(ctx context.Context, olderThan, now time.Time, limit int) ([]*lesson.Lesson, error)
}

type SystemCanceller interface {
	SystemCancel(ctx context.Context, lessonID uuid.UUID) error
}

type SweepResult struct {
	Checked   int
	Cancelled int
}

// ExpirySweeper cancels lessons that sat unconfirmed past the staleness
// cutoff. One pass per process at a time (TryLock), one pass per fleet at a
// time (distributed lock). A failing item is logged and skipped so the rest
// of the batch still progresses.
type ExpirySweeper struct {
	lessons   StaleLessonSource
	canceller SystemCanceller
	locker    lock.Locker
	clock     clock.Clock
	logger    *slog.Logger
	cfg       config.SweepConfig

	mu sync.Mutex
}

func NewExpirySweeper(
	lessons StaleLessonSource,
	canceller SystemCanceller,
	locker lock.Locker,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.SweepConfig,
) *ExpirySweeper {
	return &ExpirySweeper{
		lessons:   lessons,
		canceller: canceller,
		locker:    locker,
		clock:     clk,
		logger:    logger,
		cfg:       cfg,
	}
}

// Sweep runs one bounded pass. Overlapping invocations are skipped, not
// queued.
func (s *ExpirySweeper) Sweep(ctx context.Context) (SweepResult, error) {
	if !s.mu.TryLock() {
		s.logger.Debug("sweep already running, skipping")
		return SweepResult{}, nil
	}
	defer s.mu.Unlock()

	release, err := s.locker.Acquire(ctx, sweepLockKey, sweepLockTTL, 0)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			s.logger.Debug("sweep held by another instance, skipping")
			return SweepResult{}, nil
		}
		return SweepResult{}, err
	}
	defer release(ctx)

	now := s.clock.Now()
	cutoff := now.Add(-s.cfg.StaleAfter)

	stale, err := s.lessons.ExpiredPlanned(ctx, cutoff, now, s.cfg.BatchSize)
	if err != nil {
		return SweepResult{}, err
	}

	result := SweepResult{Checked: len(stale)}
	for _, l := range stale {
		if s.cancelOne(ctx, l.ID()) {
			result.Cancelled++
		}
	}

	if result.Checked > 0 {
		s.logger.Info("expiry sweep finished",
			"checked", result.Checked,
			"cancelled", result.Cancelled,
		)
	}
	return result, nil
}

func (s *ExpirySweeper) cancelOne(ctx context.Context, lessonID uuid.UUID) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic while cancelling stale lesson",
				"lesson_id", lessonID,
				"panic", r,
			)
			ok = false
		}
	}()

	if err := s.canceller.SystemCancel(ctx, lessonID); err != nil {
		// The lesson may have been confirmed or cancelled since selection.
		if errors.Is(err, commands.ErrInvalidState) || errors.Is(err, commands.ErrLessonNotFound) {
			s.logger.Debug("stale lesson no longer cancellable", "lesson_id", lessonID)
			return false
		}
		s.logger.Error("failed to cancel stale lesson",
			"lesson_id", lessonID,
			"error", err,
		)
		return false
	}
	return true
}

// Run executes sweeps on the configured interval until ctx is cancelled.
func (s *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error("expiry sweep failed", "error", err)
			}
		}
	}
}

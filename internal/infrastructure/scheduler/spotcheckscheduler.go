package scheduler

import (
	"context"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/dto"
	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/usecases"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
	"github.com/n8dizzle/debrief-tools/internal/shared/goroutine"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

// SpotCheckScheduler runs the daily spot-check selection once per day at a
// configured hour in the business timezone. Each run selects from the
// previous calendar day's completed debriefs.
type SpotCheckScheduler struct {
	selector      usecases.SelectDailySpotChecksExecutor
	logger        logger.Interface
	stopChan      chan struct{}
	selectionHour int // Hour to run selection (in business timezone)
}

func NewSpotCheckScheduler(
	selector usecases.SelectDailySpotChecksExecutor,
	selectionHour int,
	logger logger.Interface,
) *SpotCheckScheduler {
	return &SpotCheckScheduler{
		selector:      selector,
		logger:        logger,
		stopChan:      make(chan struct{}),
		selectionHour: selectionHour,
	}
}

// Start starts the scheduler
func (s *SpotCheckScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting spot check scheduler",
		"selection_hour", s.selectionHour,
	)

	goroutine.SafeGo(s.logger, "spotcheck-selection-loop", func() {
		s.runSelectionLoop(ctx)
	})
}

// Stop stops the scheduler
func (s *SpotCheckScheduler) Stop() {
	close(s.stopChan)
}

func (s *SpotCheckScheduler) runSelectionLoop(ctx context.Context) {
	for {
		nextRun := s.nextSelectionTime()
		waitDuration := time.Until(nextRun)

		s.logger.Debugw("daily spot check selection scheduled",
			"next_run", nextRun,
			"wait_duration", waitDuration,
		)

		timer := time.NewTimer(waitDuration)

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Infow("spot check scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			timer.Stop()
			s.logger.Infow("spot check scheduler stopped")
			return
		case <-timer.C:
			s.runSelection(ctx)
		}
	}
}

func (s *SpotCheckScheduler) runSelection(ctx context.Context) {
	s.logger.Infow("starting daily spot check selection")

	result, err := s.selector.Execute(ctx, usecases.SelectDailySpotChecksCommand{})
	if err != nil {
		s.logger.Errorw("daily spot check selection failed", "error", err)
		return
	}

	s.logSelection(result)
}

func (s *SpotCheckScheduler) logSelection(result *dto.SelectionResult) {
	s.logger.Infow("daily spot check selection finished",
		"batch_date", result.BatchDate,
		"total_debriefs", result.TotalDebriefs,
		"selected", result.SelectedCount,
		"flagged", result.FlaggedCount,
		"random", result.RandomCount,
	)
}

// nextSelectionTime calculates the next selection run time
func (s *SpotCheckScheduler) nextSelectionTime() time.Time {
	now := biztime.ToBizTimezone(biztime.NowUTC())
	targetTime := time.Date(now.Year(), now.Month(), now.Day(), s.selectionHour, 0, 0, 0, now.Location())

	// If target time has passed today, schedule for tomorrow
	if now.After(targetTime) {
		targetTime = targetTime.Add(24 * time.Hour)
	}

	return targetTime
}

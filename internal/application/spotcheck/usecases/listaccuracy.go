package usecases

import (
	"context"
	"sort"

	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/dto"
	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

// ListDispatcherAccuracyUseCase builds the accuracy leaderboard for all active
// dispatchers, best overall accuracy first. Dispatchers with no evaluated
// samples sort last.
type ListDispatcherAccuracyUseCase struct {
	dispatcherRepo dispatcher.Repository
	spotCheckRepo  spotcheck.Repository
	accuracyCache  AccuracyCache
	logger         logger.Interface
}

func NewListDispatcherAccuracyUseCase(
	dispatcherRepo dispatcher.Repository,
	spotCheckRepo spotcheck.Repository,
	accuracyCache AccuracyCache,
	logger logger.Interface,
) *ListDispatcherAccuracyUseCase {
	return &ListDispatcherAccuracyUseCase{
		dispatcherRepo: dispatcherRepo,
		spotCheckRepo:  spotCheckRepo,
		accuracyCache:  accuracyCache,
		logger:         logger,
	}
}

func (uc *ListDispatcherAccuracyUseCase) Execute(ctx context.Context) ([]*dto.AccuracyReport, error) {
	dispatchers, err := uc.dispatcherRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	single := &GetDispatcherAccuracyUseCase{
		dispatcherRepo: uc.dispatcherRepo,
		spotCheckRepo:  uc.spotCheckRepo,
		accuracyCache:  uc.accuracyCache,
		logger:         uc.logger,
	}

	reports := make([]*dto.AccuracyReport, 0, len(dispatchers))
	for _, d := range dispatchers {
		report, err := single.reportFor(ctx, d)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		a, b := reports[i].OverallAccuracy, reports[j].OverallAccuracy
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a > *b
		}
	})

	return reports, nil
}

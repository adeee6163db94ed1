package usecases

import (
	"context"

	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/dto"
	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

type GetDispatcherAccuracyQuery struct {
	DispatcherID uint
}

// GetDispatcherAccuracyUseCase computes one dispatcher's spot-check accuracy,
// consulting the cache first. Cache failures degrade to recomputation.
type GetDispatcherAccuracyUseCase struct {
	dispatcherRepo dispatcher.Repository
	spotCheckRepo  spotcheck.Repository
	accuracyCache  AccuracyCache
	logger         logger.Interface
}

func NewGetDispatcherAccuracyUseCase(
	dispatcherRepo dispatcher.Repository,
	spotCheckRepo spotcheck.Repository,
	accuracyCache AccuracyCache,
	logger logger.Interface,
) *GetDispatcherAccuracyUseCase {
	return &GetDispatcherAccuracyUseCase{
		dispatcherRepo: dispatcherRepo,
		spotCheckRepo:  spotCheckRepo,
		accuracyCache:  accuracyCache,
		logger:         logger,
	}
}

func (uc *GetDispatcherAccuracyUseCase) Execute(ctx context.Context, query GetDispatcherAccuracyQuery) (*dto.AccuracyReport, error) {
	d, err := uc.dispatcherRepo.GetByID(ctx, query.DispatcherID)
	if err != nil {
		return nil, err
	}
	return uc.reportFor(ctx, d)
}

func (uc *GetDispatcherAccuracyUseCase) reportFor(ctx context.Context, d *dispatcher.Dispatcher) (*dto.AccuracyReport, error) {
	if uc.accuracyCache != nil {
		cached, err := uc.accuracyCache.GetReport(ctx, d.ID())
		if err != nil {
			uc.logger.Warnw("accuracy cache read failed", "dispatcher_id", d.ID(), "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	checks, err := uc.spotCheckRepo.ListCompletedByDispatcher(ctx, d.ID())
	if err != nil {
		return nil, err
	}

	report := buildAccuracyReport(d, spotcheck.CalculateAccuracy(checks))

	if uc.accuracyCache != nil {
		if err := uc.accuracyCache.SetReport(ctx, d.ID(), report); err != nil {
			uc.logger.Warnw("accuracy cache write failed", "dispatcher_id", d.ID(), "error", err)
		}
	}

	return report, nil
}

func buildAccuracyReport(d *dispatcher.Dispatcher, stats spotcheck.AccuracyStats) *dto.AccuracyReport {
	items := make([]dto.ItemAccuracyDTO, 0, len(stats.Items))
	for _, item := range stats.Items {
		items = append(items, dto.ItemAccuracyDTO{
			Name:     item.Name,
			Correct:  item.Correct,
			Total:    item.Total,
			Accuracy: item.Accuracy(),
		})
	}

	return &dto.AccuracyReport{
		DispatcherID:        d.ID(),
		DispatcherName:      d.Name(),
		Role:                d.Role().String(),
		IsPrimary:           d.IsPrimary(),
		SampleSize:          stats.SampleSize,
		ItemsChecked:        stats.ItemsChecked,
		Items:               items,
		OverallAccuracy:     stats.OverallAccuracy,
		AvgGrade:            stats.AvgGrade,
		CoachingNeededCount: stats.CoachingNeededCount,
	}
}

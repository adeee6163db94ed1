package usecases

import (
	"context"

	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/dto"
)

// AccuracyCache caches per-dispatcher accuracy reports. Implementations must
// treat a miss as (nil, nil); the aggregator recomputes on miss and tolerates
// cache failures entirely.
type AccuracyCache interface {
	GetReport(ctx context.Context, dispatcherID uint) (*dto.AccuracyReport, error)
	SetReport(ctx context.Context, dispatcherID uint, report *dto.AccuracyReport) error
	Invalidate(ctx context.Context, dispatcherID uint) error
}

type SelectDailySpotChecksExecutor interface {
	Execute(ctx context.Context, cmd SelectDailySpotChecksCommand) (*dto.SelectionResult, error)
}

type CreateManualSpotCheckExecutor interface {
	Execute(ctx context.Context, cmd CreateManualSpotCheckCommand) (*CreateManualSpotCheckResult, error)
}

type BeginReviewExecutor interface {
	Execute(ctx context.Context, cmd BeginReviewCommand) (*BeginReviewResult, error)
}

type SubmitReviewExecutor interface {
	Execute(ctx context.Context, cmd SubmitReviewCommand) (*SubmitReviewResult, error)
}

type GetDispatcherAccuracyExecutor interface {
	Execute(ctx context.Context, query GetDispatcherAccuracyQuery) (*dto.AccuracyReport, error)
}

type ListDispatcherAccuracyExecutor interface {
	Execute(ctx context.Context) ([]*dto.AccuracyReport, error)
}

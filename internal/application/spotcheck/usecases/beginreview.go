package usecases

import (
	"context"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

type BeginReviewCommand struct {
	SpotCheckID uint
	ReviewerID  uint
}

type BeginReviewResult struct {
	SpotCheckID uint
	DebriefID   uint
	Status      string
	StartedAt   *time.Time
}

// BeginReviewUseCase claims a pending spot check for a reviewer. Re-opening an
// in-progress check is a no-op so a reviewer can resume where they left off.
type BeginReviewUseCase struct {
	spotCheckRepo  spotcheck.Repository
	dispatcherRepo dispatcher.Repository
	logger         logger.Interface
}

func NewBeginReviewUseCase(
	spotCheckRepo spotcheck.Repository,
	dispatcherRepo dispatcher.Repository,
	logger logger.Interface,
) *BeginReviewUseCase {
	return &BeginReviewUseCase{
		spotCheckRepo:  spotCheckRepo,
		dispatcherRepo: dispatcherRepo,
		logger:         logger,
	}
}

func (uc *BeginReviewUseCase) Execute(ctx context.Context, cmd BeginReviewCommand) (*BeginReviewResult, error) {
	reviewer, err := uc.dispatcherRepo.GetByID(ctx, cmd.ReviewerID)
	if err != nil {
		return nil, err
	}
	if !reviewer.CanReview() {
		return nil, apperrors.NewForbiddenError("only managers and above can review spot checks")
	}

	sc, err := uc.spotCheckRepo.GetByID(ctx, cmd.SpotCheckID)
	if err != nil {
		return nil, err
	}

	if err := sc.Begin(cmd.ReviewerID); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.spotCheckRepo.Update(ctx, sc); err != nil {
		return nil, err
	}

	return &BeginReviewResult{
		SpotCheckID: sc.ID(),
		DebriefID:   sc.DebriefID(),
		Status:      sc.Status().String(),
		StartedAt:   sc.StartedAt(),
	}, nil
}

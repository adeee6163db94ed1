package usecases

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

// SubmitReviewCommand carries a reviewer's verdict. Nil correctness fields
// mean the item was not evaluated.
type SubmitReviewCommand struct {
	SpotCheckID uint `validate:"required"`
	ReviewerID  uint `validate:"required"`

	PhotosCorrect       *bool
	InvoiceScoreCorrect *bool
	PaymentCorrect      *bool
	EstimatesCorrect    *bool
	MembershipCorrect   *bool
	ReviewsCorrect      *bool
	ReplacementCorrect  *bool
	EquipmentCorrect    *bool

	CorrectedInvoiceScore *int `validate:"omitempty,min=1,max=10"`

	PhotosNotes      string
	InvoiceNotes     string
	PaymentNotes     string
	EstimatesNotes   string
	MembershipNotes  string
	ReviewsNotes     string
	ReplacementNotes string
	EquipmentNotes   string

	OverallGrade   *int `validate:"omitempty,min=1,max=10"`
	FeedbackNotes  string
	CoachingNeeded bool
}

type SubmitReviewResult struct {
	SpotCheckID  uint
	DebriefID    uint
	DispatcherID uint
	Status       string
	CompletedAt  *time.Time
	Message      string
}

// SubmitReviewUseCase records a completed spot check review and invalidates
// the reviewed dispatcher's cached accuracy report.
type SubmitReviewUseCase struct {
	spotCheckRepo  spotcheck.Repository
	debriefRepo    debrief.Repository
	dispatcherRepo dispatcher.Repository
	accuracyCache  AccuracyCache
	validate       *validator.Validate
	logger         logger.Interface
}

func NewSubmitReviewUseCase(
	spotCheckRepo spotcheck.Repository,
	debriefRepo debrief.Repository,
	dispatcherRepo dispatcher.Repository,
	accuracyCache AccuracyCache,
	logger logger.Interface,
) *SubmitReviewUseCase {
	return &SubmitReviewUseCase{
		spotCheckRepo:  spotCheckRepo,
		debriefRepo:    debriefRepo,
		dispatcherRepo: dispatcherRepo,
		accuracyCache:  accuracyCache,
		validate:       validator.New(),
		logger:         logger,
	}
}

func (uc *SubmitReviewUseCase) Execute(ctx context.Context, cmd SubmitReviewCommand) (*SubmitReviewResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperrors.NewValidationError("invalid review submission", err.Error())
	}

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

	results := spotcheck.ReviewResults{
		PhotosCorrect:       cmd.PhotosCorrect,
		InvoiceScoreCorrect: cmd.InvoiceScoreCorrect,
		PaymentCorrect:      cmd.PaymentCorrect,
		EstimatesCorrect:    cmd.EstimatesCorrect,
		MembershipCorrect:   cmd.MembershipCorrect,
		ReviewsCorrect:      cmd.ReviewsCorrect,
		ReplacementCorrect:  cmd.ReplacementCorrect,
		EquipmentCorrect:    cmd.EquipmentCorrect,

		CorrectedInvoiceScore: cmd.CorrectedInvoiceScore,

		PhotosNotes:      cmd.PhotosNotes,
		InvoiceNotes:     cmd.InvoiceNotes,
		PaymentNotes:     cmd.PaymentNotes,
		EstimatesNotes:   cmd.EstimatesNotes,
		MembershipNotes:  cmd.MembershipNotes,
		ReviewsNotes:     cmd.ReviewsNotes,
		ReplacementNotes: cmd.ReplacementNotes,
		EquipmentNotes:   cmd.EquipmentNotes,

		OverallGrade:   cmd.OverallGrade,
		FeedbackNotes:  cmd.FeedbackNotes,
		CoachingNeeded: cmd.CoachingNeeded,
	}

	if err := sc.CompleteReview(cmd.ReviewerID, results); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.spotCheckRepo.Update(ctx, sc); err != nil {
		return nil, err
	}

	result := &SubmitReviewResult{
		SpotCheckID: sc.ID(),
		DebriefID:   sc.DebriefID(),
		Status:      sc.Status().String(),
		CompletedAt: sc.CompletedAt(),
		Message:     "spot check review completed",
	}

	// The reviewed dispatcher's accuracy just changed; drop their cached report.
	if d, err := uc.debriefRepo.GetByID(ctx, sc.DebriefID()); err == nil {
		result.DispatcherID = d.DispatcherID()
		if uc.accuracyCache != nil {
			if err := uc.accuracyCache.Invalidate(ctx, d.DispatcherID()); err != nil {
				uc.logger.Warnw("failed to invalidate accuracy cache", "dispatcher_id", d.DispatcherID(), "error", err)
			}
		}
	} else {
		uc.logger.Warnw("debrief lookup failed after review", "debrief_id", sc.DebriefID(), "error", err)
	}

	uc.logger.Infow("spot check review submitted",
		"spot_check_id", sc.ID(),
		"debrief_id", sc.DebriefID(),
		"reviewer_id", cmd.ReviewerID,
		"coaching_needed", cmd.CoachingNeeded,
	)

	return result, nil
}

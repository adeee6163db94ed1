package usecases

import (
	"context"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/spotcheck/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

type CreateManualSpotCheckCommand struct {
	DebriefID uint
}

type CreateManualSpotCheckResult struct {
	SpotCheckID   uint
	DebriefID     uint
	AlreadyExists bool
	Message       string
}

// CreateManualSpotCheckUseCase puts a single debrief up for audit outside the
// daily batch. Calling it again for the same debrief hands back the existing
// spot check instead of creating a second one.
type CreateManualSpotCheckUseCase struct {
	debriefRepo   debrief.Repository
	spotCheckRepo spotcheck.Repository
	logger        logger.Interface
}

func NewCreateManualSpotCheckUseCase(
	debriefRepo debrief.Repository,
	spotCheckRepo spotcheck.Repository,
	logger logger.Interface,
) *CreateManualSpotCheckUseCase {
	return &CreateManualSpotCheckUseCase{
		debriefRepo:   debriefRepo,
		spotCheckRepo: spotCheckRepo,
		logger:        logger,
	}
}

func (uc *CreateManualSpotCheckUseCase) Execute(ctx context.Context, cmd CreateManualSpotCheckCommand) (*CreateManualSpotCheckResult, error) {
	if cmd.DebriefID == 0 {
		return nil, apperrors.NewValidationError("debrief ID is required")
	}

	if _, err := uc.debriefRepo.GetByID(ctx, cmd.DebriefID); err != nil {
		return nil, err
	}

	existing, err := uc.spotCheckRepo.GetByDebriefID(ctx, cmd.DebriefID)
	if err != nil && !apperrors.IsNotFoundError(err) {
		return nil, err
	}
	if existing != nil {
		return &CreateManualSpotCheckResult{
			SpotCheckID:   existing.ID(),
			DebriefID:     cmd.DebriefID,
			AlreadyExists: true,
			Message:       "spot check already exists for this debrief",
		}, nil
	}

	sc, err := spotcheck.NewSpotCheck(cmd.DebriefID, vo.ReasonManual, biztime.Today())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := uc.spotCheckRepo.Save(ctx, sc); err != nil {
		return nil, err
	}

	uc.logger.Infow("manual spot check created", "spot_check_id", sc.ID(), "debrief_id", cmd.DebriefID)

	return &CreateManualSpotCheckResult{
		SpotCheckID: sc.ID(),
		DebriefID:   cmd.DebriefID,
		Message:     "spot check created",
	}, nil
}

package usecases

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/dto"
	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/spotcheck/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

// DefaultSpotCheckFraction is the share of a day's completed debriefs that
// gets sampled for audit.
const DefaultSpotCheckFraction = 0.10

type SelectDailySpotChecksCommand struct {
	// TargetDate is a YYYY-MM-DD calendar date in the business timezone.
	// Empty means yesterday.
	TargetDate string
	// TargetFraction overrides the configured sampling fraction when > 0.
	TargetFraction float64
}

// SelectDailySpotChecksUseCase samples a day's completed debriefs for audit.
// Flagged debriefs are always taken first; remaining slots are filled by
// uniform random draw. The run is idempotent per debrief because debriefs
// already holding a spot check are excluded up front.
type SelectDailySpotChecksUseCase struct {
	debriefRepo   debrief.Repository
	spotCheckRepo spotcheck.Repository
	txManager     *db.TransactionManager
	fraction      float64
	logger        logger.Interface
}

func NewSelectDailySpotChecksUseCase(
	debriefRepo debrief.Repository,
	spotCheckRepo spotcheck.Repository,
	txManager *db.TransactionManager,
	fraction float64,
	logger logger.Interface,
) *SelectDailySpotChecksUseCase {
	if fraction <= 0 {
		fraction = DefaultSpotCheckFraction
	}
	return &SelectDailySpotChecksUseCase{
		debriefRepo:   debriefRepo,
		spotCheckRepo: spotCheckRepo,
		txManager:     txManager,
		fraction:      fraction,
		logger:        logger,
	}
}

func (uc *SelectDailySpotChecksUseCase) Execute(ctx context.Context, cmd SelectDailySpotChecksCommand) (*dto.SelectionResult, error) {
	targetDate := cmd.TargetDate
	if targetDate == "" {
		targetDate = biztime.Yesterday()
	}

	start, end, err := biztime.DayWindowUTC(targetDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid target date %q", targetDate), err.Error())
	}

	fraction := uc.fraction
	if cmd.TargetFraction > 0 {
		fraction = cmd.TargetFraction
	}

	completed, err := uc.debriefRepo.ListCompletedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := &dto.SelectionResult{BatchDate: targetDate, TotalDebriefs: len(completed)}
	if len(completed) == 0 {
		result.Message = fmt.Sprintf("no debriefs completed on %s, nothing to select", targetDate)
		return result, nil
	}

	targetCount := int(float64(len(completed)) * fraction)
	if targetCount < 1 {
		targetCount = 1
	}

	ids := make([]uint, 0, len(completed))
	for _, d := range completed {
		ids = append(ids, d.ID())
	}
	alreadyChecked, err := uc.spotCheckRepo.ListDebriefIDsWithChecks(ctx, ids)
	if err != nil {
		return nil, err
	}

	var flagged, regular []*debrief.Debrief
	for _, d := range completed {
		if alreadyChecked[d.ID()] {
			continue
		}
		if d.RequiresFollowUp() {
			flagged = append(flagged, d)
		} else {
			regular = append(regular, d)
		}
	}

	if len(flagged) > targetCount {
		flagged = flagged[:targetCount]
	}

	remaining := targetCount - len(flagged)
	if remaining > len(regular) {
		remaining = len(regular)
	}
	if remaining > 0 {
		rand.Shuffle(len(regular), func(i, j int) {
			regular[i], regular[j] = regular[j], regular[i]
		})
		regular = regular[:remaining]
	} else {
		regular = nil
	}

	type pick struct {
		debriefID uint
		reason    vo.SelectionReason
	}
	picks := make([]pick, 0, len(flagged)+len(regular))
	for _, d := range flagged {
		picks = append(picks, pick{d.ID(), vo.ReasonFlagged})
	}
	for _, d := range regular {
		picks = append(picks, pick{d.ID(), vo.ReasonRandom})
	}

	if len(picks) == 0 {
		result.Message = fmt.Sprintf("all eligible debriefs for %s already have spot checks", targetDate)
		return result, nil
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, p := range picks {
			sc, err := spotcheck.NewSpotCheck(p.debriefID, p.reason, targetDate)
			if err != nil {
				return err
			}
			if err := uc.spotCheckRepo.Save(txCtx, sc); err != nil {
				return err
			}
			result.SpotCheckIDs = append(result.SpotCheckIDs, sc.ID())
		}
		return nil
	})
	if err != nil {
		result.SpotCheckIDs = nil
		return nil, err
	}

	result.FlaggedCount = len(flagged)
	result.RandomCount = len(regular)
	result.SelectedCount = len(picks)
	result.Message = fmt.Sprintf("selected %d of %d debriefs for %s (%d flagged, %d random)",
		result.SelectedCount, result.TotalDebriefs, targetDate, result.FlaggedCount, result.RandomCount)

	uc.logger.Infow("daily spot check selection complete",
		"batch_date", targetDate,
		"total_debriefs", result.TotalDebriefs,
		"selected", result.SelectedCount,
		"flagged", result.FlaggedCount,
		"random", result.RandomCount,
	)

	return result, nil
}

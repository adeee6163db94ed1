package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/spotcheck/valueobjects"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

func TestCreateManualSpotCheck(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(t *testing.T) (*CreateManualSpotCheckUseCase, *mockSpotCheckRepo) {
		target := makeDebriefs(t, 1, 0)[0]
		debriefRepo := &mockDebriefRepo{
			getByIDFn: func(ctx context.Context, id uint) (*debrief.Debrief, error) {
				if id == target.ID() {
					return target, nil
				}
				return nil, apperrors.NewNotFoundError("debrief not found")
			},
		}
		spotCheckRepo := &mockSpotCheckRepo{}
		spotCheckRepo.getByDebriefIDFn = func(ctx context.Context, debriefID uint) (*spotcheck.SpotCheck, error) {
			for _, sc := range spotCheckRepo.saved {
				if sc.DebriefID() == debriefID {
					return sc, nil
				}
			}
			return nil, apperrors.NewNotFoundError("spot check not found")
		}
		return NewCreateManualSpotCheckUseCase(debriefRepo, spotCheckRepo, testLogger()), spotCheckRepo
	}

	t.Run("creates a manual spot check", func(t *testing.T) {
		uc, repo := newUseCase(t)

		result, err := uc.Execute(ctx, CreateManualSpotCheckCommand{DebriefID: 1})
		require.NoError(t, err)

		assert.False(t, result.AlreadyExists)
		assert.NotZero(t, result.SpotCheckID)
		require.Len(t, repo.saved, 1)
		assert.Equal(t, vo.ReasonManual, repo.saved[0].SelectionReason())
	})

	t.Run("second call hands back the existing spot check", func(t *testing.T) {
		uc, repo := newUseCase(t)

		first, err := uc.Execute(ctx, CreateManualSpotCheckCommand{DebriefID: 1})
		require.NoError(t, err)

		second, err := uc.Execute(ctx, CreateManualSpotCheckCommand{DebriefID: 1})
		require.NoError(t, err)

		assert.True(t, second.AlreadyExists)
		assert.Equal(t, first.SpotCheckID, second.SpotCheckID)
		assert.Len(t, repo.saved, 1)
	})

	t.Run("unknown debrief propagates not found", func(t *testing.T) {
		uc, _ := newUseCase(t)

		_, err := uc.Execute(ctx, CreateManualSpotCheckCommand{DebriefID: 999})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("rejects zero debrief id", func(t *testing.T) {
		uc, _ := newUseCase(t)

		_, err := uc.Execute(ctx, CreateManualSpotCheckCommand{})
		assert.True(t, apperrors.IsValidationError(err))
	})
}

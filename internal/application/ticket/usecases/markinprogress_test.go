package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

func TestMarkInProgress(t *testing.T) {
	t.Run("moves pending ticket to in_progress", func(t *testing.T) {
		tk, err := ticket.NewTicket(100, ticket.Snapshot{})
		require.NoError(t, err)
		tk.SetID(3)

		updated := false
		repo := &mockTicketRepo{
			getByJobIDFn: func(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
				return tk, nil
			},
			updateFn: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = true
				return nil
			},
		}

		uc := NewMarkInProgressUseCase(repo, testLogger())
		result, err := uc.Execute(context.Background(), MarkInProgressCommand{JobID: 100})
		require.NoError(t, err)

		assert.Equal(t, uint(3), result.TicketID)
		assert.Equal(t, "in_progress", result.Status)
		assert.True(t, updated)
	})

	t.Run("rejects completed ticket", func(t *testing.T) {
		tk, err := ticket.NewTicket(100, ticket.Snapshot{})
		require.NoError(t, err)
		tk.CompleteDebrief()

		repo := &mockTicketRepo{
			getByJobIDFn: func(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
				return tk, nil
			},
		}

		uc := NewMarkInProgressUseCase(repo, testLogger())
		_, err = uc.Execute(context.Background(), MarkInProgressCommand{JobID: 100})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("unknown job id propagates not found", func(t *testing.T) {
		repo := &mockTicketRepo{
			getByJobIDFn: func(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
				return nil, apperrors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewMarkInProgressUseCase(repo, testLogger())
		_, err := uc.Execute(context.Background(), MarkInProgressCommand{JobID: 404})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

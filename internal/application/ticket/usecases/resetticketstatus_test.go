package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

func TestResetTicketStatus(t *testing.T) {
	t.Run("returns completed ticket without debrief to the queue", func(t *testing.T) {
		tk, err := ticket.NewTicket(200, ticket.Snapshot{})
		require.NoError(t, err)
		tk.SetID(5)
		tk.CompleteDebrief()

		ticketRepo := &mockTicketRepo{
			getByJobIDFn: func(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
				return tk, nil
			},
			updateFn: func(ctx context.Context, tk *ticket.Ticket) error {
				return nil
			},
		}
		debriefRepo := &mockDebriefRepo{
			existsForTicketFn: func(ctx context.Context, ticketID uint) (bool, error) {
				return false, nil
			},
		}

		uc := NewResetTicketStatusUseCase(ticketRepo, debriefRepo, testLogger())
		result, err := uc.Execute(context.Background(), ResetTicketStatusCommand{JobID: 200})
		require.NoError(t, err)

		assert.Equal(t, "pending", result.Status)
		assert.Equal(t, "ticket returned to queue", result.Message)
	})

	t.Run("refuses to reset a ticket with a debrief", func(t *testing.T) {
		tk, err := ticket.NewTicket(200, ticket.Snapshot{})
		require.NoError(t, err)
		tk.SetID(5)
		tk.CompleteDebrief()

		ticketRepo := &mockTicketRepo{
			getByJobIDFn: func(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		debriefRepo := &mockDebriefRepo{
			existsForTicketFn: func(ctx context.Context, ticketID uint) (bool, error) {
				return true, nil
			},
		}

		uc := NewResetTicketStatusUseCase(ticketRepo, debriefRepo, testLogger())
		_, err = uc.Execute(context.Background(), ResetTicketStatusCommand{JobID: 200})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Contains(t, err.Error(), "completed debrief")
	})
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

func TestGetDebrief(t *testing.T) {
	tk, err := ticket.NewTicket(500, ticket.Snapshot{JobNumber: "J-500"})
	require.NoError(t, err)
	tk.SetID(10)

	score := 8
	checklist := debrief.Checklist{
		PhotosReviewed:         vo.CheckPass,
		InvoiceSummaryScore:    &score,
		PaymentVerified:        vo.CheckPass,
		EstimatesVerified:      vo.CheckNA,
		MembershipVerified:     vo.CheckPass,
		GoogleReviewsDiscussed: vo.CheckPass,
		ReplacementDiscussed:   vo.CheckNA,
		EquipmentAdded:         vo.CheckNA,
	}
	d, err := debrief.NewDebrief(10, 2, checklist, debrief.FollowUp{})
	require.NoError(t, err)
	d.SetID(77)

	t.Run("returns debrief with composite score", func(t *testing.T) {
		ticketRepo := &mockTicketRepo{
			getByJobIDFn: func(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		debriefRepo := &mockDebriefRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID uint) (*debrief.Debrief, error) {
				return d, nil
			},
		}

		uc := NewGetDebriefUseCase(ticketRepo, debriefRepo, testLogger())
		result, err := uc.Execute(context.Background(), GetDebriefQuery{JobID: 500})
		require.NoError(t, err)

		assert.Equal(t, uint(77), result.DebriefID)
		assert.Equal(t, int64(500), result.JobID)
		assert.Equal(t, debrief.CompositeScore(d), result.CompositeScore)
	})

	t.Run("ticket without debrief reports not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepo{
			getByJobIDFn: func(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		debriefRepo := &mockDebriefRepo{
			getByTicketIDFn: func(ctx context.Context, ticketID uint) (*debrief.Debrief, error) {
				return nil, apperrors.NewNotFoundError("debrief not found")
			},
		}

		uc := NewGetDebriefUseCase(ticketRepo, debriefRepo, testLogger())
		_, err := uc.Execute(context.Background(), GetDebriefQuery{JobID: 500})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

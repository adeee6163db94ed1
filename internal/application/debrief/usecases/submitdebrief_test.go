package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	dvo "github.com/n8dizzle/debrief-tools/internal/domain/dispatcher/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

func validCommand() SubmitDebriefCommand {
	return SubmitDebriefCommand{
		JobID:                  500,
		DispatcherID:           2,
		PhotosReviewed:         "pass",
		InvoiceSummaryScore:    8,
		PaymentVerified:        "pass",
		EstimatesVerified:      "na",
		MembershipVerified:     "pass",
		GoogleReviewsDiscussed: "pass",
		ReplacementDiscussed:   "na",
		EquipmentAdded:         "na",
	}
}

type submitFixture struct {
	ticketRepo     *mockTicketRepo
	debriefRepo    *mockDebriefRepo
	dispatcherRepo *mockDispatcherRepo
	notifier       *mockNotifier
	taskCreator    *mockTaskCreator
	uc             *SubmitDebriefUseCase

	ticket       *ticket.Ticket
	savedDebrief *debrief.Debrief
}

func newSubmitFixture(t *testing.T) *submitFixture {
	tk, err := ticket.NewTicket(500, ticket.Snapshot{JobNumber: "J-500", CustomerName: "Pat", TechName: "Alex"})
	require.NoError(t, err)
	tk.SetID(10)

	f := &submitFixture{ticket: tk}

	f.ticketRepo = &mockTicketRepo{
		getByJobIDFn: func(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
			return f.ticket, nil
		},
		getByIDFn: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return f.ticket, nil
		},
		updateFn: func(ctx context.Context, tk *ticket.Ticket) error {
			return nil
		},
	}
	f.debriefRepo = &mockDebriefRepo{
		getByTicketIDFn: func(ctx context.Context, ticketID uint) (*debrief.Debrief, error) {
			return nil, apperrors.NewNotFoundError("debrief not found")
		},
		saveFn: func(ctx context.Context, d *debrief.Debrief) error {
			d.SetID(77)
			f.savedDebrief = d
			return nil
		},
		updateFn: func(ctx context.Context, d *debrief.Debrief) error {
			return nil
		},
	}
	f.dispatcherRepo = &mockDispatcherRepo{
		getByIDFn: func(ctx context.Context, id uint) (*dispatcher.Dispatcher, error) {
			d, err := dispatcher.NewDispatcher("Jordan", "jordan@example.com", dvo.RoleDispatcher, true)
			if err != nil {
				return nil, err
			}
			return d, nil
		},
	}
	f.notifier = &mockNotifier{
		sendFn: func(ctx context.Context, n FollowUpNotification) (*NotificationResult, error) {
			return &NotificationResult{ThreadTS: "1724400000.000100"}, nil
		},
	}
	f.taskCreator = &mockTaskCreator{
		createFn: func(ctx context.Context, task FollowUpTask) error {
			return nil
		},
	}

	f.uc = NewSubmitDebriefUseCase(
		f.ticketRepo,
		f.debriefRepo,
		f.dispatcherRepo,
		newTestTxManager(t),
		f.notifier,
		f.taskCreator,
		"https://debrief.example.com",
		testLogger(),
	)
	return f
}

func TestSubmitDebrief(t *testing.T) {
	t.Run("persists debrief and completes the ticket", func(t *testing.T) {
		f := newSubmitFixture(t)

		result, err := f.uc.Execute(context.Background(), validCommand())
		require.NoError(t, err)

		assert.Equal(t, uint(77), result.DebriefID)
		assert.Equal(t, uint(10), result.TicketID)
		assert.Equal(t, int64(500), result.JobID)
		assert.False(t, result.Overwritten)
		assert.Equal(t, "debrief completed", result.Message)
		assert.Equal(t, "completed", f.ticket.Status().String())
		assert.Empty(t, result.Warnings)

		require.NotNil(t, f.savedDebrief)
		assert.Equal(t, uint(2), f.savedDebrief.DispatcherID())

		// No follow-up flagged: collaborators stay quiet.
		assert.Zero(t, f.notifier.calls)
		assert.Zero(t, f.taskCreator.calls)
	})

	t.Run("accepts every invoice score from 1 to 10", func(t *testing.T) {
		for score := 1; score <= 10; score++ {
			f := newSubmitFixture(t)
			cmd := validCommand()
			cmd.InvoiceSummaryScore = score

			_, err := f.uc.Execute(context.Background(), cmd)
			require.NoError(t, err, "score %d", score)
		}
	})

	t.Run("rejects invoice score of 11", func(t *testing.T) {
		f := newSubmitFixture(t)
		cmd := validCommand()
		cmd.InvoiceSummaryScore = 11

		_, err := f.uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("rejects invoice score of 0", func(t *testing.T) {
		f := newSubmitFixture(t)
		cmd := validCommand()
		cmd.InvoiceSummaryScore = 0

		_, err := f.uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("rejects unknown check status", func(t *testing.T) {
		f := newSubmitFixture(t)
		cmd := validCommand()
		cmd.PhotosReviewed = "maybe"

		_, err := f.uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("rejects follow-up without a type", func(t *testing.T) {
		f := newSubmitFixture(t)
		cmd := validCommand()
		cmd.FollowUpRequired = true

		_, err := f.uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Contains(t, err.Error(), "follow-up type")
	})

	t.Run("resubmission overwrites in place", func(t *testing.T) {
		f := newSubmitFixture(t)

		first, err := f.uc.Execute(context.Background(), validCommand())
		require.NoError(t, err)

		// Second submission finds the stored debrief.
		f.debriefRepo.getByTicketIDFn = func(ctx context.Context, ticketID uint) (*debrief.Debrief, error) {
			return f.savedDebrief, nil
		}

		cmd := validCommand()
		cmd.DispatcherID = 3
		cmd.InvoiceSummaryScore = 4

		second, err := f.uc.Execute(context.Background(), cmd)
		require.NoError(t, err)

		assert.True(t, second.Overwritten)
		assert.Equal(t, first.DebriefID, second.DebriefID)
		assert.Equal(t, uint(3), f.savedDebrief.DispatcherID())
		assert.Equal(t, 4, *f.savedDebrief.Checklist().InvoiceSummaryScore)
	})

	t.Run("follow-up dispatches notification and task", func(t *testing.T) {
		f := newSubmitFixture(t)
		cmd := validCommand()
		cmd.FollowUpRequired = true
		cmd.FollowUpType = vo.FollowUpTechCoaching.String()
		cmd.FollowUpDescription = "tech skipped photos"

		var sent FollowUpNotification
		f.notifier.sendFn = func(ctx context.Context, n FollowUpNotification) (*NotificationResult, error) {
			sent = n
			return &NotificationResult{}, nil
		}

		result, err := f.uc.Execute(context.Background(), cmd)
		require.NoError(t, err)

		assert.Empty(t, result.Warnings)
		assert.Equal(t, 1, f.notifier.calls)
		assert.Equal(t, 1, f.taskCreator.calls)
		assert.Equal(t, "J-500", sent.JobNumber)
		assert.Equal(t, "tech_coaching", sent.FollowUpType)
		assert.Equal(t, "https://debrief.example.com/debrief/500", sent.DebriefURL)
		assert.True(t, f.savedDebrief.SlackNotified())
	})

	t.Run("collaborator failures become warnings, not errors", func(t *testing.T) {
		f := newSubmitFixture(t)
		cmd := validCommand()
		cmd.FollowUpRequired = true
		cmd.FollowUpType = vo.FollowUpBilling.String()

		f.notifier.sendFn = func(ctx context.Context, n FollowUpNotification) (*NotificationResult, error) {
			return nil, fmt.Errorf("webhook returned 503")
		}
		f.taskCreator.createFn = func(ctx context.Context, task FollowUpTask) error {
			return fmt.Errorf("task api timeout")
		}

		result, err := f.uc.Execute(context.Background(), cmd)
		require.NoError(t, err)

		require.Len(t, result.Warnings, 2)
		assert.Contains(t, result.Warnings[0], "notification failed")
		assert.Contains(t, result.Warnings[1], "task creation failed")
		assert.False(t, f.savedDebrief.SlackNotified())
	})

	t.Run("repository failure rolls the submission back", func(t *testing.T) {
		f := newSubmitFixture(t)
		f.debriefRepo.saveFn = func(ctx context.Context, d *debrief.Debrief) error {
			return fmt.Errorf("connection lost")
		}

		_, err := f.uc.Execute(context.Background(), validCommand())
		require.Error(t, err)
		assert.Zero(t, f.notifier.calls)
	})
}

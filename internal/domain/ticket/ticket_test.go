package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/n8dizzle/debrief-tools/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	t.Run("creates pending ticket", func(t *testing.T) {
		tk, err := NewTicket(12345, Snapshot{JobNumber: "J-100", TechName: "Alex"})
		require.NoError(t, err)

		assert.Equal(t, int64(12345), tk.JobID())
		assert.Equal(t, vo.StatusPending, tk.Status())
		assert.Equal(t, "J-100", tk.Snapshot().JobNumber)
		assert.False(t, tk.PulledAt().IsZero())
	})

	t.Run("rejects zero job id", func(t *testing.T) {
		_, err := NewTicket(0, Snapshot{})
		assert.Error(t, err)
	})
}

func TestTicketBeginReview(t *testing.T) {
	tk, err := NewTicket(1, Snapshot{})
	require.NoError(t, err)

	require.NoError(t, tk.BeginReview())
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	// Re-opening an in-progress review is a no-op.
	require.NoError(t, tk.BeginReview())
	assert.Equal(t, vo.StatusInProgress, tk.Status())
}

func TestTicketBeginReviewAfterCompletion(t *testing.T) {
	tk, err := NewTicket(1, Snapshot{})
	require.NoError(t, err)

	tk.CompleteDebrief()
	assert.Error(t, tk.BeginReview())
}

func TestTicketCompleteDebrief(t *testing.T) {
	// A debrief submission always wins, from any state.
	for _, start := range []func(*Ticket){
		func(tk *Ticket) {},
		func(tk *Ticket) { _ = tk.BeginReview() },
		func(tk *Ticket) { tk.CompleteDebrief() },
	} {
		tk, err := NewTicket(1, Snapshot{})
		require.NoError(t, err)
		start(tk)

		tk.CompleteDebrief()
		assert.Equal(t, vo.StatusCompleted, tk.Status())
	}
}

func TestTicketResetToPending(t *testing.T) {
	t.Run("resets completed ticket", func(t *testing.T) {
		tk, err := NewTicket(1, Snapshot{})
		require.NoError(t, err)
		tk.CompleteDebrief()

		require.NoError(t, tk.ResetToPending())
		assert.Equal(t, vo.StatusPending, tk.Status())
	})

	t.Run("resetting pending ticket is a no-op", func(t *testing.T) {
		tk, err := NewTicket(1, Snapshot{})
		require.NoError(t, err)

		require.NoError(t, tk.ResetToPending())
		assert.Equal(t, vo.StatusPending, tk.Status())
	})
}

func TestTicketStatusTransitions(t *testing.T) {
	tests := []struct {
		from    vo.Status
		to      vo.Status
		allowed bool
	}{
		{vo.StatusPending, vo.StatusInProgress, true},
		{vo.StatusPending, vo.StatusCompleted, true},
		{vo.StatusInProgress, vo.StatusCompleted, true},
		{vo.StatusInProgress, vo.StatusPending, false},
		{vo.StatusCompleted, vo.StatusPending, true},
		{vo.StatusCompleted, vo.StatusInProgress, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

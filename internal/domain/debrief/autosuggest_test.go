package debrief

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
)

func TestAutoSuggestions(t *testing.T) {
	expires := time.Now().Add(90 * 24 * time.Hour)

	tests := []struct {
		name string
		snap ticket.Snapshot
		want Suggestions
	}{
		{
			name: "empty snapshot suggests only estimates na",
			snap: ticket.Snapshot{},
			want: Suggestions{EstimatesVerified: suggest(vo.CheckNA)},
		},
		{
			name: "photos present suggest pass",
			snap: ticket.Snapshot{PhotoCount: 4},
			want: Suggestions{
				PhotosReviewed:    suggest(vo.CheckPass),
				EstimatesVerified: suggest(vo.CheckNA),
			},
		},
		{
			name: "payment collected suggests pass",
			snap: ticket.Snapshot{PaymentCollected: true},
			want: Suggestions{
				PaymentVerified:   suggest(vo.CheckPass),
				EstimatesVerified: suggest(vo.CheckNA),
			},
		},
		{
			name: "estimates present suggest pass",
			snap: ticket.Snapshot{EstimateCount: 2},
			want: Suggestions{EstimatesVerified: suggest(vo.CheckPass)},
		},
		{
			name: "opportunity without estimates gets no suggestion",
			snap: ticket.Snapshot{IsOpportunity: true},
			want: Suggestions{},
		},
		{
			name: "membership sold suggests pass",
			snap: ticket.Snapshot{MembershipSold: true, IsOpportunity: true},
			want: Suggestions{MembershipVerified: suggest(vo.CheckPass)},
		},
		{
			name: "active membership suggests na",
			snap: ticket.Snapshot{
				MembershipType:    "Gold",
				MembershipExpires: &expires,
				IsOpportunity:     true,
			},
			want: Suggestions{MembershipVerified: suggest(vo.CheckNA)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoSuggestions(tt.snap))
		})
	}
}

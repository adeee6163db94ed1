package debrief

import (
	vo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
)

// Suggestions holds pre-filled checklist values derived from ticket facts.
// Nil means no suggestion: the item needs human judgment. Suggestions are
// display hints only and are never persisted.
type Suggestions struct {
	PhotosReviewed     *vo.CheckStatus
	PaymentVerified    *vo.CheckStatus
	EstimatesVerified  *vo.CheckStatus
	MembershipVerified *vo.CheckStatus
}

// AutoSuggestions derives checklist suggestions from the ticket snapshot.
// Reviews, replacement, and equipment items always require human judgment and
// never get a suggestion.
func AutoSuggestions(s ticket.Snapshot) Suggestions {
	var out Suggestions

	if s.PhotoCount > 0 {
		out.PhotosReviewed = suggest(vo.CheckPass)
	}

	if s.PaymentCollected {
		out.PaymentVerified = suggest(vo.CheckPass)
	}

	if s.EstimateCount > 0 {
		out.EstimatesVerified = suggest(vo.CheckPass)
	} else if !s.IsOpportunity {
		// Not a conversion opportunity, so no estimate was expected.
		out.EstimatesVerified = suggest(vo.CheckNA)
	}

	if s.MembershipSold {
		out.MembershipVerified = suggest(vo.CheckPass)
	} else if s.MembershipType != "" && s.MembershipExpires != nil {
		// Customer already holds an active membership.
		out.MembershipVerified = suggest(vo.CheckNA)
	}

	return out
}

func suggest(cs vo.CheckStatus) *vo.CheckStatus {
	return &cs
}

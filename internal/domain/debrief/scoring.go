package debrief

import "math"

// Composite score weights. Photos, payment, estimates, and the invoice summary
// are the high-signal items; membership and reviews are normal weight.
const (
	WeightPhotos     = 2
	WeightPayment    = 2
	WeightEstimates  = 2
	WeightInvoice    = 2
	WeightMembership = 1
	WeightReviews    = 1

	totalScoreWeight = WeightPhotos + WeightPayment + WeightEstimates +
		WeightInvoice + WeightMembership + WeightReviews
)

// CompositeScore collapses a debrief's checklist into a single 0-100 number.
//
// Binary items count 100 on pass and 0 otherwise (fail, na, and pending are
// all real zeros). The 1-10 invoice score maps to 0-100 via x10; a missing
// score counts as a neutral 50. The asymmetry is deliberate: an explicit
// na/fail is a judgment, a missing number is not.
//
// Pure function: identical inputs always produce identical output.
func CompositeScore(d *Debrief) float64 {
	c := d.Checklist()

	invoicePct := 50.0
	if c.InvoiceSummaryScore != nil {
		invoicePct = float64(*c.InvoiceSummaryScore) * 10
	}

	weighted := passValue(c.PhotosReviewed.IsPass())*WeightPhotos +
		passValue(c.PaymentVerified.IsPass())*WeightPayment +
		passValue(c.EstimatesVerified.IsPass())*WeightEstimates +
		invoicePct*WeightInvoice +
		passValue(c.MembershipVerified.IsPass())*WeightMembership +
		passValue(c.GoogleReviewsDiscussed.IsPass())*WeightReviews

	return roundToOneDecimal(weighted / totalScoreWeight)
}

func passValue(pass bool) float64 {
	if pass {
		return 100
	}
	return 0
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

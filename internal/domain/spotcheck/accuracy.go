package spotcheck

import "math"

// Accuracy weights, aligned with the composite score weights. The invoice
// summary carries the most signal in a spot check review.
const (
	AccuracyWeightPhotos       = 2
	AccuracyWeightInvoiceScore = 4
	AccuracyWeightPayment      = 2
	AccuracyWeightEstimates    = 2
	AccuracyWeightMembership   = 1
	AccuracyWeightReviews      = 1
	AccuracyWeightReplacement  = 1
	AccuracyWeightEquipment    = 1
)

// Checkable item names, in reporting order.
const (
	ItemPhotos       = "photos"
	ItemInvoiceScore = "invoice_score"
	ItemPayment      = "payment"
	ItemEstimates    = "estimates"
	ItemMembership   = "membership"
	ItemReviews      = "reviews"
	ItemReplacement  = "replacement"
	ItemEquipment    = "equipment"
)

// ItemAccuracy is one item's correct/total tally over a set of spot checks.
type ItemAccuracy struct {
	Name    string
	Correct int
	Total   int
	Weight  int
}

// Accuracy returns correct/total as a 0-100 percentage, or nil when the item
// was never evaluated.
func (i ItemAccuracy) Accuracy() *float64 {
	if i.Total == 0 {
		return nil
	}
	v := roundToOneDecimal(float64(i.Correct) / float64(i.Total) * 100)
	return &v
}

// AccuracyStats summarizes how often a dispatcher's judgments held up under
// review.
type AccuracyStats struct {
	SampleSize   int
	ItemsChecked int
	Items        []ItemAccuracy

	// OverallAccuracy is the weighted average over items with at least one
	// evaluated sample; items never evaluated contribute neither weight nor
	// value. Nil when nothing was evaluated.
	OverallAccuracy *float64

	// AvgGrade is the mean of reviewer-given overall grades, nil if none.
	AvgGrade *float64

	CoachingNeededCount int
}

// ItemByName returns the tally for a named item, if present.
func (s AccuracyStats) ItemByName(name string) (ItemAccuracy, bool) {
	for _, item := range s.Items {
		if item.Name == name {
			return item, true
		}
	}
	return ItemAccuracy{}, false
}

// CalculateAccuracy tallies completed spot checks into accuracy stats.
// Only items the reviewer actually evaluated (non-nil correctness) count;
// unevaluated items neither help nor hurt.
//
// Pure function over its input.
func CalculateAccuracy(checks []*SpotCheck) AccuracyStats {
	items := []ItemAccuracy{
		{Name: ItemPhotos, Weight: AccuracyWeightPhotos},
		{Name: ItemInvoiceScore, Weight: AccuracyWeightInvoiceScore},
		{Name: ItemPayment, Weight: AccuracyWeightPayment},
		{Name: ItemEstimates, Weight: AccuracyWeightEstimates},
		{Name: ItemMembership, Weight: AccuracyWeightMembership},
		{Name: ItemReviews, Weight: AccuracyWeightReviews},
		{Name: ItemReplacement, Weight: AccuracyWeightReplacement},
		{Name: ItemEquipment, Weight: AccuracyWeightEquipment},
	}

	stats := AccuracyStats{SampleSize: len(checks)}
	if len(checks) == 0 {
		stats.Items = items
		return stats
	}

	var grades []int
	coaching := 0

	for _, sc := range checks {
		r := sc.Results()
		tally(&items[0], r.PhotosCorrect)
		tally(&items[1], r.InvoiceScoreCorrect)
		tally(&items[2], r.PaymentCorrect)
		tally(&items[3], r.EstimatesCorrect)
		tally(&items[4], r.MembershipCorrect)
		tally(&items[5], r.ReviewsCorrect)
		tally(&items[6], r.ReplacementCorrect)
		tally(&items[7], r.EquipmentCorrect)

		if r.OverallGrade != nil {
			grades = append(grades, *r.OverallGrade)
		}
		if r.CoachingNeeded {
			coaching++
		}
	}

	totalWeight := 0
	weightedSum := 0.0
	itemsChecked := 0

	for _, item := range items {
		itemsChecked += item.Total
		if acc := item.Accuracy(); acc != nil {
			weightedSum += *acc * float64(item.Weight)
			totalWeight += item.Weight
		}
	}

	stats.Items = items
	stats.ItemsChecked = itemsChecked
	stats.CoachingNeededCount = coaching

	if totalWeight > 0 {
		overall := roundToOneDecimal(weightedSum / float64(totalWeight))
		stats.OverallAccuracy = &overall
	}

	if len(grades) > 0 {
		sum := 0
		for _, g := range grades {
			sum += g
		}
		avg := roundToOneDecimal(float64(sum) / float64(len(grades)))
		stats.AvgGrade = &avg
	}

	return stats
}

func tally(item *ItemAccuracy, correct *bool) {
	if correct == nil {
		return
	}
	item.Total++
	if *correct {
		item.Correct++
	}
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

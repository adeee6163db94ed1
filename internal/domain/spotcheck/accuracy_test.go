package spotcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/n8dizzle/debrief-tools/internal/domain/spotcheck/valueobjects"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func completedCheck(t *testing.T, results ReviewResults) *SpotCheck {
	t.Helper()
	sc, err := NewSpotCheck(1, vo.ReasonRandom, "2026-08-22")
	require.NoError(t, err)
	require.NoError(t, sc.CompleteReview(1, results))
	return sc
}

func TestCalculateAccuracy_NoChecks(t *testing.T) {
	stats := CalculateAccuracy(nil)

	assert.Equal(t, 0, stats.SampleSize)
	assert.Equal(t, 0, stats.ItemsChecked)
	assert.Nil(t, stats.OverallAccuracy)
	assert.Nil(t, stats.AvgGrade)
	assert.Len(t, stats.Items, 8)
}

func TestCalculateAccuracy_UnevaluatedItemsExcluded(t *testing.T) {
	// Only photos evaluated; everything else unevaluated contributes neither
	// weight nor value.
	checks := []*SpotCheck{
		completedCheck(t, ReviewResults{PhotosCorrect: boolPtr(true)}),
		completedCheck(t, ReviewResults{PhotosCorrect: boolPtr(false)}),
	}

	stats := CalculateAccuracy(checks)

	assert.Equal(t, 2, stats.SampleSize)
	assert.Equal(t, 2, stats.ItemsChecked)

	photos, ok := stats.ItemByName(ItemPhotos)
	require.True(t, ok)
	assert.Equal(t, 1, photos.Correct)
	assert.Equal(t, 2, photos.Total)
	require.NotNil(t, photos.Accuracy())
	assert.Equal(t, 50.0, *photos.Accuracy())

	invoice, ok := stats.ItemByName(ItemInvoiceScore)
	require.True(t, ok)
	assert.Nil(t, invoice.Accuracy())

	// Overall is the weighted average over evaluated items only, so here it
	// equals the photos accuracy despite the invoice item's larger weight.
	require.NotNil(t, stats.OverallAccuracy)
	assert.Equal(t, 50.0, *stats.OverallAccuracy)
}

func TestCalculateAccuracy_WeightedAverage(t *testing.T) {
	// Photos (weight 2) 100%, invoice (weight 4) 0%.
	checks := []*SpotCheck{
		completedCheck(t, ReviewResults{
			PhotosCorrect:       boolPtr(true),
			InvoiceScoreCorrect: boolPtr(false),
		}),
	}

	stats := CalculateAccuracy(checks)

	require.NotNil(t, stats.OverallAccuracy)
	// (100*2 + 0*4) / 6 = 33.3
	assert.Equal(t, 33.3, *stats.OverallAccuracy)
}

func TestCalculateAccuracy_GradesAndCoaching(t *testing.T) {
	checks := []*SpotCheck{
		completedCheck(t, ReviewResults{
			PhotosCorrect:  boolPtr(true),
			OverallGrade:   intPtr(8),
			CoachingNeeded: true,
		}),
		completedCheck(t, ReviewResults{
			PhotosCorrect: boolPtr(true),
			OverallGrade:  intPtr(5),
		}),
		completedCheck(t, ReviewResults{
			PhotosCorrect: boolPtr(true),
		}),
	}

	stats := CalculateAccuracy(checks)

	require.NotNil(t, stats.AvgGrade)
	assert.Equal(t, 6.5, *stats.AvgGrade)
	assert.Equal(t, 1, stats.CoachingNeededCount)
}

func TestCalculateAccuracy_AllItemsAllCorrect(t *testing.T) {
	checks := []*SpotCheck{
		completedCheck(t, ReviewResults{
			PhotosCorrect:       boolPtr(true),
			InvoiceScoreCorrect: boolPtr(true),
			PaymentCorrect:      boolPtr(true),
			EstimatesCorrect:    boolPtr(true),
			MembershipCorrect:   boolPtr(true),
			ReviewsCorrect:      boolPtr(true),
			ReplacementCorrect:  boolPtr(true),
			EquipmentCorrect:    boolPtr(true),
		}),
	}

	stats := CalculateAccuracy(checks)

	assert.Equal(t, 8, stats.ItemsChecked)
	require.NotNil(t, stats.OverallAccuracy)
	assert.Equal(t, 100.0, *stats.OverallAccuracy)
}

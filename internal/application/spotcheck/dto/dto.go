package dto

// SelectionResult reports one daily (or manual) selection run.
type SelectionResult struct {
	BatchDate     string `json:"batch_date"`
	TotalDebriefs int    `json:"total_debriefs"`
	SelectedCount int    `json:"selected_count"`
	FlaggedCount  int    `json:"flagged_count"`
	RandomCount   int    `json:"random_count"`
	SpotCheckIDs  []uint `json:"spot_check_ids,omitempty"`
	Message       string `json:"message"`
}

// ItemAccuracyDTO is one checklist item's accuracy over evaluated samples.
type ItemAccuracyDTO struct {
	Name     string   `json:"name"`
	Correct  int      `json:"correct"`
	Total    int      `json:"total"`
	Accuracy *float64 `json:"accuracy"` // nil when never evaluated
}

// AccuracyReport is a dispatcher's spot-check accuracy summary.
type AccuracyReport struct {
	DispatcherID   uint   `json:"dispatcher_id"`
	DispatcherName string `json:"dispatcher_name"`
	Role           string `json:"role"`
	IsPrimary      bool   `json:"is_primary"`

	SampleSize   int               `json:"sample_size"`
	ItemsChecked int               `json:"items_checked"`
	Items        []ItemAccuracyDTO `json:"items"`

	OverallAccuracy     *float64 `json:"overall_accuracy"` // nil with zero evaluated samples
	AvgGrade            *float64 `json:"avg_grade"`
	CoachingNeededCount int      `json:"coaching_needed_count"`
}

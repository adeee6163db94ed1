package spotcheck

import (
	"fmt"
	"time"

	vo "github.com/n8dizzle/debrief-tools/internal/domain/spotcheck/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
)

// ReviewResults is the reviewer's item-by-item verdict on a debrief. Nil
// correctness means the item was not evaluated and stays out of accuracy math.
type ReviewResults struct {
	PhotosCorrect       *bool
	InvoiceScoreCorrect *bool
	PaymentCorrect      *bool
	EstimatesCorrect    *bool
	MembershipCorrect   *bool
	ReviewsCorrect      *bool
	ReplacementCorrect  *bool
	EquipmentCorrect    *bool

	CorrectedInvoiceScore *int

	PhotosNotes      string
	InvoiceNotes     string
	PaymentNotes     string
	EstimatesNotes   string
	MembershipNotes  string
	ReviewsNotes     string
	ReplacementNotes string
	EquipmentNotes   string

	// OverallGrade is the reviewer's 1-10 grade for the debrief as a whole.
	OverallGrade  *int
	FeedbackNotes string
	CoachingNeeded bool
}

func (r ReviewResults) validate() error {
	if r.OverallGrade != nil && (*r.OverallGrade < 1 || *r.OverallGrade > 10) {
		return fmt.Errorf("overall grade must be between 1 and 10, got %d", *r.OverallGrade)
	}
	if r.CorrectedInvoiceScore != nil && (*r.CorrectedInvoiceScore < 1 || *r.CorrectedInvoiceScore > 10) {
		return fmt.Errorf("corrected invoice score must be between 1 and 10, got %d", *r.CorrectedInvoiceScore)
	}
	return nil
}

// SpotCheck is a manager-level audit of one debrief.
type SpotCheck struct {
	id         uint
	debriefID  uint
	reviewerID *uint

	status          vo.Status
	selectionReason vo.SelectionReason
	selectionBatch  string // calendar date the selection ran for (YYYY-MM-DD)

	results ReviewResults

	selectedAt  time.Time
	startedAt   *time.Time
	completedAt *time.Time
}

func NewSpotCheck(debriefID uint, reason vo.SelectionReason, selectionBatch string) (*SpotCheck, error) {
	if debriefID == 0 {
		return nil, fmt.Errorf("debrief ID is required")
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid selection reason: %s", reason)
	}
	if selectionBatch == "" {
		return nil, fmt.Errorf("selection batch is required")
	}

	return &SpotCheck{
		debriefID:       debriefID,
		status:          vo.StatusPending,
		selectionReason: reason,
		selectionBatch:  selectionBatch,
		selectedAt:      biztime.NowUTC(),
	}, nil
}

func ReconstructSpotCheck(
	id uint,
	debriefID uint,
	reviewerID *uint,
	status vo.Status,
	reason vo.SelectionReason,
	selectionBatch string,
	results ReviewResults,
	selectedAt time.Time,
	startedAt, completedAt *time.Time,
) (*SpotCheck, error) {
	if id == 0 {
		return nil, fmt.Errorf("spot check ID cannot be zero")
	}
	if debriefID == 0 {
		return nil, fmt.Errorf("debrief ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid selection reason: %s", reason)
	}

	return &SpotCheck{
		id:              id,
		debriefID:       debriefID,
		reviewerID:      reviewerID,
		status:          status,
		selectionReason: reason,
		selectionBatch:  selectionBatch,
		results:         results,
		selectedAt:      selectedAt,
		startedAt:       startedAt,
		completedAt:     completedAt,
	}, nil
}

func (sc *SpotCheck) ID() uint {
	return sc.id
}

func (sc *SpotCheck) DebriefID() uint {
	return sc.debriefID
}

func (sc *SpotCheck) ReviewerID() *uint {
	return sc.reviewerID
}

func (sc *SpotCheck) Status() vo.Status {
	return sc.status
}

func (sc *SpotCheck) SelectionReason() vo.SelectionReason {
	return sc.selectionReason
}

func (sc *SpotCheck) SelectionBatch() string {
	return sc.selectionBatch
}

func (sc *SpotCheck) Results() ReviewResults {
	return sc.results
}

func (sc *SpotCheck) SelectedAt() time.Time {
	return sc.selectedAt
}

func (sc *SpotCheck) StartedAt() *time.Time {
	return sc.startedAt
}

func (sc *SpotCheck) CompletedAt() *time.Time {
	return sc.completedAt
}

func (sc *SpotCheck) SetID(id uint) error {
	if sc.id != 0 {
		return fmt.Errorf("spot check ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("spot check ID cannot be zero")
	}
	sc.id = id
	return nil
}

// Begin assigns a reviewer and moves the check to in progress. Reopening an
// in-progress check is a no-op.
func (sc *SpotCheck) Begin(reviewerID uint) error {
	if reviewerID == 0 {
		return fmt.Errorf("reviewer ID is required")
	}
	if sc.status.IsInProgress() {
		return nil
	}
	if !sc.status.CanTransitionTo(vo.StatusInProgress) {
		return fmt.Errorf("cannot begin %s spot check", sc.status)
	}
	sc.reviewerID = &reviewerID
	sc.status = vo.StatusInProgress
	now := biztime.NowUTC()
	sc.startedAt = &now
	return nil
}

// CompleteReview records the reviewer's results and closes the check.
func (sc *SpotCheck) CompleteReview(reviewerID uint, results ReviewResults) error {
	if reviewerID == 0 {
		return fmt.Errorf("reviewer ID is required")
	}
	if sc.status.IsCompleted() {
		return fmt.Errorf("spot check is already completed")
	}
	if !sc.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("cannot complete %s spot check", sc.status)
	}
	if err := results.validate(); err != nil {
		return err
	}

	sc.reviewerID = &reviewerID
	sc.results = results
	sc.status = vo.StatusCompleted
	now := biztime.NowUTC()
	sc.completedAt = &now
	return nil
}

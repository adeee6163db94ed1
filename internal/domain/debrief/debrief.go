package debrief

import (
	"fmt"
	"time"

	vo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
)

// Checklist holds one submission's worth of checklist judgments. Statuses are
// closed enumerations; an out-of-range invoice score is rejected at
// construction time.
type Checklist struct {
	PhotosReviewed vo.CheckStatus
	PhotosNotes    string

	// InvoiceSummaryScore is 1-10. Nil only occurs on rows predating the
	// score; scoring treats absence as neutral, not zero.
	InvoiceSummaryScore *int
	InvoiceSummaryNotes string

	PaymentVerified vo.CheckStatus
	NoPaymentReason string

	EstimatesVerified vo.CheckStatus
	EstimatesNotes    string

	MembershipVerified vo.CheckStatus
	MembershipNotes    string

	GoogleReviewsDiscussed vo.CheckStatus
	GoogleReviewsNotes     string

	ReplacementDiscussed vo.CheckStatus
	NoReplacementReason  string

	EquipmentAdded      vo.CheckStatus
	EquipmentAddedNotes string

	G3ContactNeeded bool
	G3Notes         string

	GeneralNotes string
}

func (c Checklist) validate() error {
	statuses := []struct {
		name  string
		value vo.CheckStatus
	}{
		{"photos_reviewed", c.PhotosReviewed},
		{"payment_verified", c.PaymentVerified},
		{"estimates_verified", c.EstimatesVerified},
		{"membership_verified", c.MembershipVerified},
		{"google_reviews_discussed", c.GoogleReviewsDiscussed},
		{"replacement_discussed", c.ReplacementDiscussed},
		{"equipment_added", c.EquipmentAdded},
	}
	for _, s := range statuses {
		if !s.value.IsValid() {
			return fmt.Errorf("invalid check status for %s: %s", s.name, s.value)
		}
	}
	if c.InvoiceSummaryScore != nil {
		if *c.InvoiceSummaryScore < 1 || *c.InvoiceSummaryScore > 10 {
			return fmt.Errorf("invoice summary score must be between 1 and 10, got %d", *c.InvoiceSummaryScore)
		}
	}
	return nil
}

// FollowUp is the flagged-issue block on a debrief.
type FollowUp struct {
	Required    bool
	Type        vo.FollowUpType
	Description string
	AssignedTo  string
	Completed   bool
	CompletedAt *time.Time
	CompletedBy string
}

func (f FollowUp) validate() error {
	if f.Required && !f.Type.IsValid() {
		return fmt.Errorf("follow-up type is required when follow-up is flagged")
	}
	return nil
}

// Debrief is the checklist-based review a dispatcher performs on a ticket.
// At most one exists per ticket; resubmission overwrites in place.
type Debrief struct {
	id           uint
	ticketID     uint
	dispatcherID uint
	checklist    Checklist
	followUp     FollowUp

	slackNotified bool
	slackThreadTS string

	startedAt   time.Time
	completedAt time.Time
}

func NewDebrief(ticketID, dispatcherID uint, checklist Checklist, followUp FollowUp) (*Debrief, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if dispatcherID == 0 {
		return nil, fmt.Errorf("dispatcher ID is required")
	}
	if checklist.InvoiceSummaryScore == nil {
		return nil, fmt.Errorf("invoice summary score is required")
	}
	if err := checklist.validate(); err != nil {
		return nil, err
	}
	if err := followUp.validate(); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Debrief{
		ticketID:     ticketID,
		dispatcherID: dispatcherID,
		checklist:    checklist,
		followUp:     followUp,
		startedAt:    now,
		completedAt:  now,
	}, nil
}

func ReconstructDebrief(
	id uint,
	ticketID uint,
	dispatcherID uint,
	checklist Checklist,
	followUp FollowUp,
	slackNotified bool,
	slackThreadTS string,
	startedAt, completedAt time.Time,
) (*Debrief, error) {
	if id == 0 {
		return nil, fmt.Errorf("debrief ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if dispatcherID == 0 {
		return nil, fmt.Errorf("dispatcher ID is required")
	}

	return &Debrief{
		id:            id,
		ticketID:      ticketID,
		dispatcherID:  dispatcherID,
		checklist:     checklist,
		followUp:      followUp,
		slackNotified: slackNotified,
		slackThreadTS: slackThreadTS,
		startedAt:     startedAt,
		completedAt:   completedAt,
	}, nil
}

func (d *Debrief) ID() uint {
	return d.id
}

func (d *Debrief) TicketID() uint {
	return d.ticketID
}

func (d *Debrief) DispatcherID() uint {
	return d.dispatcherID
}

func (d *Debrief) Checklist() Checklist {
	return d.checklist
}

func (d *Debrief) FollowUp() FollowUp {
	return d.followUp
}

func (d *Debrief) SlackNotified() bool {
	return d.slackNotified
}

func (d *Debrief) SlackThreadTS() string {
	return d.slackThreadTS
}

func (d *Debrief) StartedAt() time.Time {
	return d.startedAt
}

func (d *Debrief) CompletedAt() time.Time {
	return d.completedAt
}

func (d *Debrief) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("debrief ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("debrief ID cannot be zero")
	}
	d.id = id
	return nil
}

// Overwrite replaces the debrief's content with a new submission. The record
// keeps its identity so dependent spot checks stay attached.
func (d *Debrief) Overwrite(dispatcherID uint, checklist Checklist, followUp FollowUp) error {
	if dispatcherID == 0 {
		return fmt.Errorf("dispatcher ID is required")
	}
	if checklist.InvoiceSummaryScore == nil {
		return fmt.Errorf("invoice summary score is required")
	}
	if err := checklist.validate(); err != nil {
		return err
	}
	if err := followUp.validate(); err != nil {
		return err
	}

	d.dispatcherID = dispatcherID
	d.checklist = checklist
	d.followUp = followUp
	d.completedAt = biztime.NowUTC()
	return nil
}

// RequiresFollowUp reports whether the debrief was flagged for downstream action.
func (d *Debrief) RequiresFollowUp() bool {
	return d.followUp.Required
}

// MarkSlackNotified records a successful follow-up notification.
func (d *Debrief) MarkSlackNotified(threadTS string) {
	d.slackNotified = true
	d.slackThreadTS = threadTS
}

// CompleteFollowUp closes out the flagged follow-up.
func (d *Debrief) CompleteFollowUp(by string) error {
	if !d.followUp.Required {
		return fmt.Errorf("debrief has no follow-up to complete")
	}
	if d.followUp.Completed {
		return fmt.Errorf("follow-up is already completed")
	}
	now := biztime.NowUTC()
	d.followUp.Completed = true
	d.followUp.CompletedAt = &now
	d.followUp.CompletedBy = by
	return nil
}

package ticket

import (
	"fmt"
	"time"

	vo "github.com/n8dizzle/debrief-tools/internal/domain/ticket/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
)

// Snapshot carries the job facts captured from the external feed at ingestion
// time. The snapshot itself is immutable once the ticket is created; only the
// debrief status mutates afterwards.
type Snapshot struct {
	JobNumber        string
	BusinessUnitName string
	JobTypeName      string
	JobCategory      string // Service, Maintenance, Sales, Install
	TradeType        string // HVAC, Plumbing
	JobStatus        string
	IsOpportunity    bool

	TechID   int64
	TechName string

	CustomerID    int64
	CustomerName  string
	IsNewCustomer bool

	LocationID      int64
	LocationAddress string

	InvoiceID        int64
	InvoiceNumber    string
	InvoiceSummary   string
	InvoiceTotal     float64
	InvoiceBalance   float64
	PaymentCollected bool

	EstimateCount  int
	EstimatesTotal float64

	MembershipSold    bool
	MembershipType    string
	MembershipExpires *time.Time

	PhotoCount int
	FormCount  int

	CompletedAt *time.Time
}

// Ticket is the canonical record of one completed job awaiting or having
// completed its QA debrief.
type Ticket struct {
	id       uint
	jobID    int64
	snapshot Snapshot
	status   vo.Status
	pulledAt time.Time
}

func NewTicket(jobID int64, snapshot Snapshot) (*Ticket, error) {
	if jobID == 0 {
		return nil, fmt.Errorf("job ID is required")
	}

	return &Ticket{
		jobID:    jobID,
		snapshot: snapshot,
		status:   vo.StatusPending,
		pulledAt: biztime.NowUTC(),
	}, nil
}

func ReconstructTicket(
	id uint,
	jobID int64,
	snapshot Snapshot,
	status vo.Status,
	pulledAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if jobID == 0 {
		return nil, fmt.Errorf("job ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:       id,
		jobID:    jobID,
		snapshot: snapshot,
		status:   status,
		pulledAt: pulledAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) JobID() int64 {
	return t.jobID
}

func (t *Ticket) Snapshot() Snapshot {
	return t.snapshot
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) PulledAt() time.Time {
	return t.pulledAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// BeginReview marks the ticket as opened by a dispatcher. The transition is
// informational only; a debrief submission completes the ticket from any state.
func (t *Ticket) BeginReview() error {
	if t.status.IsInProgress() {
		return nil
	}
	if !t.status.CanTransitionTo(vo.StatusInProgress) {
		return fmt.Errorf("cannot begin review of %s ticket", t.status)
	}
	t.status = vo.StatusInProgress
	return nil
}

// CompleteDebrief marks the ticket completed. Valid from any state: a debrief
// submission always wins.
func (t *Ticket) CompleteDebrief() {
	t.status = vo.StatusCompleted
}

// ResetToPending returns a completed ticket to the queue. Callers must verify
// the ticket has no debrief before invoking this.
func (t *Ticket) ResetToPending() error {
	if t.status.IsPending() {
		return nil
	}
	if t.status.IsCompleted() && !t.status.CanTransitionTo(vo.StatusPending) {
		return fmt.Errorf("cannot reset %s ticket", t.status)
	}
	t.status = vo.StatusPending
	return nil
}

package debrief

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, d *Debrief) error
	Update(ctx context.Context, d *Debrief) error
	GetByID(ctx context.Context, id uint) (*Debrief, error)
	GetByTicketID(ctx context.Context, ticketID uint) (*Debrief, error)
	ExistsForTicket(ctx context.Context, ticketID uint) (bool, error)
	// ListCompletedBetween returns debriefs whose completion time falls in the
	// half-open UTC window [start, end).
	ListCompletedBetween(ctx context.Context, start, end time.Time) ([]*Debrief, error)
}

package ticket

import (
	"context"

	vo "github.com/n8dizzle/debrief-tools/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByJobID(ctx context.Context, jobID int64) (*Ticket, error)
	ExistsByJobID(ctx context.Context, jobID int64) (bool, error)
	ListByStatus(ctx context.Context, status vo.Status) ([]*Ticket, error)
	Count(ctx context.Context) (int64, error)
}

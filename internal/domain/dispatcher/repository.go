package dispatcher

import "context"

type Repository interface {
	Save(ctx context.Context, d *Dispatcher) error
	GetByID(ctx context.Context, id uint) (*Dispatcher, error)
	GetByEmail(ctx context.Context, email string) (*Dispatcher, error)
	ListActive(ctx context.Context) ([]*Dispatcher, error)
}

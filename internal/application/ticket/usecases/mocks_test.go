package usecases

import (
	"context"
	"log/slog"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/ticket/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

type mockTicketRepo struct {
	saveFn         func(ctx context.Context, t *ticket.Ticket) error
	updateFn       func(ctx context.Context, t *ticket.Ticket) error
	getByIDFn      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	getByJobIDFn   func(ctx context.Context, jobID int64) (*ticket.Ticket, error)
	existsByJobFn  func(ctx context.Context, jobID int64) (bool, error)
	listByStatusFn func(ctx context.Context, status vo.Status) ([]*ticket.Ticket, error)
	countFn        func(ctx context.Context) (int64, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	return m.saveFn(ctx, t)
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	return m.updateFn(ctx, t)
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTicketRepo) GetByJobID(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
	return m.getByJobIDFn(ctx, jobID)
}

func (m *mockTicketRepo) ExistsByJobID(ctx context.Context, jobID int64) (bool, error) {
	return m.existsByJobFn(ctx, jobID)
}

func (m *mockTicketRepo) ListByStatus(ctx context.Context, status vo.Status) ([]*ticket.Ticket, error) {
	return m.listByStatusFn(ctx, status)
}

func (m *mockTicketRepo) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

type mockDebriefRepo struct {
	existsForTicketFn func(ctx context.Context, ticketID uint) (bool, error)
}

func (m *mockDebriefRepo) Save(ctx context.Context, d *debrief.Debrief) error   { return nil }
func (m *mockDebriefRepo) Update(ctx context.Context, d *debrief.Debrief) error { return nil }

func (m *mockDebriefRepo) GetByID(ctx context.Context, id uint) (*debrief.Debrief, error) {
	return nil, nil
}

func (m *mockDebriefRepo) GetByTicketID(ctx context.Context, ticketID uint) (*debrief.Debrief, error) {
	return nil, nil
}

func (m *mockDebriefRepo) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	return m.existsForTicketFn(ctx, ticketID)
}

func (m *mockDebriefRepo) ListCompletedBetween(ctx context.Context, start, end time.Time) ([]*debrief.Debrief, error) {
	return nil, nil
}

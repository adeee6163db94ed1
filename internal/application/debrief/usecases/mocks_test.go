package usecases

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	tvo "github.com/n8dizzle/debrief-tools/internal/domain/ticket/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

// newTestTxManager backs the transaction manager with an in-memory database;
// the repositories themselves are mocked, so no tables are needed.
func newTestTxManager(t *testing.T) *db.TransactionManager {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockTicketRepo struct {
	saveFn       func(ctx context.Context, tk *ticket.Ticket) error
	updateFn     func(ctx context.Context, tk *ticket.Ticket) error
	getByIDFn    func(ctx context.Context, id uint) (*ticket.Ticket, error)
	getByJobIDFn func(ctx context.Context, jobID int64) (*ticket.Ticket, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, tk *ticket.Ticket) error {
	return m.saveFn(ctx, tk)
}

func (m *mockTicketRepo) Update(ctx context.Context, tk *ticket.Ticket) error {
	return m.updateFn(ctx, tk)
}

func (m *mockTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTicketRepo) GetByJobID(ctx context.Context, jobID int64) (*ticket.Ticket, error) {
	return m.getByJobIDFn(ctx, jobID)
}

func (m *mockTicketRepo) ExistsByJobID(ctx context.Context, jobID int64) (bool, error) {
	return false, nil
}

func (m *mockTicketRepo) ListByStatus(ctx context.Context, status tvo.Status) ([]*ticket.Ticket, error) {
	return nil, nil
}

func (m *mockTicketRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockDebriefRepo struct {
	saveFn          func(ctx context.Context, d *debrief.Debrief) error
	updateFn        func(ctx context.Context, d *debrief.Debrief) error
	getByTicketIDFn func(ctx context.Context, ticketID uint) (*debrief.Debrief, error)
}

func (m *mockDebriefRepo) Save(ctx context.Context, d *debrief.Debrief) error {
	return m.saveFn(ctx, d)
}

func (m *mockDebriefRepo) Update(ctx context.Context, d *debrief.Debrief) error {
	return m.updateFn(ctx, d)
}

func (m *mockDebriefRepo) GetByID(ctx context.Context, id uint) (*debrief.Debrief, error) {
	return nil, nil
}

func (m *mockDebriefRepo) GetByTicketID(ctx context.Context, ticketID uint) (*debrief.Debrief, error) {
	return m.getByTicketIDFn(ctx, ticketID)
}

func (m *mockDebriefRepo) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	return false, nil
}

func (m *mockDebriefRepo) ListCompletedBetween(ctx context.Context, start, end time.Time) ([]*debrief.Debrief, error) {
	return nil, nil
}

type mockDispatcherRepo struct {
	getByIDFn func(ctx context.Context, id uint) (*dispatcher.Dispatcher, error)
}

func (m *mockDispatcherRepo) Save(ctx context.Context, d *dispatcher.Dispatcher) error { return nil }

func (m *mockDispatcherRepo) GetByID(ctx context.Context, id uint) (*dispatcher.Dispatcher, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockDispatcherRepo) GetByEmail(ctx context.Context, email string) (*dispatcher.Dispatcher, error) {
	return nil, nil
}

func (m *mockDispatcherRepo) ListActive(ctx context.Context) ([]*dispatcher.Dispatcher, error) {
	return nil, nil
}

type mockNotifier struct {
	sendFn func(ctx context.Context, n FollowUpNotification) (*NotificationResult, error)
	calls  int
}

func (m *mockNotifier) SendFollowUpNotification(ctx context.Context, n FollowUpNotification) (*NotificationResult, error) {
	m.calls++
	return m.sendFn(ctx, n)
}

type mockTaskCreator struct {
	createFn func(ctx context.Context, task FollowUpTask) error
	calls    int
}

func (m *mockTaskCreator) CreateFollowUpTask(ctx context.Context, task FollowUpTask) error {
	m.calls++
	return m.createFn(ctx, task)
}

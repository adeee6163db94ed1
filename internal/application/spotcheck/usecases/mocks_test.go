package usecases

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/n8dizzle/debrief-tools/internal/application/spotcheck/dto"
	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func newTestTxManager(t *testing.T) *db.TransactionManager {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockDebriefRepo struct {
	getByIDFn              func(ctx context.Context, id uint) (*debrief.Debrief, error)
	listCompletedBetweenFn func(ctx context.Context, start, end time.Time) ([]*debrief.Debrief, error)
}

func (m *mockDebriefRepo) Save(ctx context.Context, d *debrief.Debrief) error   { return nil }
func (m *mockDebriefRepo) Update(ctx context.Context, d *debrief.Debrief) error { return nil }

func (m *mockDebriefRepo) GetByID(ctx context.Context, id uint) (*debrief.Debrief, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockDebriefRepo) GetByTicketID(ctx context.Context, ticketID uint) (*debrief.Debrief, error) {
	return nil, nil
}

func (m *mockDebriefRepo) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	return false, nil
}

func (m *mockDebriefRepo) ListCompletedBetween(ctx context.Context, start, end time.Time) ([]*debrief.Debrief, error) {
	return m.listCompletedBetweenFn(ctx, start, end)
}

// mockSpotCheckRepo keeps saved checks in memory so selection tests can assert
// on what actually got persisted.
type mockSpotCheckRepo struct {
	saved  []*spotcheck.SpotCheck
	nextID uint

	getByIDFn                 func(ctx context.Context, id uint) (*spotcheck.SpotCheck, error)
	getByDebriefIDFn          func(ctx context.Context, debriefID uint) (*spotcheck.SpotCheck, error)
	updateFn                  func(ctx context.Context, sc *spotcheck.SpotCheck) error
	listCompletedByDispatcher func(ctx context.Context, dispatcherID uint) ([]*spotcheck.SpotCheck, error)
}

func (m *mockSpotCheckRepo) Save(ctx context.Context, sc *spotcheck.SpotCheck) error {
	m.nextID++
	if err := sc.SetID(m.nextID); err != nil {
		return err
	}
	m.saved = append(m.saved, sc)
	return nil
}

func (m *mockSpotCheckRepo) Update(ctx context.Context, sc *spotcheck.SpotCheck) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, sc)
	}
	return nil
}

func (m *mockSpotCheckRepo) GetByID(ctx context.Context, id uint) (*spotcheck.SpotCheck, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSpotCheckRepo) GetByDebriefID(ctx context.Context, debriefID uint) (*spotcheck.SpotCheck, error) {
	return m.getByDebriefIDFn(ctx, debriefID)
}

func (m *mockSpotCheckRepo) ExistsForDebrief(ctx context.Context, debriefID uint) (bool, error) {
	for _, sc := range m.saved {
		if sc.DebriefID() == debriefID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSpotCheckRepo) ListDebriefIDsWithChecks(ctx context.Context, debriefIDs []uint) (map[uint]bool, error) {
	checked := make(map[uint]bool)
	for _, sc := range m.saved {
		checked[sc.DebriefID()] = true
	}
	result := make(map[uint]bool)
	for _, id := range debriefIDs {
		if checked[id] {
			result[id] = true
		}
	}
	return result, nil
}

func (m *mockSpotCheckRepo) ListCompletedByDispatcher(ctx context.Context, dispatcherID uint) ([]*spotcheck.SpotCheck, error) {
	return m.listCompletedByDispatcher(ctx, dispatcherID)
}

func (m *mockSpotCheckRepo) ListPending(ctx context.Context) ([]*spotcheck.SpotCheck, error) {
	return nil, nil
}

type mockDispatcherRepo struct {
	getByIDFn    func(ctx context.Context, id uint) (*dispatcher.Dispatcher, error)
	listActiveFn func(ctx context.Context) ([]*dispatcher.Dispatcher, error)
}

func (m *mockDispatcherRepo) Save(ctx context.Context, d *dispatcher.Dispatcher) error { return nil }

func (m *mockDispatcherRepo) GetByID(ctx context.Context, id uint) (*dispatcher.Dispatcher, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockDispatcherRepo) GetByEmail(ctx context.Context, email string) (*dispatcher.Dispatcher, error) {
	return nil, nil
}

func (m *mockDispatcherRepo) ListActive(ctx context.Context) ([]*dispatcher.Dispatcher, error) {
	return m.listActiveFn(ctx)
}

// fakeAccuracyCache is an in-memory AccuracyCache with call counters.
type fakeAccuracyCache struct {
	reports     map[uint]*dto.AccuracyReport
	gets        int
	sets        int
	invalidates int
}

func newFakeAccuracyCache() *fakeAccuracyCache {
	return &fakeAccuracyCache{reports: make(map[uint]*dto.AccuracyReport)}
}

func (c *fakeAccuracyCache) GetReport(ctx context.Context, dispatcherID uint) (*dto.AccuracyReport, error) {
	c.gets++
	return c.reports[dispatcherID], nil
}

func (c *fakeAccuracyCache) SetReport(ctx context.Context, dispatcherID uint, report *dto.AccuracyReport) error {
	c.sets++
	c.reports[dispatcherID] = report
	return nil
}

func (c *fakeAccuracyCache) Invalidate(ctx context.Context, dispatcherID uint) error {
	c.invalidates++
	delete(c.reports, dispatcherID)
	return nil
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	dispvo "github.com/n8dizzle/debrief-tools/internal/domain/dispatcher/valueobjects"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
)

func newDispatcher(t *testing.T, name, email string, role dispvo.Role) *dispatcher.Dispatcher {
	t.Helper()
	d, err := dispatcher.NewDispatcher(name, email, role, false)
	require.NoError(t, err)
	return d
}

func TestDispatcherRepository_SaveAndGet(t *testing.T) {
	repo := NewDispatcherRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("round trips a dispatcher", func(t *testing.T) {
		d := newDispatcher(t, "Jordan Li", "jordan@example.com", dispvo.RoleManager)
		require.NoError(t, repo.Save(ctx, d))
		assert.NotZero(t, d.ID())

		found, err := repo.GetByID(ctx, d.ID())
		require.NoError(t, err)

		assert.Equal(t, "Jordan Li", found.Name())
		assert.Equal(t, dispvo.RoleManager, found.Role())
		assert.True(t, found.IsActive())
		assert.True(t, found.CanReview())
	})

	t.Run("email lookup is case insensitive", func(t *testing.T) {
		d := newDispatcher(t, "Sam", "Sam.Cho@Example.com", dispvo.RoleDispatcher)
		require.NoError(t, repo.Save(ctx, d))

		found, err := repo.GetByEmail(ctx, "SAM.CHO@example.COM")
		require.NoError(t, err)
		assert.Equal(t, d.ID(), found.ID())
	})

	t.Run("duplicate email maps to a conflict", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newDispatcher(t, "First", "dup@example.com", dispvo.RoleDispatcher)))

		err := repo.Save(ctx, newDispatcher(t, "Second", "dup@example.com", dispvo.RoleDispatcher))
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("missing dispatcher reports not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDispatcherRepository_ListActive(t *testing.T) {
	repo := NewDispatcherRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newDispatcher(t, "Zoe", "zoe@example.com", dispvo.RoleDispatcher)))
	require.NoError(t, repo.Save(ctx, newDispatcher(t, "Abe", "abe@example.com", dispvo.RoleManager)))

	inactive := newDispatcher(t, "Gone", "gone@example.com", dispvo.RoleDispatcher)
	inactive.Deactivate()
	require.NoError(t, repo.Save(ctx, inactive))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)

	require.Len(t, active, 2)
	assert.Equal(t, "Abe", active[0].Name())
	assert.Equal(t, "Zoe", active[1].Name())
}

package spotcheck

import "context"

type Repository interface {
	Save(ctx context.Context, sc *SpotCheck) error
	Update(ctx context.Context, sc *SpotCheck) error
	GetByID(ctx context.Context, id uint) (*SpotCheck, error)
	// GetByDebriefID returns the spot check referencing the given debrief, or a
	// not found error. Uniqueness per debrief is an application-level guard,
	// not a storage constraint.
	GetByDebriefID(ctx context.Context, debriefID uint) (*SpotCheck, error)
	ExistsForDebrief(ctx context.Context, debriefID uint) (bool, error)
	// ListDebriefIDsWithChecks filters the given debrief ids down to those that
	// already hold a spot check, from any selection cycle.
	ListDebriefIDsWithChecks(ctx context.Context, debriefIDs []uint) (map[uint]bool, error)
	// ListCompletedByDispatcher returns completed spot checks whose debrief was
	// authored by the given dispatcher.
	ListCompletedByDispatcher(ctx context.Context, dispatcherID uint) ([]*SpotCheck, error)
	ListPending(ctx context.Context) ([]*SpotCheck, error)
}

package usecases

import (
	"context"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

type GetDebriefQuery struct {
	JobID int64
}

type GetDebriefResult struct {
	DebriefID      uint
	TicketID       uint
	JobID          int64
	DispatcherID   uint
	Checklist      debrief.Checklist
	FollowUp       debrief.FollowUp
	CompositeScore float64
	CompletedAt    time.Time
}

// GetDebriefUseCase fetches a ticket's debrief with its derived composite score.
type GetDebriefUseCase struct {
	ticketRepo  ticket.Repository
	debriefRepo debrief.Repository
	logger      logger.Interface
}

func NewGetDebriefUseCase(
	ticketRepo ticket.Repository,
	debriefRepo debrief.Repository,
	logger logger.Interface,
) *GetDebriefUseCase {
	return &GetDebriefUseCase{
		ticketRepo:  ticketRepo,
		debriefRepo: debriefRepo,
		logger:      logger,
	}
}

func (uc *GetDebriefUseCase) Execute(ctx context.Context, query GetDebriefQuery) (*GetDebriefResult, error) {
	t, err := uc.ticketRepo.GetByJobID(ctx, query.JobID)
	if err != nil {
		return nil, err
	}

	d, err := uc.debriefRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	return &GetDebriefResult{
		DebriefID:      d.ID(),
		TicketID:       t.ID(),
		JobID:          t.JobID(),
		DispatcherID:   d.DispatcherID(),
		Checklist:      d.Checklist(),
		FollowUp:       d.FollowUp(),
		CompositeScore: debrief.CompositeScore(d),
		CompletedAt:    d.CompletedAt(),
	}, nil
}

package usecases

import (
	"context"

	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

type MarkInProgressCommand struct {
	JobID int64
}

type MarkInProgressResult struct {
	TicketID uint
	Status   string
}

// MarkInProgressUseCase records that a dispatcher opened a ticket. The
// transition is informational; debrief submission completes the ticket
// regardless of whether this ran.
type MarkInProgressUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewMarkInProgressUseCase(ticketRepo ticket.Repository, logger logger.Interface) *MarkInProgressUseCase {
	return &MarkInProgressUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *MarkInProgressUseCase) Execute(ctx context.Context, cmd MarkInProgressCommand) (*MarkInProgressResult, error) {
	t, err := uc.ticketRepo.GetByJobID(ctx, cmd.JobID)
	if err != nil {
		return nil, err
	}

	if err := t.BeginReview(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	return &MarkInProgressResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}

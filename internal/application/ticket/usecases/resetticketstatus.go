package usecases

import (
	"context"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

type ResetTicketStatusCommand struct {
	JobID int64
}

type ResetTicketStatusResult struct {
	TicketID uint
	Status   string
	Message  string
}

// ResetTicketStatusUseCase returns a ticket to the pending queue. Only
// permitted when the ticket has no debrief: a reviewed ticket cannot be reset.
type ResetTicketStatusUseCase struct {
	ticketRepo  ticket.Repository
	debriefRepo debrief.Repository
	logger      logger.Interface
}

func NewResetTicketStatusUseCase(
	ticketRepo ticket.Repository,
	debriefRepo debrief.Repository,
	logger logger.Interface,
) *ResetTicketStatusUseCase {
	return &ResetTicketStatusUseCase{
		ticketRepo:  ticketRepo,
		debriefRepo: debriefRepo,
		logger:      logger,
	}
}

func (uc *ResetTicketStatusUseCase) Execute(ctx context.Context, cmd ResetTicketStatusCommand) (*ResetTicketStatusResult, error) {
	t, err := uc.ticketRepo.GetByJobID(ctx, cmd.JobID)
	if err != nil {
		return nil, err
	}

	hasDebrief, err := uc.debriefRepo.ExistsForTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	if hasDebrief {
		return nil, apperrors.NewValidationError("cannot reset: ticket has a completed debrief")
	}

	if err := t.ResetToPending(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to reset ticket status", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status reset", "ticket_id", t.ID(), "job_id", cmd.JobID)

	return &ResetTicketStatusResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
		Message:  "ticket returned to queue",
	}, nil
}

package usecases

import (
	"context"

	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

type IngestTicketCommand struct {
	JobID    int64
	Snapshot ticket.Snapshot
}

type IngestTicketResult struct {
	TicketID      uint
	JobID         int64
	AlreadyExists bool
	Message       string
}

// IngestTicketUseCase creates a ticket from an externally sourced job
// snapshot. Ingestion is idempotent: re-ingesting a known job id reports
// "already exists" and leaves the existing ticket untouched.
type IngestTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewIngestTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *IngestTicketUseCase {
	return &IngestTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *IngestTicketUseCase) Execute(ctx context.Context, cmd IngestTicketCommand) (*IngestTicketResult, error) {
	if cmd.JobID == 0 {
		return nil, apperrors.NewValidationError("job ID is required")
	}

	existing, err := uc.ticketRepo.GetByJobID(ctx, cmd.JobID)
	if err != nil && !apperrors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to look up ticket by job id", "job_id", cmd.JobID, "error", err)
		return nil, err
	}
	if existing != nil {
		return &IngestTicketResult{
			TicketID:      existing.ID(),
			JobID:         cmd.JobID,
			AlreadyExists: true,
			Message:       "ticket already exists",
		}, nil
	}

	newTicket, err := ticket.NewTicket(cmd.JobID, cmd.Snapshot)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		// A concurrent ingest of the same job id loses the race on the unique
		// index; report it the same as the pre-check.
		if apperrors.IsConflictError(err) || apperrors.IsDuplicateError(err) {
			if racing, lookupErr := uc.ticketRepo.GetByJobID(ctx, cmd.JobID); lookupErr == nil {
				return &IngestTicketResult{
					TicketID:      racing.ID(),
					JobID:         cmd.JobID,
					AlreadyExists: true,
					Message:       "ticket already exists",
				}, nil
			}
		}
		uc.logger.Errorw("failed to save ticket", "job_id", cmd.JobID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket ingested", "ticket_id", newTicket.ID(), "job_id", cmd.JobID)

	return &IngestTicketResult{
		TicketID: newTicket.ID(),
		JobID:    cmd.JobID,
		Message:  "ticket created",
	}, nil
}

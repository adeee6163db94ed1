package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/domain/dispatcher"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	"github.com/n8dizzle/debrief-tools/internal/shared/db"
	apperrors "github.com/n8dizzle/debrief-tools/internal/shared/errors"
	"github.com/n8dizzle/debrief-tools/internal/shared/logger"
)

// SubmitDebriefCommand is one checklist submission. Empty item statuses
// default permissively to pending; everything else must match the closed
// enumerations.
type SubmitDebriefCommand struct {
	JobID        int64 `validate:"required"`
	DispatcherID uint  `validate:"required"`

	PhotosReviewed string `validate:"omitempty,oneof=pending pass fail na"`
	PhotosNotes    string

	InvoiceSummaryScore int `validate:"required,min=1,max=10"`
	InvoiceSummaryNotes string

	PaymentVerified string `validate:"omitempty,oneof=pending pass fail na"`
	NoPaymentReason string

	EstimatesVerified string `validate:"omitempty,oneof=pending pass fail na"`
	EstimatesNotes    string

	MembershipVerified string `validate:"omitempty,oneof=pending pass fail na"`
	MembershipNotes    string

	GoogleReviewsDiscussed string `validate:"omitempty,oneof=pending pass fail na"`
	GoogleReviewsNotes     string

	ReplacementDiscussed string `validate:"omitempty,oneof=pending pass fail na"`
	NoReplacementReason  string

	EquipmentAdded      string `validate:"omitempty,oneof=pending pass fail na"`
	EquipmentAddedNotes string

	G3ContactNeeded bool
	G3Notes         string

	GeneralNotes string

	FollowUpRequired    bool
	FollowUpType        string `validate:"omitempty,oneof=tech_coaching manager_review customer_callback field_task billing quality other"`
	FollowUpDescription string
	FollowUpAssignedTo  string
}

type SubmitDebriefResult struct {
	DebriefID      uint
	TicketID       uint
	JobID          int64
	CompositeScore float64
	Overwritten    bool
	CompletedAt    time.Time
	// Warnings records post-commit collaborator failures. The debrief itself
	// is already persisted when these occur.
	Warnings []string
	Message  string
}

// SubmitDebriefUseCase validates and persists a checklist submission, driving
// the ticket to completed in the same transaction. Follow-up notification and
// task creation run after commit and are best-effort.
type SubmitDebriefUseCase struct {
	ticketRepo     ticket.Repository
	debriefRepo    debrief.Repository
	dispatcherRepo dispatcher.Repository
	txManager      *db.TransactionManager
	notifier       FollowUpNotifier
	taskCreator    TaskCreator
	validate       *validator.Validate
	baseURL        string
	logger         logger.Interface
}

func NewSubmitDebriefUseCase(
	ticketRepo ticket.Repository,
	debriefRepo debrief.Repository,
	dispatcherRepo dispatcher.Repository,
	txManager *db.TransactionManager,
	notifier FollowUpNotifier,
	taskCreator TaskCreator,
	baseURL string,
	logger logger.Interface,
) *SubmitDebriefUseCase {
	return &SubmitDebriefUseCase{
		ticketRepo:     ticketRepo,
		debriefRepo:    debriefRepo,
		dispatcherRepo: dispatcherRepo,
		txManager:      txManager,
		notifier:       notifier,
		taskCreator:    taskCreator,
		validate:       validator.New(),
		baseURL:        baseURL,
		logger:         logger,
	}
}

func (uc *SubmitDebriefUseCase) Execute(ctx context.Context, cmd SubmitDebriefCommand) (*SubmitDebriefResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, apperrors.NewValidationError("invalid debrief submission", err.Error())
	}
	if cmd.FollowUpRequired && cmd.FollowUpType == "" {
		return nil, apperrors.NewValidationError("follow-up type is required when follow-up is flagged")
	}

	checklist, err := uc.buildChecklist(cmd)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	followUp, err := buildFollowUp(cmd)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var (
		result    SubmitDebriefResult
		submitted *debrief.Debrief
	)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByJobID(txCtx, cmd.JobID)
		if err != nil {
			return err
		}

		existing, err := uc.debriefRepo.GetByTicketID(txCtx, t.ID())
		if err != nil && !apperrors.IsNotFoundError(err) {
			return err
		}

		if existing != nil {
			// Resubmission overwrites in place: same identity, new values.
			if err := existing.Overwrite(cmd.DispatcherID, checklist, followUp); err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := uc.debriefRepo.Update(txCtx, existing); err != nil {
				return err
			}
			submitted = existing
			result.Overwritten = true
		} else {
			created, err := debrief.NewDebrief(t.ID(), cmd.DispatcherID, checklist, followUp)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			if err := uc.debriefRepo.Save(txCtx, created); err != nil {
				return err
			}
			submitted = created
		}

		t.CompleteDebrief()
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		result.DebriefID = submitted.ID()
		result.TicketID = t.ID()
		result.JobID = t.JobID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.CompositeScore = debrief.CompositeScore(submitted)
	result.CompletedAt = submitted.CompletedAt()
	result.Message = "debrief completed"

	if submitted.RequiresFollowUp() {
		result.Warnings = uc.dispatchFollowUp(ctx, cmd, submitted)
	}

	uc.logger.Infow("debrief submitted",
		"debrief_id", result.DebriefID,
		"job_id", result.JobID,
		"dispatcher_id", cmd.DispatcherID,
		"composite_score", result.CompositeScore,
		"overwritten", result.Overwritten,
	)

	return &result, nil
}

// dispatchFollowUp invokes the notification and task-creation collaborators
// after the transaction has committed. Failures are collected as warnings,
// never propagated.
func (uc *SubmitDebriefUseCase) dispatchFollowUp(ctx context.Context, cmd SubmitDebriefCommand, d *debrief.Debrief) []string {
	var warnings []string

	t, err := uc.ticketRepo.GetByID(ctx, d.TicketID())
	if err != nil {
		uc.logger.Warnw("follow-up dispatch: ticket lookup failed", "ticket_id", d.TicketID(), "error", err)
		return append(warnings, fmt.Sprintf("follow-up notification skipped: %v", err))
	}

	dispatcherName := ""
	if disp, err := uc.dispatcherRepo.GetByID(ctx, cmd.DispatcherID); err == nil {
		dispatcherName = disp.Name()
	}

	snap := t.Snapshot()
	if uc.notifier != nil {
		res, err := uc.notifier.SendFollowUpNotification(ctx, FollowUpNotification{
			JobID:          t.JobID(),
			JobNumber:      snap.JobNumber,
			CustomerName:   snap.CustomerName,
			TechName:       snap.TechName,
			FollowUpType:   cmd.FollowUpType,
			Description:    cmd.FollowUpDescription,
			DispatcherName: dispatcherName,
			AssignedTo:     cmd.FollowUpAssignedTo,
			DebriefURL:     fmt.Sprintf("%s/debrief/%d", uc.baseURL, t.JobID()),
		})
		if err != nil {
			uc.logger.Warnw("follow-up notification failed", "job_id", t.JobID(), "error", err)
			warnings = append(warnings, fmt.Sprintf("follow-up notification failed: %v", err))
		} else {
			threadTS := ""
			if res != nil {
				threadTS = res.ThreadTS
			}
			d.MarkSlackNotified(threadTS)
			if err := uc.debriefRepo.Update(ctx, d); err != nil {
				uc.logger.Warnw("failed to record notification state", "debrief_id", d.ID(), "error", err)
			}
		}
	}

	if uc.taskCreator != nil {
		err := uc.taskCreator.CreateFollowUpTask(ctx, FollowUpTask{
			JobID:        t.JobID(),
			FollowUpType: cmd.FollowUpType,
			Description:  cmd.FollowUpDescription,
			AssignedTo:   cmd.FollowUpAssignedTo,
		})
		if err != nil {
			uc.logger.Warnw("follow-up task creation failed", "job_id", t.JobID(), "error", err)
			warnings = append(warnings, fmt.Sprintf("follow-up task creation failed: %v", err))
		}
	}

	return warnings
}

func (uc *SubmitDebriefUseCase) buildChecklist(cmd SubmitDebriefCommand) (debrief.Checklist, error) {
	var c debrief.Checklist
	var err error

	if c.PhotosReviewed, err = vo.NewCheckStatus(cmd.PhotosReviewed); err != nil {
		return c, err
	}
	if c.PaymentVerified, err = vo.NewCheckStatus(cmd.PaymentVerified); err != nil {
		return c, err
	}
	if c.EstimatesVerified, err = vo.NewCheckStatus(cmd.EstimatesVerified); err != nil {
		return c, err
	}
	if c.MembershipVerified, err = vo.NewCheckStatus(cmd.MembershipVerified); err != nil {
		return c, err
	}
	if c.GoogleReviewsDiscussed, err = vo.NewCheckStatus(cmd.GoogleReviewsDiscussed); err != nil {
		return c, err
	}
	if c.ReplacementDiscussed, err = vo.NewCheckStatus(cmd.ReplacementDiscussed); err != nil {
		return c, err
	}
	if c.EquipmentAdded, err = vo.NewCheckStatus(cmd.EquipmentAdded); err != nil {
		return c, err
	}

	score := cmd.InvoiceSummaryScore
	c.InvoiceSummaryScore = &score
	c.InvoiceSummaryNotes = cmd.InvoiceSummaryNotes
	c.PhotosNotes = cmd.PhotosNotes
	c.NoPaymentReason = cmd.NoPaymentReason
	c.EstimatesNotes = cmd.EstimatesNotes
	c.MembershipNotes = cmd.MembershipNotes
	c.GoogleReviewsNotes = cmd.GoogleReviewsNotes
	c.NoReplacementReason = cmd.NoReplacementReason
	c.EquipmentAddedNotes = cmd.EquipmentAddedNotes
	c.G3ContactNeeded = cmd.G3ContactNeeded
	c.G3Notes = cmd.G3Notes
	c.GeneralNotes = cmd.GeneralNotes

	return c, nil
}

func buildFollowUp(cmd SubmitDebriefCommand) (debrief.FollowUp, error) {
	if !cmd.FollowUpRequired {
		return debrief.FollowUp{}, nil
	}

	ft, err := vo.NewFollowUpType(cmd.FollowUpType)
	if err != nil {
		return debrief.FollowUp{}, err
	}

	return debrief.FollowUp{
		Required:    true,
		Type:        ft,
		Description: cmd.FollowUpDescription,
		AssignedTo:  cmd.FollowUpAssignedTo,
	}, nil
}

package mappers

import (
	"fmt"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/models"
)

// DebriefMapper handles the conversion between Debrief domain entities and persistence models.
type DebriefMapper interface {
	ToModel(d *debrief.Debrief) *models.DebriefModel
	ToDomain(model *models.DebriefModel) (*debrief.Debrief, error)
}

type DebriefMapperImpl struct{}

func NewDebriefMapper() DebriefMapper {
	return &DebriefMapperImpl{}
}

func (m *DebriefMapperImpl) ToModel(d *debrief.Debrief) *models.DebriefModel {
	c := d.Checklist()
	f := d.FollowUp()

	model := &models.DebriefModel{
		ID:           d.ID(),
		TicketID:     d.TicketID(),
		DispatcherID: d.DispatcherID(),

		PhotosReviewed: c.PhotosReviewed.String(),
		PhotosNotes:    c.PhotosNotes,

		InvoiceSummaryScore: c.InvoiceSummaryScore,
		InvoiceSummaryNotes: c.InvoiceSummaryNotes,

		PaymentVerified: c.PaymentVerified.String(),
		NoPaymentReason: c.NoPaymentReason,

		EstimatesVerified: c.EstimatesVerified.String(),
		EstimatesNotes:    c.EstimatesNotes,

		MembershipVerified: c.MembershipVerified.String(),
		MembershipNotes:    c.MembershipNotes,

		GoogleReviewsDiscussed: c.GoogleReviewsDiscussed.String(),
		GoogleReviewsNotes:     c.GoogleReviewsNotes,

		ReplacementDiscussed: c.ReplacementDiscussed.String(),
		NoReplacementReason:  c.NoReplacementReason,

		EquipmentAdded:      c.EquipmentAdded.String(),
		EquipmentAddedNotes: c.EquipmentAddedNotes,

		G3ContactNeeded: c.G3ContactNeeded,
		G3Notes:         c.G3Notes,

		GeneralNotes: c.GeneralNotes,

		FollowUpRequired:    f.Required,
		FollowUpType:        f.Type.String(),
		FollowUpDescription: f.Description,
		FollowUpAssignedTo:  f.AssignedTo,
		FollowUpCompleted:   f.Completed,
		FollowUpCompletedBy: f.CompletedBy,

		SlackNotified: d.SlackNotified(),
		SlackThreadTS: d.SlackThreadTS(),

		StartedAt:   d.StartedAt().UnixMilli(),
		CompletedAt: d.CompletedAt().UnixMilli(),
	}

	if f.CompletedAt != nil {
		completed := f.CompletedAt.UnixMilli()
		model.FollowUpCompletedAt = &completed
	}

	return model
}

func (m *DebriefMapperImpl) ToDomain(model *models.DebriefModel) (*debrief.Debrief, error) {
	checklist, err := checklistFromModel(model)
	if err != nil {
		return nil, err
	}

	followUp := debrief.FollowUp{
		Required:    model.FollowUpRequired,
		Description: model.FollowUpDescription,
		AssignedTo:  model.FollowUpAssignedTo,
		Completed:   model.FollowUpCompleted,
		CompletedBy: model.FollowUpCompletedBy,
	}
	if model.FollowUpType != "" {
		ft, err := vo.NewFollowUpType(model.FollowUpType)
		if err != nil {
			return nil, fmt.Errorf("invalid follow-up type in model: %w", err)
		}
		followUp.Type = ft
	}
	if model.FollowUpCompletedAt != nil {
		completed := time.UnixMilli(*model.FollowUpCompletedAt)
		followUp.CompletedAt = &completed
	}

	return debrief.ReconstructDebrief(
		model.ID,
		model.TicketID,
		model.DispatcherID,
		checklist,
		followUp,
		model.SlackNotified,
		model.SlackThreadTS,
		time.UnixMilli(model.StartedAt),
		time.UnixMilli(model.CompletedAt),
	)
}

func checklistFromModel(model *models.DebriefModel) (debrief.Checklist, error) {
	var c debrief.Checklist

	statuses := []struct {
		name  string
		value string
		dest  *vo.CheckStatus
	}{
		{"photos_reviewed", model.PhotosReviewed, &c.PhotosReviewed},
		{"payment_verified", model.PaymentVerified, &c.PaymentVerified},
		{"estimates_verified", model.EstimatesVerified, &c.EstimatesVerified},
		{"membership_verified", model.MembershipVerified, &c.MembershipVerified},
		{"google_reviews_discussed", model.GoogleReviewsDiscussed, &c.GoogleReviewsDiscussed},
		{"replacement_discussed", model.ReplacementDiscussed, &c.ReplacementDiscussed},
		{"equipment_added", model.EquipmentAdded, &c.EquipmentAdded},
	}
	for _, s := range statuses {
		status, err := vo.NewCheckStatus(s.value)
		if err != nil {
			return c, fmt.Errorf("invalid %s in model: %w", s.name, err)
		}
		*s.dest = status
	}

	c.InvoiceSummaryScore = model.InvoiceSummaryScore
	c.InvoiceSummaryNotes = model.InvoiceSummaryNotes
	c.PhotosNotes = model.PhotosNotes
	c.NoPaymentReason = model.NoPaymentReason
	c.EstimatesNotes = model.EstimatesNotes
	c.MembershipNotes = model.MembershipNotes
	c.GoogleReviewsNotes = model.GoogleReviewsNotes
	c.NoReplacementReason = model.NoReplacementReason
	c.EquipmentAddedNotes = model.EquipmentAddedNotes
	c.G3ContactNeeded = model.G3ContactNeeded
	c.G3Notes = model.G3Notes
	c.GeneralNotes = model.GeneralNotes

	return c, nil
}

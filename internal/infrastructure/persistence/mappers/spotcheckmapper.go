package mappers

import (
	"fmt"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/domain/spotcheck"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/spotcheck/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/models"
)

// SpotCheckMapper handles the conversion between SpotCheck domain entities and persistence models.
type SpotCheckMapper interface {
	ToModel(sc *spotcheck.SpotCheck) *models.SpotCheckModel
	ToDomain(model *models.SpotCheckModel) (*spotcheck.SpotCheck, error)
}

type SpotCheckMapperImpl struct{}

func NewSpotCheckMapper() SpotCheckMapper {
	return &SpotCheckMapperImpl{}
}

func (m *SpotCheckMapperImpl) ToModel(sc *spotcheck.SpotCheck) *models.SpotCheckModel {
	r := sc.Results()

	model := &models.SpotCheckModel{
		ID:         sc.ID(),
		DebriefID:  sc.DebriefID(),
		ReviewerID: sc.ReviewerID(),

		Status:          sc.Status().String(),
		SelectionReason: sc.SelectionReason().String(),
		SelectionBatch:  sc.SelectionBatch(),

		PhotosCorrect:       r.PhotosCorrect,
		InvoiceScoreCorrect: r.InvoiceScoreCorrect,
		PaymentCorrect:      r.PaymentCorrect,
		EstimatesCorrect:    r.EstimatesCorrect,
		MembershipCorrect:   r.MembershipCorrect,
		ReviewsCorrect:      r.ReviewsCorrect,
		ReplacementCorrect:  r.ReplacementCorrect,
		EquipmentCorrect:    r.EquipmentCorrect,

		CorrectedInvoiceScore: r.CorrectedInvoiceScore,

		PhotosNotes:      r.PhotosNotes,
		InvoiceNotes:     r.InvoiceNotes,
		PaymentNotes:     r.PaymentNotes,
		EstimatesNotes:   r.EstimatesNotes,
		MembershipNotes:  r.MembershipNotes,
		ReviewsNotes:     r.ReviewsNotes,
		ReplacementNotes: r.ReplacementNotes,
		EquipmentNotes:   r.EquipmentNotes,

		OverallGrade:   r.OverallGrade,
		FeedbackNotes:  r.FeedbackNotes,
		CoachingNeeded: r.CoachingNeeded,

		SelectedAt: sc.SelectedAt().UnixMilli(),
	}

	if sc.StartedAt() != nil {
		started := sc.StartedAt().UnixMilli()
		model.StartedAt = &started
	}
	if sc.CompletedAt() != nil {
		completed := sc.CompletedAt().UnixMilli()
		model.CompletedAt = &completed
	}

	return model
}

func (m *SpotCheckMapperImpl) ToDomain(model *models.SpotCheckModel) (*spotcheck.SpotCheck, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid spot check status in model: %w", err)
	}
	reason, err := vo.NewSelectionReason(model.SelectionReason)
	if err != nil {
		return nil, fmt.Errorf("invalid selection reason in model: %w", err)
	}

	results := spotcheck.ReviewResults{
		PhotosCorrect:       model.PhotosCorrect,
		InvoiceScoreCorrect: model.InvoiceScoreCorrect,
		PaymentCorrect:      model.PaymentCorrect,
		EstimatesCorrect:    model.EstimatesCorrect,
		MembershipCorrect:   model.MembershipCorrect,
		ReviewsCorrect:      model.ReviewsCorrect,
		ReplacementCorrect:  model.ReplacementCorrect,
		EquipmentCorrect:    model.EquipmentCorrect,

		CorrectedInvoiceScore: model.CorrectedInvoiceScore,

		PhotosNotes:      model.PhotosNotes,
		InvoiceNotes:     model.InvoiceNotes,
		PaymentNotes:     model.PaymentNotes,
		EstimatesNotes:   model.EstimatesNotes,
		MembershipNotes:  model.MembershipNotes,
		ReviewsNotes:     model.ReviewsNotes,
		ReplacementNotes: model.ReplacementNotes,
		EquipmentNotes:   model.EquipmentNotes,

		OverallGrade:   model.OverallGrade,
		FeedbackNotes:  model.FeedbackNotes,
		CoachingNeeded: model.CoachingNeeded,
	}

	var startedAt, completedAt *time.Time
	if model.StartedAt != nil {
		t := time.UnixMilli(*model.StartedAt)
		startedAt = &t
	}
	if model.CompletedAt != nil {
		t := time.UnixMilli(*model.CompletedAt)
		completedAt = &t
	}

	return spotcheck.ReconstructSpotCheck(
		model.ID,
		model.DebriefID,
		model.ReviewerID,
		status,
		reason,
		model.SelectionBatch,
		results,
		time.UnixMilli(model.SelectedAt),
		startedAt,
		completedAt,
	)
}

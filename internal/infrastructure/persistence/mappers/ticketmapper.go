package mappers

import (
	"fmt"
	"time"

	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	vo "github.com/n8dizzle/debrief-tools/internal/domain/ticket/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	snap := t.Snapshot()

	model := &models.TicketModel{
		ID:    t.ID(),
		JobID: t.JobID(),

		JobNumber:        snap.JobNumber,
		BusinessUnitName: snap.BusinessUnitName,
		JobTypeName:      snap.JobTypeName,
		JobCategory:      snap.JobCategory,
		TradeType:        snap.TradeType,
		JobStatus:        snap.JobStatus,
		IsOpportunity:    snap.IsOpportunity,

		TechID:   snap.TechID,
		TechName: snap.TechName,

		CustomerID:    snap.CustomerID,
		CustomerName:  snap.CustomerName,
		IsNewCustomer: snap.IsNewCustomer,

		LocationID:      snap.LocationID,
		LocationAddress: snap.LocationAddress,

		InvoiceID:        snap.InvoiceID,
		InvoiceNumber:    snap.InvoiceNumber,
		InvoiceSummary:   snap.InvoiceSummary,
		InvoiceTotal:     snap.InvoiceTotal,
		InvoiceBalance:   snap.InvoiceBalance,
		PaymentCollected: snap.PaymentCollected,

		EstimateCount:  snap.EstimateCount,
		EstimatesTotal: snap.EstimatesTotal,

		MembershipSold: snap.MembershipSold,
		MembershipType: snap.MembershipType,

		PhotoCount: snap.PhotoCount,
		FormCount:  snap.FormCount,

		Status:   t.Status().String(),
		PulledAt: t.PulledAt().UnixMilli(),
	}

	if snap.MembershipExpires != nil {
		exp := snap.MembershipExpires.UnixMilli()
		model.MembershipExpires = &exp
	}
	if snap.CompletedAt != nil {
		completed := snap.CompletedAt.UnixMilli()
		model.JobCompletedAt = &completed
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status in model: %w", err)
	}

	snap := ticket.Snapshot{
		JobNumber:        model.JobNumber,
		BusinessUnitName: model.BusinessUnitName,
		JobTypeName:      model.JobTypeName,
		JobCategory:      model.JobCategory,
		TradeType:        model.TradeType,
		JobStatus:        model.JobStatus,
		IsOpportunity:    model.IsOpportunity,

		TechID:   model.TechID,
		TechName: model.TechName,

		CustomerID:    model.CustomerID,
		CustomerName:  model.CustomerName,
		IsNewCustomer: model.IsNewCustomer,

		LocationID:      model.LocationID,
		LocationAddress: model.LocationAddress,

		InvoiceID:        model.InvoiceID,
		InvoiceNumber:    model.InvoiceNumber,
		InvoiceSummary:   model.InvoiceSummary,
		InvoiceTotal:     model.InvoiceTotal,
		InvoiceBalance:   model.InvoiceBalance,
		PaymentCollected: model.PaymentCollected,

		EstimateCount:  model.EstimateCount,
		EstimatesTotal: model.EstimatesTotal,

		MembershipSold: model.MembershipSold,
		MembershipType: model.MembershipType,

		PhotoCount: model.PhotoCount,
		FormCount:  model.FormCount,
	}

	if model.MembershipExpires != nil {
		exp := time.UnixMilli(*model.MembershipExpires)
		snap.MembershipExpires = &exp
	}
	if model.JobCompletedAt != nil {
		completed := time.UnixMilli(*model.JobCompletedAt)
		snap.CompletedAt = &completed
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.JobID,
		snap,
		status,
		time.UnixMilli(model.PulledAt),
	)
}

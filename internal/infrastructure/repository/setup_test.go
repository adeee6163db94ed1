package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/n8dizzle/debrief-tools/internal/domain/debrief"
	dvo "github.com/n8dizzle/debrief-tools/internal/domain/debrief/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/domain/ticket"
	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/migrations"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, migrations.MigrateQATables(db))

	return db
}

func newTicket(t *testing.T, jobID int64) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(jobID, ticket.Snapshot{
		JobNumber:    "J-100",
		CustomerName: "Pat Smith",
		TechName:     "Alex Doe",
		PhotoCount:   3,
	})
	require.NoError(t, err)
	return tk
}

func newDebrief(t *testing.T, ticketID, dispatcherID uint, flagged bool) *debrief.Debrief {
	t.Helper()

	score := 8
	checklist := debrief.Checklist{
		PhotosReviewed:         dvo.CheckPass,
		InvoiceSummaryScore:    &score,
		PaymentVerified:        dvo.CheckPass,
		EstimatesVerified:      dvo.CheckNA,
		MembershipVerified:     dvo.CheckPass,
		GoogleReviewsDiscussed: dvo.CheckFail,
		ReplacementDiscussed:   dvo.CheckNA,
		EquipmentAdded:         dvo.CheckNA,
		GeneralNotes:           "solid job overall",
	}
	followUp := debrief.FollowUp{}
	if flagged {
		followUp = debrief.FollowUp{
			Required:    true,
			Type:        dvo.FollowUpTechCoaching,
			Description: "missing after photos",
		}
	}

	d, err := debrief.NewDebrief(ticketID, dispatcherID, checklist, followUp)
	require.NoError(t, err)
	return d
}

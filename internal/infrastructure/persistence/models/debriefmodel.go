package models

type DebriefModel struct {
	ID           uint `gorm:"primaryKey"`
	TicketID     uint `gorm:"uniqueIndex;not null"`
	DispatcherID uint `gorm:"not null;index"`

	PhotosReviewed string `gorm:"size:10;not null;default:'pending'"`
	PhotosNotes    string `gorm:"type:text"`

	InvoiceSummaryScore *int
	InvoiceSummaryNotes string `gorm:"type:text"`

	PaymentVerified string `gorm:"size:10;not null;default:'pending'"`
	NoPaymentReason string `gorm:"type:text"`

	EstimatesVerified string `gorm:"size:10;not null;default:'pending'"`
	EstimatesNotes    string `gorm:"type:text"`

	MembershipVerified string `gorm:"size:10;not null;default:'pending'"`
	MembershipNotes    string `gorm:"type:text"`

	GoogleReviewsDiscussed string `gorm:"size:10;not null;default:'pending'"`
	GoogleReviewsNotes     string `gorm:"type:text"`

	ReplacementDiscussed string `gorm:"size:10;not null;default:'pending'"`
	NoReplacementReason  string `gorm:"type:text"`

	EquipmentAdded      string `gorm:"size:10;not null;default:'pending'"`
	EquipmentAddedNotes string `gorm:"type:text"`

	G3ContactNeeded bool   `gorm:"not null;default:false"`
	G3Notes         string `gorm:"type:text"`

	GeneralNotes string `gorm:"type:text"`

	FollowUpRequired    bool   `gorm:"not null;default:false;index"`
	FollowUpType        string `gorm:"size:30"`
	FollowUpDescription string `gorm:"type:text"`
	FollowUpAssignedTo  string `gorm:"size:100"`
	FollowUpCompleted   bool   `gorm:"not null;default:false"`
	FollowUpCompletedAt *int64
	FollowUpCompletedBy string `gorm:"size:100"`

	SlackNotified bool   `gorm:"not null;default:false"`
	SlackThreadTS string `gorm:"size:50"`

	StartedAt   int64 `gorm:"not null"`
	CompletedAt int64 `gorm:"not null;index"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (DebriefModel) TableName() string {
	return "debriefs"
}

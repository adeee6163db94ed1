package models

type SpotCheckModel struct {
	ID         uint  `gorm:"primaryKey"`
	DebriefID  uint  `gorm:"not null;index"`
	ReviewerID *uint `gorm:"index"`

	Status          string `gorm:"size:20;not null;index"`
	SelectionReason string `gorm:"size:20;not null"`
	SelectionBatch  string `gorm:"size:10;not null;index"`

	PhotosCorrect       *bool
	InvoiceScoreCorrect *bool
	PaymentCorrect      *bool
	EstimatesCorrect    *bool
	MembershipCorrect   *bool
	ReviewsCorrect      *bool
	ReplacementCorrect  *bool
	EquipmentCorrect    *bool

	CorrectedInvoiceScore *int

	PhotosNotes      string `gorm:"type:text"`
	InvoiceNotes     string `gorm:"type:text"`
	PaymentNotes     string `gorm:"type:text"`
	EstimatesNotes   string `gorm:"type:text"`
	MembershipNotes  string `gorm:"type:text"`
	ReviewsNotes     string `gorm:"type:text"`
	ReplacementNotes string `gorm:"type:text"`
	EquipmentNotes   string `gorm:"type:text"`

	OverallGrade   *int
	FeedbackNotes  string `gorm:"type:text"`
	CoachingNeeded bool   `gorm:"not null;default:false"`

	SelectedAt  int64 `gorm:"not null"`
	StartedAt   *int64
	CompletedAt *int64 `gorm:"index"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (SpotCheckModel) TableName() string {
	return "spot_checks"
}

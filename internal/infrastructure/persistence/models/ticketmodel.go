package models

type TicketModel struct {
	ID    uint  `gorm:"primaryKey"`
	JobID int64 `gorm:"uniqueIndex;not null"`

	JobNumber        string `gorm:"size:50;not null;index"`
	BusinessUnitName string `gorm:"size:100"`
	JobTypeName      string `gorm:"size:100"`
	JobCategory      string `gorm:"size:50;index"`
	TradeType        string `gorm:"size:50;index"`
	JobStatus        string `gorm:"size:50"`
	IsOpportunity    bool   `gorm:"not null;default:false"`

	TechID   int64  `gorm:"index"`
	TechName string `gorm:"size:100"`

	CustomerID    int64  `gorm:"index"`
	CustomerName  string `gorm:"size:200"`
	IsNewCustomer bool   `gorm:"not null;default:false"`

	LocationID      int64
	LocationAddress string `gorm:"size:300"`

	InvoiceID        int64
	InvoiceNumber    string  `gorm:"size:50"`
	InvoiceSummary   string  `gorm:"type:text"`
	InvoiceTotal     float64 `gorm:"not null;default:0"`
	InvoiceBalance   float64 `gorm:"not null;default:0"`
	PaymentCollected bool    `gorm:"not null;default:false"`

	EstimateCount  int     `gorm:"not null;default:0"`
	EstimatesTotal float64 `gorm:"not null;default:0"`

	MembershipSold    bool   `gorm:"not null;default:false"`
	MembershipType    string `gorm:"size:100"`
	MembershipExpires *int64

	PhotoCount int `gorm:"not null;default:0"`
	FormCount  int `gorm:"not null;default:0"`

	JobCompletedAt *int64 `gorm:"index"`

	Status   string `gorm:"size:20;not null;index"`
	PulledAt int64  `gorm:"not null;index"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

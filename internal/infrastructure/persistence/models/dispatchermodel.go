package models

type DispatcherModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Role      string `gorm:"size:20;not null;index"`
	// No default tags on the booleans: gorm would skip a false value on
	// insert and let the column default win.
	IsPrimary bool  `gorm:"not null"`
	IsActive  bool  `gorm:"not null;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (DispatcherModel) TableName() string {
	return "dispatchers"
}

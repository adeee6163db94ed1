package migrations

import (
	"gorm.io/gorm"

	"github.com/n8dizzle/debrief-tools/internal/infrastructure/persistence/models"
)

func MigrateQATables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.DispatcherModel{},
		&models.TicketModel{},
		&models.DebriefModel{},
		&models.SpotCheckModel{},
	)
}

package migrations

import (
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/migration"
)

func init() {
	migration.Register("20250101000006_create_content_tables", &createContentTables{})
}

type createContentTables struct{}

func (m *createContentTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Offer{}, &models.FAQ{})
}

func (m *createContentTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("faqs", "offers")
}

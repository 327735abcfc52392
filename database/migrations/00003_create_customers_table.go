package migrations

import (
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/migration"
)

func init() {
	migration.Register("20250101000003_create_customers_table", &createCustomersTable{})
}

type createCustomersTable struct{}

func (m *createCustomersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Customer{})
}

func (m *createCustomersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("customers")
}

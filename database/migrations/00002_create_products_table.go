package migrations

import (
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/migration"
)

func init() {
	migration.Register("20250101000002_create_products_table", &createProductsTable{})
}

type createProductsTable struct{}

func (m *createProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *createProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

package migrations

import (
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/migration"
)

func init() {
	migration.Register("20250101000004_create_orders_tables", &createOrdersTables{})
}

type createOrdersTables struct{}

func (m *createOrdersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *createOrdersTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items", "orders")
}

// Package migrations registers the schema migrations in order. Each
// file registers itself via init; the migrate command imports this
// package for its side effects.
package migrations

import (
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/migration"
)

func init() {
	migration.Register("20250101000001_create_categories_table", &createCategoriesTable{})
}

type createCategoriesTable struct{}

func (m *createCategoriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{})
}

func (m *createCategoriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("categories")
}

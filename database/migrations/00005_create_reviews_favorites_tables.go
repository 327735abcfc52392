package migrations

import (
	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
	"github.com/ovenlight/bakehouse/pkg/migration"
)

func init() {
	migration.Register("20250101000005_create_reviews_favorites_tables", &createReviewsFavoritesTables{})
}

type createReviewsFavoritesTables struct{}

func (m *createReviewsFavoritesTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Review{}, &models.Favorite{})
}

func (m *createReviewsFavoritesTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("favorites", "reviews")
}

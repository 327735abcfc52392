package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ovenlight/bakehouse/app/models"
)

// ContentRepository serves the storefront's static content: offers
// and FAQ entries.
type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Offers returns active offers (no expiry, or expiry in the future),
// newest first.
func (r *ContentRepository) Offers(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.WithContext(ctx).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("offer list: %w", err)
	}
	return offers, nil
}

// FAQs returns all FAQ entries in display order.
func (r *ContentRepository) FAQs(ctx context.Context) ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := r.db.WithContext(ctx).
		Order("position ASC, id ASC").
		Find(&faqs).Error
	if err != nil {
		return nil, fmt.Errorf("faq list: %w", err)
	}
	return faqs, nil
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is a promotional discount code shown on the storefront.
type Offer struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Title           string          `gorm:"size:255;not null" json:"title"`
	Description     *string         `gorm:"type:text" json:"description"`
	Code            string          `gorm:"size:50;not null;uniqueIndex" json:"code"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"discount_percent"`
	ExpiresAt       *time.Time      `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Offer) TableName() string { return "offers" }

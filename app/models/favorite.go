package models

import "time"

// Favorite marks a product as saved by a customer. One row per
// (customer, product) pair.
type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_favorites_customer_product" json:"customer_id"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_favorites_customer_product" json:"product_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }

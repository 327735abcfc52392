package models

import "time"

// Review is a customer rating (1-5) with an optional comment.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    *string   `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

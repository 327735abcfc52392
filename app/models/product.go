package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single bakery item in the catalog.
//
// Image columns store either an absolute URL (external CDN) or a
// server-relative path like "/uploads/products/cake.jpg"; the catalog
// transform resolves relative paths against the public base URL.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CategoryID  *uint           `gorm:"index" json:"category_id"`
	ImgURL      *string         `gorm:"column:img_url;type:text" json:"img_url"`
	Thumbnail1  *string         `gorm:"column:thumbnail_img_1;type:text" json:"thumbnail_img_1"`
	Thumbnail2  *string         `gorm:"column:thumbnail_img_2;type:text" json:"thumbnail_img_2"`
	Thumbnail3  *string         `gorm:"column:thumbnail_img_3;type:text" json:"thumbnail_img_3"`
	Thumbnail4  *string         `gorm:"column:thumbnail_img_4;type:text" json:"thumbnail_img_4"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`

	Category  *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Reviews   []Review   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string { return "products" }

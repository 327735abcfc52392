package models

import "time"

// Customer is a storefront account. Password holds the bcrypt hash and
// is never serialized.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:150;not null;uniqueIndex" json:"email"`
	Phone     *string   `gorm:"size:20" json:"phone"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Avatar    *string   `gorm:"type:text" json:"avatar"`
	Address   *string   `gorm:"size:255" json:"address"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Orders    []Order    `gorm:"foreignKey:CustomerID" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:CustomerID" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:CustomerID" json:"-"`
}

func (Customer) TableName() string { return "customers" }

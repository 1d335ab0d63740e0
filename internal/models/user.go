package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an identity record. The password column only ever holds a
// bcrypt hash and is never serialized.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	FirstName  string         `gorm:"column:first_name" json:"firstName"`
	LastName   string         `gorm:"column:last_name" json:"lastName"`
	IsLandlord bool           `gorm:"column:is_landlord;default:false" json:"isLandlord"`
	Apartments []Apartment    `gorm:"foreignKey:UserID" json:"apartments,omitempty"`
	Favorites  []Favorite     `gorm:"foreignKey:UserID" json:"favorites,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	Deleted    gorm.DeletedAt `gorm:"column:deleted;index" json:"-"`
}

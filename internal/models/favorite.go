package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite joins a user to an apartment. The composite unique index keeps
// at most one row per (user, apartment) pair; unfavoriting sets the soft
// delete marker and re-favoriting clears it again on the same row.
type Favorite struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"column:user_id;not null;uniqueIndex:idx_favorites_user_apartment" json:"userId"`
	ApartmentID uint           `gorm:"column:apartment_id;not null;uniqueIndex:idx_favorites_user_apartment" json:"apartmentId"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Apartment   *Apartment     `gorm:"foreignKey:ApartmentID" json:"apartment,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Deleted     gorm.DeletedAt `gorm:"column:deleted" json:"-"`
}

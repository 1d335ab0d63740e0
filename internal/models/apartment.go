package models

import (
	"time"

	"gorm.io/gorm"
)

// Apartment is a rental listing owned by exactly one user. Coordinates are
// decimal degrees; rows persisted without them are skipped by the
// geo-distance search.
type Apartment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"column:user_id;not null;index" json:"userId"`
	User           *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `json:"description"`
	City           string         `gorm:"index" json:"city"`
	NBedrooms      int            `gorm:"column:n_bedrooms" json:"nBedrooms"`
	NBathrooms     int            `gorm:"column:n_bathrooms" json:"nBathrooms"`
	AreaM2         float64        `gorm:"column:area_m2" json:"areaM2"`
	MonthlyRentEUR float64        `gorm:"column:monthly_rent_eur" json:"monthlyRentEUR"`
	Latitude       *float64       `gorm:"column:latitude" json:"latitude"`
	Longitude      *float64       `gorm:"column:longitude" json:"longitude"`
	AvailableFrom  *time.Time     `gorm:"column:avail_from" json:"availableFrom"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Deleted        gorm.DeletedAt `gorm:"column:deleted;index" json:"-"`
}

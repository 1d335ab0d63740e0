package database

import (
	"gorm.io/gorm"

	"rentnest/server/internal/apperrors"
	"rentnest/server/internal/models"
)

// ApartmentFilter carries the optional lookup dimensions. At most one
// dimension is ever applied: id wins over nBathrooms, which wins over
// nBedrooms, which wins over city. With no dimension set, all non-deleted
// apartments match.
type ApartmentFilter struct {
	ID         *uint
	NBathrooms *int
	NBedrooms  *int
	City       *string
}

// filterClause is one entry of a first-match-wins filter chain.
type filterClause struct {
	present bool
	apply   func(*gorm.DB) *gorm.DB
}

// applyFirst applies the first present clause to the query, or leaves the
// query untouched when none is present.
func applyFirst(query *gorm.DB, chain []filterClause) *gorm.DB {
	for _, clause := range chain {
		if clause.present {
			return clause.apply(query)
		}
	}
	return query
}

func (f ApartmentFilter) chain() []filterClause {
	return []filterClause{
		{f.ID != nil, func(q *gorm.DB) *gorm.DB { return q.Where("id = ?", *f.ID) }},
		{f.NBathrooms != nil, func(q *gorm.DB) *gorm.DB { return q.Where("n_bathrooms = ?", *f.NBathrooms) }},
		{f.NBedrooms != nil, func(q *gorm.DB) *gorm.DB { return q.Where("n_bedrooms = ?", *f.NBedrooms) }},
		{f.City != nil, func(q *gorm.DB) *gorm.DB { return q.Where("city = ?", *f.City) }},
	}
}

func (d *Database) FindApartments(filter ApartmentFilter) ([]models.Apartment, error) {
	query := applyFirst(d.db.Model(&models.Apartment{}), filter.chain())

	apartments := make([]models.Apartment, 0)
	if err := query.Preload("User").Find(&apartments).Error; err != nil {
		return nil, apperrors.Internal("failed to query apartments", err)
	}
	return apartments, nil
}

func (d *Database) CreateApartment(apartment *models.Apartment) error {
	if err := d.db.Create(apartment).Error; err != nil {
		return apperrors.Internal("failed to create apartment", err)
	}
	return nil
}

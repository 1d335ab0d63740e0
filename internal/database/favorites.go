package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rentnest/server/internal/apperrors"
	"rentnest/server/internal/models"
)

// FavoriteFilter narrows the favorites lookup; userId wins over
// apartmentId when both are given.
type FavoriteFilter struct {
	UserID      *uint
	ApartmentID *uint
}

func (f FavoriteFilter) chain() []filterClause {
	return []filterClause{
		{f.UserID != nil, func(q *gorm.DB) *gorm.DB { return q.Where("user_id = ?", *f.UserID) }},
		{f.ApartmentID != nil, func(q *gorm.DB) *gorm.DB { return q.Where("apartment_id = ?", *f.ApartmentID) }},
	}
}

func (d *Database) FindFavorites(filter FavoriteFilter) ([]models.Favorite, error) {
	query := applyFirst(d.db.Model(&models.Favorite{}), filter.chain())

	favorites := make([]models.Favorite, 0)
	if err := query.Preload("User").Preload("Apartment").Find(&favorites).Error; err != nil {
		return nil, apperrors.Internal("failed to query favorites", err)
	}
	return favorites, nil
}

// UpsertFavorite marks an apartment as a favorite of a user. Conflict
// resolution is delegated to the store: the composite unique index on
// (user_id, apartment_id) makes a repeated favorite update the existing
// row, clearing its soft-delete marker instead of inserting a duplicate.
func (d *Database) UpsertFavorite(userID, apartmentID uint) (*models.Favorite, error) {
	favorite := models.Favorite{UserID: userID, ApartmentID: apartmentID}
	err := d.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "apartment_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"deleted":    nil,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&favorite).Error
	if err != nil {
		return nil, apperrors.Internal("failed to upsert favorite", err)
	}

	// Re-read the live row; after a conflict update the insert result does
	// not carry the existing row's id.
	var stored models.Favorite
	err = d.db.Where("user_id = ? AND apartment_id = ?", userID, apartmentID).First(&stored).Error
	if err != nil {
		return nil, apperrors.Internal("failed to read back favorite", err)
	}
	return &stored, nil
}

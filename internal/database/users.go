package database

import (
	"errors"

	"gorm.io/gorm"

	"rentnest/server/internal/apperrors"
	"rentnest/server/internal/models"
)

// UserFilter narrows the users lookup. A nil ID means all users.
type UserFilter struct {
	ID *uint
}

func (d *Database) FindUsers(filter UserFilter) ([]models.User, error) {
	query := d.db.Model(&models.User{})
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}

	users := make([]models.User, 0)
	if err := query.Find(&users).Error; err != nil {
		return nil, apperrors.Internal("failed to query users", err)
	}
	return users, nil
}

// FindUserByEmail returns the user with the given email, including the
// stored password hash for credential verification.
func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := d.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("no such user found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	return &user, nil
}

func (d *Database) CreateUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		return apperrors.Internal("failed to create user", err)
	}
	return nil
}

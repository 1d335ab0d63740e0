package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rentnest/server/internal/models"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := NewTestDB()
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	return db
}

func seedUser(t *testing.T, db *Database, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:      email,
		Password:   "$2a$10$not.a.real.hash.but.fine.for.store.tests",
		FirstName:  "Test",
		LastName:   "User",
		IsLandlord: true,
	}
	require.NoError(t, db.CreateUser(user))
	return user
}

func seedApartment(t *testing.T, db *Database, userID uint, apartment models.Apartment) *models.Apartment {
	t.Helper()

	apartment.UserID = userID
	require.NoError(t, db.CreateApartment(&apartment))
	return &apartment
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func uintPtr(v uint) *uint        { return &v }
func strPtr(v string) *string     { return &v }

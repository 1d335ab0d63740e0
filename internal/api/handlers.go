package api

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"rentnest/server/internal/apperrors"
	"rentnest/server/internal/auth"
	"rentnest/server/internal/database"
	"rentnest/server/internal/geo"
	"rentnest/server/internal/models"
	"rentnest/server/internal/shape"
)

// Users returns all non-deleted users, or a single one when id is given.
func (h *Handler) Users(c *gin.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID *uint `json:"id"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return h.db.FindUsers(database.UserFilter{ID: args.ID})
}

// Login verifies a user's credentials and returns the user record with the
// password hash suppressed. An unknown email and a wrong password fail
// differently so the two cases stay distinguishable.
func (h *Handler) Login(c *gin.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Email == "" || args.Password == "" {
		return nil, apperrors.InvalidArgument("email and password are required")
	}

	user, err := h.db.FindUserByEmail(args.Email)
	if err != nil {
		return nil, err
	}
	if err := auth.CheckPassword(user.Password, args.Password); err != nil {
		return nil, err
	}
	return user, nil
}

// Apartments looks apartments up through the first-match-wins filter
// chain: id, then nBathrooms, then nBedrooms, then city.
func (h *Handler) Apartments(c *gin.Context, raw json.RawMessage) (any, error) {
	var args struct {
		ID         *uint   `json:"id"`
		NBathrooms *int    `json:"nBathrooms"`
		NBedrooms  *int    `json:"nBedrooms"`
		City       *string `json:"city"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return h.db.FindApartments(database.ApartmentFilter{
		ID:         args.ID,
		NBathrooms: args.NBathrooms,
		NBedrooms:  args.NBedrooms,
		City:       args.City,
	})
}

// ApartmentsGeoLoc returns apartments within distanceKm of the caller's
// position, nearest first, each carrying its computed distance. The raw
// store rows are renamed to the API field convention on the way out.
func (h *Handler) ApartmentsGeoLoc(c *gin.Context, raw json.RawMessage) (any, error) {
	var args struct {
		CurrLatitude  float64 `json:"currLatitude"`
		CurrLongitude float64 `json:"currLongitude"`
		DistanceKm    float64 `json:"distanceKm"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	ref := geo.Point{Latitude: args.CurrLatitude, Longitude: args.CurrLongitude}
	rows, err := h.db.ApartmentsWithinRadius(ref, args.DistanceKm)
	if err != nil {
		return nil, err
	}
	return shape.RenameKeys(rows, shape.GeoResultKeys), nil
}

// Favorites returns favorite records filtered by userId, or by apartmentId
// when no userId is given.
func (h *Handler) Favorites(c *gin.Context, raw json.RawMessage) (any, error) {
	var args struct {
		UserID      *uint `json:"userId"`
		ApartmentID *uint `json:"apartmentId"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return h.db.FindFavorites(database.FavoriteFilter{
		UserID:      args.UserID,
		ApartmentID: args.ApartmentID,
	})
}

// Register creates a user with a hashed password and returns the record.
func (h *Handler) Register(c *gin.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Email      string `json:"email"`
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Password   string `json:"password"`
		IsLandlord bool   `json:"isLandlord"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Email == "" || args.Password == "" {
		return nil, apperrors.InvalidArgument("email and password are required")
	}

	hashed, err := auth.HashPassword(args.Password, h.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:      args.Email,
		Password:   hashed,
		FirstName:  args.FirstName,
		LastName:   args.LastName,
		IsLandlord: args.IsLandlord,
	}
	if err := h.db.CreateUser(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateApartment creates a listing owned by userId. Coordinates must be
// given either both or not at all.
func (h *Handler) CreateApartment(c *gin.Context, raw json.RawMessage) (any, error) {
	var args struct {
		UserID         uint       `json:"userId"`
		Title          string     `json:"title"`
		Description    string     `json:"description"`
		City           string     `json:"city"`
		NBedrooms      int        `json:"nBedrooms"`
		NBathrooms     int        `json:"nBathrooms"`
		AreaM2         float64    `json:"areaM2"`
		MonthlyRentEUR float64    `json:"monthlyRentEUR"`
		Latitude       *float64   `json:"latitude"`
		Longitude      *float64   `json:"longitude"`
		AvailableFrom  *time.Time `json:"availableFrom"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.UserID == 0 {
		return nil, apperrors.InvalidArgument("userId is required")
	}
	if args.Title == "" {
		return nil, apperrors.InvalidArgument("title is required")
	}
	if (args.Latitude == nil) != (args.Longitude == nil) {
		return nil, apperrors.InvalidArgument("latitude and longitude must be given together")
	}

	apartment := models.Apartment{
		UserID:         args.UserID,
		Title:          args.Title,
		Description:    args.Description,
		City:           args.City,
		NBedrooms:      args.NBedrooms,
		NBathrooms:     args.NBathrooms,
		AreaM2:         args.AreaM2,
		MonthlyRentEUR: args.MonthlyRentEUR,
		Latitude:       args.Latitude,
		Longitude:      args.Longitude,
		AvailableFrom:  args.AvailableFrom,
	}
	if err := h.db.CreateApartment(&apartment); err != nil {
		return nil, err
	}
	return &apartment, nil
}

// MarkAsFavorite records, or revives, a user's favorite for an apartment.
func (h *Handler) MarkAsFavorite(c *gin.Context, raw json.RawMessage) (any, error) {
	var args struct {
		UserID      uint `json:"userId"`
		ApartmentID uint `json:"apartmentId"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.UserID == 0 || args.ApartmentID == 0 {
		return nil, apperrors.InvalidArgument("userId and apartmentId are required")
	}
	return h.db.UpsertFavorite(args.UserID, args.ApartmentID)
}

// Command seed loads the demo landlords and their listings into the
// database, then prints a development bearer token for the first one.
// Running it twice is safe; existing users are left untouched.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"rentnest/server/config"
	"rentnest/server/internal/apperrors"
	"rentnest/server/internal/auth"
	"rentnest/server/internal/database"
	"rentnest/server/internal/models"
)

const demoPassword = "pass2021.not.secure"

type demoUser struct {
	email     string
	firstName string
	lastName  string
	apartment models.Apartment
}

func demoUsers() []demoUser {
	return []demoUser{
		{
			email:     "alice@example.ple",
			firstName: "Alice",
			lastName:  "Willson",
			apartment: models.Apartment{
				Title:          "Comfortable Studio",
				Description:    "Studio in Berlin, Karlshorst",
				MonthlyRentEUR: 1420,
				Latitude:       ptr(52.48470974603695),
				Longitude:      ptr(13.524449900914442),
				City:           "Berlin",
				NBedrooms:      1,
				NBathrooms:     1,
				AreaM2:         25,
			},
		},
		{
			email:     "peter@example.ple",
			firstName: "Peter",
			lastName:  "Gallsbou",
			apartment: models.Apartment{
				Title:          "3-room apartment in Hellersdorf",
				Description:    "Bright and quiet apartment with 2 bedrooms.",
				MonthlyRentEUR: 3200,
				Latitude:       ptr(52.54070481230224),
				Longitude:      ptr(13.597487228938814),
				City:           "Berlin",
				NBedrooms:      2,
				NBathrooms:     1,
				AreaM2:         49,
			},
		},
		{
			email:     "lucia@example.ple",
			firstName: "Lucia",
			lastName:  "Multairs",
			apartment: models.Apartment{
				Title:          "Four-room apartment in the countryside",
				Description:    "Newly renovated and completely furnished apartment on 78 sqm.",
				MonthlyRentEUR: 2350,
				Latitude:       ptr(51.07207569695171),
				Longitude:      ptr(7.126750531156095),
				City:           "Cologne",
				NBedrooms:      3,
				NBathrooms:     2,
				AreaM2:         78,
			},
		},
	}
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.NewDatabase(cfg.DatabasePath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	hashed, err := auth.HashPassword(demoPassword, cfg.BcryptCost)
	if err != nil {
		logger.WithError(err).Fatal("Failed to hash demo password")
	}

	var first *models.User
	for _, demo := range demoUsers() {
		existing, err := db.FindUserByEmail(demo.email)
		if err == nil {
			logger.WithField("email", demo.email).Info("User already seeded")
			if first == nil {
				first = existing
			}
			continue
		}
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			logger.WithError(err).Fatal("Failed to check for existing user")
		}

		user := models.User{
			Email:      demo.email,
			Password:   hashed,
			FirstName:  demo.firstName,
			LastName:   demo.lastName,
			IsLandlord: true,
		}
		if err := db.CreateUser(&user); err != nil {
			logger.WithError(err).Fatal("Failed to create user")
		}

		apartment := demo.apartment
		apartment.UserID = user.ID
		if err := db.CreateApartment(&apartment); err != nil {
			logger.WithError(err).Fatal("Failed to create apartment")
		}

		logger.WithFields(logrus.Fields{
			"email":     user.Email,
			"apartment": apartment.Title,
		}).Info("Seeded user with listing")
		if first == nil {
			first = &user
		}
	}

	token, err := auth.SignToken(cfg.JWTSecret, first.ID, 24*time.Hour)
	if err != nil {
		logger.WithError(err).Fatal("Failed to sign dev token")
	}
	logger.WithField("token", token).Info("Development bearer token")
}

func ptr(v float64) *float64 {
	return &v
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rentnest/server/config"
	"rentnest/server/internal/api"
	"rentnest/server/internal/database"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Make sure the database directory exists before opening the file.
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.WithError(err).Fatal("Failed to create database directory")
		}
	}
	logger.Infof("Using database at: %s", cfg.DatabasePath)

	db, err := database.NewDatabase(cfg.DatabasePath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	router := gin.Default()
	api.SetupRoutes(router, db, cfg, logger)

	logger.Infof("Starting server on port %d", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}

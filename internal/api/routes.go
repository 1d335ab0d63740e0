package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rentnest/server/config"
	"rentnest/server/internal/auth"
	"rentnest/server/internal/database"
)

func SetupRoutes(router *gin.Engine, db *database.Database, cfg *config.Config, logger *logrus.Logger) {
	handler := NewHandler(db, cfg, logger)

	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(auth.Middleware(cfg.JWTSecret, handler.logger))
	{
		api.POST("/query", handler.Query)
	}
}

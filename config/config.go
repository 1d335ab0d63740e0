package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Port the HTTP server listens on
	Port int `env:"PORT" envDefault:"3000"`

	// Path to the sqlite database file
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database/rentnest.db"`

	// Secret used to verify bearer credentials on the query endpoint
	JWTSecret string `env:"JWT_SECRET_KEY"`

	// Cost factor for password hashing
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Gin mode, set to "release" in production
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
}

func LoadConfig() (*Config, error) {
	// A missing .env file is not an error; plain env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid listen port: %d", cfg.Port)
	}
	return cfg, nil
}

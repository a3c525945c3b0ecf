package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration loaded from the environment.
// It is passed to the components that need it instead of living in a
// package-level global.
type Config struct {
	DatabaseURL     string
	DatabaseName    string
	JWTSecret       string
	StripeSecretKey string
	Port            string
	AllowedOrigins  string
}

// Load reads the configuration from environment variables.
// DATABASE_URL, JWT_SECRET and STRIPE_SECRET_KEY are required.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DatabaseName:    os.Getenv("DATABASE_NAME"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Port:            os.Getenv("PORT"),
		AllowedOrigins:  os.Getenv("ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = "inventoDB"
	}
	if cfg.Port == "" {
		cfg.Port = "6001"
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "*"
	}

	return cfg, nil
}

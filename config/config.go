// Package config holds process configuration. It is loaded and validated
// once at startup and treated as immutable afterwards; request paths never
// read the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   []byte
	TokenTTL    time.Duration
	UploadDir   string
	PublicURL   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getenv("PORT", "4000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:    time.Hour,
		UploadDir:   getenv("UPLOAD_DIR", "upload/images"),
	}
	cfg.PublicURL = getenv("PUBLIC_URL", "http://localhost:"+cfg.Port)

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" && (cfg.DBHost == "" || cfg.DBName == "") {
		return nil, errors.New("either DATABASE_URL or DB_HOST and DB_NAME must be set")
	}
	return cfg, nil
}

// DSN returns the Postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"errors"
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	JWTSecret     string
	StorageDriver string // "local" or "r2"
	UploadDir     string
	PublicBaseURL string
	R2            R2Config
}

// Load builds the process configuration from the environment once at
// startup. Handlers and services never read env vars directly.
func Load() (*Config, error) {
	cfg := &Config{
		Env:           getEnv("APP_ENV", "production"),
		Port:          getEnv("PORT", "8000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
	}

	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.StorageDriver != "local" && cfg.StorageDriver != "r2" {
		return nil, errors.New("STORAGE_DRIVER must be \"local\" or \"r2\"")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

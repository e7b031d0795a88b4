package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort        = "8080"
	defaultDatabaseDSN = "multiple-activities.db"
	defaultJWTTTL      = "24h"
	defaultS3Region    = "us-east-1"
	defaultDriveBucket = "drive"
	defaultFoodBucket  = "food-imgs"
	defaultPokeAPIBase = "https://pokeapi.co/api/v2"
)

// Config is the full runtime configuration, read once at startup.
type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret string
	JWTTTL    time.Duration

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	DriveBucket string
	FoodBucket  string

	PokeAPIBase string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseDSN: getEnv("DATABASE_URL", defaultDatabaseDSN),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		S3Endpoint:  strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3Region:    getEnv("S3_REGION", defaultS3Region),
		S3AccessKey: strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey: strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		DriveBucket: getEnv("DRIVE_BUCKET", defaultDriveBucket),
		FoodBucket:  getEnv("FOOD_BUCKET", defaultFoodBucket),
		PokeAPIBase: getEnv("POKEAPI_BASE_URL", defaultPokeAPIBase),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return d, nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Media storage
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance from environment variables.
// Development and test environments fall back to local defaults; CI and
// production require everything to be set explicitly.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getEnv("DB_NAME", "craftnet"),
		DBSSLMode:     getEnv("DB_SSL_MODE", "disable"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:     os.Getenv("AWS_REGION"),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	// Local environments get a development-only signing key so the server
	// can start without any setup.
	if cfg.JWTSecret == "" && (env == Development || env == Test) {
		cfg.JWTSecret = "dev-insecure-secret"
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

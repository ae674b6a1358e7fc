package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// requiredFields maps each environment to the Config fields that must be
// populated there. Development and test run fine on the built-in defaults.
var requiredFields = map[Environment][]string{
	Development: {"ServerPort", "DBHost", "DBPort", "DBUser", "DBName", "JWTSecret"},
	Test:        {"ServerPort", "DBHost", "DBPort", "DBUser", "DBName", "JWTSecret"},
	CI:          {"ServerPort", "DBHost", "DBPort", "DBUser", "DBPassword", "DBName", "JWTSecret"},
	Production:  {"ServerPort", "ServerHost", "DBHost", "DBPort", "DBUser", "DBPassword", "DBName", "DBSSLMode", "JWTSecret"},
}

// ValidateConfig checks if the configuration meets the requirements for the
// current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	values := map[string]string{
		"ServerPort": cfg.ServerPort,
		"ServerHost": cfg.ServerHost,
		"DBHost":     cfg.DBHost,
		"DBPort":     cfg.DBPort,
		"DBUser":     cfg.DBUser,
		"DBPassword": cfg.DBPassword,
		"DBName":     cfg.DBName,
		"DBSSLMode":  cfg.DBSSLMode,
		"JWTSecret":  cfg.JWTSecret,
	}

	var errors []string
	for _, field := range requiredFields[env] {
		if values[field] == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", field))
		}
	}

	if env == Production && cfg.JWTSecret == "dev-insecure-secret" {
		errors = append(errors, "JWT_SECRET must be set explicitly in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}

package config

import "os"

// Environment names the runtime the process was started for. It decides
// which config fields are mandatory and whether insecure development
// fallbacks are allowed.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads the environment from the process. CI runners set
// CI=true, which wins over ENV; an unset or unrecognized ENV means
// development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch env := Environment(os.Getenv("ENV")); env {
	case Production, Test:
		return env
	default:
		return Development
	}
}

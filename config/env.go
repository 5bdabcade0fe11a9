package config

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// Environment is the deployment stage the process runs in
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads ENV. CI=true takes precedence.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// ParseEnvironment maps a stage name to an Environment, defaulting to development
func ParseEnvironment(name string) Environment {
	switch env := Environment(strings.ToLower(strings.TrimSpace(name))); env {
	case Production, "prod":
		return Production
	case Test, CI:
		return env
	default:
		return Development
	}
}

// GinMode returns the gin mode for the environment
func (e Environment) GinMode() string {
	switch e {
	case Production:
		return gin.ReleaseMode
	case Test, CI:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func IsDevelopment() bool {
	return GetEnvironment() == Development
}

func IsProduction() bool {
	return GetEnvironment() == Production
}

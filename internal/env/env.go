package env

import (
	"os"

	"github.com/vineetp6/serving/internal/envvar"
)

// Environment is the deployment environment the process runs in.
type Environment string

const (
	// Development enables debug logging and colored console output.
	Development Environment = "development"

	// Production logs at info level.
	Production Environment = "production"
)

// FromEnv derives the environment from the process environment.
func FromEnv() Environment {
	switch os.Getenv(envvar.ServingEnv) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// IsProduction reports whether the environment is production.
func (e Environment) IsProduction() bool {
	return e == Production
}

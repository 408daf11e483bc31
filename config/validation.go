package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks every field and reports all problems at once.
func ValidateConfig(cfg *Config) error {
	var problems []ValidationError

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if cfg.RedisHost != "" {
		if port, err := strconv.Atoi(cfg.RedisPort); err != nil || port < 1 || port > 65535 {
			problems = append(problems, ValidationError{Field: "REDIS_PORT", Message: fmt.Sprintf("invalid port %q", cfg.RedisPort)})
		}
	}
	if cfg.RedisDB < 0 {
		problems = append(problems, ValidationError{Field: "REDIS_DB", Message: "must not be negative"})
	}

	if cfg.RateLimitRequests <= 0 {
		problems = append(problems, ValidationError{Field: "RATE_LIMIT_REQUESTS", Message: "must be positive"})
	}
	if cfg.RateLimitWindow <= 0 {
		problems = append(problems, ValidationError{Field: "RATE_LIMIT_WINDOW", Message: "must be positive"})
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		problems = append(problems, ValidationError{Field: "LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)})
	}

	if cfg.Env.IsProduction() && cfg.RedisEnabled() && cfg.RedisPassword == "" && cfg.RedisURL == "" {
		problems = append(problems, ValidationError{Field: "redis_password", Message: "secret is required in production"})
	}

	if len(problems) > 0 {
		return joinProblems(problems)
	}
	return nil
}

func joinProblems(problems []ValidationError) error {
	lines := make([]string, len(problems))
	for i, p := range problems {
		lines[i] = p.Error()
	}
	return fmt.Errorf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
}

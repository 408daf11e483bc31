package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Redis configuration, used only for rate limiting. Leaving both
	// RedisHost and RedisURL empty disables rate limiting.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Rate limiting
	RateLimitWindow   time.Duration
	RateLimitRequests int

	// CORS
	AllowedOrigins []string

	// Proxies whose X-Forwarded-For is believed when resolving the client
	// IP. Empty trusts none, so the rate limiter keys on the peer address.
	TrustedProxies []string

	// Logging
	LogLevel string
}

// RedisEnabled reports whether a redis server was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig reads an optional .env file, then builds the configuration from
// environment variables and, in production, Docker secrets.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		Env:           GetEnvironment(),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		ServerHost:    getEnv("SERVER_HOST", ""),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS",
			"http://localhost:5173,http://frontend:5173")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
	}

	// Production reads the password from Docker secrets
	if cfg.Env == Production && cfg.RedisPassword == "" {
		cfg.RedisPassword = readSecret("redis_password")
	}

	var problems []ValidationError
	var err error
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		problems = append(problems, ValidationError{Field: "REDIS_DB", Message: "must be an integer"})
	}
	if cfg.RateLimitRequests, err = strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "60")); err != nil {
		problems = append(problems, ValidationError{Field: "RATE_LIMIT_REQUESTS", Message: "must be an integer"})
	}
	if cfg.RateLimitWindow, err = time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m")); err != nil {
		problems = append(problems, ValidationError{Field: "RATE_LIMIT_WINDOW", Message: "must be a duration such as 30s or 1m"})
	}
	if len(problems) > 0 {
		return nil, joinProblems(problems)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv loads ENV_FILE (default .env). A missing file is not an error;
// variables already set in the environment win.
func loadDotEnv() error {
	path := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := getEnv("SECRETS_DIR", "/run/secrets")
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

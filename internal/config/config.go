// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/amaumene/cinetro/internal/constants"
	apperrors "github.com/amaumene/cinetro/internal/errors"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
	// Default dotenv file name
	defaultEnvFile = ".env"
)

// Config holds the application configuration.
// It supports loading from a .env file, environment variables and a JSON or YAML file.
type Config struct {
	// Catalog API
	APIBaseURL     string        `json:"API_BASE_URL" yaml:"API_BASE_URL"`
	RequestTimeout time.Duration `json:"REQUEST_TIMEOUT" yaml:"REQUEST_TIMEOUT"`
	RateLimit      int64         `json:"RATE_LIMIT" yaml:"RATE_LIMIT"`
	RateBurst      int64         `json:"RATE_BURST" yaml:"RATE_BURST"`

	// HTTP server
	Port     string `json:"PORT" yaml:"PORT"`
	LogLevel string `json:"LOG_LEVEL" yaml:"LOG_LEVEL"`

	// Sessions
	SessionCapacity int           `json:"SESSION_CAPACITY" yaml:"SESSION_CAPACITY"`
	SessionTTL      time.Duration `json:"SESSION_TTL" yaml:"SESSION_TTL"`
	// SecureCookies forces the Secure flag on the session cookie, for deployments
	// behind a TLS proxy that does not send X-Forwarded-Proto.
	SecureCookies bool `json:"SECURE_COOKIES" yaml:"SECURE_COOKIES"`

	// Grid slicing
	PageSize int `json:"PAGE_SIZE" yaml:"PAGE_SIZE"`
}

// Load reads configuration from .env, the optional config file and environment variables.
// Environment variables take precedence over file values.
// Returns an error if the configuration is invalid.
func Load() (*Config, error) {
	if err := godotenv.Load(getEnvOrDefault("ENV_FILE", defaultEnvFile)); err != nil && !os.IsNotExist(err) {
		return nil, apperrors.NewConfigurationError("failed to load env file", err)
	}

	cfg := &Config{}

	// Load from config file if exists
	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, apperrors.NewConfigurationError("failed to load config file", err)
		}
	}

	// Load from environment variables
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return apperrors.NewConfigurationError(fmt.Sprintf("SECURE_COOKIES must be a boolean, got %q", v), err)
		}
		c.SecureCookies = secure
	}

	var err error
	if c.RequestTimeout, err = envDuration("REQUEST_TIMEOUT", c.RequestTimeout); err != nil {
		return err
	}
	if c.SessionTTL, err = envDuration("SESSION_TTL", c.SessionTTL); err != nil {
		return err
	}
	if c.RateLimit, err = envInt64("RATE_LIMIT", c.RateLimit); err != nil {
		return err
	}
	if c.RateBurst, err = envInt64("RATE_BURST", c.RateBurst); err != nil {
		return err
	}

	capacity, err := envInt64("SESSION_CAPACITY", int64(c.SessionCapacity))
	if err != nil {
		return err
	}
	c.SessionCapacity = int(capacity)

	pageSize, err := envInt64("PAGE_SIZE", int64(c.PageSize))
	if err != nil {
		return err
	}
	c.PageSize = int(pageSize)

	return nil
}

// loadFromFile loads configuration from a JSON or YAML file, chosen by extension.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}

// Validate checks if the configuration is valid.
// Sets default values for missing optional fields.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		c.APIBaseURL = constants.DefaultAPIBaseURL
	}

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperrors.NewConfigurationError(fmt.Sprintf("API_BASE_URL must be an absolute http(s) URL, got %q", c.APIBaseURL), err)
	}
	// Endpoints are resolved relative to the base, which needs a trailing slash.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	c.APIBaseURL = u.String()

	if c.Port == "" {
		c.Port = constants.DefaultPort
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return apperrors.NewConfigurationError(fmt.Sprintf("PORT must be numeric, got %q", c.Port), err)
	}

	if c.LogLevel == "" {
		c.LogLevel = constants.DefaultLogLevel
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = constants.RequestTimeout
	}
	if c.RateLimit <= 0 {
		c.RateLimit = constants.CatalogRateLimit
	}
	if c.RateBurst <= 0 {
		c.RateBurst = constants.CatalogRateBurst
	}
	if c.SessionCapacity <= 0 {
		c.SessionCapacity = constants.DefaultSessionCapacity
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = time.Duration(constants.DefaultSessionTTL) * time.Hour
	}
	if c.PageSize <= 0 {
		c.PageSize = constants.DefaultPageSize
	}

	return nil
}

// Endpoint resolves a catalog API path such as "movies/42/" against the base URL.
func (c *Config) Endpoint(path string) string {
	return strings.TrimSuffix(c.APIBaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// envDuration parses a Go duration ("30s") or a bare number of seconds.
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}
	secs, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewConfigurationError(fmt.Sprintf("%s: invalid duration %q", key, value), err)
	}
	return time.Duration(secs) * time.Second, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, apperrors.NewConfigurationError(fmt.Sprintf("%s: invalid number %q", key, value), err)
	}
	return n, nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

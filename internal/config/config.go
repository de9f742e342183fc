// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the configuration of the backend.
type Config struct {
	// HTTP
	APIURL      *url.URL
	Port        string
	CORSOrigins []string
	EnablePprof bool

	// Logging
	GinMode   string
	LogFormat string

	// Database. If DBHost is set, PostgreSQL is used instead of SQLite
	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string

	// Seed the default categories on startup
	SeedCategories bool

	// AMQP alert notifications. Disabled if AMQPURL is empty
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

var (
	ErrAPIURLNotSet  = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid = errors.New("environment variable API_URL must be a valid URL")
)

// Load reads the .env file in the working directory, if any, and then
// the configuration from the environment.
//
// Variables that are already set in the environment take precedence
// over the .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof: getEnvBool("ENABLE_PPROF", false),

		GinMode:   getEnv("GIN_MODE", "release"),
		LogFormat: getEnv("LOG_FORMAT", ""),

		DBPath:     getEnv("DB_PATH", filepath.Join("data", "expense-guard.db")),
		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "expense_guard"),

		SeedCategories: getEnvBool("SEED_CATEGORIES", true),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "expense-guard"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "budget_alerts"),
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		return nil, ErrAPIURLNotSet
	}

	u, err := url.Parse(apiURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: '%s'", ErrAPIURLInvalid, apiURL)
	}
	cfg.APIURL = u

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DBHost == "" && c.DBPath == "" {
		errs = append(errs, errors.New("DB_PATH must be set when DB_HOST is not set"))
	}

	if c.DBHost != "" && c.DBUser == "" {
		errs = append(errs, errors.New("DB_USER must be set when DB_HOST is set"))
	}

	return errors.Join(errs...)
}

// UsePostgres reports if PostgreSQL is configured.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// PostgresDSN returns the key=value connection string for PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", c.DBHost, c.DBUser, c.DBPassword, c.DBName)
}

// HumanLogs reports if logs are written in a human readable format.
//
// If the format is not set explicitly, it defaults to human readable for
// development and JSON for release.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}

	return b
}

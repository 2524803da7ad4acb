// Package config loads server and worker settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/evensplit/internal/calculator"
	"github.com/mmynk/evensplit/internal/money"
)

const defaultJWTSecret = "dev-secret-change-me"

type Config struct {
	// HTTP server
	Port       string
	StaticPath string
	CORSOrigin string

	// Database
	DBPath string

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// AMQP; events are disabled when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Settlement engine
	ToleranceCents       int64
	ExactMaxParticipants int

	MetricsEnabled bool
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		StaticPath: getEnv("STATIC_PATH", "../frontend/static"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),

		DBPath: getEnv("DB_PATH", "./data/evensplit.db"),

		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "evensplit"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "expense_changes"),

		ToleranceCents:       int64(getEnvInt("SETTLEMENT_TOLERANCE_CENTS", 0)),
		ExactMaxParticipants: getEnvInt("SETTLEMENT_EXACT_MAX_PARTICIPANTS", 0),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

// UsesDefaultSecret reports whether JWT_SECRET was left unset.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

// Validate validates the configuration and returns an error listing every problem.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if len(c.JWTSecret) < 8 {
		errors = append(errors, "JWT secret must be at least 8 characters")
	}
	if c.TokenTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid token TTL %v: must be at least 1 minute", c.TokenTTL))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.ToleranceCents < 0 {
		errors = append(errors, fmt.Sprintf("invalid settlement tolerance %d: must not be negative", c.ToleranceCents))
	}
	if c.ExactMaxParticipants < 0 || c.ExactMaxParticipants > calculator.MaxExactParticipants {
		errors = append(errors, fmt.Sprintf("invalid exact planning limit %d: must be between 0 and %d",
			c.ExactMaxParticipants, calculator.MaxExactParticipants))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// EngineOptions translates the settlement settings into engine options.
func (c *Config) EngineOptions() []calculator.Option {
	var opts []calculator.Option
	if c.ToleranceCents > 0 {
		opts = append(opts, calculator.WithTolerance(money.Cents(c.ToleranceCents)))
	}
	if c.ExactMaxParticipants > 0 {
		opts = append(opts, calculator.WithExactPlanning(c.ExactMaxParticipants))
	}
	return opts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

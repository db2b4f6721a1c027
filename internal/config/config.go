package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the staff auth service.
type Config struct {
	Environment string
	Logging     LoggingConfig
	Auth        AuthConfig
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// AuthConfig holds the credential/session tunables.
type AuthConfig struct {
	SessionTimeout    time.Duration
	MaxFailedAttempts int
	MFACodeLength     int
	MFAValidityWindow time.Duration
	ShardCount        int
	ClientInfo        string
	SeedDefaultStaff  bool
}

// LoadConfig loads configuration from the environment, falling back to
// defaults for anything unset. A .env file is honored when present.
func LoadConfig() *Config {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := DefaultConfig()

	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)

	cfg.Auth.SessionTimeout = getEnvDuration("AUTH_SESSION_TIMEOUT", cfg.Auth.SessionTimeout)
	cfg.Auth.MaxFailedAttempts = getEnvInt("AUTH_MAX_FAILED_ATTEMPTS", cfg.Auth.MaxFailedAttempts)
	cfg.Auth.MFACodeLength = getEnvInt("AUTH_MFA_CODE_LENGTH", cfg.Auth.MFACodeLength)
	cfg.Auth.MFAValidityWindow = getEnvDuration("AUTH_MFA_VALIDITY_WINDOW", cfg.Auth.MFAValidityWindow)
	cfg.Auth.ShardCount = getEnvInt("AUTH_SHARD_COUNT", cfg.Auth.ShardCount)
	cfg.Auth.ClientInfo = getEnv("AUTH_CLIENT_INFO", cfg.Auth.ClientInfo)
	cfg.Auth.SeedDefaultStaff = getEnvBool("AUTH_SEED_DEFAULT_STAFF", cfg.Auth.SeedDefaultStaff)

	return cfg
}

// DefaultConfig returns the built-in defaults: 30 minute sessions, 5 failed
// attempts before lockout, 6-digit MFA codes valid for 5 minutes.
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Auth: AuthConfig{
			SessionTimeout:    30 * time.Minute,
			MaxFailedAttempts: 5,
			MFACodeLength:     6,
			MFAValidityWindow: 5 * time.Minute,
			ShardCount:        16,
			ClientInfo:        "local-application",
			SeedDefaultStaff:  false,
		},
	}
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if c.Auth.SessionTimeout <= 0 {
		return fmt.Errorf("session timeout must be positive, got %s", c.Auth.SessionTimeout)
	}
	if c.Auth.MaxFailedAttempts <= 0 {
		return fmt.Errorf("max failed attempts must be positive, got %d", c.Auth.MaxFailedAttempts)
	}
	if c.Auth.MFACodeLength <= 0 {
		return fmt.Errorf("MFA code length must be positive, got %d", c.Auth.MFACodeLength)
	}
	if c.Auth.MFAValidityWindow <= 0 {
		return fmt.Errorf("MFA validity window must be positive, got %s", c.Auth.MFAValidityWindow)
	}
	if c.Auth.ShardCount <= 0 {
		return fmt.Errorf("shard count must be positive, got %d", c.Auth.ShardCount)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

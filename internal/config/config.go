package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, loaded once at startup.
// Fields are never mutated after New returns.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DatabasePath string

	SecretKey      string
	AccessTokenTTL time.Duration
}

// New loads environment variables from the given file (if it exists)
// and returns the resolved configuration.
func New(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &Config{
		AppHost:      getEnv("APP_HOST", "localhost"),
		AppPort:      getEnv("APP_PORT", "8080"),
		LogLevel:     getEnv("APP_LOG_LEVEL", "info"),
		DatabasePath: getEnv("DATABASE_PATH", "users.db"),
		SecretKey:    getEnv("SECRET_KEY", "my_super_secret_key"),
	}

	expMinutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
	}
	cfg.AccessTokenTTL = time.Duration(expMinutes) * time.Minute

	return cfg, nil
}

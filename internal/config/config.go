package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration.
type Config struct {
	MaxUsers   int
	MaxTasks   int
	Theme      string // classic | neon | mono
	LogLevel   string
	BcryptCost int
	NoColor    bool
}

// Load reads configuration from TODO_* environment variables, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	maxUsers, err := getInt("TODO_MAX_USERS", 100)
	if err != nil {
		return nil, err
	}
	maxTasks, err := getInt("TODO_MAX_TASKS", 100)
	if err != nil {
		return nil, err
	}
	cost, err := getInt("TODO_BCRYPT_COST", bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("TODO_BCRYPT_COST: must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	noColor, err := strconv.ParseBool(getEnv("TODO_NO_COLOR", "false"))
	if err != nil {
		return nil, fmt.Errorf("TODO_NO_COLOR: %w", err)
	}

	return &Config{
		MaxUsers:   maxUsers,
		MaxTasks:   maxTasks,
		Theme:      getEnv("TODO_THEME", "classic"),
		LogLevel:   getEnv("TODO_LOG_LEVEL", "warn"),
		BcryptCost: cost,
		NoColor:    noColor,
	}, nil
}

func getInt(key string, fallback int) (int, error) {
	raw := getEnv(key, strconv.Itoa(fallback))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %q", key, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

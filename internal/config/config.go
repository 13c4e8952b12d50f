package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/fadedpez/trainsolitaire/internal/logging"
	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Rules
	NumMoveableCards int
	NumPlaySpaces    int
	NumFreeSpaces    int
	ShuffleSeed      int64 // 0 seeds from the clock

	// Optional TOML file overriding the rules above
	RulesFile string

	LogLevel logging.Level

	// Environment
	Environment string // "development" or "production"
}

// Rules is the shape of the TOML rules file. Unset keys keep the env value.
type Rules struct {
	NumMoveableCards *int   `toml:"num_moveable_cards"`
	NumPlaySpaces    *int   `toml:"num_play_spaces"`
	NumFreeSpaces    *int   `toml:"num_free_spaces"`
	ShuffleSeed      *int64 `toml:"shuffle_seed"`
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment alone
func FromEnv() (*Config, error) {
	cfg := &Config{
		RulesFile:   os.Getenv("RULES_FILE"),
		Environment: getEnvWithDefault("ENVIRONMENT", "production"),
	}

	var err error
	if cfg.NumMoveableCards, err = getIntWithDefault("NUM_MOVEABLE_CARDS", 5); err != nil {
		return nil, err
	}
	if cfg.NumPlaySpaces, err = getIntWithDefault("NUM_PLAY_SPACES", 8); err != nil {
		return nil, err
	}
	if cfg.NumFreeSpaces, err = getIntWithDefault("NUM_FREE_SPACES", 4); err != nil {
		return nil, err
	}

	seed, err := getIntWithDefault("SHUFFLE_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.ShuffleSeed = int64(seed)

	if cfg.LogLevel, err = logging.ParseLevel(getEnvWithDefault("LOG_LEVEL", cfg.defaultLogLevel())); err != nil {
		return nil, err
	}

	if cfg.RulesFile != "" {
		if err := cfg.ApplyRulesFile(cfg.RulesFile); err != nil {
			return nil, err
		}
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyRulesFile overrides rule values with the ones set in a TOML file
func (c *Config) ApplyRulesFile(path string) error {
	var rules Rules
	if _, err := toml.DecodeFile(path, &rules); err != nil {
		return types.WrapError(types.ErrInvalidConfig, fmt.Sprintf("failed to read rules file %s", path), err)
	}

	if rules.NumMoveableCards != nil {
		c.NumMoveableCards = *rules.NumMoveableCards
	}
	if rules.NumPlaySpaces != nil {
		c.NumPlaySpaces = *rules.NumPlaySpaces
	}
	if rules.NumFreeSpaces != nil {
		c.NumFreeSpaces = *rules.NumFreeSpaces
	}
	if rules.ShuffleSeed != nil {
		c.ShuffleSeed = *rules.ShuffleSeed
	}
	return nil
}

// validate checks the rule values are playable
func (c *Config) validate() error {
	if c.NumMoveableCards < 1 {
		return types.Errorf(types.ErrInvalidConfig, "NUM_MOVEABLE_CARDS must be at least 1, got %d", c.NumMoveableCards)
	}
	if c.NumPlaySpaces < 1 || c.NumPlaySpaces > 13 {
		return types.Errorf(types.ErrInvalidConfig, "NUM_PLAY_SPACES must be 1..13, got %d", c.NumPlaySpaces)
	}
	if c.NumFreeSpaces < 0 || c.NumFreeSpaces > 8 {
		return types.Errorf(types.ErrInvalidConfig, "NUM_FREE_SPACES must be 0..8, got %d", c.NumFreeSpaces)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// defaultLogLevel is used when LOG_LEVEL is unset. Development logs every move.
func (c *Config) defaultLogLevel() string {
	if c.IsDevelopment() {
		return "DEBUG"
	}
	return "INFO"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, types.WrapError(types.ErrInvalidConfig, fmt.Sprintf("%s must be a number", key), err)
	}
	return n, nil
}

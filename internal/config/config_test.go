package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fadedpez/trainsolitaire/internal/logging"
	"github.com/fadedpez/trainsolitaire/internal/types"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"NUM_MOVEABLE_CARDS", "NUM_PLAY_SPACES", "NUM_FREE_SPACES",
		"SHUFFLE_SEED", "LOG_LEVEL", "ENVIRONMENT", "RULES_FILE",
	} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigTestSuite) writeRules(contents string) string {
	path := filepath.Join(s.T().TempDir(), "rules.toml")
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0644))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	// Execute
	cfg, err := FromEnv()

	// Assert
	s.Require().NoError(err)
	s.Equal(5, cfg.NumMoveableCards)
	s.Equal(8, cfg.NumPlaySpaces)
	s.Equal(4, cfg.NumFreeSpaces)
	s.Zero(cfg.ShuffleSeed, "Seed defaults to the clock")
	s.Equal(logging.INFO, cfg.LogLevel)
	s.False(cfg.IsDevelopment(), "Players get the production environment")
}

func (s *ConfigTestSuite) TestDefaultLogLevelFollowsEnvironment() {
	testCases := []struct {
		name        string
		environment string
		logLevel    string
		expected    logging.Level
	}{
		{name: "development", environment: "development", expected: logging.DEBUG},
		{name: "production", environment: "production", expected: logging.INFO},
		{name: "explicit level wins", environment: "development", logLevel: "WARN", expected: logging.WARN},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Setup
			s.T().Setenv("ENVIRONMENT", tc.environment)
			s.T().Setenv("LOG_LEVEL", tc.logLevel)

			// Execute
			cfg, err := FromEnv()

			// Assert
			s.Require().NoError(err)
			s.Equal(tc.expected, cfg.LogLevel)
		})
	}
}

func (s *ConfigTestSuite) TestFromEnv() {
	// Setup
	s.T().Setenv("NUM_MOVEABLE_CARDS", "3")
	s.T().Setenv("NUM_PLAY_SPACES", "10")
	s.T().Setenv("NUM_FREE_SPACES", "0")
	s.T().Setenv("SHUFFLE_SEED", "1234")
	s.T().Setenv("LOG_LEVEL", "debug")
	s.T().Setenv("ENVIRONMENT", "production")

	// Execute
	cfg, err := FromEnv()

	// Assert
	s.Require().NoError(err)
	s.Equal(3, cfg.NumMoveableCards)
	s.Equal(10, cfg.NumPlaySpaces)
	s.Equal(0, cfg.NumFreeSpaces)
	s.Equal(int64(1234), cfg.ShuffleSeed)
	s.Equal(logging.DEBUG, cfg.LogLevel)
	s.False(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestInvalidValues() {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "not a number", key: "NUM_MOVEABLE_CARDS", value: "lots"},
		{name: "no moveable cards", key: "NUM_MOVEABLE_CARDS", value: "0"},
		{name: "too many play spaces", key: "NUM_PLAY_SPACES", value: "14"},
		{name: "no play spaces", key: "NUM_PLAY_SPACES", value: "0"},
		{name: "too many free spaces", key: "NUM_FREE_SPACES", value: "9"},
		{name: "bad seed", key: "SHUFFLE_SEED", value: "x"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "LOUD"},
		{name: "missing rules file", key: "RULES_FILE", value: "does-not-exist.toml"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			cfg, err := FromEnv()

			s.Nil(cfg)
			s.True(types.IsGameError(err, types.ErrInvalidConfig), "got %v", err)
		})
	}
}

func (s *ConfigTestSuite) TestRulesFileOverridesEnv() {
	// Setup
	s.T().Setenv("NUM_MOVEABLE_CARDS", "3")
	s.T().Setenv("NUM_FREE_SPACES", "2")
	s.T().Setenv("RULES_FILE", s.writeRules(`
num_moveable_cards = 7
shuffle_seed = 99
`))

	// Execute
	cfg, err := FromEnv()

	// Assert
	s.Require().NoError(err)
	s.Equal(7, cfg.NumMoveableCards, "File value wins")
	s.Equal(int64(99), cfg.ShuffleSeed)
	s.Equal(2, cfg.NumFreeSpaces, "Unset keys keep the env value")
	s.Equal(8, cfg.NumPlaySpaces)
}

func (s *ConfigTestSuite) TestRulesFileIsValidated() {
	// Setup
	s.T().Setenv("RULES_FILE", s.writeRules("num_play_spaces = 20\n"))

	// Execute
	_, err := FromEnv()

	// Assert
	s.True(types.IsGameError(err, types.ErrInvalidConfig))
}

func (s *ConfigTestSuite) TestMalformedRulesFile() {
	// Setup
	cfg := &Config{NumMoveableCards: 5}
	path := s.writeRules("num_moveable_cards = \"five\"\n")

	// Execute
	err := cfg.ApplyRulesFile(path)

	// Assert
	s.True(types.IsGameError(err, types.ErrInvalidConfig))
	s.Equal(5, cfg.NumMoveableCards, "Config should be unchanged")
}

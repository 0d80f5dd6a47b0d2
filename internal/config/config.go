package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the process configuration read from the environment
type Config struct {
	LogLevel  zapcore.Level
	LogFormat string
}

// Load reads an optional .env file and then the environment.
// Variables already present in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		LogLevel:  zapcore.InfoLevel,
		LogFormat: FormatConsole,
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
	}

	if format := strings.ToLower(getenv("LOG_FORMAT")); format != "" {
		if format != FormatConsole && format != FormatJSON {
			return nil, fmt.Errorf("invalid LOG_FORMAT %q: want %s or %s", format, FormatConsole, FormatJSON)
		}
		cfg.LogFormat = format
	}

	return cfg, nil
}

// NewLogger builds a zap logger writing to stderr, keeping stdout for entity status messages
func (c *Config) NewLogger() (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if c.LogFormat == FormatConsole {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(c.LogLevel)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

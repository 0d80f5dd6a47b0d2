package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, FormatConsole, cfg.LogFormat)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"LOG_LEVEL":  "DEBUG",
		"LOG_FORMAT": "json",
	}))
	require.NoError(t, err)

	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"LOG_LEVEL": "loud"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{"LOG_FORMAT": "xml"}))
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	t.Setenv("LOG_FORMAT", "console")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=warn\nLOG_FORMAT=json\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.Equal(t, FormatConsole, cfg.LogFormat, "environment wins over the env file")
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, cfg.LogLevel)
}

func TestConfig_NewLogger(t *testing.T) {
	for _, format := range []string{FormatConsole, FormatJSON} {
		cfg := &Config{LogLevel: zapcore.WarnLevel, LogFormat: format}
		logger, err := cfg.NewLogger()
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	}
}

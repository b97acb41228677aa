package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.False(t, cfg.Parser.DayFirst)
	assert.Equal(t, 5, cfg.Download.MaxTries)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FLEX_LOG_LEVEL", "debug")
	t.Setenv("FLEX_DOWNLOAD_QUERY", "98765")
	t.Setenv("FLEX_TOKEN", "secret-token")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "98765", cfg.Download.Query)
	assert.Equal(t, "secret-token", cfg.Download.Token)
}

func TestInitializeConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "FLEX_LOG_LEVEL", value: "chatty"},
		{name: "bad log format", key: "FLEX_LOG_FORMAT", value: "xml"},
		{name: "multi-char delimiter", key: "FLEX_CSV_DELIMITER", value: ";;"},
		{name: "max tries out of range", key: "FLEX_DOWNLOAD_MAX_TRIES", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "nope"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestConfigureLogging_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	os.Unsetenv("LOG_FORMAT")
	t.Setenv("LOG_LEVEL", "gibberish")
	logger = ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

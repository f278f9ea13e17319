package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NotEmpty(t, cfg.Data.Directory)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SMARTFINANCE_LOG_LEVEL", "debug")
	t.Setenv("SMARTFINANCE_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("SMARTFINANCE_LOG_LEVEL", "chatty")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadAIRequiresKey(t *testing.T) {
	t.Setenv("SMARTFINANCE_AI_ENABLED", "true")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestParseDecimalFlag(t *testing.T) {
	d, err := ParseDecimalFlag("amount", " 12.50 ")
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = ParseDecimalFlag("amount", "abc")
	assert.Error(t, err)
}

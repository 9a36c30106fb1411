package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaultsWithoutPath(t *testing.T) {
	cfg := LoadConfig("", nil)

	assert.Equal(t, "json", cfg.DefaultOutputFormat)
	assert.Equal(t, "https://cdn.example.com/whatsapp/avatars", cfg.MediaBaseURL)
	assert.Equal(t, 600, cfg.RateLimitPerMinute)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigPartialJSONMergesOverDefaults(t *testing.T) {
	path := writeSettings(t, "settings.json", `{"default_output_format": "csv"}`)

	cfg := LoadConfig(path, nil)
	assert.Equal(t, "csv", cfg.DefaultOutputFormat)
	assert.Equal(t, 600, cfg.RateLimitPerMinute, "unset keys keep their defaults")
}

func TestLoadConfigFullJSON(t *testing.T) {
	path := writeSettings(t, "settings.json", `{
		"default_output_format": "xml",
		"media_base_url": "https://media.internal/avatars",
		"rate_limit_per_minute": 120,
		"log_level": "DEBUG"
	}`)

	cfg := LoadConfig(path, nil)
	assert.Equal(t, "xml", cfg.DefaultOutputFormat)
	assert.Equal(t, "https://media.internal/avatars", cfg.MediaBaseURL)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeSettings(t, "settings.yaml", `
default_output_format: html
rate_limit_per_minute: 60
`)

	cfg := LoadConfig(path, nil)
	assert.Equal(t, "html", cfg.DefaultOutputFormat)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	path := writeSettings(t, "settings.json", `{not json at all`)

	cfg := LoadConfig(path, nil)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigSchemaViolationFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown format", content: `{"default_output_format": "pdf"}`},
		{name: "wrong type", content: `{"rate_limit_per_minute": "lots"}`},
		{name: "not an object", content: `["a", "b"]`},
		{name: "negative rate limit", content: `{"rate_limit_per_minute": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, "settings.json", tt.content)
			cfg := LoadConfig(path, nil)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("WAPROFILES_DEFAULT_FORMAT", "excel")
	t.Setenv("WAPROFILES_RATE_LIMIT", "42")

	cfg := LoadConfig("", nil)
	assert.Equal(t, "excel", cfg.DefaultOutputFormat)
	assert.Equal(t, 42, cfg.RateLimitPerMinute)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeSettings(t, "settings.json", `{"log_level": "ERROR"}`)
	t.Setenv("WAPROFILES_LOG_LEVEL", "DEBUG")

	cfg := LoadConfig(path, nil)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

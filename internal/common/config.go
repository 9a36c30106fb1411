package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/waprofiles/waprofiles/constants"
)

// Config holds all application configuration
type Config struct {
	DefaultOutputFormat string `json:"default_output_format" yaml:"default_output_format"`
	MediaBaseURL        string `json:"media_base_url" yaml:"media_base_url"`
	RateLimitPerMinute  int    `json:"rate_limit_per_minute" yaml:"rate_limit_per_minute"`
	LogLevel            string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults used whenever a settings
// source is missing or unusable.
func DefaultConfig() *Config {
	return &Config{
		DefaultOutputFormat: string(constants.FormatJSON),
		MediaBaseURL:        "https://cdn.example.com/whatsapp/avatars",
		RateLimitPerMinute:  600,
		LogLevel:            "INFO",
	}
}

// LoadConfig loads settings from an optional JSON or YAML file, then
// applies WAPROFILES_* environment overrides. Settings files never make
// the load fail: a missing, malformed, or schema-violating file logs a
// warning and falls back to defaults, and a partial file merges over
// defaults field by field.
func LoadConfig(path string, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := DefaultConfig()

	if path != "" {
		if fileCfg, err := loadConfigFile(path, cfg); err != nil {
			logger.Warn("failed to load settings, using defaults", "path", path, "err", err)
		} else {
			cfg = fileCfg
		}
	}

	applyEnvOverrides(cfg)
	return cfg
}

func loadConfigFile(path string, defaults *Config) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, "read settings file")
	}

	// Parse into a generic document first so the schema can reject
	// structural problems before any field reaches the config.
	var doc any
	ext := strings.ToLower(filepath.Ext(path))
	isYAML := ext == ".yaml" || ext == ".yml"
	if isYAML {
		err = yaml.Unmarshal(raw, &doc)
	} else {
		err = json.Unmarshal(raw, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse settings file: %w", err)
	}
	if err := validateSettings(doc); err != nil {
		return nil, fmt.Errorf("settings do not match schema: %w", err)
	}

	// Merge over defaults: only keys present in the file override.
	cfg := *defaults
	if isYAML {
		err = yaml.Unmarshal(raw, &cfg)
	} else {
		err = json.Unmarshal(raw, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("decode settings file: %w", err)
	}
	return &cfg, nil
}

// buildSettingsSchema returns the settings JSON-Schema as a generic map.
func buildSettingsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"default_output_format": map[string]any{
				"type": "string",
				"enum": constants.Formats(),
			},
			"media_base_url":        map[string]any{"type": "string", "minLength": 1},
			"rate_limit_per_minute": map[string]any{"type": "integer", "minimum": 0},
			"log_level": map[string]any{
				"type": "string",
				"enum": []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR"},
			},
		},
	}
}

// validateSettings validates a parsed settings document against the schema.
func validateSettings(doc any) error {
	b, err := json.Marshal(buildSettingsSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("settings.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("settings.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	// YAML documents carry Go-native types the validator does not walk;
	// round-trip through JSON to normalize them.
	db, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(db, &normalized); err != nil {
		return fmt.Errorf("normalize settings: %w", err)
	}
	return schema.Validate(normalized)
}

func applyEnvOverrides(cfg *Config) {
	cfg.DefaultOutputFormat = getEnv("WAPROFILES_DEFAULT_FORMAT", cfg.DefaultOutputFormat)
	cfg.MediaBaseURL = getEnv("WAPROFILES_MEDIA_BASE_URL", cfg.MediaBaseURL)
	cfg.RateLimitPerMinute = getEnvAsInt("WAPROFILES_RATE_LIMIT", cfg.RateLimitPerMinute)
	cfg.LogLevel = getEnv("WAPROFILES_LOG_LEVEL", cfg.LogLevel)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

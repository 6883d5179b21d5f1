// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/course-recommender/internal/schemas"
)

// MaxLimit is the largest number of recommendations a request may ask for.
const MaxLimit = 50

// Config represents the service configuration that can be loaded from a JSON file.
// All fields are optional; missing values are filled from the environment and defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Catalog
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (optional)
	CatalogPath string `json:"catalog_path,omitempty"` // Path to the CSV catalog
	MaxFeatures int    `json:"max_features,omitempty"` // Text index vocabulary cap

	// Recommendations
	DefaultLimit           int           `json:"default_limit,omitempty"`           // Results per request when unspecified
	PersistRecommendations *bool         `json:"persist_recommendations,omitempty"` // Save served recommendations to the database
	PersistTimeout         time.Duration `json:"-"`                                 // Bound for one background save
	PersistTimeoutText     string        `json:"persist_timeout,omitempty"`         // PersistTimeout as a Go duration string, e.g. "5s"

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or console
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	persist := true
	return Config{
		Port:                   8000,
		CatalogPath:            "data/courses.csv",
		MaxFeatures:            5000,
		DefaultLimit:           5,
		PersistRecommendations: &persist,
		PersistTimeout:         5 * time.Second,
		LogLevel:               "info",
		LogFormat:              "json",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read, parsed or fails schema validation.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := schemas.ValidateConfig(data); err != nil {
		return nil, fmt.Errorf("config file %s is invalid: %w", path, err)
	}
	if cfg.PersistTimeoutText != "" {
		d, err := time.ParseDuration(cfg.PersistTimeoutText)
		if err != nil {
			return nil, fmt.Errorf("config error: 'persist_timeout' must be a duration such as \"5s\": %w", err)
		}
		cfg.PersistTimeout = d
	}

	return &cfg, nil
}

// Load builds the effective configuration: the optional file at path, then
// environment overrides, then defaults for anything still unset.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = *fileCfg
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	cfg = cfg.MergeWithDefaults(Defaults())

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables that are set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: PORT must be an integer: %w", err)
		}
		c.Port = port
	}
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		c.DatabaseURL = v
	}
	if v, ok := lookup("CATALOG_PATH"); ok && v != "" {
		c.CatalogPath = v
	}
	if v, ok := lookup("MAX_FEATURES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: MAX_FEATURES must be an integer: %w", err)
		}
		c.MaxFeatures = n
	}
	if v, ok := lookup("DEFAULT_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: DEFAULT_LIMIT must be an integer: %w", err)
		}
		c.DefaultLimit = n
	}
	if v, ok := lookup("PERSIST_RECOMMENDATIONS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: PERSIST_RECOMMENDATIONS must be a boolean: %w", err)
		}
		c.PersistRecommendations = &b
	}
	if v, ok := lookup("PERSIST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config error: PERSIST_TIMEOUT must be a duration: %w", err)
		}
		c.PersistTimeout = d
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxFeatures < 0 {
		return fmt.Errorf("config error: 'max_features' must be non-negative")
	}
	if c.DefaultLimit < 0 || c.DefaultLimit > MaxLimit {
		return fmt.Errorf("config error: 'default_limit' must be between 0 and %d", MaxLimit)
	}
	if c.PersistTimeout < 0 {
		return fmt.Errorf("config error: 'persist_timeout' must be non-negative")
	}
	if c.LogFormat != "" && !strings.EqualFold(c.LogFormat, "json") && !strings.EqualFold(c.LogFormat, "console") {
		return fmt.Errorf("config error: 'log_format' must be json or console")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.MaxFeatures == 0 {
		result.MaxFeatures = defaults.MaxFeatures
	}
	if result.DefaultLimit == 0 {
		result.DefaultLimit = defaults.DefaultLimit
	}
	if result.PersistRecommendations == nil {
		result.PersistRecommendations = defaults.PersistRecommendations
	}
	if result.PersistTimeout == 0 {
		result.PersistTimeout = defaults.PersistTimeout
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}

// ShouldPersist reports whether served recommendations are saved.
func (c *Config) ShouldPersist() bool {
	return c.DatabaseURL != "" && c.PersistRecommendations != nil && *c.PersistRecommendations
}

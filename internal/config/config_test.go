package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/course-recommender/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9000,
		"catalog_path": "/srv/courses.csv",
		"max_features": 1000,
		"persist_recommendations": false,
		"log_format": "console"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/srv/courses.csv", cfg.CatalogPath)
	assert.Equal(t, 1000, cfg.MaxFeatures)
	require.NotNil(t, cfg.PersistRecommendations)
	assert.False(t, *cfg.PersistRecommendations)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_SchemaViolation(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"port": 9000, "api_key": "x"}`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Nil(t, cfg)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "is invalid")
}

func TestLoadConfig_PersistTimeoutIsDuration(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"persist_timeout": "1m30s"}`), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.PersistTimeout)
}

func TestLoadConfig_PersistTimeoutRejectsBareNumber(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"persist_timeout": 5}`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoad_PersistTimeoutFromFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"persist_timeout": "5s"}`), 0644))
	t.Setenv("PERSIST_TIMEOUT", "")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.PersistTimeout)
}

func TestLoad_RejectsDefaultLimitAboveMaximum(t *testing.T) {
	t.Setenv("DEFAULT_LIMIT", "1000")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_limit")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyEnv(t *testing.T) {
	cfg := Config{Port: 1234}
	err := cfg.ApplyEnv(envMap(map[string]string{
		"PORT":                    "8080",
		"DATABASE_URL":            "postgres://localhost/courses",
		"MAX_FEATURES":            "2000",
		"PERSIST_RECOMMENDATIONS": "false",
		"PERSIST_TIMEOUT":         "2s",
		"LOG_LEVEL":               "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/courses", cfg.DatabaseURL)
	assert.Equal(t, 2000, cfg.MaxFeatures)
	assert.False(t, *cfg.PersistRecommendations)
	assert.Equal(t, 2*time.Second, cfg.PersistTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"PORT":                    "eighty",
		"MAX_FEATURES":            "many",
		"DEFAULT_LIMIT":           "five",
		"PERSIST_RECOMMENDATIONS": "maybe",
		"PERSIST_TIMEOUT":         "soon",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			cfg := Config{}
			err := cfg.ApplyEnv(envMap(map[string]string{key: value}))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9999}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9999, merged.Port)
	assert.Equal(t, "data/courses.csv", merged.CatalogPath)
	assert.Equal(t, 5000, merged.MaxFeatures)
	assert.Equal(t, 5, merged.DefaultLimit)
	assert.Equal(t, "json", merged.LogFormat)
	require.NotNil(t, merged.PersistRecommendations)
	assert.True(t, *merged.PersistRecommendations)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "bad port", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "negative features", cfg: Config{MaxFeatures: -1}, wantErr: "max_features"},
		{name: "negative limit", cfg: Config{DefaultLimit: -1}, wantErr: "default_limit"},
		{name: "limit above request maximum", cfg: Config{DefaultLimit: MaxLimit + 1}, wantErr: "default_limit"},
		{name: "limit at request maximum", cfg: Config{DefaultLimit: MaxLimit}},
		{name: "bad format", cfg: Config{LogFormat: "xml"}, wantErr: "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShouldPersist(t *testing.T) {
	cfg := Defaults()
	assert.False(t, cfg.ShouldPersist(), "no database configured")

	cfg.DatabaseURL = "postgres://localhost/courses"
	assert.True(t, cfg.ShouldPersist())

	off := false
	cfg.PersistRecommendations = &off
	assert.False(t, cfg.ShouldPersist())
}

func TestLoad_FileThenEnv(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"port": 9000, "log_level": "warn"}`), 0644))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.MaxFeatures)
}

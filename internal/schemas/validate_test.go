package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Valid(t *testing.T) {
	doc := `{"port": 9000, "catalog_path": "data/courses.csv", "log_format": "console", "persist_recommendations": false, "persist_timeout": "5s"}`
	assert.NoError(t, ValidateConfig([]byte(doc)))
}

func TestValidateConfig_Empty(t *testing.T) {
	assert.NoError(t, ValidateConfig([]byte(`{}`)))
}

func TestValidateConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"port out of range", `{"port": 70000}`, "port"},
		{"wrong type", `{"max_features": "many"}`, "max_features"},
		{"unknown log format", `{"log_format": "xml"}`, "log_format"},
		{"unknown key", `{"api_key": "x"}`, "(root)"},
		{"limit too high", `{"default_limit": 500}`, "default_limit"},
		{"timeout as bare number", `{"persist_timeout": 5}`, "persist_timeout"},
		{"timeout without unit", `{"persist_timeout": "5"}`, "persist_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig([]byte(tt.doc))
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type")
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.field, validationErr.Errors[0].Field)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateConfig_MalformedDocument(t *testing.T) {
	err := ValidateConfig([]byte(`{"port":`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name":"x"}`))

	err := ValidateJSONString(schema, `{}`)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

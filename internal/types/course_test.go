package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourse_UnmarshalCanonicalFields(t *testing.T) {
	input := `{
		"id": "7",
		"title": "Go Fundamentals",
		"description": "Learn Go",
		"platform": "Coursera",
		"duration": "4 weeks",
		"skill_level": "Beginner",
		"type": "Free",
		"category": "Programming",
		"url": "https://example.com/go"
	}`

	var c Course
	require.NoError(t, json.Unmarshal([]byte(input), &c))
	assert.Equal(t, "7", c.ID)
	assert.Equal(t, "Beginner", c.SkillLevel)
	assert.Equal(t, "https://example.com/go", c.URL)
}

func TestCourse_UnmarshalLegacyFields(t *testing.T) {
	input := `{"id": 42, "title": "Rust", "level": "Advanced", "link": "https://example.com/rust"}`

	var c Course
	require.NoError(t, json.Unmarshal([]byte(input), &c))
	assert.Equal(t, "42", c.ID, "numeric id should become a string")
	assert.Equal(t, "Advanced", c.SkillLevel)
	assert.Equal(t, "https://example.com/rust", c.URL)
}

func TestCourse_UnmarshalPrefersCanonicalOverLegacy(t *testing.T) {
	input := `{"id": "1", "skill_level": "Beginner", "level": "Advanced", "url": "a", "link": "b"}`

	var c Course
	require.NoError(t, json.Unmarshal([]byte(input), &c))
	assert.Equal(t, "Beginner", c.SkillLevel)
	assert.Equal(t, "a", c.URL)
}

func TestCourse_UnmarshalInvalidID(t *testing.T) {
	var c Course
	err := json.Unmarshal([]byte(`{"id": true}`), &c)
	assert.Error(t, err)
}

func TestCourse_MarshalUsesCanonicalNames(t *testing.T) {
	c := Course{ID: "1", SkillLevel: "Beginner", URL: "https://example.com/1"}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"skill_level":"Beginner"`)
	assert.Contains(t, string(data), `"url":"https://example.com/1"`)
	assert.NotContains(t, string(data), `"level"`)
}

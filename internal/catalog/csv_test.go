package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_CanonicalHeader(t *testing.T) {
	input := "id,title,description,platform,duration,skill_level,type,category,url\n" +
		"1,Go,Learn Go,Udemy,4 weeks,Beginner,Free,Programming,https://example.com/1\n"

	courses, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "1", courses[0].ID)
	assert.Equal(t, "Beginner", courses[0].SkillLevel)
	assert.Equal(t, "https://example.com/1", courses[0].URL)
}

func TestReadCSV_LegacyHeaderReordered(t *testing.T) {
	input := "Title,ID,Level,Link,Description,Platform,Duration,Type,Category\n" +
		"Rust,9,Advanced,https://example.com/9,Systems programming,edX,10 weeks,Paid,Programming\n"

	courses, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "9", courses[0].ID)
	assert.Equal(t, "Rust", courses[0].Title)
	assert.Equal(t, "Advanced", courses[0].SkillLevel)
	assert.Equal(t, "https://example.com/9", courses[0].URL)
}

func TestReadCSV_MissingColumns(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("id,title\n1,Go\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
	assert.Contains(t, err.Error(), "description")
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadCSV_RaggedRow(t *testing.T) {
	input := "id,title,description,platform,duration,skill_level,type,category,url\n1,Go\n"
	_, err := ReadCSV(strings.NewReader(input))
	assert.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, SampleCourses()))

	courses, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, SampleCourses(), courses)
}

func TestWriteSampleFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "courses.csv")
	require.NoError(t, WriteSampleFile(path))

	_, err := os.Stat(path)
	require.NoError(t, err)

	courses, err := LoadCSVFile(path)
	require.NoError(t, err)
	assert.Len(t, courses, len(SampleCourses()))
}

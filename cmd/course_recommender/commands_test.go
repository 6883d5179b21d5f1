package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the commands at a temporary catalog and no database.
func isolate(t *testing.T) string {
	t.Helper()
	catalogPath := filepath.Join(t.TempDir(), "data", "courses.csv")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CATALOG_PATH", catalogPath)
	t.Setenv("LOG_LEVEL", "error")
	configPath = ""
	return catalogPath
}

func resetRecommendFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		recCategory, recSkillLevel, recCourseType, recDuration, recDescription = "", "", "", "", ""
		recLimit = 0
		recFormat = "json"
	})
}

func runWithOutput(t *testing.T, run func(*cobra.Command, []string) error) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	err := run(cmd, nil)
	return out.String(), err
}

func TestRecommend_UsesSampleCatalog(t *testing.T) {
	catalogPath := isolate(t)
	resetRecommendFlags(t)
	recCategory = "Cloud"
	recLimit = 3

	out, err := runWithOutput(t, runRecommend)
	require.NoError(t, err)

	var resp types.RecommendationsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp.Recommendations)
	assert.LessOrEqual(t, len(resp.Recommendations), 3)
	assert.Equal(t, len(resp.Recommendations), resp.TotalCount)
	for _, rec := range resp.Recommendations {
		assert.Equal(t, "Cloud", rec.Course.Category)
	}

	// The missing catalog was materialized from the sample.
	assert.FileExists(t, catalogPath)
}

func TestRecommend_TextFormat(t *testing.T) {
	isolate(t)
	resetRecommendFlags(t)
	recFormat = "text"
	recDescription = "kubernetes containers"

	out, err := runWithOutput(t, runRecommend)
	require.NoError(t, err)
	assert.Contains(t, out, "CATALOG")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "Kubernetes")
}

func TestRecommend_UnknownFormat(t *testing.T) {
	isolate(t)
	resetRecommendFlags(t)
	recFormat = "yaml"

	_, err := runWithOutput(t, runRecommend)
	assert.ErrorContains(t, err, "unknown --format")
}

func TestRecommend_RejectsUnknownDuration(t *testing.T) {
	isolate(t)
	resetRecommendFlags(t)
	recDuration = "Someday"

	_, err := runWithOutput(t, runRecommend)
	assert.ErrorContains(t, err, "invalid preferences")
}

func TestSample_WritesAndRefusesOverwrite(t *testing.T) {
	catalogPath := isolate(t)
	t.Cleanup(func() { sampleOut, sampleForce = "", false })

	out, err := runWithOutput(t, runSample)
	require.NoError(t, err)
	assert.Contains(t, out, catalogPath)

	courses, err := catalog.LoadCSVFile(catalogPath)
	require.NoError(t, err)
	assert.Len(t, courses, len(catalog.SampleCourses()))

	_, err = runWithOutput(t, runSample)
	assert.ErrorContains(t, err, "already exists")

	sampleForce = true
	_, err = runWithOutput(t, runSample)
	assert.NoError(t, err)
}

func TestSample_OutFlag(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { sampleOut, sampleForce = "", false })
	sampleOut = filepath.Join(t.TempDir(), "custom.csv")

	_, err := runWithOutput(t, runSample)
	require.NoError(t, err)
	_, err = os.Stat(sampleOut)
	assert.NoError(t, err)
}

func TestMigrate_RequiresDatabase(t *testing.T) {
	isolate(t)

	_, err := runWithOutput(t, runMigrate)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_BadConfigFile(t *testing.T) {
	isolate(t)
	configPath = filepath.Join(t.TempDir(), "missing.json")
	t.Cleanup(func() { configPath = "" })

	_, err := loadConfig()
	assert.ErrorContains(t, err, "failed to load config")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "recommend", "sample", "migrate"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

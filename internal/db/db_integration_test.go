//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/course-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	require.NoError(t, db.EnsureSchema(ctx))

	_, _ = db.pool.Exec(ctx, "DELETE FROM recommendations WHERE user_id LIKE 'itest-%'")
	_, _ = db.pool.Exec(ctx, "DELETE FROM courses WHERE url LIKE 'https://itest.example.com/%'")

	return db
}

func TestIntegration_ListCourses(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	n, err := db.InsertCourses(ctx, []types.Course{
		{Title: "Integration Go", Description: "Learn Go", SkillLevel: "Beginner", Type: "Free", Category: "Programming", URL: "https://itest.example.com/go"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	courses, err := db.ListCourses(ctx)
	require.NoError(t, err)

	var found *types.Course
	for i := range courses {
		if courses[i].URL == "https://itest.example.com/go" {
			found = &courses[i]
		}
	}
	require.NotNil(t, found)
	assert.NotEmpty(t, found.ID)
	assert.Equal(t, "Beginner", found.SkillLevel)
}

func TestIntegration_ReplaceRecommendations(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	prefs := types.Preferences{Category: "AI"}
	first := []types.Recommendation{
		{Course: types.Course{ID: "1"}, Score: 0.9},
		{Course: types.Course{ID: "2"}, Score: 0.4},
	}
	require.NoError(t, db.ReplaceRecommendations(ctx, "itest-user", prefs, first))

	second := []types.Recommendation{{Course: types.Course{ID: "3"}, Score: 0.7}}
	require.NoError(t, db.ReplaceRecommendations(ctx, "itest-user", prefs, second))

	stored, err := db.ListRecommendations(ctx, "itest-user")
	require.NoError(t, err)
	require.Len(t, stored, 1, "previous recommendations should be replaced")
	assert.Equal(t, "3", stored[0].CourseID)
	assert.Equal(t, "AI", stored[0].Preferences.Category)
}

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/course-recommender/internal/types"
)

// ListCourses returns every row of the courses table ordered by id.
// Either column naming (skill_level/url or level/link) is accepted.
func (db *DB) ListCourses(ctx context.Context) ([]types.Course, error) {
	rows, err := db.pool.Query(ctx, `SELECT * FROM courses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to scan courses: %w", err)
	}

	courses := make([]types.Course, 0, len(records))
	for _, rec := range records {
		courses = append(courses, courseFromRow(rec))
	}
	return courses, nil
}

// InsertCourses bulk-inserts courses, letting the database assign ids.
func (db *DB) InsertCourses(ctx context.Context, courses []types.Course) (int64, error) {
	rows := make([][]any, len(courses))
	for i, c := range courses {
		rows[i] = []any{c.Title, c.Description, c.Platform, c.Duration, c.SkillLevel, c.Type, c.Category, c.URL}
	}

	n, err := db.pool.CopyFrom(ctx,
		pgx.Identifier{"courses"},
		[]string{"title", "description", "platform", "duration", "skill_level", "type", "category", "url"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert courses: %w", err)
	}
	return n, nil
}

// courseFromRow maps a column-name keyed row to a Course. The id column is
// converted to a string whatever its database type.
func courseFromRow(row map[string]any) types.Course {
	get := func(names ...string) string {
		for _, name := range names {
			for key, v := range row {
				if !strings.EqualFold(key, name) || v == nil {
					continue
				}
				s := fmt.Sprint(v)
				if s != "" {
					return s
				}
			}
		}
		return ""
	}

	return types.Course{
		ID:          get("id"),
		Title:       get("title"),
		Description: get("description"),
		Platform:    get("platform"),
		Duration:    get("duration"),
		SkillLevel:  get("skill_level", "level"),
		Type:        get("type"),
		Category:    get("category"),
		URL:         get("url", "link"),
	}
}

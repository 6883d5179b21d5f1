package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/course-recommender/internal/types"
)

// csvHeaders returns the canonical CSV column headers.
func csvHeaders() []string {
	return []string{"id", "title", "description", "platform", "duration", "skill_level", "type", "category", "url"}
}

// columnAliases maps each canonical column to the header names accepted for it.
var columnAliases = map[string][]string{
	"id":          {"id"},
	"title":       {"title"},
	"description": {"description"},
	"platform":    {"platform"},
	"duration":    {"duration"},
	"skill_level": {"skill_level", "level"},
	"type":        {"type"},
	"category":    {"category"},
	"url":         {"url", "link"},
}

// courseToCSVRow converts a course to a CSV row (matching csvHeaders order).
func courseToCSVRow(c types.Course) []string {
	return []string{c.ID, c.Title, c.Description, c.Platform, c.Duration, c.SkillLevel, c.Type, c.Category, c.URL}
}

// ReadCSV parses courses from r. The header row is matched by name, case
// insensitively; every canonical column (or one of its aliases) must exist.
func ReadCSV(r io.Reader) ([]types.Course, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty csv: missing header")
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var courses []types.Course
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		field := func(name string) string { return strings.TrimSpace(row[cols[name]]) }
		courses = append(courses, types.Course{
			ID:          field("id"),
			Title:       field("title"),
			Description: field("description"),
			Platform:    field("platform"),
			Duration:    field("duration"),
			SkillLevel:  field("skill_level"),
			Type:        field("type"),
			Category:    field("category"),
			URL:         field("url"),
		})
	}
	return courses, nil
}

// resolveColumns finds the index of each canonical column in header.
func resolveColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		positions[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	cols := make(map[string]int, len(columnAliases))
	var missing []string
	for _, name := range csvHeaders() {
		found := false
		for _, alias := range columnAliases[name] {
			if idx, ok := positions[alias]; ok {
				cols[name] = idx
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// WriteCSV writes courses with the canonical header.
func WriteCSV(w io.Writer, courses []types.Course) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeaders()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, c := range courses {
		if err := writer.Write(courseToCSVRow(c)); err != nil {
			return fmt.Errorf("failed to write csv row %s: %w", c.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadCSVFile reads courses from path.
func LoadCSVFile(path string) ([]types.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	courses, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return courses, nil
}

// WriteSampleFile writes the built-in sample catalog to path, creating
// parent directories as needed.
func WriteSampleFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(f, SampleCourses()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Package types provides type definitions for structured data used throughout the course recommender.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "encoding/json"

// Course represents a single catalog entry. Courses are loaded once per
// catalog snapshot and never mutated afterwards.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	Duration    string `json:"duration"`
	SkillLevel  string `json:"skill_level"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	URL         string `json:"url"`
}

// courseJSON mirrors Course but also accepts the legacy "level" and "link"
// field names used by older catalog exports.
type courseJSON struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Platform    string          `json:"platform"`
	Duration    string          `json:"duration"`
	SkillLevel  string          `json:"skill_level"`
	Level       string          `json:"level"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	URL         string          `json:"url"`
	Link        string          `json:"link"`
}

// UnmarshalJSON decodes a course from either field-name variant. A numeric
// id is converted to its string form.
func (c *Course) UnmarshalJSON(data []byte) error {
	var raw courseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeID(raw.ID)
	if err != nil {
		return err
	}

	*c = Course{
		ID:          id,
		Title:       raw.Title,
		Description: raw.Description,
		Platform:    raw.Platform,
		Duration:    raw.Duration,
		SkillLevel:  firstNonEmpty(raw.SkillLevel, raw.Level),
		Type:        raw.Type,
		Category:    raw.Category,
		URL:         firstNonEmpty(raw.URL, raw.Link),
	}
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/course-recommender/internal/types"
)

// ReplaceRecommendations deletes the user's previous recommendations and
// stores the new ones in a single transaction.
func (db *DB) ReplaceRecommendations(ctx context.Context, userID string, prefs types.Preferences, recs []types.Recommendation) error {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM recommendations WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete recommendations: %w", err)
	}

	batch := &pgx.Batch{}
	for _, rec := range recs {
		batch.Queue(
			`INSERT INTO recommendations (user_id, course_id, preferences, score)
			 VALUES ($1, $2, $3, $4)`,
			userID, rec.Course.ID, prefsJSON, rec.Score,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert recommendations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recommendations: %w", err)
	}
	return nil
}

// ListRecommendations returns the stored recommendations for a user, best first.
func (db *DB) ListRecommendations(ctx context.Context, userID string) ([]StoredRecommendation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT user_id, course_id, preferences, score, created_at
		 FROM recommendations WHERE user_id = $1 ORDER BY score DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var out []StoredRecommendation
	for rows.Next() {
		var rec StoredRecommendation
		var prefsJSON []byte
		if err := rows.Scan(&rec.UserID, &rec.CourseID, &prefsJSON, &rec.Score, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		if err := json.Unmarshal(prefsJSON, &rec.Preferences); err != nil {
			return nil, fmt.Errorf("failed to decode preferences: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return out, nil
}

package db

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Analysis is a stored scoring result for one uploaded resume.
type Analysis struct {
	ID               uuid.UUID   `json:"id"`
	UserID           string      `json:"user_id"`
	CreatedAt        time.Time   `json:"created_at"`
	Score            int         `json:"score"`
	ATSScore         float64     `json:"ats_score"`
	SimilarityWithJD *float64    `json:"similarity_with_jd"`
	MissingKeywords  StringArray `json:"missing_keywords"` // JSONB array
	SkillsFound      StringArray `json:"skills_found"`     // JSONB array
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// InsertAnalysis stores a new analysis record and returns its ID.
func (db *DB) InsertAnalysis(ctx context.Context, record *Analysis) (uuid.UUID, error) {
	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_analyses
			(id, user_id, score, ats_score, similarity_with_jd, missing_keywords, skills_found)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, record.UserID, record.Score, record.ATSScore,
		record.SimilarityWithJD, record.MissingKeywords, record.SkillsFound,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return id, nil
}

// ListAnalyses returns a user's most recent records, newest first.
func (db *DB) ListAnalyses(ctx context.Context, userID string, limit int) ([]Analysis, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, created_at, score, ats_score, similarity_with_jd,
			missing_keywords, skills_found
		 FROM resume_analyses
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.UserID, &a.CreatedAt, &a.Score, &a.ATSScore,
			&a.SimilarityWithJD, &a.MissingKeywords, &a.SkillsFound); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return records, nil
}

// DeleteAnalysis removes one record. It reports whether a row was deleted.
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID, userID string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resume_analyses WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

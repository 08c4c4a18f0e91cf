package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analysis"
)

// TextPreviewLimit bounds the portion of extracted resume text echoed back
// in analyze responses.
const TextPreviewLimit = 12000

// AnalyzeResponse is the body of a successful POST /analyze-resume. It is
// the engine report plus the stored record id and a preview of the text
// the engine actually scored.
type AnalyzeResponse struct {
	*analysis.Report

	DocID       uuid.UUID `json:"doc_id"`
	TextPreview string    `json:"text_preview"`
}

// HistoryEntry is one stored analysis in GET /resume/history.
type HistoryEntry struct {
	DocID            uuid.UUID `json:"doc_id"`
	UserID           string    `json:"user_id"`
	CreatedAt        time.Time `json:"created_at"`
	Score            int       `json:"score"`
	ATSScore         float64   `json:"ats_score"`
	SimilarityWithJD *float64  `json:"similarity_with_jd"`
	SkillsFound      []string  `json:"skills_found"`
	MissingKeywords  []string  `json:"missing_keywords"`
}

// HistoryResponse is the body of GET /resume/history.
type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
}

// DeleteHistoryRequest is the body of POST /resume/history/delete.
type DeleteHistoryRequest struct {
	DocID string `json:"docId" validate:"required,uuid4"`
}

// Validate checks the DeleteHistoryRequest field constraints.
func (r *DeleteHistoryRequest) Validate() error {
	return validate.Struct(r)
}

// Preview truncates extracted text to TextPreviewLimit characters, marking
// truncation with a trailing ellipsis.
func Preview(text string) string {
	if len(text) <= TextPreviewLimit {
		return text
	}
	return text[:TextPreviewLimit] + "..."
}

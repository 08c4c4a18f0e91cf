package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxUploadBytes bounds the resume upload size.
const maxUploadBytes = 10 << 20

// anonymousUserID groups records from clients that never authenticate.
const anonymousUserID = "anonymous"

// handleAnalyze accepts a multipart resume upload, scores it, and persists
// the result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'file' field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	resumeText, err := extraction.ExtractText(header.Filename, data)
	if err != nil {
		if errors.Is(err, extraction.ErrUnsupportedFormat) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[analyze] extraction failed for %s: %v", header.Filename, err)
		s.errorResponse(w, http.StatusUnprocessableEntity, "could not extract text from document")
		return
	}
	if strings.TrimSpace(resumeText) == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "document contains no extractable text")
		return
	}

	jobDescription := r.FormValue("job_description")
	userID := r.FormValue("userId")
	if userID == "" {
		userID = anonymousUserID
	}

	report := s.analyzer.Analyze(resumeText, jobDescription)

	docID, err := s.store.InsertAnalysis(r.Context(), &db.Analysis{
		UserID:           userID,
		Score:            report.Score,
		ATSScore:         report.ATSScore,
		SimilarityWithJD: report.SimilarityWithJD,
		MissingKeywords:  report.MissingKeywords,
		SkillsFound:      report.SkillsFound,
	})
	if err != nil {
		log.Printf("[analyze] failed to persist record: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to store analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.AnalyzeResponse{
		Report:      report,
		DocID:       docID,
		TextPreview: types.Preview(resumeText),
	})
}

// handleHistory returns the caller's recent analyses, newest first. The
// userId query parameter can narrow to records stored under another label,
// e.g. a pre-registration anonymous id the client still holds.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		authedID, err := middleware.GetUserID(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		userID = authedID.String()
	}

	records, err := s.store.ListAnalyses(r.Context(), userID, s.historyLimit)
	if err != nil {
		log.Printf("[history] failed to list records: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	entries := make([]types.HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, types.HistoryEntry{
			DocID:            rec.ID,
			UserID:           rec.UserID,
			CreatedAt:        rec.CreatedAt,
			Score:            rec.Score,
			ATSScore:         rec.ATSScore,
			SimilarityWithJD: rec.SimilarityWithJD,
			SkillsFound:      rec.SkillsFound,
			MissingKeywords:  rec.MissingKeywords,
		})
	}

	s.jsonResponse(w, http.StatusOK, types.HistoryResponse{Entries: entries})
}

// handleDeleteHistory removes one stored analysis owned by the caller.
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	var req types.DeleteHistoryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	authedID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	docID, err := uuid.Parse(req.DocID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid docId")
		return
	}

	deleted, err := s.store.DeleteAnalysis(r.Context(), docID, authedID.String())
	if err != nil {
		log.Printf("[history] failed to delete record %s: %v", docID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete record")
		return
	}
	if !deleted {
		notFound := &ErrAnalysisNotFound{DocID: docID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

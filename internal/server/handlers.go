package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/types"
)

// Request bodies are capped before decoding; validation then enforces the per-text limit.
const (
	maxScoreBodyBytes = 2 << 20
	maxBatchBodyBytes = 32 << 20
)

// BatchScoreResponse represents the response for /score/batch
type BatchScoreResponse struct {
	Results []types.Analysis `json:"results"`
	Count   int              `json:"count"`
}

// ListAnalysesResponse represents the response for /analyses
type ListAnalysesResponse struct {
	Analyses []types.Analysis `json:"analyses"`
	Count    int              `json:"count"`
}

// handleScore scores one resume against a job description
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := s.decodeBody(w, r, maxScoreBodyBytes, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, fromValidator(err))
		return
	}
	if req.Save && s.store == nil {
		s.writeError(w, &ErrStorageUnavailable{})
		return
	}

	analysis := s.analyzer.Analyze(r.Context(), req.ResumeText, req.JobDescription, req.Label)

	if req.Save {
		if err := s.store.SaveAnalysis(r.Context(), &analysis); err != nil {
			s.writeError(w, fmt.Errorf("saving analysis: %w", err))
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleScoreBatch scores many resumes against one job description, preserving input order
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchScoreRequest
	if err := s.decodeBody(w, r, maxBatchBodyBytes, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, fromValidator(err))
		return
	}
	if req.Save && s.store == nil {
		s.writeError(w, &ErrStorageUnavailable{})
		return
	}

	results := s.analyzer.AnalyzeBatch(r.Context(), req.JobDescription, req.Resumes, s.batchLimit)

	if req.Save {
		if err := s.saveAll(r.Context(), results); err != nil {
			s.writeError(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, BatchScoreResponse{Results: results, Count: len(results)})
}

func (s *Server) saveAll(ctx context.Context, analyses []types.Analysis) error {
	for i := range analyses {
		if err := s.store.SaveAnalysis(ctx, &analyses[i]); err != nil {
			return fmt.Errorf("saving analysis %d: %w", i, err)
		}
	}
	return nil
}

// handleListAnalyses returns recent saved analyses
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, &ErrStorageUnavailable{})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = n
	}

	analyses, err := s.store.ListAnalyses(r.Context(), limit)
	if err != nil {
		s.writeError(w, fmt.Errorf("listing analyses: %w", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, ListAnalysesResponse{Analyses: analyses, Count: len(analyses)})
}

// handleGetAnalysis returns one saved analysis by ID
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, &ErrStorageUnavailable{})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "id", Message: "must be a valid UUID"})
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.writeError(w, fmt.Errorf("getting analysis: %w", err))
		return
	}
	if analysis == nil {
		s.writeError(w, &ErrNotFound{ID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// decodeBody decodes a JSON request body of at most maxBytes into dst.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrValidation{Field: "body", Message: fmt.Sprintf("exceeds %d bytes", tooLarge.Limit)}
		}
		s.logger.Debug("invalid request body", zap.String("path", r.URL.Path), zap.Error(err))
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

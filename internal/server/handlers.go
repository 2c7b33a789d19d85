package server

import (
	"net/http"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/parsing"
	"github.com/jonathan/talent-match/internal/pipeline"
	"github.com/jonathan/talent-match/internal/ranking"
	"github.com/jonathan/talent-match/internal/types"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract extracts profile attributes from raw resume text
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, validationError(err))
		return
	}

	profile := s.extractor.Extract(req.Text)
	s.jsonResponse(w, http.StatusOK, types.ExtractResponse{
		Profile:    profile,
		TextLength: utf8.RuneCountInString(req.Text),
	})
}

// handleMatch scores one candidate against explicit requirements
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, validationError(err))
		return
	}

	result := ranking.Score(req.CandidateSkills, req.RequiredSkills,
		req.CandidateExperience, req.MinExperience, req.MaxExperience)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleParseResume fetches, parses and stores a user's resume
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	if s.parser == nil {
		s.fail(w, &ErrUnavailable{Dependency: "resume parser"})
		return
	}

	var req types.ParseResumeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, validationError(err))
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		s.fail(w, &ErrValidation{Field: "user_id", Message: "must be a UUID"})
		return
	}

	result, err := s.parser.ParseResume(r.Context(), userID, req.ResumeURL)
	if err != nil {
		s.logger.Error("resume parse failed", zap.String("user_id", userID.String()), zap.Error(err))
		s.fail(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ParseResumeResponse{Success: true, Data: result})
}

// handleEnqueueParse queues a parse job for the background worker
func (s *Server) handleEnqueueParse(w http.ResponseWriter, r *http.Request) {
	if s.jobs == nil {
		s.fail(w, &ErrUnavailable{Dependency: "job queue"})
		return
	}

	var req types.ParseResumeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, validationError(err))
		return
	}

	if err := s.jobs.PublishParseJob(r.Context(), req); err != nil {
		s.logger.Error("enqueue parse job failed", zap.String("user_id", req.UserID), zap.Error(err))
		s.fail(w, &ErrUnavailable{Dependency: "job queue"})
		return
	}

	s.jsonResponse(w, http.StatusAccepted, map[string]any{"success": true, "queued": true})
}

// handleSearch ranks stored candidates against recruiter filters
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, &ErrUnavailable{Dependency: "candidate store"})
		return
	}

	var req types.SearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, validationError(err))
		return
	}

	filters, err := parsing.ParseSearchFilters(req.Skills, req.Experience, req.Location, req.JobType)
	if err != nil {
		s.fail(w, err)
		return
	}

	candidates, err := s.store.ListCandidates(r.Context(), config.MaxSearchLimit)
	if err != nil {
		s.logger.Error("candidate listing failed", zap.Error(err))
		s.fail(w, err)
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.searchLimit
	}
	ranked := ranking.RankCandidates(candidates, filters, ranking.RankOptions{
		MinPercentage: req.MinPercentage,
		Limit:         limit,
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"filters":    filters,
		"candidates": ranked,
		"total":      len(ranked),
	})
}

// fail writes err with the status HTTPStatus assigns. Internal errors other than
// parse failures are not echoed to the client.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if _, isParse := err.(*pipeline.ParseError); status == http.StatusInternalServerError && !isParse {
		message = "internal server error"
	}
	s.errorResponse(w, status, message)
}

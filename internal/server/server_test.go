package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/extraction"
	"github.com/jonathan/talent-match/internal/pipeline"
	"github.com/jonathan/talent-match/internal/server/ratelimit"
	"github.com/jonathan/talent-match/internal/types"
)

type mockStore struct {
	candidates []types.Candidate
	err        error
}

func (m *mockStore) ListCandidates(_ context.Context, _ int) ([]types.Candidate, error) {
	return m.candidates, m.err
}

type mockParser struct {
	result *types.ParseResult
	err    error
	gotID  uuid.UUID
	gotURL string
}

func (m *mockParser) ParseResume(_ context.Context, userID uuid.UUID, url string) (*types.ParseResult, error) {
	m.gotID = userID
	m.gotURL = url
	return m.result, m.err
}

func newTestServer(store CandidateStore, parser ResumeParser) http.Handler {
	return New(Config{
		Extractor: extraction.New(extraction.WithCurrentYear(2026)),
	}, store, parser).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeBody[map[string]string](t, rec))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil), http.MethodOptions, "/v1/extract", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestExtract(t *testing.T) {
	text := "Senior engineer with 8 years of experience in Go and Kubernetes. Based in Denver"
	rec := doJSON(t, newTestServer(nil, nil), http.MethodPost, "/v1/extract", types.ExtractRequest{Text: text})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[types.ExtractResponse](t, rec)
	assert.Contains(t, resp.Profile.Skills, "Go")
	assert.Contains(t, resp.Profile.Skills, "Kubernetes")
	assert.Equal(t, 8, resp.Profile.ExperienceYears)
	assert.Equal(t, "Denver", resp.Profile.Location)
	assert.NotNil(t, resp.Profile.Education)
	assert.Equal(t, len(text), resp.TextLength)
}

func TestExtract_EmptyText(t *testing.T) {
	h := newTestServer(nil, nil)
	for _, body := range []string{`{}`, `{"text": ""}`} {
		rec := doJSON(t, h, http.MethodPost, "/v1/extract", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		resp := decodeBody[types.ExtractResponse](t, rec)
		assert.Equal(t, types.DefaultLocation, resp.Profile.Location)
		assert.Equal(t, 0, resp.Profile.ExperienceYears)
		assert.NotNil(t, resp.Profile.Skills)
		assert.Empty(t, resp.Profile.Skills)
		assert.NotNil(t, resp.Profile.Education)
		assert.Empty(t, resp.Profile.Education)
		assert.Equal(t, 0, resp.TextLength)
	}
}

func TestExtract_BadRequests(t *testing.T) {
	h := newTestServer(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"text": `},
		{"unknown field", `{"text": "Go", "extra": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/v1/extract", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], "validation error")
		})
	}
}

func TestMatch(t *testing.T) {
	h := newTestServer(nil, nil)

	rec := doJSON(t, h, http.MethodPost, "/v1/match", types.MatchRequest{
		CandidateSkills:     []string{"React", "Node.js"},
		RequiredSkills:      []string{"React", "Node.js"},
		CandidateExperience: 4,
		MinExperience:       3,
		MaxExperience:       5,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.MatchResult{Percentage: 100, Label: types.LabelExcellent},
		decodeBody[types.MatchResult](t, rec))

	rec = doJSON(t, h, http.MethodPost, "/v1/match", `{"required_skills": ["Go"], "candidate_experience": 2, "min_experience": 0, "max_experience": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, types.MatchResult{Percentage: 0, Label: types.LabelPoor}, decodeBody[types.MatchResult](t, rec),
		"missing candidate skills scores zero")
}

func TestMatch_InvalidRange(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil), http.MethodPost, "/v1/match", types.MatchRequest{
		MinExperience: 6,
		MaxExperience: 2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], "MaxExperience")
}

func TestParseResume(t *testing.T) {
	userID := uuid.New()
	parser := &mockParser{result: &types.ParseResult{
		ExtractedProfile: types.ExtractedProfile{
			Skills:          []string{"Go"},
			ExperienceYears: 3,
			Location:        "Remote",
			Education:       []string{},
		},
		TextLength: 120,
	}}
	h := newTestServer(nil, parser)

	rec := doJSON(t, h, http.MethodPost, "/v1/resumes/parse", types.ParseResumeRequest{
		UserID:    userID.String(),
		ResumeURL: "https://files.example.com/cv.pdf",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[types.ParseResumeResponse](t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, 120, resp.Data.TextLength)
	assert.Equal(t, []string{"Go"}, resp.Data.Skills)
	assert.Equal(t, userID, parser.gotID)
	assert.Equal(t, "https://files.example.com/cv.pdf", parser.gotURL)
}

func TestParseResume_Failure(t *testing.T) {
	parser := &mockParser{err: &pipeline.ParseError{Step: pipeline.StepFetch, Cause: errors.New("timeout")}}
	h := newTestServer(nil, parser)

	rec := doJSON(t, h, http.MethodPost, "/v1/resumes/parse", types.ParseResumeRequest{
		UserID:    uuid.NewString(),
		ResumeURL: "https://files.example.com/cv.pdf",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], "failed to parse resume")
}

func TestParseResume_Validation(t *testing.T) {
	h := newTestServer(nil, &mockParser{})

	rec := doJSON(t, h, http.MethodPost, "/v1/resumes/parse", types.ParseResumeRequest{
		UserID:    "not-a-uuid",
		ResumeURL: "https://files.example.com/cv.pdf",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/v1/resumes/parse", types.ParseResumeRequest{UserID: uuid.NewString()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseResume_Unavailable(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil), http.MethodPost, "/v1/resumes/parse", types.ParseResumeRequest{
		UserID:    uuid.NewString(),
		ResumeURL: "https://files.example.com/cv.pdf",
	})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

type mockQueue struct {
	jobs []types.ParseResumeRequest
	err  error
}

func (m *mockQueue) PublishParseJob(_ context.Context, job types.ParseResumeRequest) error {
	if m.err != nil {
		return m.err
	}
	m.jobs = append(m.jobs, job)
	return nil
}

func TestEnqueueParse(t *testing.T) {
	q := &mockQueue{}
	h := New(Config{Jobs: q}, nil, nil).Handler()
	job := types.ParseResumeRequest{UserID: uuid.NewString(), ResumeURL: "https://files.example.com/cv.pdf"}

	rec := doJSON(t, h, http.MethodPost, "/v1/resumes/parse/async", job)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, true, decodeBody[map[string]any](t, rec)["queued"])
	assert.Equal(t, []types.ParseResumeRequest{job}, q.jobs)

	rec = doJSON(t, h, http.MethodPost, "/v1/resumes/parse/async", types.ParseResumeRequest{UserID: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnqueueParse_Unavailable(t *testing.T) {
	job := types.ParseResumeRequest{UserID: uuid.NewString(), ResumeURL: "https://files.example.com/cv.pdf"}

	rec := doJSON(t, newTestServer(nil, nil), http.MethodPost, "/v1/resumes/parse/async", job)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h := New(Config{Jobs: &mockQueue{err: errors.New("broker gone")}}, nil, nil).Handler()
	rec = doJSON(t, h, http.MethodPost, "/v1/resumes/parse/async", job)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearch(t *testing.T) {
	store := &mockStore{candidates: []types.Candidate{
		{UserID: uuid.New(), FullName: "Partial", Profile: types.ExtractedProfile{Skills: []string{"React"}, ExperienceYears: 4}},
		{UserID: uuid.New(), FullName: "Full", Profile: types.ExtractedProfile{Skills: []string{"React", "Node.js"}, ExperienceYears: 4}},
		{UserID: uuid.New(), FullName: "None", Profile: types.ExtractedProfile{Skills: []string{"Cobol"}, ExperienceYears: 20}},
	}}
	h := newTestServer(store, nil)

	rec := doJSON(t, h, http.MethodPost, "/v1/candidates/search", types.SearchRequest{
		Skills:        "React, Node.js",
		Experience:    "3-5",
		MinPercentage: 10,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Filters    types.SearchFilters     `json:"filters"`
		Candidates []types.RankedCandidate `json:"candidates"`
		Total      int                     `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"React", "Node.js"}, resp.Filters.RequiredSkills)
	assert.Equal(t, 3, resp.Filters.MinExperience)
	assert.Equal(t, 5, resp.Filters.MaxExperience)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Full", resp.Candidates[0].FullName)
	assert.Equal(t, 100, resp.Candidates[0].Match.Percentage)
	assert.Equal(t, "Partial", resp.Candidates[1].FullName)
	assert.Equal(t, 65, resp.Candidates[1].Match.Percentage)
}

func TestSearch_Errors(t *testing.T) {
	rec := doJSON(t, newTestServer(nil, nil), http.MethodPost, "/v1/candidates/search", types.SearchRequest{})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h := newTestServer(&mockStore{}, nil)
	rec = doJSON(t, h, http.MethodPost, "/v1/candidates/search", types.SearchRequest{Experience: "4-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = newTestServer(&mockStore{err: fmt.Errorf("failed to list candidates: %w", errors.New("db down"))}, nil)
	rec = doJSON(t, h, http.MethodPost, "/v1/candidates/search", types.SearchRequest{Skills: "Go"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeBody[map[string]string](t, rec)["error"])
}

func TestRateLimit(t *testing.T) {
	h := New(Config{RateLimit: &ratelimit.Config{
		Enabled: true, DefaultLimit: 1, DefaultWindow: time.Hour,
	}}, nil, nil).Handler()

	rec := doJSON(t, h, http.MethodPost, "/v1/extract", types.ExtractRequest{Text: "Go"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/v1/extract", types.ExtractRequest{Text: "Go"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&ErrValidation{Field: "text", Message: "required"}, http.StatusBadRequest},
		{&ErrUnavailable{Dependency: "store"}, http.StatusServiceUnavailable},
		{&pipeline.ParseError{Step: pipeline.StepFetch}, http.StatusInternalServerError},
		{&pipeline.ParseError{Step: pipeline.StepSaveProfile, Cause: fmt.Errorf("failed to save profile: %w", db.ErrProfileNotFound)}, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

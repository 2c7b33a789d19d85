// Package server provides the HTTP REST API for resume extraction and candidate matching.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/extraction"
	"github.com/jonathan/talent-match/internal/server/ratelimit"
	"github.com/jonathan/talent-match/internal/types"
)

// maxRequestBytes bounds JSON request bodies.
const maxRequestBytes = 1 << 20

// CandidateStore lists candidates eligible for search.
type CandidateStore interface {
	ListCandidates(ctx context.Context, limit int) ([]types.Candidate, error)
}

// ResumeParser runs the fetch, extract and persist pipeline for one resume.
type ResumeParser interface {
	ParseResume(ctx context.Context, userID uuid.UUID, resumeURL string) (*types.ParseResult, error)
}

// JobQueue enqueues parse jobs for background workers.
type JobQueue interface {
	PublishParseJob(ctx context.Context, job types.ParseResumeRequest) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       CandidateStore
	parser      ResumeParser
	jobs        JobQueue
	extractor   *extraction.Extractor
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	searchLimit int
}

// Config holds server configuration
type Config struct {
	Port        int
	SearchLimit int
	Logger      *zap.Logger
	RateLimit   *ratelimit.Config
	Extractor   *extraction.Extractor
	Jobs        JobQueue // Optional; enables asynchronous parsing
}

// New creates a new server instance. store and parser may be nil; the routes
// that need them then answer 503.
func New(cfg Config, store CandidateStore, parser ResumeParser) *Server {
	s := &Server{
		store:       store,
		parser:      parser,
		jobs:        cfg.Jobs,
		extractor:   cfg.Extractor,
		logger:      cfg.Logger,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		searchLimit: cfg.SearchLimit,
	}
	if s.extractor == nil {
		s.extractor = extraction.New()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.searchLimit <= 0 {
		s.searchLimit = config.DefaultSearchLimit
	}
	port := cfg.Port
	if port == 0 {
		port = config.DefaultPort
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Resume downloads can be slow
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler wrapped in middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /v1/extract", s.handleExtract)
	mux.HandleFunc("POST /v1/match", s.handleMatch)
	mux.HandleFunc("POST /v1/resumes/parse", s.handleParseResume)
	mux.HandleFunc("POST /v1/resumes/parse/async", s.handleEnqueueParse)
	mux.HandleFunc("POST /v1/candidates/search", s.handleSearch)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start serves until ctx is canceled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr))
	})
}

// withRateLimit rejects clients that exceed their route's budget
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		}
		if !info.Allowed {
			retry := int(info.RetryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
			s.logger.Warn("rate limit exceeded", zap.String("client", clientID(r)), zap.String("path", r.URL.Path))
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID uses the IP from RemoteAddr.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON reads a bounded JSON body into v, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ErrValidation{Message: fmt.Sprintf("invalid JSON body: %v", err)}
	}
	return nil
}

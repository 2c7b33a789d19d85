// Package pipeline orchestrates resume parsing: fetch, text extraction, attribute extraction and persistence.
package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/extraction"
	"github.com/jonathan/talent-match/internal/fetch"
	"github.com/jonathan/talent-match/internal/ingestion"
	"github.com/jonathan/talent-match/internal/types"
)

// Step names a stage of the parse pipeline.
type Step string

const (
	StepFetch          Step = "fetch"
	StepExtractText    Step = "extract_text"
	StepExtractProfile Step = "extract_profile"
	StepSaveProfile    Step = "save_profile"
)

// ProgressEvent represents a progress update during a parse
type ProgressEvent struct {
	Step    Step   `json:"step"`
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// DocumentSource downloads a resume document.
type DocumentSource interface {
	Fetch(ctx context.Context, url string) (*fetch.Result, error)
}

// ProfileStore persists an extracted profile for a user.
type ProfileStore interface {
	SaveProfile(ctx context.Context, userID uuid.UUID, resumeURL string, profile types.ExtractedProfile) error
}

// ProfileCache remembers extracted profiles by document content hash.
type ProfileCache interface {
	Get(ctx context.Context, hash string) (*types.ExtractedProfile, error)
	Set(ctx context.Context, hash string, profile types.ExtractedProfile) error
}

// ResumeParser runs the parse pipeline for stored resumes.
type ResumeParser struct {
	source     DocumentSource
	store      ProfileStore
	cache      ProfileCache
	extractor  *extraction.Extractor
	logger     *zap.Logger
	onProgress ProgressCallback
}

// ParserOption configures a ResumeParser.
type ParserOption func(*ResumeParser)

// WithExtractor overrides the attribute extractor (e.g. to pin the current year in tests).
func WithExtractor(e *extraction.Extractor) ParserOption {
	return func(p *ResumeParser) {
		p.extractor = e
	}
}

// WithLogger sets the logger used for per-stage logging.
func WithLogger(l *zap.Logger) ParserOption {
	return func(p *ResumeParser) {
		p.logger = l
	}
}

// WithCache enables profile caching. Cache failures are logged and never fail a parse.
func WithCache(c ProfileCache) ParserOption {
	return func(p *ResumeParser) {
		p.cache = c
	}
}

// WithProgress registers a callback invoked after each stage.
func WithProgress(cb ProgressCallback) ParserOption {
	return func(p *ResumeParser) {
		p.onProgress = cb
	}
}

// NewResumeParser creates a parser. store may be nil, in which case profiles are not persisted.
func NewResumeParser(source DocumentSource, store ProfileStore, opts ...ParserOption) *ResumeParser {
	p := &ResumeParser{
		source:    source,
		store:     store,
		extractor: extraction.New(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseResume downloads the resume at resumeURL, extracts its attributes and stores them
// against userID. Any failure is returned as a *ParseError.
func (p *ResumeParser) ParseResume(ctx context.Context, userID uuid.UUID, resumeURL string) (*types.ParseResult, error) {
	start := time.Now()
	log := p.logger.With(zap.String("user_id", userID.String()), zap.String("url", resumeURL))

	log.Debug("fetching resume")
	doc, err := p.source.Fetch(ctx, resumeURL)
	if err != nil {
		log.Warn("resume fetch failed", zap.Error(err))
		return nil, &ParseError{UserID: userID, Step: StepFetch, Cause: err}
	}
	if doc.StatusCode != 0 && doc.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", doc.StatusCode)
		return nil, &ParseError{UserID: userID, Step: StepFetch, Cause: err}
	}
	p.emit(StepFetch, fmt.Sprintf("downloaded %d bytes", len(doc.Body)), userID, nil)

	text, meta, err := ingestion.Ingest(resumeURL, doc.ContentType, doc.Body)
	if err != nil {
		log.Warn("text extraction failed", zap.Error(err))
		return nil, &ParseError{UserID: userID, Step: StepExtractText, Cause: err}
	}
	log.Debug("extracted text",
		zap.String("format", string(meta.Format)),
		zap.Int("text_length", meta.TextLength),
		zap.String("hash", meta.Hash))
	p.emit(StepExtractText, fmt.Sprintf("extracted %d characters of %s text", meta.TextLength, meta.Format), userID, meta)

	profile := p.extractProfile(ctx, log, meta.Hash, text)
	p.emit(StepExtractProfile, fmt.Sprintf("found %d skills", len(profile.Skills)), userID, profile)

	if p.store != nil {
		if err := p.store.SaveProfile(ctx, userID, resumeURL, profile); err != nil {
			log.Error("profile save failed", zap.Error(err))
			return nil, &ParseError{UserID: userID, Step: StepSaveProfile, Cause: err}
		}
		p.emit(StepSaveProfile, "profile updated", userID, nil)
	}

	log.Info("resume parsed",
		zap.Int("skills", len(profile.Skills)),
		zap.Int("experience_years", profile.ExperienceYears),
		zap.String("location", profile.Location),
		zap.Duration("elapsed", time.Since(start)))

	return &types.ParseResult{
		ExtractedProfile: profile,
		TextLength:       meta.TextLength,
	}, nil
}

// extractProfile consults the cache before running the extractor.
func (p *ResumeParser) extractProfile(ctx context.Context, log *zap.Logger, hash, text string) types.ExtractedProfile {
	if p.cache == nil {
		return p.extractor.Extract(text)
	}

	cached, err := p.cache.Get(ctx, hash)
	if err != nil {
		log.Warn("profile cache read failed", zap.Error(err))
	}
	if cached != nil {
		log.Debug("profile cache hit", zap.String("hash", hash))
		return *cached
	}

	profile := p.extractor.Extract(text)
	if err := p.cache.Set(ctx, hash, profile); err != nil {
		log.Warn("profile cache write failed", zap.Error(err))
	}
	return profile
}

func (p *ResumeParser) emit(step Step, message string, userID uuid.UUID, content any) {
	if p.onProgress == nil {
		return
	}
	p.onProgress(ProgressEvent{
		Step:    step,
		Message: message,
		UserID:  userID.String(),
		Content: content,
	})
}

package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-match/internal/extraction"
	"github.com/jonathan/talent-match/internal/ingestion"
	"github.com/jonathan/talent-match/internal/types"
)

// DefaultConcurrency bounds parallel document extraction.
const DefaultConcurrency = 4

// BatchOptions configures ExtractFiles.
type BatchOptions struct {
	Concurrency int
	MaxBytes    int64
	Extractor   *extraction.Extractor
}

// FileResult is the outcome for one document. Err is set instead of Profile when
// the document could not be read.
type FileResult struct {
	Path       string                  `json:"path"`
	Profile    *types.ExtractedProfile `json:"profile,omitempty"`
	TextLength int                     `json:"text_length"`
	Metadata   *ingestion.Metadata     `json:"metadata,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Err        error                   `json:"-"`
}

// ExtractFiles extracts profiles from local documents in parallel. Results keep the
// order of paths. Per-file failures are recorded on the result; only context
// cancellation aborts the batch.
func ExtractFiles(ctx context.Context, paths []string, opts BatchOptions) ([]FileResult, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = ingestion.DefaultMaxResumeBytes
	}
	extractor := opts.Extractor
	if extractor == nil {
		extractor = extraction.New()
	}

	results := make([]FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i].Path = path
			text, meta, err := ingestion.IngestFromFile(path, maxBytes)
			if err != nil {
				results[i].Err = err
				results[i].Error = err.Error()
				return nil
			}

			profile := extractor.Extract(text)
			results[i].Profile = &profile
			results[i].TextLength = meta.TextLength
			results[i].Metadata = meta
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

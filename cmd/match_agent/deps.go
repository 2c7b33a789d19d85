package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/cache"
	"github.com/jonathan/talent-match/internal/fetch"
	"github.com/jonathan/talent-match/internal/pipeline"
)

// newFetcher builds a document fetcher from the loaded config.
func newFetcher() *fetch.Fetcher {
	cfg := currentConfig()
	opts := fetch.DefaultOptions()
	if cfg.FetchTimeoutSeconds > 0 {
		opts.Timeout = cfg.FetchTimeout()
	}
	if cfg.MaxResumeBytes > 0 {
		opts.MaxBytes = cfg.MaxResumeBytes
	}
	return fetch.NewFetcher(opts)
}

// newResumeParser builds the parse pipeline, attaching the Redis profile cache when
// REDIS_URL is set. An unreachable cache is logged and skipped. The returned func
// releases the cache connection.
func newResumeParser(ctx context.Context, store pipeline.ProfileStore, extra ...pipeline.ParserOption) (*pipeline.ResumeParser, func()) {
	cfg := currentConfig()
	log := currentLogger()

	opts := []pipeline.ParserOption{pipeline.WithLogger(log)}
	cleanup := func() {}

	if cfg.RedisURL != "" {
		profileCache, err := cache.Connect(ctx, cfg.RedisURL, cfg.CacheTTL())
		if err != nil {
			log.Warn("profile cache disabled", zap.Error(err))
		} else {
			opts = append(opts, pipeline.WithCache(profileCache))
			cleanup = func() { _ = profileCache.Close() }
		}
	}

	opts = append(opts, extra...)
	return pipeline.NewResumeParser(newFetcher(), store, opts...), cleanup
}

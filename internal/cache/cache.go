// Package cache stores extracted profiles in Redis keyed by the hash of the source document,
// so re-uploads of the same resume skip extraction.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/talent-match/internal/types"
)

// DefaultKeyPrefix namespaces profile keys.
const DefaultKeyPrefix = "talent:profile:"

// ProfileCache is a Redis-backed profile cache.
type ProfileCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// Connect parses a redis:// URL, pings the server and returns a cache.
// A zero ttl keeps entries until evicted.
func Connect(ctx context.Context, redisURL string, ttl time.Duration) (*ProfileCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return New(client, DefaultKeyPrefix, ttl), nil
}

// New wraps an existing client. An empty keyPrefix uses DefaultKeyPrefix.
func New(client *redis.Client, keyPrefix string, ttl time.Duration) *ProfileCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &ProfileCache{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (c *ProfileCache) key(hash string) string {
	return c.keyPrefix + hash
}

// Get returns the cached profile for a document hash, or nil when absent.
func (c *ProfileCache) Get(ctx context.Context, hash string) (*types.ExtractedProfile, error) {
	data, err := c.client.Get(ctx, c.key(hash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached profile %s: %w", hash, err)
	}

	var profile types.ExtractedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode cached profile %s: %w", hash, err)
	}
	normalized := profile.Normalized()
	return &normalized, nil
}

// Set stores profile under the document hash.
func (c *ProfileCache) Set(ctx context.Context, hash string, profile types.ExtractedProfile) error {
	data, err := json.Marshal(profile.Normalized())
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := c.client.Set(ctx, c.key(hash), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache profile %s: %w", hash, err)
	}
	return nil
}

// Delete drops a cached profile.
func (c *ProfileCache) Delete(ctx context.Context, hash string) error {
	return c.client.Del(ctx, c.key(hash)).Err()
}

// Close releases the underlying connection pool.
func (c *ProfileCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// result.go provides a Valkey-backed cache for compiled artifacts.
// Layout and article reads serve the JSON response body from here when
// possible so repeated GETs skip the DB query entirely.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// artifactKeyPrefix is the Valkey key prefix for cached artifacts.
	artifactKeyPrefix = "artifact:"

	// DefaultTTL is how long a cached artifact stays valid.
	DefaultTTL = 5 * time.Minute
)

// ResultCache manages compiled-artifact caching in Valkey.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new artifact cache backed by the given Valkey client.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{client: client, ttl: ttl}
}

// Get retrieves a cached artifact body. Returns false on miss.
func (rc *ResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, artifactKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("artifact cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("artifact cache hit", "key", key)
	return val, true
}

// Set stores an artifact body for a key with the configured TTL.
func (rc *ResultCache) Set(ctx context.Context, key string, body []byte) {
	if err := rc.client.Set(ctx, artifactKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("artifact cache set error", "key", key, "error", err)
	}
}

// Delete removes a single artifact from the cache.
func (rc *ResultCache) Delete(ctx context.Context, key string) {
	if err := rc.client.Del(ctx, artifactKeyPrefix+key).Err(); err != nil {
		slog.Warn("artifact cache delete error", "key", key, "error", err)
	}
	slog.Debug("artifact cache invalidated", "key", key)
}

// InvalidateAll removes all cached artifacts by scanning for the prefix.
func (rc *ResultCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, artifactKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("artifact cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("artifact cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("artifact cache fully cleared", "deleted", deleted)
	}
}

// ArticleKey returns the cache key for an article slug.
func ArticleKey(slug string) string {
	return "article:" + slug
}

// LayoutKey returns the cache key for a layout ID.
func LayoutKey(id string) string {
	return "layout:" + id
}

// ArticleListKey returns the cache key for the published-article index.
func ArticleListKey() string {
	return "articles:published"
}

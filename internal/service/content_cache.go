package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vezoprint/vezo-backend/internal/model"
)

const contentRevKey = "content:rev"

// ContentCache keeps public content listings in Redis. The marketing site
// requests the same handful of type filters on every page view, so list
// results are cached under a revision-scoped key; mutations bump the
// revision, which orphans every cached listing at once (old keys expire
// by TTL). All methods degrade silently: a nil client or a Redis error
// means the caller falls through to the store.
type ContentCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewContentCache creates a ContentCache. rdb may be nil (cache disabled).
func NewContentCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *ContentCache {
	return &ContentCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "content_cache").Logger(),
	}
}

func (c *ContentCache) listKey(ctx context.Context, filter model.ContentFilter) (string, error) {
	rev, err := c.rdb.Get(ctx, contentRevKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	active := "any"
	if filter.IsActive != nil {
		active = fmt.Sprintf("%t", *filter.IsActive)
	}
	return fmt.Sprintf("content:list:%d:%s:%s", rev, filter.Type, active), nil
}

// GetList returns a cached listing and whether it was present.
func (c *ContentCache) GetList(ctx context.Context, filter model.ContentFilter) ([]model.ContentItem, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	key, err := c.listKey(ctx, filter)
	if err != nil {
		c.log.Debug().Err(err).Msg("Cache lookup skipped")
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug().Err(err).Msg("Cache read failed")
		}
		return nil, false
	}

	var items []model.ContentItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Corrupt cache entry, dropping")
		c.rdb.Del(ctx, key)
		return nil, false
	}
	return items, true
}

// SetList stores a listing under the current revision.
func (c *ContentCache) SetList(ctx context.Context, filter model.ContentFilter, items []model.ContentItem) {
	if c == nil || c.rdb == nil {
		return
	}

	key, err := c.listKey(ctx, filter)
	if err != nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Debug().Err(err).Msg("Cache write failed")
	}
}

// Invalidate bumps the revision so every cached listing goes stale.
func (c *ContentCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, contentRevKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}

package database

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vezoprint/vezo-backend/internal/config"
)

// NewRedisClient creates and validates a Redis client connection.
// Redis only backs the public content list cache, so it is optional:
// an empty REDIS_URL or an unreachable server returns nil and caching
// is disabled.
func NewRedisClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		log.Info().Msg("Redis not configured, content cache disabled")
		return nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid Redis URL, content cache disabled")
		return nil
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", opt.Addr).Msg("Redis unreachable, content cache disabled")
		rdb.Close()
		return nil
	}

	log.Info().Str("addr", opt.Addr).Int("db", opt.DB).Msg("Redis connected")
	return rdb
}

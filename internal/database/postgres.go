package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/vezoprint/vezo-backend/internal/config"
)

// Postgres wraps the pgx connection pool with an explicit readiness state.
// The CMS degrades instead of crashing when the database is unreachable:
// content and admin endpoints return 503 until connectivity is restored,
// while the contact form and health check keep working.
type Postgres struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// Connect attempts to establish a PostgreSQL connection pool. A failure is
// logged but not returned: the handle stays in a not-ready state and the
// caller decides how to degrade.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) *Postgres {
	db := &Postgres{log: log.With().Str("component", "postgres").Logger()}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		db.log.Error().Err(err).Msg("Invalid database URL, starting without database")
		return db
	}
	poolCfg.MaxConns = cfg.MaxDBConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		db.log.Error().Err(err).Msg("Pool creation failed, starting without database")
		return db
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		db.log.Warn().Err(err).Msg("PostgreSQL unreachable, CMS endpoints degraded to 503")
	} else {
		db.log.Info().Int32("max_conns", cfg.MaxDBConns).Msg("PostgreSQL connected")
	}

	// Keep the pool either way: pgx re-dials on demand, so a database that
	// comes up later is picked up without a restart.
	db.pool = pool
	return db
}

// Pool exposes the underlying pgx pool. Nil when the handle never got past
// configuration parsing; callers behind the readiness gate never see that.
func (db *Postgres) Pool() *pgxpool.Pool {
	return db.pool
}

// Ready reports whether the database currently answers a ping.
func (db *Postgres) Ready(ctx context.Context) bool {
	if db.pool == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.pool.Ping(pingCtx) == nil
}

// Status returns a human-readable connection state for the health endpoint.
func (db *Postgres) Status(ctx context.Context) string {
	if db.pool == nil {
		return "unconfigured"
	}
	if db.Ready(ctx) {
		return "connected"
	}
	return "disconnected"
}

// Close releases the pool. Safe to call on a never-connected handle.
func (db *Postgres) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

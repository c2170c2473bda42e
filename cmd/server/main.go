package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/vezoprint/vezo-backend/internal/config"
	"github.com/vezoprint/vezo-backend/internal/database"
	"github.com/vezoprint/vezo-backend/internal/events"
	"github.com/vezoprint/vezo-backend/internal/handler"
	"github.com/vezoprint/vezo-backend/internal/logger"
	"github.com/vezoprint/vezo-backend/internal/mailer"
	"github.com/vezoprint/vezo-backend/internal/repository"
	"github.com/vezoprint/vezo-backend/internal/router"
	"github.com/vezoprint/vezo-backend/internal/service"
	"github.com/vezoprint/vezo-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Vezo CMS Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL (non-fatal) ─────────────────────────────
	// The server comes up without a database; CMS endpoints answer 503
	// until it is reachable.
	db := database.Connect(ctx, cfg, log)
	defer db.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb := database.NewRedisClient(ctx, cfg, log)
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(db)
	contentRepo := repository.NewContentRepository(db)

	// ─── Initialize Services ──────────────────────────────────────────
	hub := events.NewHub(log)
	cache := service.NewContentCache(rdb, cfg.CacheTTL, log)
	authService := service.NewAuthService(cfg, adminRepo)
	contentService := service.NewContentService(contentRepo, cache, hub, log)
	contactService := service.NewContactService(mailer.New(cfg, log), cfg.ContactReceiver, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Content: handler.NewContentHandler(contentService),
		Contact: handler.NewContactHandler(contactService),
		Health:  handler.NewHealthHandler(db),
		Events:  handler.NewEventsHandler(hub, log, cfg.AllowedOrigins),
	}

	// ─── Start Event Hub ──────────────────────────────────────────────
	hubCtx, hubCancel := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.Setup(authService, db, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	hubCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

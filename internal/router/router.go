package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vezoprint/vezo-backend/internal/config"
	"github.com/vezoprint/vezo-backend/internal/database"
	"github.com/vezoprint/vezo-backend/internal/handler"
	"github.com/vezoprint/vezo-backend/internal/middleware"
	"github.com/vezoprint/vezo-backend/internal/response"
	"github.com/vezoprint/vezo-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Content *handler.ContentHandler
	Contact *handler.ContactHandler
	Health  *handler.HealthHandler
	Events  *handler.EventsHandler
}

// Setup configures all Gin route groups with appropriate middlewares.
func Setup(
	authService *service.AuthService,
	db *database.Postgres,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	// Rate limiting mirrors the public site's exposure: a general API
	// limiter, a stricter one on credential endpoints, and one on
	// content mutations.
	apiLimiter := middleware.NewRateLimiter(120, time.Minute)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	contentLimiter := middleware.NewRateLimiter(30, time.Minute)
	router.Use(apiLimiter.Middleware())

	requireDB := middleware.RequireDB(db)
	requireJWT := middleware.RequireJWT(authService)

	// ─── Health ────────────────────────────────────────────────────────
	router.GET("/api/health", handlers.Health.Health)

	// ─── Admin auth ────────────────────────────────────────────────────
	admin := router.Group("/api/admin", requireDB)
	{
		admin.POST("/register", authLimiter.Middleware(), handlers.Auth.Register)
		admin.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		admin.GET("/me", requireJWT, handlers.Auth.Me)
	}

	// ─── Content ───────────────────────────────────────────────────────
	content := router.Group("/api/content", requireDB)
	{
		content.GET("", handlers.Content.List)
		content.GET("/:id", handlers.Content.Get)
		content.POST("", requireJWT, contentLimiter.Middleware(), handlers.Content.Create)
		content.PUT("/:id", requireJWT, contentLimiter.Middleware(), handlers.Content.Update)
		content.DELETE("/:id", requireJWT, middleware.RequireAdminRole(), handlers.Content.Delete)
		content.POST("/reorder", requireJWT, handlers.Content.Reorder)
	}

	// ─── Contact form ──────────────────────────────────────────────────
	router.POST("/api/contact", handlers.Contact.Send)

	// ─── Admin console event stream ────────────────────────────────────
	ws := router.Group("/ws/admin")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/content/stream", handlers.Events.ContentStream)
	}

	return router
}

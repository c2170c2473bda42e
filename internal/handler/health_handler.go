package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vezoprint/vezo-backend/internal/database"
)

// HealthHandler reports process and database status. It stays up even
// when the database is down — that is the point.
type HealthHandler struct {
	db *database.Postgres
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *database.Postgres) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	ready := h.db.Ready(ctx)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"database": gin.H{
			"status": h.db.Status(ctx),
			"ready":  ready,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

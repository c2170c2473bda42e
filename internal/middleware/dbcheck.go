package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vezoprint/vezo-backend/internal/database"
	"github.com/vezoprint/vezo-backend/internal/response"
)

const dbHint = "PostgreSQL is not reachable. Check DATABASE_URL in the server environment or contact the administrator."

// RequireDB gates store-backed endpoints behind database readiness.
// When Postgres is down the CMS answers 503 with operator guidance
// instead of letting requests hit a dead pool.
func RequireDB(db *database.Postgres) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !db.Ready(c.Request.Context()) {
			response.AbortFailWithHint(c, http.StatusServiceUnavailable, response.ErrDatabaseUnavailable, dbHint)
			return
		}
		c.Next()
	}
}

package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/vezoprint/vezo-backend/internal/events"
	"github.com/vezoprint/vezo-backend/internal/middleware"
	"github.com/vezoprint/vezo-backend/internal/response"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// EventsHandler streams content-change events to admin consoles over
// WebSocket, so concurrent editors see each other's changes live.
type EventsHandler struct {
	hub      *events.Hub
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(hub *events.Hub, log zerolog.Logger, allowedOrigins []string) *EventsHandler {
	return &EventsHandler{
		hub:      hub,
		log:      log.With().Str("component", "events_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// ContentStream godoc
// WS /ws/admin/content/stream?token=
// The connection is receive-only from the client's perspective; reads
// here only pump control frames and detect the peer going away.
func (h *EventsHandler) ContentStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	h.hub.Register(conn)
	h.log.Info().Str("username", claims.Username).Msg("Admin console connected")

	defer func() {
		h.hub.Unregister(conn)
		conn.Close()
		h.log.Debug().Str("username", claims.Username).Msg("Admin console disconnected")
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Msg("Unexpected close")
			}
			return
		}
	}
}

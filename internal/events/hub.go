package events

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/vezoprint/vezo-backend/internal/model"
)

// ContentAction names a mutation applied to the content store.
type ContentAction string

const (
	ActionCreated   ContentAction = "created"
	ActionUpdated   ContentAction = "updated"
	ActionDeleted   ContentAction = "deleted"
	ActionReordered ContentAction = "reordered"
)

// ContentEvent is pushed to connected admin consoles whenever content
// changes, so concurrent editors see each other's edits without polling.
type ContentEvent struct {
	Event  string            `json:"event"`
	Action ContentAction     `json:"action"`
	ID     string            `json:"id,omitempty"`
	Type   model.ContentType `json:"type,omitempty"`
}

const writeTimeout = 10 * time.Second

// Hub fans content events out to all connected WebSocket clients.
// All methods are safe on a nil receiver, which disables broadcasting.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	queue chan ContentEvent
	log   zerolog.Logger
}

// NewHub creates a Hub. Call Run in a goroutine to start delivery.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		queue: make(chan ContentEvent, 64),
		log:   log.With().Str("component", "events_hub").Logger(),
	}
}

// Run delivers queued events until the context is cancelled, then closes
// every remaining connection.
func (h *Hub) Run(ctx context.Context) {
	if h == nil {
		return
	}
	h.log.Info().Msg("Events hub started")

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			h.log.Info().Msg("Events hub stopped")
			return
		case evt := <-h.queue:
			h.deliver(evt)
		}
	}
}

// Register adds a connection to the broadcast set.
func (h *Hub) Register(conn *websocket.Conn) {
	if h == nil {
		return
	}
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()
	h.log.Debug().Int("clients", n).Msg("Client connected")
}

// Unregister removes a connection from the broadcast set.
func (h *Hub) Unregister(conn *websocket.Conn) {
	if h == nil {
		return
	}
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

// Broadcast queues an event for delivery. Never blocks the mutating
// request: when the queue is full the event is dropped.
func (h *Hub) Broadcast(evt ContentEvent) {
	if h == nil {
		return
	}
	evt.Event = "content"
	select {
	case h.queue <- evt:
	default:
		h.log.Warn().Str("action", string(evt.Action)).Msg("Event queue full, dropping")
	}
}

func (h *Hub) deliver(evt ContentEvent) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(evt); err != nil {
			h.Unregister(conn)
			conn.Close()
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}

// ClientCount reports how many consoles are connected.
func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

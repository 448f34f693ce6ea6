package websocket

import (
	"context"
	"log"
	"sync"
	"time"
)

// Event is one push message: a dynasty's leaderboards changed
type Event struct {
	Type      string    `json:"type"`
	DynastyID string    `json:"dynasty_id"`
	Mode      string    `json:"mode"`
	Timestamp time.Time `json:"timestamp"`
}

// EventTypeLeaderboardUpdate marks a recompute notification
const EventTypeLeaderboardUpdate = "leaderboard_update"

// Hub maintains the set of active clients and fans events out to the ones
// subscribed to the affected dynasty
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan Event
	register   chan *Client
	unregister chan *Client

	totalConnections int64
	totalEvents      int64
	metricsMu        sync.Mutex
}

// NewHub creates a new hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run(ctx context.Context) {
	log.Println("WebSocket hub started")

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Broadcast queues an event for fan-out, dropping it if the buffer is full
func (h *Hub) Broadcast(event Event) {
	select {
	case h.broadcast <- event:
	default:
		log.Println("broadcast buffer full, dropping event")
	}
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[c] = true

	h.metricsMu.Lock()
	h.totalConnections++
	h.metricsMu.Unlock()

	log.Printf("client %s connected (total: %d)", c.ID, len(h.clients))
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		log.Printf("client %s disconnected (total: %d)", c.ID, len(h.clients))
	}
}

func (h *Hub) broadcastEvent(event Event) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	sent := 0
	for _, c := range clients {
		if !c.WantsDynasty(event.DynastyID) {
			continue
		}
		if c.TrySend(event) {
			sent++
		} else {
			// Slow consumer, disconnect rather than block the hub
			log.Printf("client %s buffer full, disconnecting", c.ID)
			go h.Unregister(c)
		}
	}

	if sent > 0 {
		h.metricsMu.Lock()
		h.totalEvents++
		h.metricsMu.Unlock()
	}
}

// GetMetrics returns hub metrics
func (h *Hub) GetMetrics() map[string]interface{} {
	h.clientsMu.RLock()
	activeClients := len(h.clients)
	h.clientsMu.RUnlock()

	h.metricsMu.Lock()
	totalConnections := h.totalConnections
	totalEvents := h.totalEvents
	h.metricsMu.Unlock()

	return map[string]interface{}{
		"active_clients":    activeClients,
		"total_connections": totalConnections,
		"total_events":      totalEvents,
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	log.Printf("shutting down hub (%d active clients)", len(h.clients))

	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}

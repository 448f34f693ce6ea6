package websocket

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 512

	// Buffer size for outbound events
	sendBufferSize = 64
)

// subscribeMessage is the only inbound message: pick which dynasties to
// receive events for. An empty list means all of them.
type subscribeMessage struct {
	Type      string   `json:"type"`
	Dynasties []string `json:"dynasties"`
}

// Client represents one WebSocket connection
type Client struct {
	ID   string
	Send chan Event

	conn      *websocket.Conn
	hub       *Hub
	dynasties map[string]bool
	filterMu  sync.RWMutex
}

// NewClient creates a new client
func NewClient(id string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		ID:   id,
		Send: make(chan Event, sendBufferSize),
		conn: conn,
		hub:  hub,
	}
}

// WantsDynasty reports whether the client's subscription covers the dynasty.
// No subscription means everything.
func (c *Client) WantsDynasty(dynastyID string) bool {
	c.filterMu.RLock()
	defer c.filterMu.RUnlock()

	if len(c.dynasties) == 0 {
		return true
	}
	return c.dynasties[dynastyID]
}

// TrySend queues an event without blocking. Returns false when the client's
// buffer is full.
func (c *Client) TrySend(event Event) bool {
	select {
	case c.Send <- event:
		return true
	default:
		return false
	}
}

// ReadPump consumes subscription messages until the connection drops
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			var msg subscribeMessage
			if err := c.conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("client %s unexpected close: %v", c.ID, err)
				}
				return
			}

			if msg.Type == "subscribe" {
				c.setFilter(msg.Dynasties)
			}
		}
	}
}

// WritePump pushes queued events and keepalive pings to the connection
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case event, ok := <-c.Send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				log.Printf("client %s write error: %v", c.ID, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) setFilter(dynasties []string) {
	c.filterMu.Lock()
	defer c.filterMu.Unlock()

	if len(dynasties) == 0 {
		c.dynasties = nil
		return
	}
	c.dynasties = make(map[string]bool, len(dynasties))
	for _, id := range dynasties {
		c.dynasties[id] = true
	}
}

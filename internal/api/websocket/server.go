package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server serves the WebSocket push endpoint
type Server struct {
	port   int
	hub    *Hub
	server *http.Server
	ctx    context.Context
}

// NewServer creates a new WebSocket server
func NewServer(port int, hub *Hub) *Server {
	s := &Server{
		port: port,
		hub:  hub,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/ws/metrics", s.handleMetrics)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	return s
}

// Start starts the WebSocket server. The context bounds the lifetime of
// every client pump, not just the listener.
func (s *Server) Start(ctx context.Context) error {
	s.ctx = ctx
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := NewClient(uuid.NewString(), conn, s.hub)
	s.hub.Register(client)

	// Optional ?dynasty= shortcut so clients can subscribe on connect
	if dynastyID := r.URL.Query().Get("dynasty"); dynastyID != "" {
		client.setFilter([]string{dynastyID})
	}

	// The request context dies with the handler; pumps live as long as the
	// server does.
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	go client.WritePump(ctx)
	go client.ReadPump(ctx)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.hub.GetMetrics())
}

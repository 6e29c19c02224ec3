// Package console serves the live transcript over WebSocket. Each client
// gets the full turn snapshot on subscribe and again on every ledger change;
// inbound chat messages are forwarded into the session.
package console

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/eburon-ai/pitchlive/pkg/core/turns"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second

	// sendBuffer bounds queued frames per client; slow clients are dropped.
	sendBuffer = 32
)

// MessageSender forwards a chat message into the live session.
type MessageSender interface {
	SendMessage(ctx context.Context, text string) error
}

// turnsFrame is the outbound snapshot frame.
type turnsFrame struct {
	Type  string       `json:"type"`
	Turns []turns.Turn `json:"turns"`
}

// chatFrame is the inbound chat frame.
type chatFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Server broadcasts ledger snapshots to WebSocket subscribers.
type Server struct {
	ledger *turns.Ledger
	sender MessageSender
	logger *slog.Logger

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*client

	unsubscribe func()
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewServer creates a transcript server over ledger. sender may be nil for a
// read-only feed.
func NewServer(ledger *turns.Ledger, sender MessageSender, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		ledger:  ledger,
		sender:  sender,
		logger:  logger,
		clients: map[string]*client{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	s.unsubscribe = ledger.Subscribe(s.broadcast)
	return s
}

// Close detaches from the ledger and disconnects every client.
func (s *Server) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()
	for _, c := range clients {
		s.drop(c)
	}
}

// ServeHTTP upgrades the connection and starts the client pumps.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()
	s.logger.Info("console client connected", "client_id", c.id)

	// Snapshot first, before any change notification frames.
	if frame, err := s.snapshotFrame(); err == nil {
		c.send <- frame
	}

	go s.writePump(c)
	go s.readPump(c)
}

// broadcast pushes the current snapshot to every client. Clients whose queue
// is full are dropped rather than allowed to stall the ledger notifier.
func (s *Server) broadcast() {
	frame, err := s.snapshotFrame()
	if err != nil {
		s.logger.Warn("snapshot encode failed", "error", err)
		return
	}

	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		select {
		case c.send <- frame:
		case <-c.done:
		default:
			s.logger.Warn("console client too slow, dropping", "client_id", c.id)
			s.drop(c)
		}
	}
}

func (s *Server) snapshotFrame() ([]byte, error) {
	return json.Marshal(turnsFrame{Type: "turns", Turns: s.ledger.Snapshot()})
}

func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.drop(c)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.drop(c)
				return
			}
		}
	}
}

func (s *Server) readPump(c *client) {
	defer s.drop(c)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var frame chatFrame
		if err := json.Unmarshal(data, &frame); err != nil || frame.Type != "chat" {
			continue
		}
		if s.sender == nil {
			continue
		}
		if err := s.sender.SendMessage(context.Background(), frame.Text); err != nil {
			s.logger.Warn("chat forward failed", "client_id", c.id, "error", err)
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	_, present := s.clients[c.id]
	delete(s.clients, c.id)
	s.mu.Unlock()

	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
	if present {
		s.logger.Info("console client disconnected", "client_id", c.id)
	}
}

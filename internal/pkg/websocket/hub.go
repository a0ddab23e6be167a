package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campuserp/internal/app/session"
)

// eventBuffer bounds the events waiting for the hub loop
const eventBuffer = 256

// Hub maintains the active event streams and fans session events out to them
type Hub struct {
	// Registered connections organized by client session ID
	clients map[string]map[*Client]bool

	// Channel for session events to deliver
	broadcast chan *Message

	// Register requests from the connections
	register chan *Client

	// Unregister requests from connections
	unregister chan *Client

	// Closed when Run returns
	done chan struct{}

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// Message is a session event as sent over the websocket
type Message struct {
	// Type of message: "snapshot" on connect, "session" afterwards
	Type string `json:"type"`

	// Client session the event belongs to
	ClientID string `json:"clientId"`

	// Session state after the event
	Authenticated bool        `json:"isAuthenticated"`
	User          interface{} `json:"user"`

	// Timestamp of the mutation
	Timestamp time.Time `json:"timestamp"`
}

// Message types
const (
	MessageSnapshot = "snapshot"
	MessageSession  = "session"
)

// NewMessage converts a session event into a Message
func NewMessage(kind, clientID string, ev session.Event) *Message {
	msg := &Message{
		Type:          kind,
		ClientID:      clientID,
		Authenticated: ev.Authenticated,
		Timestamp:     ev.At,
	}
	if ev.Identity != nil {
		msg.User = ev.Identity
	}
	return msg
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Message, eventBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is done, then closes
// every connection
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Publish queues a session event for the streams of clientID. It never
// blocks: when the queue is full the event is dropped. Its signature matches
// session.Observer.
func (h *Hub) Publish(clientID string, ev session.Event) {
	select {
	case h.broadcast <- NewMessage(MessageSession, clientID, ev):
	default:
		h.logger.Warn().Str("clientId", clientID).Msg("Event queue full, dropping session event")
	}
}

func (h *Hub) enter(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// registerClient registers a new connection to the hub and queues the
// session snapshot as its first frame. Events published before this point
// are already reflected in the snapshot; later ones follow it.
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.clientID]; !ok {
		h.clients[client.clientID] = make(map[*Client]bool)
	}
	h.clients[client.clientID][client] = true

	if client.snapshot != nil {
		data, err := json.Marshal(NewMessage(MessageSnapshot, client.clientID, client.snapshot()))
		if err != nil {
			h.logger.Error().Err(err).Str("clientId", client.clientID).Msg("Failed to marshal session snapshot")
		} else {
			// the send buffer is empty until the stream is registered
			client.send <- data
		}
	}

	h.logger.Info().
		Str("clientId", client.clientID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Event stream registered")
}

// unregisterClient unregisters a connection from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	conns, ok := h.clients[client.clientID]
	if !ok {
		return
	}
	if _, ok := conns[client]; !ok {
		return
	}

	delete(conns, client)
	close(client.send)
	if len(conns) == 0 {
		delete(h.clients, client.clientID)
	}

	h.logger.Info().
		Str("clientId", client.clientID).
		Str("addr", client.conn.RemoteAddr().String()).
		Msg("Event stream unregistered")
}

// broadcastMessage delivers a message to every stream of its client session
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().Err(err).Str("clientId", message.ClientID).Msg("Failed to marshal session event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.clients[message.ClientID]
	if !ok {
		return
	}

	for client := range conns {
		select {
		case client.send <- data:
		default:
			// slow reader
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Str("clientId", message.ClientID).
		Bool("authenticated", message.Authenticated).
		Int("streams", len(conns)).
		Msg("Session event delivered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, conns := range h.clients {
		for client := range conns {
			h.removeLocked(client)
		}
	}
}

// GetClientsCount returns the number of open streams of a client session
func (h *Hub) GetClientsCount(clientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[clientID])
}

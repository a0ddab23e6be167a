package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/pkg/logger"
)

// Client is one client instance of the portal: a browser holding a client
// token. It owns exactly one Store and its own settings.
type Client struct {
	ID        string
	Store     *Store
	CreatedAt time.Time

	lastSeen atomic.Int64

	settingsMu sync.RWMutex
	settings   models.Settings

	unsubscribe func()
}

// LastSeen returns when the client was last resolved
func (c *Client) LastSeen() time.Time {
	return time.Unix(0, c.lastSeen.Load())
}

func (c *Client) touch(now time.Time) {
	c.lastSeen.Store(now.UnixNano())
}

// Settings returns the client's preferences
func (c *Client) Settings() models.Settings {
	c.settingsMu.RLock()
	defer c.settingsMu.RUnlock()
	return c.settings
}

// UpdateSettings applies fn to the client's preferences and returns the result
func (c *Client) UpdateSettings(fn func(*models.Settings)) models.Settings {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()
	fn(&c.settings)
	return c.settings
}

// Observer receives the events of every client in a registry
type Observer func(clientID string, ev Event)

// Stats summarises a registry
type Stats struct {
	Clients       int `json:"clients"`
	Authenticated int `json:"authenticated"`
}

// Registry tracks the live client sessions of the process
type Registry struct {
	verifier Verifier
	now      func() time.Time

	mu      sync.RWMutex
	clients map[string]*Client

	observersMu sync.RWMutex
	observers   map[uint64]Observer
	nextID      uint64
}

// NewRegistry creates an empty registry whose stores check credentials with verifier
func NewRegistry(verifier Verifier) *Registry {
	return &Registry{
		verifier:  verifier,
		now:       time.Now,
		clients:   make(map[string]*Client),
		observers: make(map[uint64]Observer),
	}
}

// Open creates a new anonymous client with a fresh ID
func (r *Registry) Open() *Client {
	return r.Adopt(uuid.New().String())
}

// Adopt returns the client with id, creating an anonymous one when it is not
// tracked, e.g. for a still valid token presented after a restart
func (r *Registry) Adopt(id string) *Client {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[id]; ok {
		c.touch(now)
		return c
	}

	c := &Client{
		ID:        id,
		Store:     NewStore(r.verifier),
		CreatedAt: now,
		settings:  models.DefaultSettings(),
	}
	c.touch(now)
	c.unsubscribe = c.Store.Subscribe(func(ev Event) {
		r.broadcast(id, ev)
	})
	r.clients[id] = c

	logger.Debug().Str("clientId", id).Msg("Client session opened")
	return c
}

// Resolve returns the tracked client with id and marks it as seen
func (r *Registry) Resolve(id string) (*Client, bool) {
	r.mu.RLock()
	c, ok := r.clients[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	c.touch(r.now())
	return c, true
}

// Forget signs the client out and stops tracking it
func (r *Registry) Forget(id string) bool {
	r.mu.Lock()
	c, ok := r.clients[id]
	if ok {
		delete(r.clients, id)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	r.close(c)
	return true
}

// Sweep forgets every client not seen for longer than idle and returns how
// many were removed
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var expired []*Client
	for id, c := range r.clients {
		if c.LastSeen().Before(cutoff) {
			expired = append(expired, c)
			delete(r.clients, id)
		}
	}
	r.mu.Unlock()

	for _, c := range expired {
		r.close(c)
	}
	return len(expired)
}

// Stats counts tracked and authenticated clients
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{Clients: len(r.clients)}
	for _, c := range r.clients {
		if c.Store.IsAuthenticated() {
			stats.Authenticated++
		}
	}
	return stats
}

// Observe registers o for the events of every client and returns a function
// that removes it
func (r *Registry) Observe(o Observer) func() {
	r.observersMu.Lock()
	id := r.nextID
	r.nextID++
	r.observers[id] = o
	r.observersMu.Unlock()

	return func() {
		r.observersMu.Lock()
		delete(r.observers, id)
		r.observersMu.Unlock()
	}
}

func (r *Registry) close(c *Client) {
	// clear first so observers see the sign-out
	c.Store.Clear()
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	logger.Debug().Str("clientId", c.ID).Msg("Client session closed")
}

func (r *Registry) broadcast(clientID string, ev Event) {
	r.observersMu.RLock()
	observers := make([]Observer, 0, len(r.observers))
	for _, o := range r.observers {
		observers = append(observers, o)
	}
	r.observersMu.RUnlock()

	for _, o := range observers {
		o(clientID, ev)
	}
}

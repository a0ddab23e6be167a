package session

import (
	"context"
	"sync"
	"time"

	"github.com/yigit/campuserp/internal/app/models"
)

// Event describes the session state right after a mutation
type Event struct {
	Identity      *models.Identity `json:"user"`
	Authenticated bool             `json:"isAuthenticated"`
	At            time.Time        `json:"at"`
}

// Listener is notified synchronously after every mutation. It must not call
// Authenticate or Clear on the store that notified it.
type Listener func(Event)

// Store holds the identity of one client session.
//
// Reads never block on a credential check in flight. Authenticate and Clear
// are serialised, so the identity always reflects the last completed mutation.
type Store struct {
	verifier Verifier
	now      func() time.Time

	// mutate serialises Authenticate and Clear
	mutate sync.Mutex

	mu       sync.RWMutex
	identity *models.Identity

	listenersMu sync.Mutex
	listeners   []*listenerEntry
}

type listenerEntry struct {
	fn Listener
}

// NewStore creates an anonymous store
func NewStore(verifier Verifier) *Store {
	return &Store{
		verifier: verifier,
		now:      time.Now,
	}
}

// Authenticate checks the credentials and, on success, replaces the current
// identity and notifies listeners. On failure nothing changes and nobody is
// notified.
func (s *Store) Authenticate(ctx context.Context, email, password string, role models.Role) bool {
	return s.Attempt(ctx, email, password, role) == nil
}

// Attempt is Authenticate reporting why it failed: apperrors.ErrInvalidCredentials
// for a rejected login, or the underlying error when the check itself failed.
// Cancelling ctx does not abort a check that has started.
func (s *Store) Attempt(ctx context.Context, email, password string, role models.Role) error {
	ctx = context.WithoutCancel(ctx)

	s.mutate.Lock()
	defer s.mutate.Unlock()

	identity, err := s.verifier.Verify(ctx, email, password, role)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = identity.Clone()
	s.mu.Unlock()

	s.notify(Event{Identity: identity.Clone(), Authenticated: true, At: s.now()})
	return nil
}

// Clear signs the session out. Listeners are only notified when an identity
// was actually removed.
func (s *Store) Clear() {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	s.mu.Lock()
	previous := s.identity
	s.identity = nil
	s.mu.Unlock()

	if previous == nil {
		return
	}

	s.notify(Event{Authenticated: false, At: s.now()})
}

// CurrentIdentity returns a copy of the signed-in identity, or nil
func (s *Store) CurrentIdentity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Clone()
}

// IsAuthenticated reports whether an identity is present
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Snapshot returns the current state as an Event
func (s *Store) Snapshot() Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Event{
		Identity:      s.identity.Clone(),
		Authenticated: s.identity != nil,
		At:            s.now(),
	}
}

// Subscribe registers fn and returns a function that removes it. Removing
// twice is a no-op.
func (s *Store) Subscribe(fn Listener) func() {
	entry := &listenerEntry{fn: fn}

	s.listenersMu.Lock()
	s.listeners = append(s.listeners, entry)
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			defer s.listenersMu.Unlock()
			for i, l := range s.listeners {
				if l == entry {
					s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store) notify(ev Event) {
	s.listenersMu.Lock()
	listeners := make([]*listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l.fn(ev)
	}
}

package session

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/pkg/logger"
)

func TestRegistryOpenAndResolve(t *testing.T) {
	r := NewRegistry(newTestVerifier(t, 0))

	c := r.Open()
	require.NotEmpty(t, c.ID)
	assert.False(t, c.Store.IsAuthenticated())

	got, ok := r.Resolve(c.ID)
	require.True(t, ok)
	assert.Same(t, c, got)

	_, ok = r.Resolve("missing")
	assert.False(t, ok)
}

func TestRegistryClientsAreIsolated(t *testing.T) {
	r := NewRegistry(newTestVerifier(t, 0))
	a := r.Open()
	b := r.Open()

	require.True(t, a.Store.Authenticate(context.Background(), "alex@student.edu", testPassword, models.RoleStudent))

	assert.True(t, a.Store.IsAuthenticated())
	assert.False(t, b.Store.IsAuthenticated())
	assert.Equal(t, Stats{Clients: 2, Authenticated: 1}, r.Stats())
}

func TestRegistryAdoptKeepsID(t *testing.T) {
	r := NewRegistry(newTestVerifier(t, 0))

	c := r.Adopt("client-1")
	assert.Equal(t, "client-1", c.ID)
	assert.Same(t, c, r.Adopt("client-1"))
}

func TestRegistryObserve(t *testing.T) {
	r := NewRegistry(newTestVerifier(t, 0))

	var mu sync.Mutex
	var got []string
	cancel := r.Observe(func(clientID string, ev Event) {
		mu.Lock()
		defer mu.Unlock()
		if ev.Authenticated {
			got = append(got, clientID+":in")
		} else {
			got = append(got, clientID+":out")
		}
	})

	c := r.Adopt("c1")
	require.True(t, c.Store.Authenticate(context.Background(), "sarah@staff.edu", testPassword, models.RoleStaff))
	c.Store.Clear()

	cancel()
	require.True(t, c.Store.Authenticate(context.Background(), "sarah@staff.edu", testPassword, models.RoleStaff))

	assert.Equal(t, []string{"c1:in", "c1:out"}, got)
}

func TestRegistryForgetClearsSession(t *testing.T) {
	r := NewRegistry(newTestVerifier(t, 0))

	var events []Event
	r.Observe(func(_ string, ev Event) { events = append(events, ev) })

	c := r.Open()
	require.True(t, c.Store.Authenticate(context.Background(), "admin@college.edu", testPassword, models.RoleAdmin))

	assert.True(t, r.Forget(c.ID))
	assert.False(t, r.Forget(c.ID))
	assert.False(t, c.Store.IsAuthenticated())

	_, ok := r.Resolve(c.ID)
	assert.False(t, ok)
	require.Len(t, events, 2)
	assert.False(t, events[1].Authenticated)
}

func TestRegistrySweep(t *testing.T) {
	r := NewRegistry(newTestVerifier(t, 0))
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	stale := r.Open()
	now = now.Add(45 * time.Minute)
	fresh := r.Open()
	now = now.Add(20 * time.Minute)

	var buf bytes.Buffer
	logger.Configure(logger.Config{Level: logger.InfoLevel, Output: &buf})
	t.Cleanup(func() { logger.Configure(logger.Config{Level: logger.InfoLevel, Pretty: true}) })

	removed := r.Sweep(time.Hour)
	assert.Equal(t, 1, removed)
	// the caller reports the sweep
	assert.Empty(t, buf.String())

	_, ok := r.Resolve(stale.ID)
	assert.False(t, ok)
	_, ok = r.Resolve(fresh.ID)
	assert.True(t, ok)
}

func TestClientSettings(t *testing.T) {
	r := NewRegistry(newTestVerifier(t, 0))
	c := r.Open()

	assert.Equal(t, models.DefaultSettings(), c.Settings())

	updated := c.UpdateSettings(func(s *models.Settings) {
		s.Theme = models.ThemeDark
		s.Notifications.SMS = true
	})
	assert.Equal(t, models.ThemeDark, updated.Theme)
	assert.True(t, c.Settings().Notifications.SMS)

	// other clients keep their defaults
	assert.Equal(t, models.ThemeLight, r.Open().Settings().Theme)
}

package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		authenticated bool
		want          Decision
	}{
		{"anonymous login renders", "/login", false, Decision{Action: Render}},
		{"authenticated login redirects", "/login", true, Decision{Action: Redirect, Location: "/dashboard"}},
		{"anonymous dashboard redirects", "/dashboard", false, Decision{Action: Redirect, Location: "/login"}},
		{"authenticated dashboard renders", "/dashboard", true, Decision{Action: Render}},
		{"anonymous root redirects", "/", false, Decision{Action: Redirect, Location: "/login"}},
		{"authenticated root renders", "/", true, Decision{Action: Render}},
		{"empty path is root", "", false, Decision{Action: Redirect, Location: "/login"}},
		{"trailing slash", "/login/", true, Decision{Action: Redirect, Location: "/dashboard"}},
		{"unknown path anonymous", "/nowhere", false, Decision{Action: Redirect, Location: "/login"}},
		{"unknown path authenticated", "/nowhere", true, Decision{Action: Render}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gate(tt.path, tt.authenticated))
		})
	}
}

func TestGateEveryScreen(t *testing.T) {
	for _, path := range Screens {
		anon := Gate(path, false)
		authed := Gate(path, true)

		if path == PathLogin {
			assert.Equal(t, Render, anon.Action, path)
			assert.Equal(t, PathDashboard, authed.Location, path)
			continue
		}
		assert.Equal(t, Decision{Action: Redirect, Location: PathLogin}, anon, path)
		assert.Equal(t, Render, authed.Action, path)
	}
}

func TestIsScreen(t *testing.T) {
	assert.True(t, IsScreen("/fees"))
	assert.True(t, IsScreen("/fees/"))
	assert.True(t, IsScreen(""))
	assert.False(t, IsScreen("/nowhere"))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "redirect", Redirect.String())
}

package routes

import "strings"

// Screen paths of the portal
const (
	PathRoot         = "/"
	PathLogin        = "/login"
	PathDashboard    = "/dashboard"
	PathAdmissions   = "/admissions"
	PathFees         = "/fees"
	PathHostel       = "/hostel"
	PathLibrary      = "/library"
	PathExaminations = "/examinations"
	PathProfile      = "/profile"
	PathSettings     = "/settings"
)

// Screens is the navigation surface
var Screens = []string{
	PathLogin,
	PathDashboard,
	PathAdmissions,
	PathFees,
	PathHostel,
	PathLibrary,
	PathExaminations,
	PathProfile,
	PathSettings,
	PathRoot,
}

// Action is what the gate decides for a navigation request
type Action int

const (
	// Render shows the requested screen
	Render Action = iota
	// Redirect sends the client to Decision.Location
	Redirect
)

func (a Action) String() string {
	if a == Redirect {
		return "redirect"
	}
	return "render"
}

// Decision is the outcome of Gate
type Decision struct {
	Action   Action
	Location string
}

// NormalizePath trims trailing slashes; the empty path is the root
func NormalizePath(path string) string {
	path = strings.TrimRight(path, "/")
	if path == "" {
		return PathRoot
	}
	return path
}

// Gate decides whether path may be rendered for a session that is, or is not,
// authenticated. It has no side effects.
func Gate(path string, authenticated bool) Decision {
	path = NormalizePath(path)

	switch {
	case path == PathLogin && authenticated:
		return Decision{Action: Redirect, Location: PathDashboard}
	case path != PathLogin && !authenticated:
		return Decision{Action: Redirect, Location: PathLogin}
	default:
		return Decision{Action: Render}
	}
}

// IsScreen reports whether path names a screen of the navigation surface
func IsScreen(path string) bool {
	path = NormalizePath(path)
	for _, s := range Screens {
		if s == path {
			return true
		}
	}
	return false
}

package models

import "strings"

// Role defines the portal role of an identity
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// AllRoles lists every role in display order
var AllRoles = []Role{RoleStudent, RoleStaff, RoleAdmin}

// IsValid reports whether r is one of the three known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role. Matching ignores case and
// surrounding whitespace; unknown values return false.
func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if !r.IsValid() {
		return "", false
	}
	return r, true
}

// String implements fmt.Stringer
func (r Role) String() string {
	return string(r)
}

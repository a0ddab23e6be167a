package dto

import (
	"github.com/yigit/campuserp/internal/app/auth"
	"github.com/yigit/campuserp/internal/app/models"
)

// LoginRequest represents login credentials. It binds from JSON and from a
// submitted form.
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"alex@student.edu"`
	Password string `json:"password" form:"password" binding:"required" example:"password"`
	Role     string `json:"role" form:"role" binding:"required,oneof=student staff admin" example:"student"`
}

// LoginScreen is the view model of the login screen
type LoginScreen struct {
	Roles       []models.Role `json:"roles"`
	DefaultRole models.Role   `json:"defaultRole"`
	Demo        []DemoAccount `json:"demoAccounts"`
}

// DemoAccount is a login hint shown on the login screen
type DemoAccount struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// SessionResponse describes the session of the calling client
type SessionResponse struct {
	ClientID      string             `json:"clientId"`
	Authenticated bool               `json:"isAuthenticated"`
	User          *models.Identity   `json:"user"`
	Navigation    []auth.NavItem     `json:"navigation,omitempty"`
	Capabilities  *auth.Capabilities `json:"capabilities,omitempty"`
}

// ClientTokenResponse carries the client token for non-browser callers
type ClientTokenResponse struct {
	ClientToken string `json:"clientToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campuserp/internal/app/auth"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/app/models/dto"
	"github.com/yigit/campuserp/internal/app/session"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
	jwtauth "github.com/yigit/campuserp/internal/pkg/auth"
)

// AuthService handles client sessions and authentication operations
type AuthService struct {
	registry   *session.Registry
	jwtService *jwtauth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(registry *session.Registry, jwtService *jwtauth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		registry:   registry,
		jwtService: jwtService,
		logger:     logger,
	}
}

// ClientToken is a signed client token with its expiry
type ClientToken struct {
	Value     string
	ExpiresAt time.Time
}

// OpenClient starts a new anonymous client session and signs a token for it
func (s *AuthService) OpenClient() (*session.Client, *ClientToken, error) {
	client := s.registry.Open()

	value, expiresAt, err := s.jwtService.GenerateClientToken(client.ID)
	if err != nil {
		s.registry.Forget(client.ID)
		return nil, nil, fmt.Errorf("failed to issue client token: %w", err)
	}

	s.logger.Debug().Str("clientId", client.ID).Time("expiresAt", expiresAt).Msg("Issued client token")
	return client, &ClientToken{Value: value, ExpiresAt: expiresAt}, nil
}

// ResolveClient returns the client session named by a client token. A valid
// token whose session is no longer tracked gets a fresh anonymous session
// under the same ID.
func (s *AuthService) ResolveClient(token string) (*session.Client, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	if client, ok := s.registry.Resolve(claims.ClientID); ok {
		return client, nil
	}
	return s.registry.Adopt(claims.ClientID), nil
}

// Login authenticates the client session with the submitted credentials.
// A rejected login returns apperrors.ErrInvalidCredentials and leaves the
// session as it was.
func (s *AuthService) Login(ctx context.Context, client *session.Client, req *dto.LoginRequest) (*models.Identity, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, req.Role)
	}

	err := client.Store.Attempt(ctx, req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.logger.Warn().
				Str("clientId", client.ID).
				Str("email", req.Email).
				Str("role", string(role)).
				Msg("Login rejected")
			return nil, err
		}
		s.logger.Error().Err(err).Str("clientId", client.ID).Msg("Login failed")
		return nil, err
	}

	identity := client.Store.CurrentIdentity()
	s.logger.Info().
		Str("clientId", client.ID).
		Str("email", identity.Email).
		Str("role", string(identity.Role)).
		Msg("User logged in successfully")
	return identity, nil
}

// Logout signs the client session out. It is a no-op for anonymous sessions.
func (s *AuthService) Logout(client *session.Client) {
	wasAuthenticated := client.Store.IsAuthenticated()
	client.Store.Clear()
	if wasAuthenticated {
		s.logger.Info().Str("clientId", client.ID).Msg("User logged out")
	}
}

// Session describes the client session: identity, navigation and capabilities
func (s *AuthService) Session(client *session.Client) dto.SessionResponse {
	resp := dto.SessionResponse{ClientID: client.ID}

	identity := client.Store.CurrentIdentity()
	if identity == nil {
		return resp
	}

	caps := auth.For(identity.Role)
	resp.Authenticated = true
	resp.User = identity
	resp.Navigation = auth.NavItems(identity.Role)
	resp.Capabilities = &caps
	return resp
}

// UpdateSettings applies a partial settings update to the client session
func (s *AuthService) UpdateSettings(client *session.Client, req *dto.UpdateSettingsRequest) models.Settings {
	updated := client.UpdateSettings(req.Apply)
	s.logger.Debug().Str("clientId", client.ID).Str("theme", string(updated.Theme)).Msg("Settings updated")
	return updated
}

// Stats summarises the tracked client sessions
func (s *AuthService) Stats() session.Stats {
	return s.registry.Stats()
}

// TokenLifetime is how long issued client tokens stay valid
func (s *AuthService) TokenLifetime() time.Duration {
	return s.jwtService.TokenLifetime()
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/app/models/dto"
	"github.com/yigit/campuserp/internal/app/repositories"
	"github.com/yigit/campuserp/internal/app/session"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
	jwtauth "github.com/yigit/campuserp/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	dir, err := repositories.NewMemoryDirectory(models.DemoIdentities())
	require.NoError(t, err)
	pw, err := jwtauth.NewDemoPasswordWithCost("password", bcrypt.MinCost)
	require.NoError(t, err)

	registry := session.NewRegistry(session.NewDirectoryVerifier(dir, pw, 0))
	jwtService := jwtauth.NewJWTService(jwtauth.JWTConfig{
		SecretKey:      "test-secret",
		ClientTokenExp: time.Hour,
		TokenIssuer:    "campuserp-test",
	})
	return NewAuthService(registry, jwtService, zerolog.Nop())
}

func TestOpenAndResolveClient(t *testing.T) {
	s := newTestAuthService(t)

	client, token, err := s.OpenClient()
	require.NoError(t, err)
	require.NotEmpty(t, token.Value)

	resolved, err := s.ResolveClient(token.Value)
	require.NoError(t, err)
	assert.Same(t, client, resolved)

	_, err = s.ResolveClient("garbage")
	assert.Error(t, err)
}

func TestResolveClientAdoptsUnknownSession(t *testing.T) {
	s := newTestAuthService(t)

	token, _, err := s.jwtService.GenerateClientToken("from-before-restart")
	require.NoError(t, err)

	client, err := s.ResolveClient(token)
	require.NoError(t, err)
	assert.Equal(t, "from-before-restart", client.ID)
	assert.False(t, client.Store.IsAuthenticated())
}

func TestLoginAndLogout(t *testing.T) {
	s := newTestAuthService(t)
	client, _, err := s.OpenClient()
	require.NoError(t, err)

	identity, err := s.Login(context.Background(), client, &dto.LoginRequest{
		Email:    "alex@student.edu",
		Password: "password",
		Role:     "student",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", identity.Name)

	sess := s.Session(client)
	assert.True(t, sess.Authenticated)
	require.NotNil(t, sess.Capabilities)
	assert.True(t, sess.Capabilities.ViewsOwnRecordsOnly)
	assert.Equal(t, "My Fees", sess.Navigation[1].Label)
	assert.Equal(t, session.Stats{Clients: 1, Authenticated: 1}, s.Stats())

	s.Logout(client)
	sess = s.Session(client)
	assert.False(t, sess.Authenticated)
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Navigation)

	// logging out twice is harmless
	s.Logout(client)
}

func TestLoginRejected(t *testing.T) {
	s := newTestAuthService(t)
	client, _, err := s.OpenClient()
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.LoginRequest
		want error
	}{
		{"wrong password", dto.LoginRequest{Email: "alex@student.edu", Password: "wrong", Role: "student"}, apperrors.ErrInvalidCredentials},
		{"unknown user", dto.LoginRequest{Email: "nobody@x.edu", Password: "password", Role: "admin"}, apperrors.ErrInvalidCredentials},
		{"unknown role", dto.LoginRequest{Email: "alex@student.edu", Password: "password", Role: "dean"}, apperrors.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(context.Background(), client, &tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, client.Store.IsAuthenticated())
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	s := newTestAuthService(t)
	client, _, err := s.OpenClient()
	require.NoError(t, err)

	dark := models.ThemeDark
	on := true
	got := s.UpdateSettings(client, &dto.UpdateSettingsRequest{
		Theme:   &dark,
		Privacy: &dto.PrivacySettingsPatch{ShowEmail: &on},
	})

	assert.Equal(t, models.ThemeDark, got.Theme)
	assert.True(t, got.Privacy.ShowEmail)
	assert.Equal(t, got, client.Settings())
}

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		ClientTokenExp: time.Hour,
		TokenIssuer:    "campuserp-test",
	})
}

func TestClientTokenRoundTrip(t *testing.T) {
	s := newTestJWTService()

	token, expiresAt, err := s.GenerateClientToken("client-42")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "client-42", claims.ClientID)
	assert.Equal(t, "campuserp-test", claims.Issuer)
}

func TestValidateTokenRejects(t *testing.T) {
	s := newTestJWTService()
	token, _, err := s.GenerateClientToken("client-42")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other", ClientTokenExp: time.Hour, TokenIssuer: "campuserp-test"})
	foreign, _, err := other.GenerateClientToken("client-42")
	require.NoError(t, err)

	wrongIssuer := NewJWTService(JWTConfig{SecretKey: "test-secret", ClientTokenExp: time.Hour, TokenIssuer: "someone-else"})
	otherIssuer, _, err := wrongIssuer.GenerateClientToken("client-42")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", apperrors.ErrTokenInvalid},
		{"malformed", "not-a-token", apperrors.ErrInvalidFormat},
		{"wrong signature", foreign, apperrors.ErrTokenInvalid},
		{"wrong issuer", otherIssuer, apperrors.ErrTokenInvalid},
		{"tampered", token[:len(token)-2] + "xx", apperrors.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateTokenExpired(t *testing.T) {
	s := newTestJWTService()
	issued := time.Now().Add(-2 * time.Hour)
	s.now = func() time.Time { return issued }

	token, _, err := s.GenerateClientToken("client-42")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestGenerateClientTokenRequiresID(t *testing.T) {
	_, _, err := newTestJWTService().GenerateClientToken("")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"  Bearer   abc.def.ghi ", "abc.def.ghi", false},
		{"abc.def.ghi", "abc.def.ghi", false},
		{"Bearer ", "", true},
		{"", "", true},
		{"Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDemoPassword(t *testing.T) {
	pw, err := NewDemoPasswordWithCost("password", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, pw.Matches("password"))
	assert.False(t, pw.Matches("Password"))
	assert.False(t, pw.Matches(""))
	assert.False(t, pw.Matches(strings.Repeat("p", 80)))

	var missing *DemoPassword
	assert.False(t, missing.Matches("password"))

	_, err = NewDemoPasswordWithCost("", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "other"))
}

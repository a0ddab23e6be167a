package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/app/repositories"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
	"github.com/yigit/campuserp/internal/pkg/auth"
	"github.com/yigit/campuserp/internal/pkg/logger"
)

// DefaultLatency is the simulated round trip of a credential check
const DefaultLatency = time.Second

// Verifier checks credentials and returns the matching identity
type Verifier interface {
	Verify(ctx context.Context, email, password string, role models.Role) (*models.Identity, error)
}

// DirectoryVerifier checks credentials against the credential directory and
// the shared demo password, after a fixed simulated latency
type DirectoryVerifier struct {
	directory repositories.DirectoryRepository
	password  *auth.DemoPassword
	latency   time.Duration
}

// NewDirectoryVerifier creates a verifier. A negative latency is treated as zero.
func NewDirectoryVerifier(directory repositories.DirectoryRepository, password *auth.DemoPassword, latency time.Duration) *DirectoryVerifier {
	if latency < 0 {
		latency = 0
	}
	return &DirectoryVerifier{
		directory: directory,
		password:  password,
		latency:   latency,
	}
}

// Verify waits out the simulated latency and then looks up the entry matching
// email and role. Unknown entries and wrong passwords both answer
// apperrors.ErrInvalidCredentials; a failed lookup wraps
// apperrors.ErrDirectoryUnavailable.
// The wait is not cut short by ctx.
func (v *DirectoryVerifier) Verify(ctx context.Context, email, password string, role models.Role) (*models.Identity, error) {
	if v.latency > 0 {
		time.Sleep(v.latency)
	}

	if !role.IsValid() {
		logger.Debug().Str("email", email).Str("role", string(role)).Msg("Credential check with unknown role")
		return nil, apperrors.ErrInvalidCredentials
	}

	identity, err := v.directory.FindByEmailAndRole(context.WithoutCancel(ctx), email, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Debug().Str("email", email).Str("role", string(role)).Msg("No directory entry for credentials")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", apperrors.ErrDirectoryUnavailable, err)
	}

	if !v.password.Matches(password) {
		logger.Debug().Str("email", email).Str("role", string(role)).Msg("Password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	return identity, nil
}

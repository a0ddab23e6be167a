package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
)

// DirectoryRepository is the credential directory: the fixed list of people
// who may sign in to the portal
type DirectoryRepository interface {
	// FindByEmailAndRole returns the entry matching both email and role, or
	// apperrors.ErrUserNotFound
	FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.Identity, error)
	// List returns every entry
	List(ctx context.Context) ([]models.Identity, error)
}

type directoryKey struct {
	email string
	role  models.Role
}

// MemoryDirectory is a DirectoryRepository backed by a fixed slice of entries
type MemoryDirectory struct {
	mu      sync.RWMutex
	entries []models.Identity
	index   map[directoryKey]int
}

// NewMemoryDirectory creates a directory from entries. Every entry needs an
// email and a valid role, and (email, role) pairs must be unique.
func NewMemoryDirectory(entries []models.Identity) (*MemoryDirectory, error) {
	d := &MemoryDirectory{
		entries: make([]models.Identity, 0, len(entries)),
		index:   make(map[directoryKey]int, len(entries)),
	}

	for i, e := range entries {
		if e.Email == "" {
			return nil, fmt.Errorf("%w: directory entry %d has no email", apperrors.ErrValidationFailed, i)
		}
		if !e.Role.IsValid() {
			return nil, fmt.Errorf("%w: directory entry %q has role %q", apperrors.ErrInvalidRole, e.Email, e.Role)
		}

		key := directoryKey{email: e.Email, role: e.Role}
		if _, exists := d.index[key]; exists {
			return nil, fmt.Errorf("%w: %s (%s)", apperrors.ErrDuplicateIdentity, e.Email, e.Role)
		}
		d.index[key] = len(d.entries)
		d.entries = append(d.entries, e)
	}

	return d, nil
}

// FindByEmailAndRole implements DirectoryRepository. The email match is exact.
func (d *MemoryDirectory) FindByEmailAndRole(_ context.Context, email string, role models.Role) (*models.Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	i, ok := d.index[directoryKey{email: email, role: role}]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	found := d.entries[i]
	return &found, nil
}

// List implements DirectoryRepository
func (d *MemoryDirectory) List(_ context.Context) ([]models.Identity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Identity, len(d.entries))
	copy(out, d.entries)
	return out, nil
}

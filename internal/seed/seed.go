package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
)

// DirectoryWriter is the part of the postgres directory the seeder needs
type DirectoryWriter interface {
	Create(ctx context.Context, e *models.Identity) error
}

// CreateDirectoryEntries inserts entries that are not in the directory yet.
// Existing (email, role) pairs are left untouched; other failures are collected
// and returned together after every entry has been tried.
func CreateDirectoryEntries(ctx context.Context, dir DirectoryWriter, entries []models.Identity, lgr zerolog.Logger) (int, error) {
	lgr.Info().Int("entries", len(entries)).Msg("Checking/Creating directory entries...")

	var (
		created  int
		finalErr error
	)
	for i := range entries {
		entry := entries[i]
		err := dir.Create(ctx, &entry)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrDuplicateIdentity):
			lgr.Debug().Str("email", entry.Email).Str("role", string(entry.Role)).Msg("Directory entry already exists")
		default:
			lgr.Error().Err(err).Str("email", entry.Email).Msg("Error creating directory entry")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("created", created).Msg("Directory seeding finished")
	return created, finalErr
}

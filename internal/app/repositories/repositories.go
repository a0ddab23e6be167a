package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campuserp/internal/app/models"
)

// Repositories holds all the repository instances
type Repositories struct {
	Directory DirectoryRepository
	Records   *RecordsRepository
}

// NewMemoryRepositories builds repositories around an in-memory directory
func NewMemoryRepositories(entries []models.Identity) (*Repositories, error) {
	dir, err := NewMemoryDirectory(entries)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Directory: dir,
		Records:   NewRecordsRepository(),
	}, nil
}

// NewPostgresRepositories builds repositories around the postgres directory
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Directory: NewPostgresDirectory(db),
		Records:   NewRecordsRepository(),
	}
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/pkg/apperrors"
	"github.com/yigit/campuserp/internal/pkg/dberrors"
	"github.com/yigit/campuserp/internal/pkg/logger"
)

const (
	directoryTable      = "directory_entries"
	emailRoleConstraint = "directory_entries_email_role_key"
)

var directoryColumns = []string{
	"id",
	"name",
	"email",
	"role",
	"COALESCE(avatar, '')",
	"COALESCE(department, '')",
	"COALESCE(branch, '')",
	"COALESCE(year, '')",
	"COALESCE(roll_number, '')",
}

// PostgresDirectory is a DirectoryRepository reading the directory_entries table
type PostgresDirectory struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresDirectory creates a new PostgresDirectory
func NewPostgresDirectory(db *pgxpool.Pool) *PostgresDirectory {
	return &PostgresDirectory{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PostgresDirectory) findQuery(email string, role models.Role) (string, []interface{}, error) {
	return r.sb.Select(directoryColumns...).
		From(directoryTable).
		Where(squirrel.Eq{"email": email, "role": string(role)}).
		Limit(1).
		ToSql()
}

func (r *PostgresDirectory) listQuery() (string, []interface{}, error) {
	return r.sb.Select(directoryColumns...).
		From(directoryTable).
		OrderBy("id").
		ToSql()
}

func (r *PostgresDirectory) insertQuery(e *models.Identity) (string, []interface{}, error) {
	return r.sb.Insert(directoryTable).
		Columns("id", "name", "email", "role", "avatar", "department", "branch", "year", "roll_number").
		Values(e.ID, e.Name, e.Email, string(e.Role), e.Avatar, e.Department, e.Branch, e.Year, e.RollNumber).
		ToSql()
}

func scanIdentity(row pgx.Row) (*models.Identity, error) {
	var (
		e    models.Identity
		role string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &role, &e.Avatar, &e.Department, &e.Branch, &e.Year, &e.RollNumber); err != nil {
		return nil, err
	}
	e.Role = models.Role(role)
	return &e, nil
}

// FindByEmailAndRole implements DirectoryRepository
func (r *PostgresDirectory) FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.Identity, error) {
	sql, args, err := r.findQuery(email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory lookup query: %w", err)
	}

	entry, err := scanIdentity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Str("role", string(role)).Msg("Error querying directory entry")
		return nil, fmt.Errorf("error querying directory entry: %w", err)
	}
	return entry, nil
}

// List implements DirectoryRepository
func (r *PostgresDirectory) List(ctx context.Context) ([]models.Identity, error) {
	sql, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build directory list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing directory entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Identity
	for rows.Next() {
		e, err := scanIdentity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning directory entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating directory entries: %w", err)
	}
	return entries, nil
}

// Create inserts a directory entry. Duplicate (email, role) pairs return
// apperrors.ErrDuplicateIdentity.
func (r *PostgresDirectory) Create(ctx context.Context, e *models.Identity) error {
	if !e.Role.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, e.Role)
	}

	sql, args, err := r.insertQuery(e)
	if err != nil {
		return fmt.Errorf("failed to build directory insert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailRoleConstraint) {
			return apperrors.ErrDuplicateIdentity
		}
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: id %q is taken", apperrors.ErrDuplicateIdentity, e.ID)
		}
		return fmt.Errorf("error creating directory entry: %w", err)
	}

	logger.Info().Str("email", e.Email).Str("role", string(e.Role)).Msg("Directory entry created")
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vezoprint/vezo-backend/internal/database"
	"github.com/vezoprint/vezo-backend/internal/model"
)

// AdminRepository handles admin account data access.
type AdminRepository interface {
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) error
	TouchLastLogin(ctx context.Context, id int) error
}

type pgAdminRepository struct {
	db *database.Postgres
}

// NewAdminRepository creates a Postgres-backed AdminRepository.
func NewAdminRepository(db *database.Postgres) AdminRepository {
	return &pgAdminRepository{db: db}
}

const adminColumns = `id, username, email, password_hash, role, created_at, last_login`

func scanAdmin(row pgx.Row) (*model.Admin, error) {
	a := &model.Admin{}
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Count returns the total number of admin accounts. The register endpoint
// uses this to decide whether open registration is still available.
func (r *pgAdminRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

// GetByID retrieves an admin by ID.
func (r *pgAdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return scanAdmin(r.db.Pool().QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

// GetByUsername retrieves an admin by their unique username.
func (r *pgAdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return scanAdmin(r.db.Pool().QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE username = $1`, username))
}

// Create inserts a new admin. A username or email collision surfaces as
// ErrDuplicate.
func (r *pgAdminRepository) Create(ctx context.Context, a *model.Admin) error {
	err := r.db.Pool().QueryRow(ctx,
		`INSERT INTO admins (username, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.Username, strings.ToLower(a.Email), a.PasswordHash, a.Role,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// TouchLastLogin stamps last_login with the current time.
func (r *pgAdminRepository) TouchLastLogin(ctx context.Context, id int) error {
	_, err := r.db.Pool().Exec(ctx,
		`UPDATE admins SET last_login = NOW() WHERE id = $1`, id)
	return err
}

package repository

import (
	"context"
	"errors"
	"time"

	"glisten-lounge/internal/domain/user"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail reconstructs the full account entity; this is the one read
// that needs the PIN hash and the active flag for credential checks.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	var (
		id        uuid.UUID
		pinHash   string
		role      string
		lastLogin *time.Time
		isActive  bool
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, pin_hash, role, last_login, is_active
		 FROM users WHERE email = $1`,
		email.Value()).Scan(&id, &pinHash, &role, &lastLogin, &isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	// The role column carries a CHECK constraint, so the cast is safe.
	return user.Reconstruct(id, email, pinHash, user.Role(role), lastLogin, isActive), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := r.db.QueryRow(ctx,
		`SELECT id, email, role, last_login, is_active
		 FROM users WHERE id = $1`,
		id).Scan(&rm.ID, &rm.Email, &rm.Role, &rm.LastLogin, &rm.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login = NOW(), updated_at = NOW() WHERE id = $1`,
		userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

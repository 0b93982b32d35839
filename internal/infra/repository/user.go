package repository

import (
	"context"
	"log/slog"

	"suitenest/internal/domain/user"
	"suitenest/internal/infra"
	"suitenest/internal/infra/db"
	"suitenest/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertUserSQL = `
INSERT INTO users (id, first_name, last_name, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateUserLastLoginSQL = `UPDATE users SET last_login = now() WHERE id = $1`
)

type UserRepository struct {
	logger *slog.Logger
}

func NewUserRepository(logger *slog.Logger) *UserRepository {
	return &UserRepository{logger: logger}
}

// Create fails with KindDuplicateKey when the email is already registered.
func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, insertUserSQL,
		pgconv.UUIDToPgtype(u.ID()),
		u.FirstName(),
		u.LastName(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgError(err), "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, updateUserLastLoginSQL, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgError(err), "failed to update user last login", err)
	}
	return nil
}

package readstore

import (
	"context"
	"log/slog"

	"suitenest/internal/infra"
	"suitenest/internal/infra/db"
	"suitenest/internal/pkg/pgconv"
	"suitenest/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	selectUserByIDSQL = `
SELECT id, first_name, last_name, email, role, is_active, password_hash
FROM users
WHERE id = $1`

	selectUserByEmailSQL = `
SELECT id, first_name, last_name, email, role, is_active, password_hash
FROM users
WHERE email = lower($1)`
)

type UserReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewUserReadStore(db db.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{
		db:     db,
		logger: logger,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, _, err := scanUser(r.db.QueryRow(ctx, selectUserByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		kind := infra.ClassifyPgError(err)
		if kind == infra.KindNotFound {
			return nil, infra.WrapRepoErr(r.logger, kind, "user not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, kind, "failed to find user by ID", err)
	}
	return view, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	view, hash, err := scanUser(r.db.QueryRow(ctx, selectUserByEmailSQL, email))
	if err != nil {
		kind := infra.ClassifyPgError(err)
		if kind == infra.KindNotFound {
			return nil, "", infra.WrapRepoErr(r.logger, kind, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(r.logger, kind, "failed to find user by email", err)
	}
	return view, hash, nil
}

func scanUser(row pgx.Row) (*queries.AuthorizedUserView, string, error) {
	var (
		id                  pgtype.UUID
		firstName, lastName string
		email, role         string
		isActive            bool
		passwordHash        string
	)
	if err := row.Scan(&id, &firstName, &lastName, &email, &role, &isActive, &passwordHash); err != nil {
		return nil, "", err
	}

	return &queries.AuthorizedUserView{
		ID:        pgconv.UUIDFromPgtype(id),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Role:      role,
		IsActive:  isActive,
	}, passwordHash, nil
}

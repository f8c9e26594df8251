package repository

import (
	"context"

	"storefront/internal/domain/user"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*commands.UserSnapshot, error) {
	var snap commands.UserSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role FROM users WHERE email = $1`,
		email,
	).Scan(&snap.ID, &snap.Name, &snap.Email, &snap.PasswordHash, &snap.Role)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snap, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	var snap commands.UserSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role FROM users WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.Name, &snap.Email, &snap.PasswordHash, &snap.Role)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &snap, nil
}

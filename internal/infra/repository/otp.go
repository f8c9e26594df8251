package repository

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
)

type OTPRepository struct {
	db DBTX
}

func NewOTPRepository(db DBTX) *OTPRepository {
	return &OTPRepository{db: db}
}

func (r *OTPRepository) Create(ctx context.Context, email, code string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO otps (email, code, expires_at) VALUES ($1, $2, $3)`,
		email, code, expiresAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to store otp", err)
	}
	return nil
}

// FindValid returns the matching unexpired code for the email, if any.
func (r *OTPRepository) FindValid(ctx context.Context, email, code string, now time.Time) (*commands.OTPRecord, error) {
	var rec commands.OTPRecord
	err := r.db.QueryRow(ctx,
		`SELECT id, email, code, expires_at
		 FROM otps
		 WHERE email = $1 AND code = $2 AND expires_at > $3
		 ORDER BY created_at DESC
		 LIMIT 1`,
		email, code, now,
	).Scan(&rec.ID, &rec.Email, &rec.Code, &rec.ExpiresAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("otp not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find otp", err)
	}
	return &rec, nil
}

func (r *OTPRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM otps WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete otp", err)
	}
	return nil
}

// DeleteExpired clears stale codes; called opportunistically on registration.
func (r *OTPRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.Exec(ctx, `DELETE FROM otps WHERE expires_at <= $1`, now)
	if err != nil {
		return infra.WrapRepoErr("failed to delete expired otps", err)
	}
	return nil
}

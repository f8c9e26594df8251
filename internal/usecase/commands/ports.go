package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so repository methods
// can run standalone or inside a caller-managed transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type CouponPatch struct {
	Code           *string
	DiscountAmount *decimal.Decimal
	ExpiresAt      *time.Time
	MinOrderValue  *decimal.Decimal
	MaxUses        *int32
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImageURL    *string
	Category    *string
	Rating      *float64
	IsNew       *bool
	Discount    *float64
	Stock       *int32
	Usage       *string
}

// Mailer delivers one-time codes out of band.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type CouponSnapshot struct {
	ID             uuid.UUID
	Code           string
	DiscountAmount decimal.Decimal
	ExpiresAt      time.Time
	UsedCount      int32
	MinOrderValue  *decimal.Decimal
	MaxUses        *int32
}

type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

type OTPRecord struct {
	ID        uuid.UUID
	Email     string
	Code      string
	ExpiresAt time.Time
}

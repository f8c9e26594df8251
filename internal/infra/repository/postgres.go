package repository

import (
	"storefront/internal/usecase/commands"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so repository methods
// can run standalone or inside a caller-managed transaction.
type DBTX = commands.DBTX

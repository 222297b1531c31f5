package repository

//go:generate go tool mockery

import (
	"context"
	"time"

	"chaosshare/internal/domain"
)

const shortCodeConstraint = "shares_short_code_key"

// Tx is the part of the store that runs inside WithinTx. The quota read and
// the insert must go through the same Tx to be checked atomically.
type Tx interface {
	// SharesSince returns the owner's shares with created_at >= since, oldest first.
	SharesSince(ctx context.Context, ownerID string, since time.Time) ([]domain.Share, error)
	// Insert returns ErrCodeTaken when the short code already exists.
	Insert(ctx context.Context, s domain.NewShare) (*domain.Share, error)
}

type Stats struct {
	Total   int64
	Expired int64
}

// PoolStats is a driver-neutral view of the connection pool.
type PoolStats struct {
	Acquired int
	Idle     int
	Total    int
	Max      int
}

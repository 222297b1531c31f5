package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"chaosshare/internal/domain"
	"chaosshare/internal/repository"
)

type Store interface {
	WithinTx(ctx context.Context, fn func(repository.Tx) error) error
	ActiveCodeExists(ctx context.Context, code string, now time.Time) (bool, error)
	FindByShortCode(ctx context.Context, code string) (*domain.Share, error)
	IncrementViewCount(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID string, now time.Time) ([]domain.Share, error)
	DeleteOwned(ctx context.Context, id int64, ownerID string) (string, error)
	DeleteByOwner(ctx context.Context, ownerID string) ([]string, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type CodeGenerator interface {
	Generate() string
}

type Cache interface {
	Get(code string) (*domain.Share, bool)
	Set(share *domain.Share, ttl time.Duration)
	Delete(code string)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

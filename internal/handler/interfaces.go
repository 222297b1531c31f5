package handler

//go:generate go tool mockery

import (
	"context"

	"chaosshare/internal/domain"
)

type ShareService interface {
	CreateShare(ctx context.Context, in domain.CreateShareInput) (*domain.CreateShareResult, error)
	GetShareByCode(ctx context.Context, code string) (*domain.Share, error)
	ListOwnerShares(ctx context.Context, ownerID string) ([]domain.Share, error)
	QuotaStatus(ctx context.Context, ownerID string) (*domain.QuotaStatus, error)
	DeleteShare(ctx context.Context, ownerID string, id int64) error
	PurgeOwner(ctx context.Context, ownerID string) (int, error)
}

type ShareValidator interface {
	ValidateShare(mapType string, params []byte) ([]byte, error)
	ResolveTTL(days int) (int, error)
}

type IDCodec interface {
	Encode(id int64) (string, error)
	Decode(public string) (int64, error)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}

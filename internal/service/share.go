package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"chaosshare/internal/config"
	"chaosshare/internal/domain"
	"chaosshare/internal/expiry"
	"chaosshare/internal/repository"
	"chaosshare/internal/shortcode"
)

const txRetryBaseDelay = 10 * time.Millisecond

// Policy bounds share creation per owner.
type Policy struct {
	Quota        int
	Window       time.Duration
	ResetGrace   time.Duration
	CodeAttempts int
	TxAttempts   int
	PrecheckCode bool
}

func PolicyFromConfig(cfg *config.ShareConfig) Policy {
	return Policy{
		Quota:        cfg.Quota,
		Window:       cfg.Window,
		ResetGrace:   cfg.ResetGrace,
		CodeAttempts: cfg.CodeAttempts,
		TxAttempts:   cfg.TxAttempts,
		PrecheckCode: cfg.PrecheckCode,
	}
}

type Option func(*ShareService)

// WithClock replaces time.Now, mostly for tests that move time forward.
func WithClock(now func() time.Time) Option {
	return func(s *ShareService) {
		s.now = now
	}
}

type ShareService struct {
	store    Store
	codes    CodeGenerator
	cache    Cache
	recorder BusinessRecorder
	logger   *slog.Logger
	policy   Policy
	now      func() time.Time
}

func NewShareService(
	store Store,
	codes CodeGenerator,
	cache Cache,
	recorder BusinessRecorder,
	logger *slog.Logger,
	policy Policy,
	opts ...Option,
) *ShareService {
	s := &ShareService{
		store:    store,
		codes:    codes,
		cache:    cache,
		recorder: recorder,
		logger:   logger,
		policy:   policy,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ShareService) Policy() Policy {
	return s.policy
}

// ReserveUniqueCode returns a code no live share uses right now. The answer
// can be stale by the time the caller inserts, so CreateShare still handles
// collisions on its own.
func (s *ShareService) ReserveUniqueCode(ctx context.Context) (string, error) {
	now := s.now()
	for range s.policy.CodeAttempts {
		code := s.codes.Generate()
		exists, err := s.store.ActiveCodeExists(ctx, code, now)
		if err != nil {
			return "", fmt.Errorf("failed to check short code: %w", err)
		}
		if !exists {
			return code, nil
		}
		s.recorder.RecordBusiness("share_code_collision", 1, map[string]string{"stage": "precheck"})
	}
	s.recorder.RecordBusiness("share_generation_exhausted", 1, map[string]string{"stage": "precheck"})
	return "", ErrGenerationExhausted
}

// CreateShare checks the owner's quota and inserts the share in one
// transaction. A quota rejection is a result, not an error.
func (s *ShareService) CreateShare(ctx context.Context, in domain.CreateShareInput) (*domain.CreateShareResult, error) {
	if !in.ExpiresAt.After(s.now()) {
		return nil, ErrInvalidExpiry
	}

	candidate := in.CandidateCode
	if candidate == "" {
		if s.policy.PrecheckCode {
			code, err := s.ReserveUniqueCode(ctx)
			if err != nil {
				return nil, err
			}
			candidate = code
		} else {
			candidate = s.codes.Generate()
		}
	}

	var (
		result *domain.CreateShareResult
		err    error
	)
	for attempt := 1; ; attempt++ {
		result, err = s.createInTx(ctx, in, candidate, s.now())
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrSerialization) || attempt >= s.policy.TxAttempts {
			if errors.Is(err, ErrGenerationExhausted) {
				s.recorder.RecordBusiness("share_generation_exhausted", 1, map[string]string{"stage": "insert"})
			}
			return nil, err
		}

		s.logger.Warn("share transaction conflict, retrying",
			slog.String("owner_id", in.OwnerID),
			slog.Int("attempt", attempt))
		if err := sleepBackoff(ctx, attempt); err != nil {
			return nil, err
		}
	}

	if result.Accepted {
		s.recorder.RecordBusiness("share_created", 1, map[string]string{"map_type": in.MapType})
	} else {
		s.recorder.RecordBusiness("share_rate_limited", 1, map[string]string{"owner_id": in.OwnerID})
	}
	return result, nil
}

func (s *ShareService) createInTx(
	ctx context.Context,
	in domain.CreateShareInput,
	candidate string,
	now time.Time,
) (*domain.CreateShareResult, error) {
	var result *domain.CreateShareResult

	err := s.store.WithinTx(ctx, func(tx repository.Tx) error {
		recent, err := tx.SharesSince(ctx, in.OwnerID, now.Add(-s.policy.Window))
		if err != nil {
			return fmt.Errorf("failed to read recent shares: %w", err)
		}

		if len(recent) >= s.policy.Quota {
			result = &domain.CreateShareResult{
				Reason:  domain.RejectRateLimited,
				ResetAt: recent[0].CreatedAt.Add(s.policy.Window + s.policy.ResetGrace),
			}
			return nil
		}

		code := candidate
		for attempt := 1; ; attempt++ {
			share, err := tx.Insert(ctx, domain.NewShare{
				ShortCode:  code,
				OwnerID:    in.OwnerID,
				MapType:    in.MapType,
				Parameters: in.Parameters,
				CreatedAt:  now,
				ExpiresAt:  in.ExpiresAt,
			})
			if err == nil {
				result = &domain.CreateShareResult{
					Accepted:       true,
					Share:          share,
					RemainingQuota: s.policy.Quota - len(recent) - 1,
				}
				return nil
			}
			if !errors.Is(err, repository.ErrCodeTaken) {
				return fmt.Errorf("failed to insert share: %w", err)
			}

			s.recorder.RecordBusiness("share_code_collision", 1, map[string]string{"stage": "insert"})
			if attempt >= s.policy.CodeAttempts {
				return ErrGenerationExhausted
			}
			code = s.codes.Generate()
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func sleepBackoff(ctx context.Context, attempt int) error {
	base := txRetryBaseDelay * time.Duration(attempt)
	delay := base/2 + time.Duration(rand.Int64N(int64(base)))

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// GetShareByCode serves the public read path. Expired shares are deleted on
// access. The view counter is bumped on a best-effort basis, except that a
// share missing from the store is reported as not found even on a cache hit.
func (s *ShareService) GetShareByCode(ctx context.Context, code string) (*domain.Share, error) {
	if !shortcode.Valid(code) {
		return nil, ErrShareNotFound
	}

	now := s.now()
	share, cached := s.cache.Get(code)
	if !cached {
		found, err := s.store.FindByShortCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrShareNotFound
			}
			return nil, fmt.Errorf("failed to find share: %w", err)
		}
		share = found
	}

	if expiry.IsExpired(now, share.ExpiresAt) {
		s.cache.Delete(code)
		if err := s.store.Delete(ctx, share.ID); err != nil {
			s.logger.Error("failed to delete expired share",
				slog.String("short_code", code),
				slog.String("error", err.Error()))
		}
		s.recorder.RecordBusiness("share_expired", 1, map[string]string{"map_type": share.MapType})
		return nil, ErrShareExpired
	}

	if !cached {
		s.cache.Set(share, share.ExpiresAt.Sub(now))
	}

	view := *share
	count, err := s.store.IncrementViewCount(ctx, share.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// Deleted elsewhere while cached here.
		s.cache.Delete(code)
		return nil, ErrShareNotFound
	case err != nil:
		s.logger.Warn("failed to increment view count",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
	default:
		view.ViewCount = count
	}

	s.recorder.RecordBusiness("share_viewed", 1, map[string]string{
		"short_code": code,
		"map_type":   share.MapType,
	})
	return &view, nil
}

func (s *ShareService) ListOwnerShares(ctx context.Context, ownerID string) ([]domain.Share, error) {
	shares, err := s.store.ListByOwner(ctx, ownerID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	return shares, nil
}

// QuotaStatus reports the owner's usage of the current window. ResetAt is set
// only when no quota is left.
func (s *ShareService) QuotaStatus(ctx context.Context, ownerID string) (*domain.QuotaStatus, error) {
	now := s.now()

	var recent []domain.Share
	err := s.store.WithinTx(ctx, func(tx repository.Tx) error {
		var err error
		recent, err = tx.SharesSince(ctx, ownerID, now.Add(-s.policy.Window))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read recent shares: %w", err)
	}

	status := &domain.QuotaStatus{
		Limit:     s.policy.Quota,
		Used:      len(recent),
		Remaining: max(0, s.policy.Quota-len(recent)),
	}
	if status.Remaining == 0 {
		resetAt := recent[0].CreatedAt.Add(s.policy.Window + s.policy.ResetGrace)
		status.ResetAt = &resetAt
	}
	return status, nil
}

func (s *ShareService) DeleteShare(ctx context.Context, ownerID string, id int64) error {
	code, err := s.store.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrShareNotFound
		}
		return fmt.Errorf("failed to delete share: %w", err)
	}
	s.cache.Delete(code)
	s.recorder.RecordBusiness("share_deleted", 1, nil)
	return nil
}

// PurgeOwner removes every share of the owner, expired or not.
func (s *ShareService) PurgeOwner(ctx context.Context, ownerID string) (int, error) {
	codes, err := s.store.DeleteByOwner(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to purge shares: %w", err)
	}
	for _, code := range codes {
		s.cache.Delete(code)
	}
	s.recorder.RecordBusiness("shares_purged", float64(len(codes)), map[string]string{
		"owner_id": ownerID,
	})
	return len(codes), nil
}

func (s *ShareService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired shares: %w", err)
	}
	s.recorder.RecordBusiness("shares_swept", float64(n), nil)
	return n, nil
}

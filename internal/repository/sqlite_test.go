package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaosshare/internal/domain"
	"chaosshare/internal/repository"
)

var baseTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newSQLite(t *testing.T) *repository.SQLiteRepository {
	t.Helper()
	repo, err := repository.NewSQLiteRepository(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo
}

func newShare(code, owner string, createdAt time.Time) domain.NewShare {
	return domain.NewShare{
		ShortCode:  code,
		OwnerID:    owner,
		MapType:    "lorenz",
		Parameters: json.RawMessage(`{"sigma":10,"rho":28,"beta":2.667}`),
		CreatedAt:  createdAt,
		ExpiresAt:  createdAt.Add(30 * 24 * time.Hour),
	}
}

func insert(t *testing.T, repo *repository.SQLiteRepository, s domain.NewShare) *domain.Share {
	t.Helper()
	var out *domain.Share
	err := repo.WithinTx(context.Background(), func(tx repository.Tx) error {
		var err error
		out, err = tx.Insert(context.Background(), s)
		return err
	})
	require.NoError(t, err)
	return out
}

func TestSQLite_InsertAndFind(t *testing.T) {
	repo := newSQLite(t)

	created := insert(t, repo, newShare("AB12CD34", "alice", baseTime))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "AB12CD34", created.ShortCode)
	assert.Zero(t, created.ViewCount)
	assert.True(t, baseTime.Equal(created.CreatedAt))

	found, err := repo.FindByShortCode(context.Background(), "AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "alice", found.OwnerID)
	assert.JSONEq(t, `{"sigma":10,"rho":28,"beta":2.667}`, string(found.Parameters))
}

func TestSQLite_FindByShortCode_NotFound(t *testing.T) {
	repo := newSQLite(t)

	_, err := repo.FindByShortCode(context.Background(), "missing0")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLite_Insert_DuplicateCode(t *testing.T) {
	repo := newSQLite(t)
	insert(t, repo, newShare("AB12CD34", "alice", baseTime))

	err := repo.WithinTx(context.Background(), func(tx repository.Tx) error {
		_, err := tx.Insert(context.Background(), newShare("AB12CD34", "bob", baseTime))
		assert.ErrorIs(t, err, repository.ErrCodeTaken)

		// The transaction stays usable after a collision.
		_, err = tx.Insert(context.Background(), newShare("XY98ZW76", "bob", baseTime))
		return err
	})
	require.NoError(t, err)

	_, err = repo.FindByShortCode(context.Background(), "XY98ZW76")
	assert.NoError(t, err)
}

func TestSQLite_Insert_ExpiryMustFollowCreation(t *testing.T) {
	repo := newSQLite(t)

	s := newShare("AB12CD34", "alice", baseTime)
	s.ExpiresAt = baseTime

	err := repo.WithinTx(context.Background(), func(tx repository.Tx) error {
		_, err := tx.Insert(context.Background(), s)
		return err
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCodeTaken)
}

func TestSQLite_WithinTx_RollsBackOnError(t *testing.T) {
	repo := newSQLite(t)
	boom := errors.New("boom")

	err := repo.WithinTx(context.Background(), func(tx repository.Tx) error {
		if _, err := tx.Insert(context.Background(), newShare("AB12CD34", "alice", baseTime)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.FindByShortCode(context.Background(), "AB12CD34")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLite_WithinTx_RollsBackOnCancel(t *testing.T) {
	repo := newSQLite(t)
	ctx, cancel := context.WithCancel(context.Background())

	err := repo.WithinTx(ctx, func(tx repository.Tx) error {
		if _, err := tx.Insert(ctx, newShare("AB12CD34", "alice", baseTime)); err != nil {
			return err
		}
		cancel()
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindByShortCode(context.Background(), "AB12CD34")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLite_SharesSince(t *testing.T) {
	repo := newSQLite(t)

	insert(t, repo, newShare("CODE0003", "alice", baseTime.Add(-30*time.Minute)))
	insert(t, repo, newShare("CODE0001", "alice", baseTime.Add(-2*time.Hour)))
	insert(t, repo, newShare("CODE0002", "alice", baseTime.Add(-time.Hour)))
	insert(t, repo, newShare("CODE0004", "bob", baseTime.Add(-10*time.Minute)))

	var shares []domain.Share
	err := repo.WithinTx(context.Background(), func(tx repository.Tx) error {
		var err error
		shares, err = tx.SharesSince(context.Background(), "alice", baseTime.Add(-time.Hour))
		return err
	})
	require.NoError(t, err)

	// The window start itself is inside the window.
	require.Len(t, shares, 2)
	assert.Equal(t, "CODE0002", shares[0].ShortCode)
	assert.Equal(t, "CODE0003", shares[1].ShortCode)
}

func TestSQLite_ActiveCodeExists(t *testing.T) {
	repo := newSQLite(t)
	s := insert(t, repo, newShare("AB12CD34", "alice", baseTime))
	ctx := context.Background()

	exists, err := repo.ActiveCodeExists(ctx, "AB12CD34", baseTime)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ActiveCodeExists(ctx, "AB12CD34", s.ExpiresAt.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ActiveCodeExists(ctx, "ZZZZZZZZ", baseTime)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLite_IncrementViewCount(t *testing.T) {
	repo := newSQLite(t)
	s := insert(t, repo, newShare("AB12CD34", "alice", baseTime))

	const viewers = 25
	var wg sync.WaitGroup
	for range viewers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementViewCount(context.Background(), s.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := repo.IncrementViewCount(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(viewers+1), count)

	_, err = repo.IncrementViewCount(context.Background(), s.ID+100)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLite_ListByOwner_SkipsExpired(t *testing.T) {
	repo := newSQLite(t)

	old := newShare("OLDCODE1", "alice", baseTime.Add(-48*time.Hour))
	old.ExpiresAt = baseTime.Add(-time.Hour)
	insert(t, repo, old)
	insert(t, repo, newShare("NEWCODE1", "alice", baseTime.Add(-time.Hour)))
	insert(t, repo, newShare("NEWCODE2", "alice", baseTime))
	insert(t, repo, newShare("BOBCODE1", "bob", baseTime))

	shares, err := repo.ListByOwner(context.Background(), "alice", baseTime)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, "NEWCODE2", shares[0].ShortCode)
	assert.Equal(t, "NEWCODE1", shares[1].ShortCode)
}

func TestSQLite_DeleteOwned(t *testing.T) {
	repo := newSQLite(t)
	s := insert(t, repo, newShare("AB12CD34", "alice", baseTime))
	ctx := context.Background()

	_, err := repo.DeleteOwned(ctx, s.ID, "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	code, err := repo.DeleteOwned(ctx, s.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", code)

	_, err = repo.DeleteOwned(ctx, s.ID, "alice")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLite_DeleteByOwner(t *testing.T) {
	repo := newSQLite(t)
	insert(t, repo, newShare("ALICE001", "alice", baseTime))
	insert(t, repo, newShare("ALICE002", "alice", baseTime))
	insert(t, repo, newShare("BOBCODE1", "bob", baseTime))

	codes, err := repo.DeleteByOwner(context.Background(), "alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ALICE001", "ALICE002"}, codes)

	_, err = repo.FindByShortCode(context.Background(), "BOBCODE1")
	assert.NoError(t, err)
}

func TestSQLite_DeleteExpiredAndStats(t *testing.T) {
	repo := newSQLite(t)
	ctx := context.Background()

	expired := newShare("EXPIRED1", "alice", baseTime.Add(-48*time.Hour))
	expired.ExpiresAt = baseTime.Add(-time.Minute)
	insert(t, repo, expired)
	insert(t, repo, newShare("LIVECODE", "alice", baseTime))

	stats, err := repo.Stats(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, repository.Stats{Total: 2, Expired: 1}, stats)

	n, err := repo.DeleteExpired(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stats, err = repo.Stats(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, repository.Stats{Total: 1, Expired: 0}, stats)
}

func TestSQLite_Delete(t *testing.T) {
	repo := newSQLite(t)
	s := insert(t, repo, newShare("AB12CD34", "alice", baseTime))

	require.NoError(t, repo.Delete(context.Background(), s.ID))
	// Deleting twice is not an error: concurrent readers may race on lazy expiry.
	require.NoError(t, repo.Delete(context.Background(), s.ID))

	_, err := repo.FindByShortCode(context.Background(), "AB12CD34")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLite_PoolStats(t *testing.T) {
	repo := newSQLite(t)

	stats := repo.PoolStats()
	assert.Equal(t, 1, stats.Max)
	assert.LessOrEqual(t, stats.Total, 1)
	assert.Zero(t, stats.Acquired)
}

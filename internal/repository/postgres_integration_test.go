package repository_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chaosshare/internal/cache"
	"chaosshare/internal/config"
	"chaosshare/internal/domain"
	"chaosshare/internal/repository"
	"chaosshare/internal/service"
	"chaosshare/internal/service/mocks"
	"chaosshare/internal/shortcode"
)

// newPostgres starts a throwaway Postgres container. Tests using it are
// skipped in -short mode and when no docker daemon is reachable.
func newPostgres(t *testing.T) *repository.PostgresRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration test skipped in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %s", err)
	}
	pool.MaxWait = 60 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=chaos",
			"POSTGRES_PASSWORD=chaos",
			"POSTGRES_DB=chaosshare",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("purge postgres container: %s", err)
		}
	})

	port, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	require.NoError(t, err)

	cfg := &config.DatabaseConfig{
		Host:     "localhost",
		Port:     port,
		User:     "chaos",
		Password: "chaos",
		DBName:   "chaosshare",
		SSLMode:  "disable",
		MaxConns: 30,
	}

	var repo *repository.PostgresRepository
	err = pool.Retry(func() error {
		var err error
		repo, err = repository.NewPostgresRepository(context.Background(), cfg)
		return err
	})
	require.NoError(t, err)
	t.Cleanup(repo.Close)
	return repo
}

func TestPostgres_InsertDuplicateKeepsTxUsable(t *testing.T) {
	repo := newPostgres(t)
	ctx := context.Background()

	err := repo.WithinTx(ctx, func(tx repository.Tx) error {
		_, err := tx.Insert(ctx, newShare("AB12CD34", "bob", baseTime))
		return err
	})
	require.NoError(t, err)

	var inserted *domain.Share
	err = repo.WithinTx(ctx, func(tx repository.Tx) error {
		_, err := tx.Insert(ctx, newShare("AB12CD34", "alice", baseTime))
		if !errors.Is(err, repository.ErrCodeTaken) {
			return err
		}
		inserted, err = tx.Insert(ctx, newShare("XY98ZW76", "alice", baseTime))
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "XY98ZW76", inserted.ShortCode)

	found, err := repo.FindByShortCode(ctx, "XY98ZW76")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.OwnerID)
	assert.JSONEq(t, `{"sigma":10,"rho":28,"beta":2.667}`, string(found.Parameters))
}

func TestPostgres_ViewCountAndCleanup(t *testing.T) {
	repo := newPostgres(t)
	ctx := context.Background()

	s := insertPg(t, repo, newShare("VIEW0001", "alice", baseTime))

	var wg sync.WaitGroup
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementViewCount(ctx, s.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := repo.FindByShortCode(ctx, "VIEW0001")
	require.NoError(t, err)
	assert.Equal(t, int64(25), found.ViewCount)

	code, err := repo.DeleteOwned(ctx, s.ID, "mallory")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, code)

	insertPg(t, repo, newShare("GONE0001", "alice", baseTime.Add(-60*24*time.Hour)))
	n, err := repo.DeleteExpired(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stats, err := repo.Stats(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, repository.Stats{Total: 1, Expired: 0}, stats)
}

func TestPostgres_ConcurrentCreatesNeverExceedQuota(t *testing.T) {
	repo := newPostgres(t)

	shareCache, err := cache.New(20)
	require.NoError(t, err)
	t.Cleanup(shareCache.Close)

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	svc := service.NewShareService(repo, shortcode.New(), shareCache, recorder,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		service.Policy{Quota: 10, Window: time.Hour, ResetGrace: time.Second, CodeAttempts: 5, TxAttempts: 10})

	const n = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.CreateShare(context.Background(), domain.CreateShareInput{
				OwnerID:    "alice",
				MapType:    "lorenz",
				Parameters: []byte(`{"sigma":10}`),
				ExpiresAt:  time.Now().Add(time.Hour),
			})
			if err != nil {
				assert.ErrorIs(t, err, repository.ErrSerialization)
				return
			}
			if res.Accepted {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, accepted, 10)

	shares, err := repo.ListByOwner(context.Background(), "alice", time.Now())
	require.NoError(t, err)
	assert.Len(t, shares, accepted)
}

func insertPg(t *testing.T, repo *repository.PostgresRepository, s domain.NewShare) *domain.Share {
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

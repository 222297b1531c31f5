package service_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chaosshare/internal/cache"
	"chaosshare/internal/domain"
	"chaosshare/internal/repository"
	"chaosshare/internal/service"
	"chaosshare/internal/service/mocks"
	"chaosshare/internal/shortcode"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type sqliteEnv struct {
	svc   *service.ShareService
	repo  *repository.SQLiteRepository
	clock *testClock
}

func newSQLiteEnv(t *testing.T, codes service.CodeGenerator) sqliteEnv {
	t.Helper()

	repo, err := repository.NewSQLiteRepository(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	shareCache, err := cache.New(20)
	require.NoError(t, err)
	t.Cleanup(shareCache.Close)

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	if codes == nil {
		codes = shortcode.New()
	}

	clock := &testClock{t: now}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewShareService(repo, codes, shareCache, recorder, logger, testPolicy,
		service.WithClock(clock.Now))

	return sqliteEnv{svc: svc, repo: repo, clock: clock}
}

func (e sqliteEnv) create(t *testing.T, owner string) *domain.CreateShareResult {
	t.Helper()
	res, err := e.svc.CreateShare(context.Background(), domain.CreateShareInput{
		OwnerID:    owner,
		MapType:    "rossler",
		Parameters: json.RawMessage(`{"a":0.2,"b":0.2,"c":5.7}`),
		ExpiresAt:  e.clock.Now().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return res
}

func TestSQLite_ConcurrentCreatesNeverExceedQuota(t *testing.T) {
	env := newSQLiteEnv(t, nil)

	const n = 20
	results := make([]*domain.CreateShareResult, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = env.svc.CreateShare(context.Background(), domain.CreateShareInput{
				OwnerID:    "alice",
				MapType:    "lorenz",
				Parameters: json.RawMessage(`{"sigma":10}`),
				ExpiresAt:  now.Add(24 * time.Hour),
			})
		}()
	}
	wg.Wait()

	accepted, limited := 0, 0
	codes := map[string]bool{}
	for i := range n {
		require.NoError(t, errs[i])
		if results[i].Accepted {
			accepted++
			codes[results[i].Share.ShortCode] = true
		} else {
			assert.Equal(t, domain.RejectRateLimited, results[i].Reason)
			limited++
		}
	}
	assert.Equal(t, 10, accepted)
	assert.Equal(t, 10, limited)
	assert.Len(t, codes, 10)

	shares, err := env.repo.ListByOwner(context.Background(), "alice", now)
	require.NoError(t, err)
	assert.Len(t, shares, 10)
}

func TestSQLite_TenthShareThenRateLimited(t *testing.T) {
	env := newSQLiteEnv(t, nil)

	for range 9 {
		require.True(t, env.create(t, "alice").Accepted)
		env.clock.Advance(time.Minute)
	}

	res, err := env.svc.CreateShare(context.Background(), domain.CreateShareInput{
		OwnerID:       "alice",
		MapType:       "logistic",
		Parameters:    json.RawMessage(`{"r":3.9}`),
		CandidateCode: "AB12CD34",
		ExpiresAt:     env.clock.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.True(t, res.Accepted)
	assert.Equal(t, "AB12CD34", res.Share.ShortCode)
	assert.Zero(t, res.RemainingQuota)

	env.clock.Advance(time.Minute)
	res = env.create(t, "alice")
	assert.False(t, res.Accepted)
	assert.Equal(t, domain.RejectRateLimited, res.Reason)
}

func TestSQLite_ResetAtAndRecovery(t *testing.T) {
	env := newSQLiteEnv(t, nil)

	first := env.clock.Now()
	for range 10 {
		require.True(t, env.create(t, "alice").Accepted)
		env.clock.Advance(2 * time.Minute)
	}

	res := env.create(t, "alice")
	require.False(t, res.Accepted)
	assert.True(t, first.Add(time.Hour+time.Second).Equal(res.ResetAt), "reset at %s", res.ResetAt)

	// Other owners are unaffected.
	assert.True(t, env.create(t, "bob").Accepted)

	env.clock.Set(res.ResetAt.Add(-2 * time.Second))
	assert.False(t, env.create(t, "alice").Accepted)

	env.clock.Set(res.ResetAt)
	after := env.create(t, "alice")
	require.True(t, after.Accepted)
	assert.Zero(t, after.RemainingQuota)
}

func TestSQLite_ExpiredShareDeletedOnRead(t *testing.T) {
	env := newSQLiteEnv(t, nil)

	res, err := env.svc.CreateShare(context.Background(), domain.CreateShareInput{
		OwnerID:    "alice",
		MapType:    "duffing",
		Parameters: json.RawMessage(`{"delta":0.2}`),
		ExpiresAt:  now.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	code := res.Share.ShortCode

	got, err := env.svc.GetShareByCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	got, err = env.svc.GetShareByCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)

	env.clock.Advance(25 * time.Hour)

	_, err = env.svc.GetShareByCode(context.Background(), code)
	assert.ErrorIs(t, err, service.ErrShareExpired)

	_, err = env.repo.FindByShortCode(context.Background(), code)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = env.svc.GetShareByCode(context.Background(), code)
	assert.ErrorIs(t, err, service.ErrShareNotFound)
}

func TestSQLite_DeleteOnOtherInstanceHidesCachedShare(t *testing.T) {
	env := newSQLiteEnv(t, nil)

	otherCache, err := cache.New(20)
	require.NoError(t, err)
	t.Cleanup(otherCache.Close)

	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	other := service.NewShareService(env.repo, shortcode.New(), otherCache, recorder,
		slog.New(slog.NewTextHandler(io.Discard, nil)), testPolicy, service.WithClock(env.clock.Now))

	res := env.create(t, "alice")
	code := res.Share.ShortCode

	_, err = other.GetShareByCode(context.Background(), code)
	require.NoError(t, err)
	otherCache.Wait()
	_, cached := otherCache.Get(code)
	require.True(t, cached)

	require.NoError(t, env.svc.DeleteShare(context.Background(), "alice", res.Share.ID))

	_, err = other.GetShareByCode(context.Background(), code)
	assert.ErrorIs(t, err, service.ErrShareNotFound)

	otherCache.Wait()
	_, cached = otherCache.Get(code)
	assert.False(t, cached)
}

func TestSQLite_CollisionRegeneratesCode(t *testing.T) {
	codes := mocks.NewMockCodeGenerator(t)
	codes.EXPECT().Generate().Return("AB12CD34").Times(2)
	codes.EXPECT().Generate().Return("XY98ZW76").Once()

	env := newSQLiteEnv(t, codes)

	first := env.create(t, "bob")
	require.True(t, first.Accepted)
	assert.Equal(t, "AB12CD34", first.Share.ShortCode)

	second := env.create(t, "alice")
	require.True(t, second.Accepted)
	assert.Equal(t, "XY98ZW76", second.Share.ShortCode)
	assert.Equal(t, 9, second.RemainingQuota)
}

func TestSQLite_CollisionExhaustionRollsBack(t *testing.T) {
	codes := mocks.NewMockCodeGenerator(t)
	codes.EXPECT().Generate().Return("AB12CD34")

	env := newSQLiteEnv(t, codes)
	require.True(t, env.create(t, "bob").Accepted)

	_, err := env.svc.CreateShare(context.Background(), domain.CreateShareInput{
		OwnerID:    "alice",
		MapType:    "chen",
		Parameters: json.RawMessage(`{"a":35}`),
		ExpiresAt:  now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, service.ErrGenerationExhausted)

	status, err := env.svc.QuotaStatus(context.Background(), "alice")
	require.NoError(t, err)
	assert.Zero(t, status.Used)
}

func TestSQLite_PurgeAndSweep(t *testing.T) {
	env := newSQLiteEnv(t, nil)

	for range 3 {
		env.create(t, "alice")
	}
	short, err := env.svc.CreateShare(context.Background(), domain.CreateShareInput{
		OwnerID:    "bob",
		MapType:    "henon",
		Parameters: json.RawMessage(`{"a":1.4,"b":0.3}`),
		ExpiresAt:  now.Add(time.Hour),
	})
	require.NoError(t, err)
	require.True(t, short.Accepted)
	env.create(t, "bob")

	n, err := env.svc.PurgeOwner(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	env.clock.Advance(2 * time.Hour)
	swept, err := env.svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)

	shares, err := env.svc.ListOwnerShares(context.Background(), "bob")
	require.NoError(t, err)
	assert.Len(t, shares, 1)
}

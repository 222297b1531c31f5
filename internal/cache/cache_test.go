package cache_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaosshare/internal/cache"
	"chaosshare/internal/domain"
)

func testShare(code string) *domain.Share {
	return &domain.Share{
		ID:         1,
		ShortCode:  code,
		OwnerID:    "alice",
		MapType:    "henon",
		Parameters: json.RawMessage(`{"a":1.4,"b":0.3}`),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10) // 2^10 = 1KB
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0) // 2^0 = 1 byte (min)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestGet_MissingKey(t *testing.T) {
	c, err := cache.New(10)
	require.NoError(t, err)
	defer c.Close()

	val, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Nil(t, val)
}

func TestSetThenGet(t *testing.T) {
	c, err := cache.New(20) // 2^20 = 1MB
	require.NoError(t, err)
	defer c.Close()

	share := testShare("AB12CD34")
	c.Set(share, time.Hour)
	c.Wait()

	val, found := c.Get("AB12CD34")
	require.True(t, found)
	assert.Equal(t, share, val)
}

func TestSet_NonPositiveTTLSkipped(t *testing.T) {
	c, err := cache.New(20)
	require.NoError(t, err)
	defer c.Close()

	c.Set(testShare("AB12CD34"), 0)
	c.Set(testShare("XY98ZW76"), -time.Second)
	c.Wait()

	_, found := c.Get("AB12CD34")
	assert.False(t, found)
	_, found = c.Get("XY98ZW76")
	assert.False(t, found)
}

func TestSet_ExpiresWithTTL(t *testing.T) {
	c, err := cache.New(20)
	require.NoError(t, err)
	defer c.Close()

	c.Set(testShare("AB12CD34"), 50*time.Millisecond)
	c.Wait()

	_, found := c.Get("AB12CD34")
	require.True(t, found)

	assert.Eventually(t, func() bool {
		_, found := c.Get("AB12CD34")
		return !found
	}, 3*time.Second, 20*time.Millisecond)
}

func TestSet_CappedByMaxTTL(t *testing.T) {
	c, err := cache.New(20, cache.WithMaxTTL(50*time.Millisecond))
	require.NoError(t, err)
	defer c.Close()

	c.Set(testShare("AB12CD34"), 24*time.Hour)
	c.Wait()

	_, found := c.Get("AB12CD34")
	require.True(t, found)

	assert.Eventually(t, func() bool {
		_, found := c.Get("AB12CD34")
		return !found
	}, 3*time.Second, 20*time.Millisecond)
}

func TestDelete(t *testing.T) {
	c, err := cache.New(20)
	require.NoError(t, err)
	defer c.Close()

	c.Set(testShare("AB12CD34"), time.Hour)
	c.Wait()

	c.Delete("AB12CD34")

	_, found := c.Get("AB12CD34")
	assert.False(t, found)
}

func TestStats_AfterOperations(t *testing.T) {
	c, err := cache.New(20)
	require.NoError(t, err)
	defer c.Close()

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	c.Get("nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	c.Set(testShare("key00001"), time.Hour)
	c.Wait()
	c.Get("key00001")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}

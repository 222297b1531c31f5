package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"

	"chaosshare/internal/domain"
)

// entryOverhead approximates the fixed part of a cached share in bytes.
const entryOverhead = 96

type ShareCache struct {
	cache  *ristretto.Cache
	maxTTL time.Duration
}

type Option func(*ShareCache)

// WithMaxTTL bounds how long an entry may be served without a store read.
// Deletions on other instances only reach this cache once the entry lapses.
func WithMaxTTL(d time.Duration) Option {
	return func(c *ShareCache) {
		c.maxTTL = d
	}
}

func New(maxSizePow2 int, opts ...Option) (*ShareCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/200) // ~200 bytes per share estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	c := &ShareCache{cache: cache}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *ShareCache) Get(code string) (*domain.Share, bool) {
	val, found := c.cache.Get(code)
	if !found {
		return nil, false
	}
	return val.(*domain.Share), true
}

// Set stores the share until ttl elapses, capped by the max TTL. Shares
// already past their expiry are not cached.
func (c *ShareCache) Set(share *domain.Share, ttl time.Duration) {
	if c.maxTTL > 0 {
		ttl = min(ttl, c.maxTTL)
	}
	if ttl <= 0 {
		return
	}
	cost := int64(entryOverhead + len(share.ShortCode) + len(share.OwnerID) + len(share.MapType) + len(share.Parameters))
	c.cache.SetWithTTL(share.ShortCode, share, cost, ttl)
}

func (c *ShareCache) Delete(code string) {
	c.cache.Del(code)
}

// Wait blocks until pending writes are applied.
func (c *ShareCache) Wait() {
	c.cache.Wait()
}

func (c *ShareCache) Close() {
	c.cache.Close()
}

func (c *ShareCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

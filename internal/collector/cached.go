package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/patrickmn/go-cache"

	"FXAnalyzer/internal/model"
)

// CachedFetcher memoizes FetchRates by its arguments and the current date.
// Entries expire after ttl and at most capacity results are held.
type CachedFetcher struct {
	Fetcher  Fetcher
	Now      func() time.Time
	cache    *cache.Cache
	capacity int
}

// NewCachedFetcher wraps f. A non-positive capacity means no size limit.
func NewCachedFetcher(f Fetcher, ttl, cleanupInterval time.Duration, capacity int) *CachedFetcher {
	return &CachedFetcher{
		Fetcher:  f,
		Now:      time.Now,
		cache:    cache.New(ttl, cleanupInterval),
		capacity: capacity,
	}
}

func (c *CachedFetcher) Name() string { return c.Fetcher.Name() }

// FetchRates returns a cached result when the same lookup already ran today.
// Transport failures are never cached.
func (c *CachedFetcher) FetchRates(ctx context.Context, base, target string, days int) (*model.FetchResult, error) {
	key := fmt.Sprintf("FetchRates|%s|%s|%d|%s", base, target, days, c.Now().Format(model.DateLayout))
	if v, found := c.cache.Get(key); found {
		log.Printf("[INFO] returning cached result for %s", key)
		return cloneResult(v.(*model.FetchResult)), nil
	}

	res, err := c.Fetcher.FetchRates(ctx, base, target, days)
	if err != nil {
		return nil, err
	}
	if c.capacity > 0 {
		c.cache.DeleteExpired()
	}
	if c.capacity <= 0 || c.cache.ItemCount() < c.capacity {
		c.cache.SetDefault(key, cloneResult(res))
	}
	return res, nil
}

// Len reports the number of cached results, expired ones included until cleanup.
func (c *CachedFetcher) Len() int { return c.cache.ItemCount() }

func cloneResult(r *model.FetchResult) *model.FetchResult {
	out := &model.FetchResult{Rates: make(map[string]float64, len(r.Rates))}
	for k, v := range r.Rates {
		out.Rates[k] = v
	}
	out.Failures = append([]model.UpstreamError(nil), r.Failures...)
	return out
}

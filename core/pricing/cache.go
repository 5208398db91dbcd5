// Package pricing - Catalog response cache
// Only raw catalog documents are cached. Estimates are always recomputed.
package pricing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"tfcost/core/types"
)

// CachePolicy defines cache behavior
type CachePolicy struct {
	// TTL for entries (0 disables caching)
	TTL time.Duration

	// MaxEntries bounds the cache; the oldest entry is evicted first
	MaxEntries int

	// FetchTimeout bounds a shared upstream query (0 = DefaultFetchTimeout).
	// Shared queries outlive the caller that started them.
	FetchTimeout time.Duration
}

// DefaultFetchTimeout bounds shared upstream queries when the policy sets none
const DefaultFetchTimeout = 30 * time.Second

// DefaultCachePolicy returns the default policy
func DefaultCachePolicy() CachePolicy {
	return CachePolicy{
		TTL:          time.Hour,
		MaxEntries:   1000,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// cacheEntry is a cached catalog response
type cacheEntry struct {
	docs        []string
	createdAt   time.Time
	expiresAt   time.Time
	accessCount int
}

func (e *cacheEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// CachingCatalog wraps a Catalog, caching successful responses by service
// code and filters. Concurrent identical queries share one upstream call,
// which runs detached from every caller's context; each caller stops waiting
// when its own context ends. Errors are never cached.
type CachingCatalog struct {
	next   Catalog
	policy CachePolicy
	now    func() time.Time

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// NewCachingCatalog creates a cache in front of next
func NewCachingCatalog(next Catalog, policy CachePolicy) *CachingCatalog {
	return &CachingCatalog{
		next:    next,
		policy:  policy,
		now:     time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

// Query returns cached documents when fresh, otherwise queries next
func (c *CachingCatalog) Query(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]string, error) {
	if c.policy.TTL <= 0 {
		return c.next.Query(ctx, serviceCode, filters)
	}

	key := cacheKey(serviceCode, filters)
	if docs, ok := c.get(key); ok {
		return docs, nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout())
		defer cancel()

		docs, err := c.next.Query(fctx, serviceCode, filters)
		if err != nil {
			return nil, err
		}
		c.put(key, docs)
		return docs, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]string), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *CachingCatalog) fetchTimeout() time.Duration {
	if c.policy.FetchTimeout > 0 {
		return c.policy.FetchTimeout
	}
	return DefaultFetchTimeout
}

func (c *CachingCatalog) get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if entry.expired(c.now()) {
		delete(c.entries, key)
		return nil, false
	}
	entry.accessCount++
	return entry.docs, true
}

func (c *CachingCatalog) put(key string, docs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.policy.MaxEntries > 0 && len(c.entries) >= c.policy.MaxEntries {
		c.evictLocked()
	}

	now := c.now()
	c.entries[key] = &cacheEntry{
		docs:      docs,
		createdAt: now,
		expiresAt: now.Add(c.policy.TTL),
	}
}

// evictLocked drops expired entries, or the oldest one if none expired
func (c *CachingCatalog) evictLocked() {
	now := c.now()
	oldestKey := ""
	var oldest time.Time
	removed := 0
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
			removed++
			continue
		}
		if oldestKey == "" || entry.createdAt.Before(oldest) {
			oldestKey, oldest = key, entry.createdAt
		}
	}
	if removed == 0 && oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// CacheStats contains cache statistics
type CacheStats struct {
	Entries int
	Hits    int
}

// Stats returns cache statistics
func (c *CachingCatalog) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := CacheStats{Entries: len(c.entries)}
	for _, entry := range c.entries {
		stats.Hits += entry.accessCount
	}
	return stats
}

// cacheKey hashes a service code and its ordered filters
func cacheKey(serviceCode string, filters []types.PricingFilter) string {
	h := sha256.New()
	h.Write([]byte(serviceCode))
	for _, f := range filters {
		h.Write([]byte{0})
		h.Write([]byte(f.Field))
		h.Write([]byte{'='})
		h.Write([]byte(f.Value))
	}
	return hex.EncodeToString(h.Sum(nil))
}

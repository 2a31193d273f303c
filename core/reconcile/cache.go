package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cachedReport struct {
	report *Report
	built  time.Time
}

// Cache coalesces concurrent scans of the same prefix and limit, and can reuse
// a report for TTL. A zero TTL only coalesces; every call after the in-flight
// scan finishes triggers a fresh one.
type Cache struct {
	lister Lister
	refs   ReferenceSource
	ttl    time.Duration

	mu      sync.RWMutex
	reports map[string]cachedReport
	sf      singleflight.Group
}

// NewCache creates a Cache over the given sources.
func NewCache(lister Lister, refs ReferenceSource, ttl time.Duration) *Cache {
	return &Cache{lister: lister, refs: refs, ttl: ttl, reports: make(map[string]cachedReport)}
}

func (c *Cache) fresh(key string) (*Report, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.reports[key]
	if !ok || time.Since(cached.built) > c.ttl {
		return nil, false
	}
	return cached.report, true
}

// GetOrScan returns a cached report or runs Scan.
func (c *Cache) GetOrScan(ctx context.Context, prefix string, limit int) (*Report, error) {
	key := fmt.Sprintf("%s|%d", prefix, limit)
	if report, ok := c.fresh(key); ok {
		return report, nil
	}

	result, err, _ := c.sf.Do(key, func() (any, error) {
		if report, ok := c.fresh(key); ok {
			return report, nil
		}
		// Shared by every waiting caller, so one caller going away must not cancel it.
		report, err := Scan(context.WithoutCancel(ctx), c.lister, c.refs, prefix, limit)
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.mu.Lock()
			c.reports[key] = cachedReport{report: report, built: time.Now()}
			c.mu.Unlock()
		}
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Report), nil
}

// Invalidate drops every cached report.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.reports = make(map[string]cachedReport)
	c.mu.Unlock()
}

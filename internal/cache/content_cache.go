package cache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/pixelforge/pixelforge-api/pkg/metrics"
	"go.uber.org/zap"
)

const cacheCheckPeriod = time.Minute

// ContentCache is the in-process read-through cache in front of the content
// resolver. Entries are grouped by cache tag ("posts", "careers", ...); a tag
// is the unit of invalidation. Expiration otherwise follows the per-tag TTL,
// which is the time-based revalidation window for that content type.
type ContentCache struct {
	cache *gocache.Cache
	ttls  map[string]time.Duration
	mu    sync.RWMutex
}

// NewContentCache creates a content cache with per-tag TTLs. Tags without an
// explicit TTL use defaultTTL.
func NewContentCache(ttls map[string]time.Duration, defaultTTL time.Duration) *ContentCache {
	merged := make(map[string]time.Duration, len(ttls))
	for tag, ttl := range ttls {
		merged[tag] = ttl
	}

	return &ContentCache{
		cache: gocache.New(defaultTTL, cacheCheckPeriod),
		ttls:  merged,
	}
}

// key builds the namespaced cache key for a tag
func key(tag, suffix string) string {
	return tag + ":" + suffix
}

// Get retrieves a cached entry for the given tag and suffix ("all" for
// listings, "slug:<slug>" for single items).
func (cc *ContentCache) Get(tag, suffix string) (interface{}, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	data, found := cc.cache.Get(key(tag, suffix))
	if !found {
		metrics.CacheMisses.WithLabelValues(tag).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(tag).Inc()
	return data, true
}

// Set stores an entry under the tag's TTL
func (cc *ContentCache) Set(tag, suffix string, value interface{}) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	ttl, ok := cc.ttls[tag]
	if !ok {
		ttl = gocache.DefaultExpiration
	}
	cc.cache.Set(key(tag, suffix), value, ttl)
}

// InvalidateTag drops every entry under the given tag. Invalidating a tag
// with no cached entries is a no-op, so repeated invalidations are safe.
func (cc *ContentCache) InvalidateTag(tag string) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	prefix := tag + ":"
	removed := 0
	for k := range cc.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			cc.cache.Delete(k)
			removed++
		}
	}

	metrics.CacheInvalidations.WithLabelValues(tag).Inc()
	logger.Info("Cache tag invalidated",
		zap.String("tag", tag),
		zap.Int("entries_removed", removed))
}

// Flush clears the entire cache
func (cc *ContentCache) Flush() {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cc.cache.Flush()
	logger.Info("Content cache flushed")
}

// Len reports the number of live entries, for diagnostics
func (cc *ContentCache) Len() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.cache.ItemCount()
}

package cache

import (
	"testing"
	"time"

	"github.com/pixelforge/pixelforge-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Initialize(logger.Config{
		Level:       "info",
		Environment: "test",
	})
}

func newTestCache() *ContentCache {
	return NewContentCache(map[string]time.Duration{
		"posts":   10 * time.Minute,
		"careers": 30 * time.Minute,
	}, time.Hour)
}

func TestContentCache_GetSet(t *testing.T) {
	cc := newTestCache()

	_, found := cc.Get("posts", "all")
	assert.False(t, found)

	cc.Set("posts", "all", []string{"a", "b"})

	data, found := cc.Get("posts", "all")
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, data)
}

func TestContentCache_InvalidateTag(t *testing.T) {
	cc := newTestCache()

	cc.Set("posts", "all", "posts-listing")
	cc.Set("posts", "slug:my-post", "post-item")
	cc.Set("careers", "all", "careers-listing")

	cc.InvalidateTag("posts")

	_, found := cc.Get("posts", "all")
	assert.False(t, found)
	_, found = cc.Get("posts", "slug:my-post")
	assert.False(t, found)

	// Other tags untouched
	_, found = cc.Get("careers", "all")
	assert.True(t, found)
}

func TestContentCache_InvalidateTagIdempotent(t *testing.T) {
	cc := newTestCache()
	cc.Set("posts", "all", "listing")

	cc.InvalidateTag("posts")
	// Second invalidation of an already-empty tag must be a no-op
	cc.InvalidateTag("posts")

	_, found := cc.Get("posts", "all")
	assert.False(t, found)
	assert.Equal(t, 0, cc.Len())
}

func TestContentCache_Flush(t *testing.T) {
	cc := newTestCache()
	cc.Set("posts", "all", "a")
	cc.Set("careers", "all", "b")

	cc.Flush()
	assert.Equal(t, 0, cc.Len())
}

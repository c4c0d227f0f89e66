package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(capacity int, ttl time.Duration) (*LRUCache[string], *time.Time) {
	c := New[string](capacity, ttl)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestGetSet(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)
	c.Set("a", "1")

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)
	var evicted []string
	c.OnEvict(func(key string, _ string) { evicted = append(evicted, key) })

	c.Set("a", "1")
	c.Set("b", "2")
	_, _ = c.Get("a")
	c.Set("c", "3")

	assert.Equal(t, []string{"b"}, evicted)
	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestExpiryAndSlidingTTL(t *testing.T) {
	c, now := newTestCache(10, time.Minute)
	var evicted []string
	c.OnEvict(func(key string, _ string) { evicted = append(evicted, key) })

	c.Set("a", "1")
	c.Set("b", "2")

	*now = now.Add(40 * time.Second)
	_, ok := c.Get("a") // refreshes a
	require.True(t, ok)

	*now = now.Add(40 * time.Second)
	removed := c.CleanExpired()

	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"b"}, evicted)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestDeleteAndClearNotify(t *testing.T) {
	c, _ := newTestCache(10, time.Minute)
	var evicted []string
	c.OnEvict(func(key string, _ string) { evicted = append(evicted, key) })

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")
	c.Delete("a")
	c.Clear()

	assert.ElementsMatch(t, []string{"a", "b", "c"}, evicted)
	assert.Equal(t, 0, c.Len())
}

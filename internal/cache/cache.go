// Package cache provides a size-bounded LRU with per-entry TTL and an eviction hook.
package cache

import (
	"container/list"
	"sync"
	"time"
)

type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Delete(key string)
	Clear()
}

type Item[V any] struct {
	Key        string
	Value      V
	Expiration time.Time
}

// EvictFunc is called, outside the cache lock, for every entry that leaves the cache.
type EvictFunc[V any] func(key string, value V)

type LRUCache[V any] struct {
	capacity  int
	items     map[string]*list.Element
	evictList *list.List
	mu        sync.Mutex
	ttl       time.Duration
	onEvict   EvictFunc[V]
	now       func() time.Time
}

func New[V any](capacity int, ttl time.Duration) *LRUCache[V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCache[V]{
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		ttl:       ttl,
		now:       time.Now,
	}
}

// OnEvict registers fn to run for entries removed by expiry, capacity, Delete or Clear.
func (c *LRUCache[V]) OnEvict(fn EvictFunc[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// SetNow replaces the time source used for expiration.
func (c *LRUCache[V]) SetNow(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the value and refreshes both its recency and its expiration.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	var zero V
	var evicted []*Item[V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}
	item := elem.Value.(*Item[V])

	if c.now().After(item.Expiration) {
		evicted = append(evicted, c.removeElement(elem))
		return zero, false
	}

	item.Expiration = c.now().Add(c.ttl)
	c.evictList.MoveToFront(elem)
	return item.Value, true
}

func (c *LRUCache[V]) Set(key string, value V) {
	var evicted []*Item[V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := c.now().Add(c.ttl)

	if elem, ok := c.items[key]; ok {
		item := elem.Value.(*Item[V])
		item.Value = value
		item.Expiration = expiration
		c.evictList.MoveToFront(elem)
		return
	}

	item := &Item[V]{
		Key:        key,
		Value:      value,
		Expiration: expiration,
	}

	elem := c.evictList.PushFront(item)
	c.items[key] = elem

	if c.evictList.Len() > c.capacity {
		if oldest := c.removeOldest(); oldest != nil {
			evicted = append(evicted, oldest)
		}
	}
}

func (c *LRUCache[V]) Delete(key string) {
	var evicted []*Item[V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		evicted = append(evicted, c.removeElement(elem))
	}
}

func (c *LRUCache[V]) Clear() {
	var evicted []*Item[V]
	defer func() { c.notify(evicted) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	for elem := c.evictList.Front(); elem != nil; elem = elem.Next() {
		evicted = append(evicted, elem.Value.(*Item[V]))
	}
	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}

// Len returns the number of entries, expired or not.
func (c *LRUCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

func (c *LRUCache[V]) removeOldest() *Item[V] {
	elem := c.evictList.Back()
	if elem != nil {
		return c.removeElement(elem)
	}
	return nil
}

func (c *LRUCache[V]) removeElement(elem *list.Element) *Item[V] {
	c.evictList.Remove(elem)
	item := elem.Value.(*Item[V])
	delete(c.items, item.Key)
	return item
}

// CleanExpired drops expired entries and returns how many were removed.
func (c *LRUCache[V]) CleanExpired() int {
	var toRemove []*Item[V]
	defer func() { c.notify(toRemove) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for elem := c.evictList.Back(); elem != nil; {
		prev := elem.Prev()
		item := elem.Value.(*Item[V])
		if now.After(item.Expiration) {
			toRemove = append(toRemove, c.removeElement(elem))
		}
		elem = prev
	}
	return len(toRemove)
}

func (c *LRUCache[V]) notify(items []*Item[V]) {
	if len(items) == 0 {
		return
	}
	c.mu.Lock()
	fn := c.onEvict
	c.mu.Unlock()
	if fn == nil {
		return
	}
	for _, item := range items {
		fn(item.Key, item.Value)
	}
}

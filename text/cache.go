package text

import "sync"

// cache is a thread-safe map with a soft size limit. When the limit is
// exceeded the least recently used entries are evicted.
type cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64
}

type cacheEntry[V any] struct {
	value V
	atime int64
}

// newCache creates a cache. A softLimit of 0 means unlimited.
func newCache[K comparable, V any](softLimit int) *cache[K, V] {
	return &cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// getOrCreate returns the cached value for key, calling create on a miss.
// A create error is returned and nothing is stored.
func (c *cache[K, V]) getOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value, nil
	}

	v, err := create()
	if err != nil {
		return v, err
	}
	c.entries[key] = &cacheEntry[V]{value: v, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evict()
	}
	return v, nil
}

func (c *cache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evict drops the oldest quarter of the entries.
func (c *cache[K, V]) evict() {
	target := c.softLimit * 3 / 4
	for len(c.entries) > target {
		var oldestKey K
		oldest := int64(-1)
		for k, e := range c.entries {
			if oldest < 0 || e.atime < oldest {
				oldestKey, oldest = k, e.atime
			}
		}
		delete(c.entries, oldestKey)
	}
}

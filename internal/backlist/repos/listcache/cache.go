// Package listcache memoizes compiled whitelist/blacklist sets keyed by their raw text.
package listcache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Stats reports cumulative cache counters.
type Stats struct {
	Capacity  int
	Size      int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache returns compiled Sets for raw list text.
// Keys are the raw text itself, so an edited setting always compiles fresh.
type Cache struct {
	lru       *lru.Cache[string, *Set]
	capacity  int
	fpRate    float64
	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a Cache holding up to size compiled lists. size <= 0 disables
// memoization: every Get compiles and nothing is retained.
func New(size int, fpRate float64) (*Cache, error) {
	c := &Cache{fpRate: fpRate}
	if size <= 0 {
		return c, nil
	}
	l, err := lru.NewWithEvict(size, func(string, *Set) {
		atomic.AddUint64(&c.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	c.lru = l
	c.capacity = size
	return c, nil
}

// Get returns the compiled Set for raw, compiling and storing it on a miss.
func (c *Cache) Get(raw string) *Set {
	if c.lru == nil {
		atomic.AddUint64(&c.misses, 1)
		return Compile(raw, c.fpRate)
	}
	if s, ok := c.lru.Get(raw); ok {
		atomic.AddUint64(&c.hits, 1)
		return s
	}
	atomic.AddUint64(&c.misses, 1)
	s := Compile(raw, c.fpRate)
	c.lru.Add(raw, s)
	return s
}

// Purge drops every compiled set.
func (c *Cache) Purge() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	st := Stats{
		Capacity:  c.capacity,
		Hits:      atomic.LoadUint64(&c.hits),
		Misses:    atomic.LoadUint64(&c.misses),
		Evictions: atomic.LoadUint64(&c.evictions),
	}
	if c.lru != nil {
		st.Size = c.lru.Len()
	}
	return st
}

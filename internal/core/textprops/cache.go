package textprops

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/tsprops/internal/core/domain"
)

// Cache interns TextProps so that structurally equal content maps to a single
// shared instance. Entries are held for the life of the cache.
type Cache struct {
	mu      sync.RWMutex
	buckets map[uint64][]*TextProps
	entries int

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats is a point-in-time snapshot of cache counters.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

var defaultCache = NewCache()

// Default returns the process-wide cache used by FromMaps, FromWritingSystem
// and TextProps.Builder.
func Default() *Cache {
	return defaultCache
}

// NewCache creates a cache with the empty properties pre-registered.
func NewCache() *Cache {
	c := &Cache{
		buckets: make(map[uint64][]*TextProps),
	}
	c.insertLocked(empty)
	return c
}

// Intern returns the cached instance equal to candidate, or stores and
// returns candidate when none exists. Once an instance is returned for some
// content, every later call with equal content returns that same instance.
func (c *Cache) Intern(candidate *TextProps) *TextProps {
	p, _ := c.LoadOrStore(candidate)
	return p
}

// LoadOrStore is Intern that also reports whether an equal instance was
// already cached.
func (c *Cache) LoadOrStore(candidate *TextProps) (actual *TextProps, loaded bool) {
	if !candidate.sealed {
		candidate = newTextProps(candidate.Bag)
	}

	c.mu.RLock()
	existing := c.lookupLocked(candidate)
	c.mu.RUnlock()
	if existing != nil {
		c.hits.Add(1)
		return existing, true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another writer may have stored equal content between the locks.
	if existing := c.lookupLocked(candidate); existing != nil {
		c.hits.Add(1)
		return existing, true
	}

	c.insertLocked(candidate)
	c.misses.Add(1)
	return candidate, false
}

func (c *Cache) lookupLocked(candidate *TextProps) *TextProps {
	for _, p := range c.buckets[candidate.hash] {
		if p.Equal(candidate) {
			return p
		}
	}
	return nil
}

func (c *Cache) insertLocked(p *TextProps) {
	c.buckets[p.hash] = append(c.buckets[p.hash], p)
	p.owner.CompareAndSwap(nil, c)
	c.entries++
}

// FromWritingSystem returns the canonical instance holding only the writing
// system property with the default variant.
func (c *Cache) FromWritingSystem(ws int32) *TextProps {
	b := Bag{ints: []intEntry{{
		key: domain.WritingSystem,
		val: domain.IntPropValue{Variant: domain.VarDefault, Value: ws},
	}}}
	return c.Intern(newTextProps(b))
}

// FromMaps returns the canonical instance for the given content.
func (c *Cache) FromMaps(ints map[domain.PropType]domain.IntPropValue, strs map[domain.PropType]string) *TextProps {
	return c.Intern(newTextProps(newBag(ints, strs)))
}

// Len returns the number of canonical instances, including the empty one.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries
}

// Stats returns the current entry count and lookup counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}

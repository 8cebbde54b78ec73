// Package cache is a small in-memory TTL cache for computed API results.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"sync"
	"time"

	"github.com/folio-dev/folio/internal/anim"
)

// DefaultTTL applies when Set is given a zero TTL.
const DefaultTTL = 5 * time.Minute

type entry[V any] struct {
	value   V
	expires time.Time
}

// Cache maps string keys to values that expire.
type Cache[V any] struct {
	mu      sync.Mutex
	clock   anim.Clock
	entries map[string]entry[V]
}

// New returns an empty cache reading time from clock.
func New[V any](clock anim.Clock) *Cache[V] {
	if clock == nil {
		clock = anim.RealClock{}
	}
	return &Cache[V]{clock: clock, entries: make(map[string]entry[V])}
}

// Get returns the value for key if it has not expired. Expired entries
// are removed.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !c.clock.Now().Before(e.expires) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for ttl.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expires: c.clock.Now().Add(ttl)}
}

// Len counts stored entries, including expired ones not yet evicted.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Key builds a namespaced key from an md5 digest of s.
func Key(namespace, s string) string {
	sum := md5.Sum([]byte(s))
	return namespace + ":" + hex.EncodeToString(sum[:])
}

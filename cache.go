package pocketcache

import (
	"time"

	"github.com/karupanerura/pocketcache/expiration"
)

type entry[T ValueConstraint] struct {
	insertedAt time.Time
	value      T
}

// Cache is a key-value cache whose entries expire a fixed time after insertion.
// Use New to create a Cache.
//
// Cache is not safe for concurrent use, and Get needs exclusive access like the
// other methods since it removes the expired entries it finds.
type Cache[T ValueConstraint] struct {
	policy  expiration.Expiration
	entries map[string]entry[T]
	options options[T]
}

var _ Store[struct{}] = (*Cache[struct{}])(nil)

// New creates an empty cache whose entries expire according to the policy.
// The policy cannot be changed afterwards.
func New[T ValueConstraint](policy expiration.Expiration, opts ...Option[T]) *Cache[T] {
	options := defaultOptions[T]()
	for _, opt := range opts {
		opt.apply(&options)
	}

	return &Cache[T]{
		policy:  policy,
		entries: map[string]entry[T]{},
		options: options,
	}
}

// Policy returns the expiration policy of the cache.
func (c *Cache[T]) Policy() expiration.Expiration {
	return c.policy
}

// Set stores the value under the key, stamped with the current time.
// Any previous entry for the key is replaced, whether or not it has expired.
func (c *Cache[T]) Set(key string, value T) {
	c.entries[key] = entry[T]{
		insertedAt: c.options.clock.Now(),
		value:      c.options.cloner.CloneValue(value),
	}
}

// Get returns the value stored under the key.
//
// If the entry has expired, or the clock reports a time before its insertion, the
// entry is removed and Get reports a miss. Reading an entry does not extend its lifetime.
func (c *Cache[T]) Get(key string) (T, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}

	if c.policy.IsExpired(e.insertedAt, c.options.clock.Now()) {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	return c.options.cloner.CloneValue(e.value), true
}

// Delete removes the entry for the key. It is a no-op if the key is absent.
func (c *Cache[T]) Delete(key string) {
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache[T]) Clear() {
	c.entries = map[string]entry[T]{}
}

// Len returns the number of stored entries.
// Expired entries are counted until a Get removes them.
func (c *Cache[T]) Len() int {
	return len(c.entries)
}

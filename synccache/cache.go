package synccache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/karupanerura/pocketcache"
	"github.com/karupanerura/pocketcache/expiration"
	"github.com/karupanerura/pocketcache/internal/ctxsync"
	"github.com/karupanerura/pocketcache/internal/panicutil"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/singleflight"
)

// Loader loads the value for the key on a cache miss.
type Loader[T pocketcache.ValueConstraint] func(ctx context.Context, key string) (T, error)

// Cache is a pocketcache.Cache that is safe for concurrent use.
// Use New to create a Cache.
type Cache[T pocketcache.ValueConstraint] struct {
	mu     sync.Mutex
	locker ctxsync.CtxLocker
	cache  *pocketcache.Cache[T]

	group   singleflight.Group
	cloner  pocketcache.ValueCloner[T]
	metrics *metrics
	logger  *slog.Logger
}

var _ pocketcache.Store[struct{}] = (*Cache[struct{}])(nil)

// New creates an empty cache whose entries expire according to the policy.
func New[T pocketcache.ValueConstraint](policy expiration.Expiration, opts ...Option[T]) *Cache[T] {
	options := defaultOptions[T]()
	for _, opt := range opts {
		opt.apply(&options)
	}

	c := &Cache[T]{
		cache:  pocketcache.New(policy, options.cacheOptions...),
		cloner: options.cloner,
		logger: options.logger,
	}
	c.locker.Locker = &c.mu
	if options.registerer != nil {
		c.metrics = newMetrics(options.registerer, options.name)
	}
	return c
}

// Policy returns the expiration policy of the cache.
func (c *Cache[T]) Policy() expiration.Expiration {
	return c.cache.Policy()
}

// Set stores the value under the key, stamped with the current time.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Set(key, value)
	c.metrics.setEntries(c.cache.Len())
}

// Get returns the value stored under the key.
// An expired entry is removed and reported as a miss.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getLocked(key)
}

// Delete removes the entry for the key. It is a no-op if the key is absent.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Delete(key)
	c.metrics.setEntries(c.cache.Len())
}

// Clear removes all entries.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Clear()
	c.metrics.setEntries(0)
}

// Len returns the number of stored entries, including expired entries not read yet.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cache.Len()
}

// GetOrLoad returns the value stored under the key, or loads it with the loader on a miss.
//
// Concurrent misses for the same key share a single call of the loader. The loader
// runs without holding the lock of the cache, and receives a context that keeps the
// values of ctx but is never canceled, so that a caller giving up does not fail the
// other callers. A successfully loaded value is stored in the cache. Errors are
// returned to every caller sharing the call and are not cached. If the loader panics,
// the returned error wraps ErrLoaderPanicked.
//
// GetOrLoad returns the context error if ctx is done before the lock is acquired or
// before the load completes.
func (c *Cache[T]) GetOrLoad(ctx context.Context, key string, loader Loader[T]) (T, error) {
	var zero T
	if err := c.locker.LockCtx(ctx); err != nil {
		return zero, err
	}
	v, ok := c.getLocked(key)
	c.mu.Unlock()
	if ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		return c.load(context.WithoutCancel(ctx), key, loader)
	})
	select {
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		v, _ := r.Val.(T)
		if r.Shared {
			v = c.cloner.CloneValue(v)
		}
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func (c *Cache[T]) getLocked(key string) (T, bool) {
	before := c.cache.Len()
	v, ok := c.cache.Get(key)
	after := c.cache.Len()
	c.metrics.observeGet(ok, after < before)
	c.metrics.setEntries(after)
	return v, ok
}

func (c *Cache[T]) load(ctx context.Context, key string, loader Loader[T]) (any, error) {
	var v T
	err := panicutil.Call(func() (err error) {
		v, err = loader(ctx, key)
		return
	})
	c.metrics.observeLoad(err)
	if err != nil {
		var recovered *panics.ErrRecovered
		if errors.As(err, &recovered) {
			err = fmt.Errorf("%w: %w", ErrLoaderPanicked, err)
		}
		c.logger.WarnContext(ctx, "pocketcache: load failed", "key", key, "error", err)
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Set(key, v)
	c.metrics.setEntries(c.cache.Len())
	return v, nil
}

// Package synccache provides a pocketcache.Cache guarded by a mutex, for sharing one
// cache between goroutines such as HTTP request handlers.
//
// Every method holds the lock for its whole duration, including Get, which may remove
// an expired entry. GetOrLoad adds memoization on top: concurrent misses for the same
// key share a single call of the loader, and the loader runs without holding the lock.
//
// The Cache can be configured with options:
//   - WithClock: Sets the clock used to stamp and check entries
//   - WithCloner: Sets the value cloner used for stored and returned values
//   - WithMetrics: Registers Prometheus metrics of the cache
//   - WithLogger: Sets the logger used to report loader failures
package synccache

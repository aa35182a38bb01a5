// Package pocketcache provides a small in-process key-value cache with time-based expiration.
//
// A Cache stores values of any type under string keys. The time-to-live is fixed when
// the cache is created, using a policy from the expiration package. Entries expire
// lazily: there is no background sweep, and an expired entry is removed by the Get
// call that observes it.
//
// A Cache is not safe for concurrent use. Because Get may remove entries, every
// method needs exclusive access. The synccache package provides a variant guarded by
// a mutex for sharing a cache between goroutines.
package pocketcache

package cachetest

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/pocketcache"
	"github.com/karupanerura/pocketcache/expiration"
	"golang.org/x/sync/errgroup"
)

// Provider creates a store for a test case, and a function that releases it.
type Provider[T pocketcache.ValueConstraint] func(policy expiration.Expiration, clock pocketcache.Clock) (pocketcache.Store[T], func())

// BenchmarkSet benchmarks the Set method of the store.
func BenchmarkSet[T pocketcache.ValueConstraint](b *testing.B, store pocketcache.Store[T], keys []string) {
	var zero T
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Set(keys[i%len(keys)], zero)
	}
}

// BenchmarkGet benchmarks the Get method of the store with hits.
func BenchmarkGet[T pocketcache.ValueConstraint](b *testing.B, store pocketcache.Store[T], keys []string) {
	var zero T
	for _, key := range keys {
		store.Set(key, zero)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		store.Get(keys[i%len(keys)])
	}
}

type TestClonerStruct struct {
	value int8
}

func (s *TestClonerStruct) Clone() *TestClonerStruct {
	return &TestClonerStruct{value: s.value}
}

// TestCloneStruct tests the cloning behavior of the store.
func TestCloneStruct(t *testing.T, provider Provider[*TestClonerStruct]) {
	t.Run("CloneStruct", func(t *testing.T) {
		t.Parallel()

		store, release := provider(expiration.Default, pocketcache.SystemClock)
		defer release()

		original := &TestClonerStruct{value: 1}
		store.Set("1", original)

		got, ok := store.Get("1")
		if !ok {
			t.Fatal("should exist")
		}
		if original == got {
			t.Error("struct must be cloned, but got same that")
		}
		if df := cmp.Diff(original, got, cmp.AllowUnexported(TestClonerStruct{})); df != "" {
			t.Errorf("struct diff=%s", df)
		}

		original.value = 2
		got.value = 3
		again, ok := store.Get("1")
		if !ok {
			t.Fatal("should exist")
		}
		if again == got {
			t.Error("struct must be cloned, but got same that")
		}
		if df := cmp.Diff(&TestClonerStruct{value: 1}, again, cmp.AllowUnexported(TestClonerStruct{})); df != "" {
			t.Errorf("stored struct must not be changed by callers: diff=%s", df)
		}
	})
}

// TestConsistency tests the basic operations of the store.
func TestConsistency(t *testing.T, provider Provider[int8]) {
	t.Run("Consistency", func(t *testing.T) {
		t.Parallel()

		t.Run("SetAndGet", func(t *testing.T) {
			t.Parallel()

			store, release := provider(expiration.Default, pocketcache.SystemClock)
			defer release()

			patterns := map[string]int8{
				"0":   1,
				"1":   2,
				"2":   3,
				"251": 124,
				"252": 125,
				"255": -128,
				"":    0,
			}
			for key := range patterns {
				if _, ok := store.Get(key); ok {
					t.Errorf("unexpected exists value for key %q", key)
				}
			}
			for key, value := range patterns {
				store.Set(key, value)
			}
			if store.Len() != len(patterns) {
				t.Errorf("Len() = %d, want %d", store.Len(), len(patterns))
			}

			got := make(map[string]int8, len(patterns))
			for key := range patterns {
				v, ok := store.Get(key)
				if !ok {
					t.Errorf("value for key %q should exist", key)
					continue
				}
				got[key] = v
			}
			if df := cmp.Diff(patterns, got); df != "" {
				t.Errorf("entries diff=%s", df)
			}
		})

		t.Run("Overwrite", func(t *testing.T) {
			t.Parallel()

			store, release := provider(expiration.Default, pocketcache.SystemClock)
			defer release()

			store.Set("fruit", 1)
			store.Set("fruit", 2)
			if v, ok := store.Get("fruit"); !ok || v != 2 {
				t.Errorf("Get() = (%d, %v), want (2, true)", v, ok)
			}
			if store.Len() != 1 {
				t.Errorf("Len() = %d, want 1", store.Len())
			}
		})

		t.Run("MissIsIdempotent", func(t *testing.T) {
			t.Parallel()

			store, release := provider(expiration.Default, pocketcache.SystemClock)
			defer release()

			for i := 0; i < 3; i++ {
				if v, ok := store.Get("meat"); ok || v != 0 {
					t.Errorf("Get() = (%d, %v), want (0, false)", v, ok)
				}
			}
		})

		t.Run("Delete", func(t *testing.T) {
			t.Parallel()

			store, release := provider(expiration.Default, pocketcache.SystemClock)
			defer release()

			store.Set("fruit", 1)
			store.Set("meat", 2)
			store.Delete("fruit")
			if _, ok := store.Get("fruit"); ok {
				t.Error("deleted value should not exist")
			}
			store.Delete("fruit")
			store.Delete("never-set")
			if v, ok := store.Get("meat"); !ok || v != 2 {
				t.Errorf("Get() = (%d, %v), want (2, true)", v, ok)
			}
			if store.Len() != 1 {
				t.Errorf("Len() = %d, want 1", store.Len())
			}
		})

		t.Run("Clear", func(t *testing.T) {
			t.Parallel()

			store, release := provider(expiration.Default, pocketcache.SystemClock)
			defer release()

			keys := []string{"fruit", "vegetable", "meat"}
			for i, key := range keys {
				store.Set(key, int8(i))
			}
			store.Clear()
			for _, key := range keys {
				if _, ok := store.Get(key); ok {
					t.Errorf("value for key %q should not exist after Clear", key)
				}
			}
			if store.Len() != 0 {
				t.Errorf("Len() = %d, want 0", store.Len())
			}

			store.Set("fruit", 42)
			if v, ok := store.Get("fruit"); !ok || v != 42 {
				t.Errorf("Get() = (%d, %v), want (42, true)", v, ok)
			}
		})
	})
}

// TestExpiration tests the lazy expiration of the store.
func TestExpiration(t *testing.T, provider Provider[int8]) {
	t.Run("Expiration", func(t *testing.T) {
		t.Parallel()

		t.Run("ZeroSeconds", func(t *testing.T) {
			t.Parallel()

			clock := NewFixedClock(time.Now())
			store, release := provider(expiration.Seconds(0), clock)
			defer release()

			store.Set("fruit", 1)
			if _, ok := store.Get("fruit"); ok {
				t.Error("zero-length TTL must never hit")
			}
			if store.Len() != 0 {
				t.Errorf("expired entry should be removed by Get: Len() = %d", store.Len())
			}
		})

		for _, ttl := range []uint64{1, 10, 3600} {
			ttl := ttl
			t.Run("Seconds"+strconv.FormatUint(ttl, 10), func(t *testing.T) {
				t.Parallel()

				base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
				clock := NewFixedClock(base)
				store, release := provider(expiration.Seconds(ttl), clock)
				defer release()

				store.Set("fruit", 1)
				if v, ok := store.Get("fruit"); !ok || v != 1 {
					t.Errorf("Get() = (%d, %v), want (1, true)", v, ok)
				}

				clock.Set(base.Add(time.Duration(ttl)*time.Second - time.Nanosecond))
				if v, ok := store.Get("fruit"); !ok || v != 1 {
					t.Errorf("Get() just before the TTL = (%d, %v), want (1, true)", v, ok)
				}

				clock.Set(base.Add(time.Duration(ttl) * time.Second))
				if _, ok := store.Get("fruit"); ok {
					t.Error("should not exist once the TTL has elapsed")
				}
				if store.Len() != 0 {
					t.Errorf("expired entry should be removed by Get: Len() = %d", store.Len())
				}
			})
		}

		t.Run("NotSliding", func(t *testing.T) {
			t.Parallel()

			base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
			clock := NewFixedClock(base)
			store, release := provider(expiration.Seconds(10), clock)
			defer release()

			store.Set("fruit", 1)
			for i := 1; i < 10; i++ {
				clock.Set(base.Add(time.Duration(i) * time.Second))
				if _, ok := store.Get("fruit"); !ok {
					t.Fatalf("should exist %d seconds after insertion", i)
				}
			}

			clock.Set(base.Add(10 * time.Second))
			if _, ok := store.Get("fruit"); ok {
				t.Error("reading must not extend the lifetime of the entry")
			}
		})

		t.Run("SetRefreshesInsertionTime", func(t *testing.T) {
			t.Parallel()

			base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
			clock := NewFixedClock(base)
			store, release := provider(expiration.Minutes(1), clock)
			defer release()

			store.Set("fruit", 1)
			clock.Advance(50 * time.Second)
			store.Set("fruit", 2)
			clock.Advance(50 * time.Second)
			if v, ok := store.Get("fruit"); !ok || v != 2 {
				t.Errorf("Get() = (%d, %v), want (2, true)", v, ok)
			}
			clock.Advance(10 * time.Second)
			if _, ok := store.Get("fruit"); ok {
				t.Error("should not exist once the TTL has elapsed since the last Set")
			}
		})

		t.Run("ExpiredEntryStaysUntilRead", func(t *testing.T) {
			t.Parallel()

			base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
			clock := NewFixedClock(base)
			store, release := provider(expiration.Seconds(1), clock)
			defer release()

			store.Set("fruit", 1)
			store.Set("meat", 2)
			clock.Advance(time.Hour)
			if store.Len() != 2 {
				t.Errorf("expiration must be lazy: Len() = %d, want 2", store.Len())
			}
			if _, ok := store.Get("fruit"); ok {
				t.Error("should not exist")
			}
			if store.Len() != 1 {
				t.Errorf("only the read entry should be removed: Len() = %d, want 1", store.Len())
			}
		})

		t.Run("ClockAnomaly", func(t *testing.T) {
			t.Parallel()

			base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
			clock := NewFixedClock(base)
			store, release := provider(expiration.Hours(24), clock)
			defer release()

			store.Set("fruit", 1)
			clock.Set(base.Add(-time.Second))
			if _, ok := store.Get("fruit"); ok {
				t.Error("an entry inserted in the future must be treated as expired")
			}

			clock.Set(base)
			if _, ok := store.Get("fruit"); ok {
				t.Error("the entry should have been removed")
			}
		})
	})
}

// TestConcurrentAccess tests that the store can be shared between goroutines.
// Only stores that are safe for concurrent use should be tested with it.
func TestConcurrentAccess(t *testing.T, provider Provider[int8]) {
	t.Run("ConcurrentAccess", func(t *testing.T) {
		t.Parallel()

		store, release := provider(expiration.Default, pocketcache.SystemClock)
		defer release()

		keys := make([]string, 64)
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		rand.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})

		var eg errgroup.Group
		for i, key := range keys {
			i, key := i, key
			eg.Go(func() error {
				store.Set(key, int8(i))
				if v, ok := store.Get(key); !ok {
					return fmt.Errorf("value for key %q should exist", key)
				} else if v != int8(i) {
					// another goroutine does not write the same key
					return fmt.Errorf("unexpected value for key %q: %d", key, v)
				}
				if i%2 == 0 {
					store.Delete(key)
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}

		if store.Len() != len(keys)/2 {
			t.Errorf("Len() = %d, want %d", store.Len(), len(keys)/2)
		}
	})
}

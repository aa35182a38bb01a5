package pocketcache_test

import (
	"fmt"
	"time"

	"github.com/karupanerura/pocketcache"
	"github.com/karupanerura/pocketcache/cachetest"
	"github.com/karupanerura/pocketcache/expiration"
)

func ExampleCache() {
	cache := pocketcache.New[string](expiration.Hours(10))

	cache.Set("fruit", "banana")
	if v, ok := cache.Get("fruit"); ok {
		fmt.Println("fruit:", v)
	}
	if _, ok := cache.Get("meat"); !ok {
		fmt.Println("meat: not found")
	}

	cache.Set("meat", "crab")
	cache.Delete("meat")
	if _, ok := cache.Get("meat"); !ok {
		fmt.Println("meat: not found")
	}

	// Output:
	// fruit: banana
	// meat: not found
	// meat: not found
}

func ExampleCache_Clear() {
	cache := pocketcache.New[uint8](expiration.Default)
	for i := 1; i < 6; i++ {
		cache.Set(fmt.Sprint(i), uint8(i*10))
	}

	for i := 1; i < 6; i++ {
		if i%2 == 0 {
			cache.Delete(fmt.Sprint(i))
		}
		v, ok := cache.Get(fmt.Sprint(i))
		fmt.Printf("get %d: %d %v\n", i, v, ok)
	}

	cache.Clear()
	fmt.Println("after clear:", cache.Len())

	// Output:
	// get 1: 10 true
	// get 2: 0 false
	// get 3: 30 true
	// get 4: 0 false
	// get 5: 50 true
	// after clear: 0
}

func ExampleWithClock() {
	clock := cachetest.NewFixedClock(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC))
	cache := pocketcache.New(expiration.Minutes(1), pocketcache.WithClock[string](clock))

	cache.Set("fruit", "orange")
	clock.Advance(59 * time.Second)
	v, ok := cache.Get("fruit")
	fmt.Printf("%q %v\n", v, ok)

	clock.Advance(time.Second)
	v, ok = cache.Get("fruit")
	fmt.Printf("%q %v\n", v, ok)

	// Output:
	// "orange" true
	// "" false
}

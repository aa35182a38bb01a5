package pocketcache_test

import (
	"testing"
	"time"

	"github.com/karupanerura/pocketcache"
)

func TestClockFunc_Now(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := pocketcache.ClockFunc(func() time.Time {
		return fixedTime
	})

	for i := 0; i < 3; i++ {
		if result := clock.Now(); !result.Equal(fixedTime) {
			t.Errorf("Expected time %v, got %v", fixedTime, result)
		}
	}
}

func TestSystemClock(t *testing.T) {
	t.Parallel()

	before := time.Now()
	now := pocketcache.SystemClock.Now()
	after := time.Now()
	if now.Before(before) || now.After(after) {
		t.Errorf("SystemClock.Now() = %v, want between %v and %v", now, before, after)
	}
}

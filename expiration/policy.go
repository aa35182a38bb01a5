package expiration

import (
	"math"
	"math/bits"
	"time"
)

// Unit is the unit of an Expiration.
type Unit uint8

const (
	// UnitDefault is the unit of Default. It carries no count.
	UnitDefault Unit = iota
	// UnitSecond is the unit of Seconds.
	UnitSecond
	// UnitMinute is the unit of Minutes.
	UnitMinute
	// UnitHour is the unit of Hours.
	UnitHour
)

// Expiration is the time-to-live of cache entries.
// It is an immutable value and is safe to copy.
type Expiration struct {
	unit  Unit
	count uint64
}

// Default expires entries one hour after insertion.
var Default = Expiration{}

// Seconds expires entries n seconds after insertion.
func Seconds(n uint64) Expiration {
	return Expiration{unit: UnitSecond, count: n}
}

// Minutes expires entries n minutes after insertion.
func Minutes(n uint64) Expiration {
	return Expiration{unit: UnitMinute, count: n}
}

// Hours expires entries n hours after insertion.
func Hours(n uint64) Expiration {
	return Expiration{unit: UnitHour, count: n}
}

// Unit returns the unit of the expiration.
func (e Expiration) Unit() Unit {
	return e.unit
}

// Count returns the number of units. It is always 0 for Default.
func (e Expiration) Count() uint64 {
	return e.count
}

// ToSeconds returns the time-to-live in seconds.
// Values that do not fit in uint64 saturate at math.MaxUint64.
func (e Expiration) ToSeconds() uint64 {
	switch e.unit {
	case UnitSecond:
		return e.count
	case UnitMinute:
		return mulSaturated(e.count, Seconds(60).ToSeconds())
	case UnitHour:
		return mulSaturated(e.count, Minutes(60).ToSeconds())
	default:
		return Hours(1).ToSeconds()
	}
}

// Duration returns the time-to-live as a time.Duration.
// Values that do not fit in time.Duration saturate at its maximum.
func (e Expiration) Duration() time.Duration {
	sec := e.ToSeconds()
	if sec > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(sec) * time.Second
}

// IsExpired reports whether an entry inserted at insertedAt is expired at now.
//
// An entry is expired once the whole seconds elapsed since insertion reach ToSeconds.
// If now is before insertedAt the pair cannot be ordered, and the entry is reported
// as expired as well.
func (e Expiration) IsExpired(insertedAt, now time.Time) bool {
	elapsed := now.Sub(insertedAt)
	if elapsed < 0 {
		return true
	}
	return uint64(elapsed/time.Second) >= e.ToSeconds()
}

func mulSaturated(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

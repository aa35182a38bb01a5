package expiration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidExpiration is returned when a text form of an Expiration cannot be parsed.
var ErrInvalidExpiration = errors.New("invalid expiration")

// String returns the text form of the expiration: "30s", "5m", "3h" or "default".
func (e Expiration) String() string {
	switch e.unit {
	case UnitSecond:
		return strconv.FormatUint(e.count, 10) + "s"
	case UnitMinute:
		return strconv.FormatUint(e.count, 10) + "m"
	case UnitHour:
		return strconv.FormatUint(e.count, 10) + "h"
	default:
		return "default"
	}
}

// Parse parses the text form of an expiration.
//
// It accepts "default" and a non-negative integer followed by a unit. The unit is
// one of "s", "sec", "second", "seconds", "m", "min", "minute", "minutes", "h",
// "hour" or "hours", optionally separated from the number by spaces.
// Units are case-insensitive.
func Parse(s string) (Expiration, error) {
	text := strings.TrimSpace(s)
	if strings.EqualFold(text, "default") {
		return Default, nil
	}

	i := strings.IndexFunc(text, func(r rune) bool {
		return r < '0' || '9' < r
	})
	if i <= 0 {
		return Expiration{}, fmt.Errorf("%w: %q", ErrInvalidExpiration, s)
	}

	n, err := strconv.ParseUint(text[:i], 10, 64)
	if err != nil {
		return Expiration{}, fmt.Errorf("%w: %q: %w", ErrInvalidExpiration, s, err)
	}

	switch strings.ToLower(strings.TrimSpace(text[i:])) {
	case "s", "sec", "second", "seconds":
		return Seconds(n), nil
	case "m", "min", "minute", "minutes":
		return Minutes(n), nil
	case "h", "hour", "hours":
		return Hours(n), nil
	default:
		return Expiration{}, fmt.Errorf("%w: %q: unknown unit", ErrInvalidExpiration, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Expiration) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Expiration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

package daterange

import (
	"fmt"
	"strings"
	"time"
)

// Unit is a fixed-length duration unit used by Between
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
)

var unitNames = [...]string{"millisecond", "second", "minute", "hour", "day", "week"}

// Millis returns the unit's length in milliseconds
func (u Unit) Millis() int64 {
	return u.Duration().Milliseconds()
}

// Duration returns the unit's length
func (u Unit) Duration() time.Duration {
	switch u {
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	case Week:
		return 7 * 24 * time.Hour
	}
	return time.Millisecond
}

func (u Unit) String() string {
	if u < Millisecond || u > Week {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// ParseUnit resolves a unit by name; a trailing "s" is accepted
func ParseUnit(name string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "ms" {
		return Millisecond, nil
	}
	key = strings.TrimSuffix(key, "s")
	switch key {
	case "milli":
		return Millisecond, nil
	case "sec":
		return Second, nil
	case "m", "min":
		return Minute, nil
	case "h":
		return Hour, nil
	case "d":
		return Day, nil
	case "w":
		return Week, nil
	}
	for u, n := range unitNames {
		if n == key {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q", name)
}

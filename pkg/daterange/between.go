package daterange

import (
	"fmt"
	"strings"
	"time"
)

// Between measures the distance between two instants
type Between struct {
	begin time.Time
	end   time.Time
}

// NewBetween creates a Between. When isAbs is set and begin is after end the
// two are swapped so that begin <= end.
func NewBetween(begin, end time.Time, isAbs bool) Between {
	if isAbs && begin.After(end) {
		begin, end = end, begin
	}
	return Between{begin: begin, end: end}
}

func (b Between) Begin() time.Time { return b.begin }
func (b Between) End() time.Time   { return b.end }

// BetweenMs returns end - begin in milliseconds
func (b Between) BetweenMs() int64 {
	return b.end.UnixMilli() - b.begin.UnixMilli()
}

// Between returns the millisecond delta integer-divided by the unit size
func (b Between) Between(unit Unit) int64 {
	return b.BetweenMs() / unit.Millis()
}

// BetweenMonth returns the number of months between begin and end. Unless
// isReset is set, a month only counts once it has fully elapsed:
// 2022-01-31 to 2022-03-01 is one month, not two.
func (b Between) BetweenMonth(isReset bool) int64 {
	begin, end := b.begin, b.end.In(b.begin.Location())

	result := int64(end.Year()-begin.Year())*12 + int64(end.Month()-begin.Month())
	if !isReset {
		shifted := time.Date(begin.Year(), begin.Month(), end.Day(),
			end.Hour(), end.Minute(), end.Second(), end.Nanosecond(), end.Location())
		if shifted.Before(begin) {
			return result - 1
		}
	}
	return result
}

// BetweenYear returns the number of years between begin and end. Unless
// isReset is set, a year only counts once it has fully elapsed. The last
// days of February compare equal across leap and common years.
func (b Between) BetweenYear(isReset bool) int64 {
	begin, end := b.begin, b.end.In(b.begin.Location())

	result := int64(end.Year() - begin.Year())
	if isReset {
		return result
	}

	switch {
	case begin.Month() < end.Month():
		return result
	case begin.Month() > end.Month():
		return result - 1
	}

	if begin.Month() == time.February && isLastDayOfMonth(begin) && isLastDayOfMonth(end) {
		begin = withDay(begin, 1)
		end = withDay(end, 1)
	}
	shifted := time.Date(begin.Year(), end.Month(), end.Day(),
		end.Hour(), end.Minute(), end.Second(), end.Nanosecond(), end.Location())
	if shifted.Before(begin) {
		return result - 1
	}
	return result
}

// String renders the duration as e.g. "3d4h5m6s", largest unit first
func (b Between) String() string {
	return FormatBetween(b.BetweenMs(), Millisecond)
}

// FormatBetween renders a millisecond duration down to the given precision
func FormatBetween(ms int64, precision Unit) string {
	if ms < 0 {
		return "-" + FormatBetween(-ms, precision)
	}

	parts := []struct {
		unit   Unit
		suffix string
	}{
		{Day, "d"}, {Hour, "h"}, {Minute, "m"}, {Second, "s"}, {Millisecond, "ms"},
	}

	var sb strings.Builder
	rest := ms
	for _, p := range parts {
		if p.unit < precision {
			break
		}
		n := rest / p.unit.Millis()
		rest -= n * p.unit.Millis()
		if n > 0 {
			fmt.Fprintf(&sb, "%d%s", n, p.suffix)
		}
	}
	if sb.Len() == 0 {
		return "0" + unitSuffix(precision)
	}
	return sb.String()
}

func unitSuffix(u Unit) string {
	switch u {
	case Second:
		return "s"
	case Minute:
		return "m"
	case Hour:
		return "h"
	case Day, Week:
		return "d"
	}
	return "ms"
}

func isLastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

func withDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

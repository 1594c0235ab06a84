package dateutil

import (
	"time"
)

const maxYear = 9999

// DateTime is an instant at millisecond precision together with the week
// rules used to resolve week based fields. It is an immutable value: every
// setter returns a new DateTime and leaves the receiver untouched.
type DateTime struct {
	t              time.Time
	firstDayOfWeek time.Weekday
	minimalDays    int
}

// New wraps t with Monday as the first day of week and a one day minimal
// first week. Sub-millisecond precision is dropped.
func New(t time.Time) DateTime {
	return DateTime{
		t:              t.Truncate(time.Millisecond),
		firstDayOfWeek: time.Monday,
		minimalDays:    1,
	}
}

// FromUnixMilli builds a DateTime in loc from epoch milliseconds
func FromUnixMilli(ms int64, loc *time.Location) DateTime {
	if loc == nil {
		loc = time.Local
	}
	return New(time.UnixMilli(ms).In(loc))
}

// Date builds a DateTime from calendar fields; out of range values are
// normalized the way time.Date does.
func Date(year int, month time.Month, day, hour, minute, sec, ms int, loc *time.Location) DateTime {
	if loc == nil {
		loc = time.Local
	}
	return New(time.Date(year, month, day, hour, minute, sec, ms*int(time.Millisecond), loc))
}

func (dt DateTime) Time() time.Time              { return dt.t }
func (dt DateTime) Location() *time.Location     { return dt.t.Location() }
func (dt DateTime) UnixMilli() int64             { return dt.t.UnixMilli() }
func (dt DateTime) FirstDayOfWeek() time.Weekday { return dt.firstDayOfWeek }

// MinimalDaysInFirstWeek is the number of days of a period the first week
// must contain to be counted as week 1.
func (dt DateTime) MinimalDaysInFirstWeek() int {
	if dt.minimalDays < 1 {
		return 1
	}
	return dt.minimalDays
}

// WithFirstDayOfWeek returns a copy using first as the week start
func (dt DateTime) WithFirstDayOfWeek(first time.Weekday) DateTime {
	dt.firstDayOfWeek = first
	return dt
}

// WithMinimalDaysInFirstWeek returns a copy with the given week rule (1..7)
func (dt DateTime) WithMinimalDaysInFirstWeek(days int) DateTime {
	if days < 1 {
		days = 1
	}
	if days > 7 {
		days = 7
	}
	dt.minimalDays = days
	return dt
}

// WithTime replaces the instant and keeps the week rules
func (dt DateTime) WithTime(t time.Time) DateTime {
	dt.t = t.Truncate(time.Millisecond)
	return dt
}

func (dt DateTime) Before(other DateTime) bool { return dt.t.Before(other.t) }
func (dt DateTime) After(other DateTime) bool  { return dt.t.After(other.t) }
func (dt DateTime) Equal(other DateTime) bool  { return dt.t.Equal(other.t) }

// Compare returns -1, 0 or +1 comparing the instants
func (dt DateTime) Compare(other DateTime) int {
	switch {
	case dt.t.Before(other.t):
		return -1
	case dt.t.After(other.t):
		return 1
	}
	return 0
}

func (dt DateTime) String() string {
	return dt.t.Format("2006-01-02 15:04:05.000")
}

// Get returns the value of a calendar field
func (dt DateTime) Get(field Field) int {
	t := dt.t
	switch field {
	case Year:
		return t.Year()
	case Month:
		return int(t.Month())
	case WeekOfYear:
		return dt.weekOfYear()
	case WeekOfMonth:
		return dt.weekNumber(civilDate(t.Year(), t.Month(), 1), t.Day()-1)
	case DayOfMonth:
		return t.Day()
	case DayOfYear:
		return t.YearDay()
	case DayOfWeek:
		return int(t.Weekday())
	case DayOfWeekInMonth:
		return (t.Day()-1)/7 + 1
	case AmPm:
		return t.Hour() / 12
	case Hour:
		return t.Hour() % 12
	case HourOfDay:
		return t.Hour()
	case Minute:
		return t.Minute()
	case Second:
		return t.Second()
	case Millisecond:
		return t.Nanosecond() / int(time.Millisecond)
	}
	return 0
}

// Set returns a copy with field set to value. Setting is lenient: values
// outside the field's range roll over into the coarser fields. Week fields
// keep the day of week, DayOfWeek stays inside the current week as defined
// by the first day of week.
func (dt DateTime) Set(field Field, value int) DateTime {
	t := dt.t
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	ms := t.Nanosecond() / int(time.Millisecond)
	mo := int(month)

	switch field {
	case Year:
		year = value
	case Month:
		mo = value
	case WeekOfYear, WeekOfMonth, DayOfWeekInMonth:
		day += (value - dt.Get(field)) * 7
	case DayOfMonth:
		day = value
	case DayOfYear:
		mo, day = 1, value
	case DayOfWeek:
		first := int(dt.firstDayOfWeek)
		day += weekPosition(value, first) - weekPosition(int(t.Weekday()), first)
	case AmPm:
		hour = value*12 + hour%12
	case Hour:
		hour = hour/12*12 + value
	case HourOfDay:
		hour = value
	case Minute:
		minute = value
	case Second:
		sec = value
	case Millisecond:
		ms = value
	default:
		return dt
	}

	dt.t = sameOffset(t, time.Date(year, time.Month(mo), day, hour, minute, sec, ms*int(time.Millisecond), t.Location()))
	return dt
}

// ActualMinimum returns the smallest value field can take for this instant
func (dt DateTime) ActualMinimum(field Field) int {
	switch field {
	case Year, Month, WeekOfYear, DayOfMonth, DayOfYear, DayOfWeekInMonth:
		return 1
	case WeekOfMonth:
		return dt.weekNumber(civilDate(dt.t.Year(), dt.t.Month(), 1), 0)
	}
	return 0
}

// ActualMaximum returns the largest value field can take for this instant,
// e.g. 29 for DayOfMonth in February of a leap year.
func (dt DateTime) ActualMaximum(field Field) int {
	t := dt.t
	switch field {
	case Year:
		return maxYear
	case Month:
		return 12
	case WeekOfYear:
		return dt.weeksInYear()
	case WeekOfMonth:
		n := daysIn(t.Month(), t.Year())
		return dt.weekNumber(civilDate(t.Year(), t.Month(), 1), n-1)
	case DayOfMonth:
		return daysIn(t.Month(), t.Year())
	case DayOfYear:
		return daysInYear(t.Year())
	case DayOfWeek:
		return int(time.Saturday)
	case DayOfWeekInMonth:
		return (daysIn(t.Month(), t.Year())-1)/7 + 1
	case AmPm:
		return 1
	case Hour:
		return 11
	case HourOfDay:
		return 23
	case Minute, Second:
		return 59
	case Millisecond:
		return 999
	}
	return 0
}

// Offset returns a copy moved by n units of field. Year and month offsets
// clamp the day to the end of the target month (Jan 31 + 1 month = Feb 28),
// day based offsets keep the wall clock, time offsets add elapsed time.
func (dt DateTime) Offset(field Field, n int) DateTime {
	t := dt.t
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	nsec := t.Nanosecond()

	switch field {
	case Year, Month:
		months := int(month) - 1 + n
		if field == Year {
			months = int(month) - 1 + n*12
		}
		year += floorDiv(months, 12)
		month = time.Month(months-floorDiv(months, 12)*12) + 1
		if last := daysIn(month, year); day > last {
			day = last
		}
	case WeekOfYear, WeekOfMonth, DayOfWeekInMonth:
		day += 7 * n
	case DayOfMonth, DayOfYear, DayOfWeek:
		day += n
	case AmPm:
		dt.t = t.Add(time.Duration(n) * 12 * time.Hour)
		return dt
	case Hour, HourOfDay:
		dt.t = t.Add(time.Duration(n) * time.Hour)
		return dt
	case Minute:
		dt.t = t.Add(time.Duration(n) * time.Minute)
		return dt
	case Second:
		dt.t = t.Add(time.Duration(n) * time.Second)
		return dt
	case Millisecond:
		dt.t = t.Add(time.Duration(n) * time.Millisecond)
		return dt
	default:
		return dt
	}

	dt.t = sameOffset(t, time.Date(year, month, day, hour, minute, sec, nsec, t.Location()))
	return dt
}

// sameOffset resolves an ambiguous wall clock (the repeated hour when clocks
// go back) to the reading with the offset of orig. time.Date picks one of
// the two readings on its own, which can move an instant across the
// transition.
func sameOffset(orig, t time.Time) time.Time {
	_, want := orig.Zone()
	_, got := t.Zone()
	if want == got {
		return t
	}

	alt := t.Add(time.Duration(got-want) * time.Second)
	if _, off := alt.Zone(); off != want {
		return t
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := alt.Date()
	h1, n1, s1 := t.Clock()
	h2, n2, s2 := alt.Clock()
	if y1 != y2 || m1 != m2 || d1 != d2 || h1 != h2 || n1 != n2 || s1 != s2 {
		return t
	}
	return alt
}

// weekNumber numbers the week holding the dayIndex-th (0-based) day of a
// period starting at periodStart. Week 1 is the first week with at least
// MinimalDaysInFirstWeek days inside the period; days before it are in
// week 0.
func (dt DateTime) weekNumber(periodStart time.Time, dayIndex int) int {
	lead := weekPosition(int(dt.firstDayOfWeek), int(periodStart.Weekday()))
	week1 := lead
	if lead >= dt.MinimalDaysInFirstWeek() {
		week1 -= 7
	}
	return floorDiv(dayIndex-week1, 7) + 1
}

func (dt DateTime) weekOfYear() int {
	year := dt.t.Year()
	idx := dt.t.YearDay() - 1
	week := dt.weekNumber(civilDate(year, time.January, 1), idx)

	if week == 0 {
		prev := year - 1
		return dt.weekNumber(civilDate(prev, time.January, 1), daysInYear(prev)-1)
	}
	if week >= 52 {
		next := civilDate(year+1, time.January, 1)
		lead := weekPosition(int(dt.firstDayOfWeek), int(next.Weekday()))
		if lead >= dt.MinimalDaysInFirstWeek() && idx >= daysInYear(year)+lead-7 {
			return 1
		}
	}
	return week
}

func (dt DateTime) weeksInYear() int {
	year := dt.t.Year()
	probe := dt.WithTime(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	if w := probe.weekOfYear(); w != 1 {
		return w
	}
	return probe.WithTime(time.Date(year, time.December, 24, 0, 0, 0, 0, time.UTC)).weekOfYear()
}

func civilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

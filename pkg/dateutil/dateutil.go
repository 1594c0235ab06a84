package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrBirthdayAfter is returned by Age when the birthday is after the date
// the age is computed for
var ErrBirthdayAfter = errors.New("birthday is after the date to compare")

// StartOfDay returns the start of the day (00:00:00.000) for the given date
func StartOfDay(date time.Time) time.Time {
	return Truncate(New(date), DayOfMonth).Time()
}

// EndOfDay returns the end of the day (23:59:59.999) for the given date
func EndOfDay(date time.Time) time.Time {
	return Ceiling(New(date), DayOfMonth).Time()
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return BeginOfWeek(date, time.Monday)
}

// EndOfWeek returns the Sunday of the week for the given date
func EndOfWeek(date time.Time) time.Time {
	return EndOfWeekFrom(date, time.Monday)
}

// BeginOfWeek returns the start of the week containing date, weeks
// starting on first
func BeginOfWeek(date time.Time, first time.Weekday) time.Time {
	return Truncate(New(date).WithFirstDayOfWeek(first), WeekOfMonth).Time()
}

// EndOfWeekFrom returns the last millisecond of the week containing date,
// weeks starting on first
func EndOfWeekFrom(date time.Time, first time.Weekday) time.Time {
	return Ceiling(New(date).WithFirstDayOfWeek(first), WeekOfMonth).Time()
}

// StartOfMonth returns the first millisecond of the month
func StartOfMonth(date time.Time) time.Time {
	return Truncate(New(date), Month).Time()
}

// EndOfMonth returns the last millisecond of the month
func EndOfMonth(date time.Time) time.Time {
	return Ceiling(New(date), Month).Time()
}

// StartOfQuarter returns the first millisecond of the quarter
func StartOfQuarter(date time.Time) time.Time {
	dt := New(date).Set(DayOfMonth, 1)
	dt = dt.Set(Month, quarterStartMonth(date.Month()))
	return Truncate(dt, Month).Time()
}

// EndOfQuarter returns the last millisecond of the quarter
func EndOfQuarter(date time.Time) time.Time {
	dt := New(date).Set(DayOfMonth, 1)
	dt = dt.Set(Month, quarterStartMonth(date.Month())+2)
	return Ceiling(dt, Month).Time()
}

// StartOfYear returns the first millisecond of the year
func StartOfYear(date time.Time) time.Time {
	return Truncate(New(date), Year).Time()
}

// EndOfYear returns the last millisecond of the year
func EndOfYear(date time.Time) time.Time {
	return Ceiling(New(date), Year).Time()
}

func quarterStartMonth(m time.Month) int {
	return (int(m)-1)/3*3 + 1
}

// Quarter returns the quarter (1..4) of the date
func Quarter(date time.Time) int {
	return (int(date.Month())-1)/3 + 1
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// IsSameWeek returns true if two dates are in the same week. Weeks start on
// Monday when mondayFirst is set, on Sunday otherwise.
func IsSameWeek(date1, date2 time.Time, mondayFirst bool) bool {
	first := time.Sunday
	if mondayFirst {
		first = time.Monday
	}
	return IsSameDay(BeginOfWeek(date1, first), BeginOfWeek(date2, first))
}

// IsSameYear returns true if two dates are in the same year
func IsSameYear(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year()
}

// Age returns the number of full years between birthday and dateToCompare.
// Someone born on the last day of a month is a year older on the last day of
// that month, so a Feb 29 birthday counts on Feb 28 in common years.
func Age(birthday, dateToCompare time.Time) (int, error) {
	if birthday.After(dateToCompare) {
		return 0, fmt.Errorf("age of %s at %s: %w",
			birthday.Format("2006-01-02"), dateToCompare.Format("2006-01-02"), ErrBirthdayAfter)
	}

	year, month, day := dateToCompare.Date()
	isLastDay := day == daysIn(month, year)

	birthYear, birthMonth, birthDay := birthday.Date()
	isLastDayBirth := birthDay == daysIn(birthMonth, birthYear)

	age := year - birthYear
	switch {
	case month < birthMonth:
		age--
	case month == birthMonth:
		if !(isLastDay && isLastDayBirth) && day < birthDay {
			age--
		}
	}
	return age, nil
}

// FormatISO8601 formats date to ISO 8601 format with timezone
// Example: 2025-01-15T10:00:00.000+0000
func FormatISO8601(date time.Time) string {
	return date.Format("2006-01-02T15:04:05.000-0700")
}

// ParseError is returned by ParseDate when no layout matches the input
type ParseError struct {
	Text    string
	Layouts []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse date %q with any of %d layouts", e.Text, len(e.Layouts))
}

var parseLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04",
	"02.01.2006",
	"2006/01/02",
	"20060102",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses date string in various formats. Layouts without a zone
// are read in UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return ParseDateIn(dateStr, time.UTC)
}

// ParseDateIn is ParseDate reading zone-less layouts in loc
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, format := range parseLayouts {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &ParseError{Text: dateStr, Layouts: parseLayouts}
}

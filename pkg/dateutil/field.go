package dateutil

import (
	"fmt"
	"strings"
)

// Field is a calendar granularity. Fields are ordered from the coarsest
// (Year) to the finest (Millisecond); the order is fixed and total.
type Field int

const (
	Year Field = iota
	Month
	WeekOfYear
	WeekOfMonth
	DayOfMonth
	DayOfYear
	DayOfWeek
	DayOfWeekInMonth
	AmPm
	Hour
	HourOfDay
	Minute
	Second
	Millisecond
)

// fieldScope limits the targets for which the modifier walks a field
type fieldScope int

const (
	scopeAny fieldScope = iota
	scopeWeekTarget
	scopeNonWeekTarget
)

// fieldSpec describes how the modifier treats a field.
type fieldSpec struct {
	name  string
	alias []string

	// ignored fields are redundant with another field or resolved elsewhere
	ignored bool
	scope   fieldScope

	// setAs redirects writes; Hour is written through HourOfDay so that
	// the end of a day is 23:59:59 and not 11:59:59 of the same half.
	setAs Field

	lo      func(dt DateTime) int
	hi      func(dt DateTime) int
	roundUp func(value, lo, hi int) bool
}

var fieldSpecs = [...]fieldSpec{
	Year:             {name: "year", alias: []string{"y"}},
	Month:            {name: "month", alias: []string{"mon"}, roundUp: roundUpZeroBased},
	WeekOfYear:       {name: "week_of_year", alias: []string{"week"}, ignored: true},
	WeekOfMonth:      {name: "week_of_month", ignored: true},
	DayOfMonth:       {name: "day_of_month", alias: []string{"day", "date", "d"}, scope: scopeNonWeekTarget},
	DayOfYear:        {name: "day_of_year", ignored: true},
	DayOfWeek:        {name: "day_of_week", alias: []string{"weekday"}, scope: scopeWeekTarget, lo: firstDayOfWeekMin, hi: firstDayOfWeekMax, roundUp: roundUpMidWeek},
	DayOfWeekInMonth: {name: "day_of_week_in_month", ignored: true},
	AmPm:             {name: "am_pm", alias: []string{"half_day"}, ignored: true},
	Hour:             {name: "hour", alias: []string{"h"}, setAs: HourOfDay},
	HourOfDay:        {name: "hour_of_day", ignored: true},
	Minute:           {name: "minute", alias: []string{"min"}},
	Second:           {name: "second", alias: []string{"sec", "s"}},
	Millisecond:      {name: "millisecond", alias: []string{"ms"}},
}

func init() {
	for f := range fieldSpecs {
		spec := &fieldSpecs[f]
		if spec.setAs == 0 {
			spec.setAs = Field(f)
		}
		field := spec.setAs
		if spec.lo == nil {
			spec.lo = func(dt DateTime) int { return dt.ActualMinimum(field) }
		}
		if spec.hi == nil {
			spec.hi = func(dt DateTime) int { return dt.ActualMaximum(field) }
		}
		if spec.roundUp == nil {
			spec.roundUp = roundUpHalf
		}
	}
}

// roundUpHalf is the generic upper-biased midpoint rule
func roundUpHalf(value, lo, hi int) bool {
	return value >= (hi-lo)/2+1
}

// roundUpZeroBased applies the midpoint rule to the ordinal of a one-based
// field, so January..June round down and July..December round up.
func roundUpZeroBased(value, lo, hi int) bool {
	return value-lo >= (hi-lo)/2+1
}

// roundUpMidWeek uses a fixed middle of week: the third day after the first
// day of week. Weekdays are compared by their position in the week.
func roundUpMidWeek(value, lo, _ int) bool {
	href := (lo + 3) % 7
	return weekPosition(value, lo) >= weekPosition(href, lo)
}

func firstDayOfWeekMin(dt DateTime) int {
	return int(dt.FirstDayOfWeek())
}

func firstDayOfWeekMax(dt DateTime) int {
	return (int(dt.FirstDayOfWeek()) + 6) % 7
}

func weekPosition(weekday, first int) int {
	return ((weekday-first)%7 + 7) % 7
}

// IsWeek reports whether f is one of the week-of-period fields
func (f Field) IsWeek() bool {
	return f == WeekOfYear || f == WeekOfMonth
}

// Valid reports whether f is a known field
func (f Field) Valid() bool {
	return f >= Year && f <= Millisecond
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldSpecs[f].name
}

// ParseField resolves a field by name or alias, case-insensitively
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	for f, spec := range fieldSpecs {
		if spec.name == key {
			return Field(f), nil
		}
		for _, a := range spec.alias {
			if a == key {
				return Field(f), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown date field %q", name)
}

package calendar

import (
	"fmt"
	"time"

	cal "github.com/rickar/cal/v2"
)

// businessView adapts c to a cal.BusinessCalendar. The first lookup error is
// kept in *errp; from then on every day reads as a workday so that a walk
// over the calendar stops early. onWorkday, when set, sees the working hours
// of every workday the walk visits.
func businessView(c Calendar, errp *error, onWorkday func(hours int)) *cal.BusinessCalendar {
	business := cal.NewBusinessCalendar()
	business.WorkdayFunc = func(date time.Time) bool {
		if *errp != nil {
			return true
		}
		ok, hours, err := c.IsWorkday(date)
		if err != nil {
			*errp = err
			return true
		}
		if ok && onWorkday != nil {
			onWorkday(hours)
		}
		return ok
	}
	return business
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddWorkdays moves n workdays away from date (backwards for negative n).
// The date itself is never counted; n == 0 returns the calendar date of
// date unchanged.
func AddWorkdays(c Calendar, date time.Time, n int) (time.Time, error) {
	var err error
	day := businessView(c, &err, nil).WorkdaysFrom(civilDate(date), n)
	if err != nil {
		return time.Time{}, fmt.Errorf("add workdays: %w", err)
	}
	return day, nil
}

// CountWorkdays counts the workdays in [from, to] and their working hours.
// Both ends are calendar dates and are included; from after to yields 0.
func CountWorkdays(c Calendar, from, to time.Time) (days, hours int, err error) {
	first, last := civilDate(from), civilDate(to)
	if first.After(last) {
		return 0, 0, nil
	}

	var lookupErr error
	business := businessView(c, &lookupErr, func(h int) { hours += h })
	days = business.WorkdaysInRange(first, last)
	if lookupErr != nil {
		return 0, 0, fmt.Errorf("count workdays: %w", lookupErr)
	}
	return days, hours, nil
}

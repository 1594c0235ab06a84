// Package daterange provides containment, overlap, duration and stepped
// sequence math over time ranges.
package daterange

import "time"

// IsIn reports whether date lies between begin and end. begin and end may
// be passed in either order.
//
// The inclusion flags apply to the chronologically earlier and later bound,
// not to the arguments: when begin is after end, includeBegin controls the
// end argument.
func IsIn(date, begin, end time.Time, includeBegin, includeEnd bool) bool {
	d := date.UnixMilli()
	rangeMin, rangeMax := begin.UnixMilli(), end.UnixMilli()
	if rangeMin > rangeMax {
		rangeMin, rangeMax = rangeMax, rangeMin
	}

	if rangeMin < d && d < rangeMax {
		return true
	}
	return (includeBegin && d == rangeMin) || (includeEnd && d == rangeMax)
}

// IsInClosed is IsIn with both bounds included
func IsInClosed(date, begin, end time.Time) bool {
	return IsIn(date, begin, end, true, true)
}

// IsOverlap reports whether [start1, end1] and [start2, end2] share at least
// one millisecond. Intervals are not normalized: each start must not be after
// its end. A point interval (start == end) reduces to containment.
func IsOverlap(start1, end1, start2, end2 time.Time) bool {
	return start1.UnixMilli() <= end2.UnixMilli() && start2.UnixMilli() <= end1.UnixMilli()
}

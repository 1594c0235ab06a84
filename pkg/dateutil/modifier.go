package dateutil

import (
	"fmt"
	"strings"
)

// ModifyType selects how the fields finer than the pivot field are snapped
type ModifyType int

const (
	// ModifyTruncate sets every finer field to its minimum
	ModifyTruncate ModifyType = iota
	// ModifyRound snaps every finer field to the nearer bound
	ModifyRound
	// ModifyCeiling sets every finer field to its maximum
	ModifyCeiling
)

func (m ModifyType) String() string {
	switch m {
	case ModifyTruncate:
		return "truncate"
	case ModifyRound:
		return "round"
	case ModifyCeiling:
		return "ceiling"
	}
	return fmt.Sprintf("ModifyType(%d)", int(m))
}

// ParseModifyType parses "truncate", "round" or "ceiling" (also "ceil")
func ParseModifyType(s string) (ModifyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truncate", "trunc", "begin":
		return ModifyTruncate, nil
	case "round":
		return ModifyRound, nil
	case "ceiling", "ceil", "end":
		return ModifyCeiling, nil
	}
	return 0, fmt.Errorf("unknown modify type %q", s)
}

// Modify snaps every field finer than field according to mode and returns
// the result; fields coarser than or equal to field are left unchanged.
//
// When forceZeroSubSecond is set the millisecond is always zero in the
// result, also for ModifyRound and ModifyCeiling. This is meant for
// consumers that store second precision only.
func Modify(dt DateTime, field Field, mode ModifyType, forceZeroSubSecond bool) DateTime {
	if field == AmPm {
		dt = modifyHalfDay(dt, mode)
		return Modify(dt, Hour, mode, forceZeroSubSecond)
	}

	last := Millisecond
	if forceZeroSubSecond {
		last = Second
	}
	weekTarget := field.IsWeek()

	for f := field + 1; f <= last; f++ {
		spec := &fieldSpecs[f]
		if spec.ignored {
			continue
		}
		if spec.scope == scopeWeekTarget && !weekTarget {
			continue
		}
		if spec.scope == scopeNonWeekTarget && weekTarget {
			continue
		}
		dt = modifyField(dt, spec, mode)
	}

	if forceZeroSubSecond {
		dt = dt.Set(Millisecond, 0)
	}
	return dt
}

func modifyField(dt DateTime, spec *fieldSpec, mode ModifyType) DateTime {
	lo, hi := spec.lo(dt), spec.hi(dt)
	switch mode {
	case ModifyTruncate:
		return dt.Set(spec.setAs, lo)
	case ModifyCeiling:
		return dt.Set(spec.setAs, hi)
	case ModifyRound:
		if spec.roundUp(dt.Get(spec.setAs), lo, hi) {
			return dt.Set(spec.setAs, hi)
		}
		return dt.Set(spec.setAs, lo)
	}
	return dt
}

// modifyHalfDay resolves AM/PM through the 24 hour clock. The 12 hour
// field cannot tell 00:00 from 12:00.
func modifyHalfDay(dt DateTime, mode ModifyType) DateTime {
	lo := 0
	if dt.Get(AmPm) == 1 {
		lo = 12
	}
	hi := lo + 11

	hour := dt.Get(HourOfDay)
	switch mode {
	case ModifyTruncate:
		hour = lo
	case ModifyCeiling:
		hour = hi
	case ModifyRound:
		if hour < lo+(hi-lo)/2+1 {
			hour = lo
		} else {
			hour = hi
		}
	}
	return dt.Set(HourOfDay, hour)
}

// Truncate sets every field finer than field to its minimum
func Truncate(dt DateTime, field Field) DateTime {
	return Modify(dt, field, ModifyTruncate, false)
}

// Round snaps every field finer than field to its nearer bound
func Round(dt DateTime, field Field) DateTime {
	return Modify(dt, field, ModifyRound, false)
}

// Ceiling sets every field finer than field to its maximum
func Ceiling(dt DateTime, field Field) DateTime {
	return Modify(dt, field, ModifyCeiling, false)
}

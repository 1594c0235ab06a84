package calendar

import (
	"errors"
	"time"
)

// ErrYearNotCovered is returned when a calendar has no data for a year
var ErrYearNotCovered = errors.New("year not covered by the holiday table")

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeAdjustedWorkday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeAdjustedWorkday:
		return "adjusted workday"
	}
	return "unknown"
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         time.Time
	Type         DayType
	WorkingHours int
	IsWorkday    bool
	Note         string // holiday name for holidays and adjusted workdays
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        time.Month
	WorkingHours int // Total working hours in the month
	WorkDays     int
	Weekends     int
	Holidays     int
	Days         []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, int, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}

func (m *MonthInfo) add(day DayInfo) {
	m.Days = append(m.Days, day)
	switch day.Type {
	case DayTypeWorkday, DayTypeAdjustedWorkday:
		m.WorkDays++
		m.WorkingHours += day.WorkingHours
	case DayTypeWeekend:
		m.Weekends++
	case DayTypeHoliday:
		m.Holidays++
	}
}

// buildMonth assembles a MonthInfo from a per-day resolver
func buildMonth(year int, month time.Month, dayInfo func(date time.Time) (*DayInfo, error)) (*MonthInfo, error) {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		info, err := dayInfo(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return nil, err
		}
		monthInfo.add(*info)
	}
	return monthInfo, nil
}

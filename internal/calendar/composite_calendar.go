package calendar

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: HolidayCalendar (holiday table)
// Fallback: WeekendCalendar (Monday to Friday)
//
// Only ErrYearNotCovered triggers the fallback; other errors are returned.
// The fallback is reported once per year at warn level, later lookups in the
// same year at debug level.
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger

	mu     sync.Mutex
	warned map[int]bool
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		warned:   make(map[int]bool),
	}
}

// NewDefaultCalendar combines the holiday table with a weekend fallback
func NewDefaultCalendar(table *Table, workingHours int, logger *zap.Logger) *CompositeCalendar {
	return NewCompositeCalendar(
		NewHolidayCalendar(table, workingHours, logger),
		NewWeekendCalendar(workingHours),
		logger,
	)
}

// IsWorkday checks if the given date is a working day
func (cc *CompositeCalendar) IsWorkday(date time.Time) (bool, int, error) {
	isWorkday, hours, err := cc.primary.IsWorkday(date)
	if !errors.Is(err, ErrYearNotCovered) {
		return isWorkday, hours, err
	}

	cc.logFallback(date.Year(), zap.Time("date", date))

	return cc.fallback.IsWorkday(date)
}

// GetMonthInfo returns calendar info for the entire month
func (cc *CompositeCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	monthInfo, err := cc.primary.GetMonthInfo(year, month)
	if !errors.Is(err, ErrYearNotCovered) {
		return monthInfo, err
	}

	cc.logFallback(year, zap.Int("month", int(month)))

	return cc.fallback.GetMonthInfo(year, month)
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	dayInfo, err := cc.primary.GetDayInfo(date)
	if !errors.Is(err, ErrYearNotCovered) {
		return dayInfo, err
	}

	cc.logFallback(date.Year(), zap.Time("date", date))

	return cc.fallback.GetDayInfo(date)
}

func (cc *CompositeCalendar) logFallback(year int, fields ...zap.Field) {
	cc.mu.Lock()
	first := !cc.warned[year]
	cc.warned[year] = true
	cc.mu.Unlock()

	fields = append([]zap.Field{zap.Int("year", year)}, fields...)
	if first {
		cc.logger.Warn("Holiday table does not cover year, falling back to weekends", fields...)
		return
	}
	cc.logger.Debug("Weekend fallback", fields...)
}

package calendar

import (
	"fmt"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/username/cncal/pkg/dateutil"
	"go.uber.org/zap"
)

const defaultWorkingHours = 8

// HolidayCalendar implements Calendar on top of a holiday Table. Days
// listed in the table follow their record; other days are workdays from
// Monday to Friday.
type HolidayCalendar struct {
	table        *Table
	business     *cal.BusinessCalendar
	workingHours int
	logger       *zap.Logger
}

// NewHolidayCalendar creates a HolidayCalendar. A nil table means the
// built-in table, workingHours <= 0 means 8.
func NewHolidayCalendar(table *Table, workingHours int, logger *zap.Logger) *HolidayCalendar {
	if table == nil {
		table = builtin
	}
	if workingHours <= 0 {
		workingHours = defaultWorkingHours
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	business := cal.NewBusinessCalendar()
	business.Name = "CN"
	business.Description = "Chinese statutory holidays"
	business.WorkdayFunc = func(date time.Time) bool {
		if h, ok := table.FromDate(date); ok {
			return h.IsWorkday
		}
		return dateutil.IsWeekday(date)
	}

	return &HolidayCalendar{
		table:        table,
		business:     business,
		workingHours: workingHours,
		logger:       logger,
	}
}

// Table returns the table the calendar answers from
func (hc *HolidayCalendar) Table() *Table {
	return hc.table
}

// Business returns the business calendar view of the table. It answers
// for any date; years the table does not cover read as plain weekends.
func (hc *HolidayCalendar) Business() *cal.BusinessCalendar {
	return hc.business
}

// IsWorkday checks if the given date is a working day
func (hc *HolidayCalendar) IsWorkday(date time.Time) (bool, int, error) {
	if !hc.table.Covers(date.Year()) {
		return false, 0, fmt.Errorf("day %s: %w", date.Format("2006-01-02"), ErrYearNotCovered)
	}

	if !hc.business.IsWorkday(date) {
		return false, 0, nil
	}
	return true, hc.workingHours, nil
}

// GetMonthInfo returns calendar info for the entire month
func (hc *HolidayCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if !hc.table.Covers(year) {
		return nil, fmt.Errorf("month %d-%02d: %w", year, month, ErrYearNotCovered)
	}

	monthInfo, err := buildMonth(year, month, hc.GetDayInfo)
	if err != nil {
		return nil, err
	}

	hc.logger.Debug("Month info built from holiday table",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("work_days", monthInfo.WorkDays),
		zap.Int("working_hours", monthInfo.WorkingHours))

	return monthInfo, nil
}

// GetDayInfo returns detailed info for a specific day. Years without any
// record are reported as ErrYearNotCovered: an empty year means the table
// has not been updated, not that the year has no holidays.
func (hc *HolidayCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	year, month, day := date.Date()
	if !hc.table.Covers(year) {
		return nil, fmt.Errorf("day %s: %w", date.Format("2006-01-02"), ErrYearNotCovered)
	}

	civil := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	if h, ok := hc.table.FromYmd(year, month, day); ok {
		info := &DayInfo{Date: civil, Note: h.Name}
		if h.IsWorkday {
			info.Type = DayTypeAdjustedWorkday
			info.IsWorkday = true
			info.WorkingHours = hc.workingHours
		} else {
			info.Type = DayTypeHoliday
		}
		return info, nil
	}

	return weekdayInfo(civil, hc.workingHours), nil
}

// WeekendCalendar treats Monday to Friday as workdays and ignores holidays.
// It answers for any year and serves as the fallback for years the holiday
// table does not cover.
type WeekendCalendar struct {
	business     *cal.BusinessCalendar
	workingHours int
}

// NewWeekendCalendar creates a WeekendCalendar; workingHours <= 0 means 8
func NewWeekendCalendar(workingHours int) *WeekendCalendar {
	if workingHours <= 0 {
		workingHours = defaultWorkingHours
	}
	return &WeekendCalendar{
		business:     cal.NewBusinessCalendar(),
		workingHours: workingHours,
	}
}

// Business returns the underlying Monday to Friday business calendar
func (wc *WeekendCalendar) Business() *cal.BusinessCalendar {
	return wc.business
}

// IsWorkday checks if the given date is a working day
func (wc *WeekendCalendar) IsWorkday(date time.Time) (bool, int, error) {
	if !wc.business.IsWorkday(date) {
		return false, 0, nil
	}
	return true, wc.workingHours, nil
}

// GetMonthInfo returns calendar info for the entire month
func (wc *WeekendCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	return buildMonth(year, month, wc.GetDayInfo)
}

// GetDayInfo returns detailed info for a specific day
func (wc *WeekendCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	year, month, day := date.Date()
	civil := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if !wc.business.IsWorkday(civil) {
		return &DayInfo{Date: civil, Type: DayTypeWeekend}, nil
	}
	return weekdayInfo(civil, wc.workingHours), nil
}

func weekdayInfo(date time.Time, workingHours int) *DayInfo {
	if dateutil.IsWeekend(date) {
		return &DayInfo{Date: date, Type: DayTypeWeekend}
	}
	return &DayInfo{
		Date:         date,
		Type:         DayTypeWorkday,
		WorkingHours: workingHours,
		IsWorkday:    true,
	}
}

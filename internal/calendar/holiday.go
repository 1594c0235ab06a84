package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

const (
	recordLen        = 19
	recordTerminator = ';'
)

// Holiday describes a day listed in the holiday table: either a rest day
// of a statutory holiday or a weekend day turned into a workday to make up
// for it.
type Holiday struct {
	Date      time.Time // the day described (midnight UTC)
	Name      string    // name of the statutory holiday
	IsWorkday bool      // true for an adjusted workday
	Target    time.Time // the statutory holiday this day belongs to
}

// Table is a decoded, immutable holiday table sorted by date
type Table struct {
	records []Holiday
	index   map[int]int    // yyyymmdd -> position in records
	years   map[int][2]int // year -> [first, last+1) positions in records
}

var builtin = mustDecodeTable(packedHolidays)

// Builtin returns the table compiled into the program
func Builtin() *Table {
	return builtin
}

// DecodeTable parses packed 19 character records. Records may come in any
// order; a date listed twice is an error.
func DecodeTable(packed string) (*Table, error) {
	if len(packed)%recordLen != 0 {
		return nil, fmt.Errorf("holiday table length %d is not a multiple of %d", len(packed), recordLen)
	}

	records := make([]Holiday, 0, len(packed)/recordLen)
	for i := 0; i < len(packed); i += recordLen {
		h, err := decodeRecord(packed[i : i+recordLen])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i/recordLen, err)
		}
		records = append(records, h)
	}
	return newTable(records)
}

func mustDecodeTable(packed string) *Table {
	t, err := DecodeTable(packed)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in holiday table: %v", err))
	}
	return t
}

func decodeRecord(rec string) (Holiday, error) {
	if rec[recordLen-1] != recordTerminator {
		return Holiday{}, fmt.Errorf("record %q: missing terminator", rec)
	}

	date, err := parseYmd(rec[0:8])
	if err != nil {
		return Holiday{}, fmt.Errorf("record %q: %w", rec, err)
	}
	target, err := parseYmd(rec[10:18])
	if err != nil {
		return Holiday{}, fmt.Errorf("record %q: %w", rec, err)
	}

	flag, nameIdx := rec[8], rec[9]
	if flag < '0' || flag > '9' || nameIdx < '0' || nameIdx > '9' {
		return Holiday{}, fmt.Errorf("record %q: flag and name index must be digits", rec)
	}
	idx := int(nameIdx - '0')
	if idx >= len(holidayNames) {
		return Holiday{}, fmt.Errorf("record %q: unknown holiday name index %d", rec, idx)
	}

	return Holiday{
		Date:      date,
		Name:      holidayNames[idx],
		IsWorkday: flag == '0',
		Target:    target,
	}, nil
}

func parseYmd(s string) (time.Time, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	date := time.Date(n/10000, time.Month(n/100%100), n%100, 0, 0, 0, 0, time.UTC)
	if ymdKey(date) != n {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return date, nil
}

func newTable(records []Holiday) (*Table, error) {
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })

	t := &Table{
		records: records,
		index:   make(map[int]int, len(records)),
		years:   make(map[int][2]int),
	}
	for i, h := range records {
		key := ymdKey(h.Date)
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("date %s listed twice", h.Date.Format("2006-01-02"))
		}
		t.index[key] = i

		y := h.Date.Year()
		span, ok := t.years[y]
		if !ok {
			span[0] = i
		}
		span[1] = i + 1
		t.years[y] = span
	}
	return t, nil
}

func ymdKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// FromYmd returns the record for a date. false means the date is an
// ordinary day, not listed in the table.
func (t *Table) FromYmd(year int, month time.Month, day int) (Holiday, bool) {
	i, ok := t.index[year*10000+int(month)*100+day]
	if !ok {
		return Holiday{}, false
	}
	return t.records[i], true
}

// FromDate is FromYmd for the calendar date of d in its own location
func (t *Table) FromDate(d time.Time) (Holiday, bool) {
	y, m, day := d.Date()
	return t.FromYmd(y, m, day)
}

// Next returns the record n positions after the record for date (before it
// for negative n), walking across years. n == 0 is a direct lookup.
//
// Navigation needs a listed anchor: false is returned when date has no
// record, and when the walk reaches a year without records.
func (t *Table) Next(date time.Time, n int) (Holiday, bool) {
	if n == 0 {
		return t.FromDate(date)
	}

	i, ok := t.index[ymdKey(date)]
	if !ok {
		return Holiday{}, false
	}

	year := date.Year()
	span := t.years[year]
	pos := i - span[0] + n
	for {
		size := span[1] - span[0]
		if pos >= 0 && pos < size {
			return t.records[span[0]+pos], true
		}

		if pos >= size {
			pos -= size
			year++
			span = t.years[year]
		} else {
			year--
			span = t.years[year]
			pos += span[1] - span[0]
		}
		if span[1]-span[0] == 0 {
			return Holiday{}, false
		}
	}
}

// HolidaysInYear returns the records of a year sorted by date
func (t *Table) HolidaysInYear(year int) []Holiday {
	span, ok := t.years[year]
	if !ok {
		return nil
	}
	out := make([]Holiday, span[1]-span[0])
	copy(out, t.records[span[0]:span[1]])
	return out
}

// Years returns the years with at least one record, ascending
func (t *Table) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Covers reports whether the table has records for year
func (t *Table) Covers(year int) bool {
	_, ok := t.years[year]
	return ok
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.records)
}

// Merge returns a table where every year present in override replaces the
// same year of t. Neither input is modified.
func (t *Table) Merge(override *Table) *Table {
	records := make([]Holiday, 0, len(t.records)+len(override.records))
	for _, h := range t.records {
		if !override.Covers(h.Date.Year()) {
			records = append(records, h)
		}
	}
	records = append(records, override.records...)

	merged, err := newTable(records)
	if err != nil {
		// years are replaced as a whole, so a date cannot come from both sides
		panic(err)
	}
	return merged
}

// FromYmd looks a date up in the built-in table
func FromYmd(year int, month time.Month, day int) (Holiday, bool) {
	return builtin.FromYmd(year, month, day)
}

// Next navigates the built-in table, see Table.Next
func Next(date time.Time, n int) (Holiday, bool) {
	return builtin.Next(date, n)
}

// FromDate looks the calendar date of d up in the built-in table
func FromDate(d time.Time) (Holiday, bool) {
	return builtin.FromDate(d)
}

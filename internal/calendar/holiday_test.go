package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ymd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFromYmd(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantName  string
		isWorkday bool
		target    time.Time
	}{
		{"national day rest", ymd(2024, time.October, 1), "国庆节", false, ymd(2024, time.October, 1)},
		{"national day adjusted workday", ymd(2024, time.October, 12), "国庆节", true, ymd(2024, time.October, 1)},
		{"spring festival", ymd(2025, time.January, 29), "春节", false, ymd(2025, time.January, 29)},
		{"new year listed in previous year", ymd(2022, time.December, 31), "元旦", false, ymd(2023, time.January, 1)},
		{"mid-autumn inside national day", ymd(2025, time.October, 6), "中秋节", false, ymd(2025, time.October, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := FromYmd(tt.date.Year(), tt.date.Month(), tt.date.Day())
			require.True(t, ok)
			assert.Equal(t, tt.date, h.Date)
			assert.Equal(t, tt.wantName, h.Name)
			assert.Equal(t, tt.isWorkday, h.IsWorkday)
			assert.Equal(t, tt.target, h.Target)
		})
	}

	_, ok := FromYmd(2024, time.October, 8)
	assert.False(t, ok, "ordinary day")
	_, ok = FromYmd(2030, time.January, 1)
	assert.False(t, ok, "year outside the table")
}

func TestFromDate_UsesLocalCalendarDate(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	// 2024-09-30 17:00 UTC is already October 1st in Shanghai
	h, ok := Builtin().FromDate(time.Date(2024, time.October, 1, 1, 0, 0, 0, shanghai))
	require.True(t, ok)
	assert.Equal(t, "国庆节", h.Name)
}

func TestNext(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		n      int
		want   time.Time
	}{
		{"zero is a lookup", ymd(2024, time.October, 2), 0, ymd(2024, time.October, 2)},
		{"forward in year", ymd(2024, time.October, 1), 2, ymd(2024, time.October, 3)},
		{"forward across year", ymd(2024, time.October, 12), 1, ymd(2025, time.January, 1)},
		{"backward across year", ymd(2025, time.January, 1), -1, ymd(2024, time.October, 12)},
		{"into next year", ymd(2024, time.October, 12), 12, ymd(2025, time.April, 4)},
		{"two years", ymd(2023, time.October, 8), 39, ymd(2025, time.January, 1)},
		{"two years back", ymd(2025, time.January, 1), -39, ymd(2023, time.October, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := Next(tt.anchor, tt.n)
			require.True(t, ok)
			assert.Equal(t, tt.want, h.Date)
		})
	}
}

func TestNext_OutOfRange(t *testing.T) {
	_, ok := Next(ymd(2025, time.October, 11), 1)
	assert.False(t, ok, "past the last tracked year")

	_, ok = Next(ymd(2020, time.January, 1), -1)
	assert.False(t, ok, "before the first tracked year")

	_, ok = Next(ymd(2024, time.October, 10), 1)
	assert.False(t, ok, "anchor not in the table")

	_, ok = Next(ymd(2024, time.October, 10), 0)
	assert.False(t, ok)
}

func TestNext_RoundTrip(t *testing.T) {
	table := Builtin()
	for _, year := range table.Years() {
		for _, h := range table.HolidaysInYear(year) {
			for _, n := range []int{1, 5, 40} {
				fwd, ok := table.Next(h.Date, n)
				if !ok {
					continue
				}
				back, ok := table.Next(fwd.Date, -n)
				require.True(t, ok, "%s %+d", h.Date.Format("2006-01-02"), n)
				assert.Equal(t, h.Date, back.Date)
			}
		}
	}
}

func TestBuiltinTable(t *testing.T) {
	table := Builtin()
	assert.Equal(t, 217, table.Len())
	assert.Equal(t, []int{2020, 2021, 2022, 2023, 2024, 2025}, table.Years())
	assert.True(t, table.Covers(2024))
	assert.False(t, table.Covers(2026))
	assert.Len(t, table.HolidaysInYear(2024), 38)
	assert.Nil(t, table.HolidaysInYear(2019))

	for _, year := range table.Years() {
		records := table.HolidaysInYear(year)
		for i, h := range records {
			assert.Equal(t, year, h.Date.Year())
			if i > 0 {
				assert.True(t, records[i-1].Date.Before(h.Date), "sorted")
			}

			// every record points at a listed rest day of the same holiday
			target, ok := table.FromDate(h.Target)
			require.True(t, ok, "target of %s", h.Date.Format("2006-01-02"))
			assert.False(t, target.IsWorkday)
			assert.Equal(t, h.Name, target.Name)
		}
	}
}

func TestDecodeTable_Errors(t *testing.T) {
	tests := []struct {
		name   string
		packed string
	}{
		{"truncated", "20240101102024010"},
		{"missing terminator", "2024010110202401011"},
		{"invalid date", "202402301020240230;"},
		{"invalid target", "202401011020241301;"},
		{"unknown name", "202401011920240101;"},
		{"non digit flag", "20240101x020240101;"},
		{"duplicate date", "202401011020240101;202401011020240101;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTable(tt.packed)
			assert.Error(t, err)
		})
	}
}

func TestDecodeTable_Unsorted(t *testing.T) {
	table, err := DecodeTable("202410021620241001;202410011620241001;")
	require.NoError(t, err)

	h, ok := table.Next(ymd(2024, time.October, 1), 1)
	require.True(t, ok)
	assert.Equal(t, ymd(2024, time.October, 2), h.Date)
}

func TestTable_Merge(t *testing.T) {
	override, err := DecodeTable("202410011620241001;202601011020260101;")
	require.NoError(t, err)

	merged := Builtin().Merge(override)
	assert.Len(t, merged.HolidaysInYear(2024), 1)
	assert.Len(t, merged.HolidaysInYear(2025), 33)
	assert.True(t, merged.Covers(2026))

	h, ok := merged.Next(ymd(2025, time.October, 11), 1)
	require.True(t, ok)
	assert.Equal(t, ymd(2026, time.January, 1), h.Date)

	assert.Len(t, Builtin().HolidaysInYear(2024), 38, "builtin is untouched")
}

func TestReadTable(t *testing.T) {
	input := strings.Join([]string{
		"# 2026",
		"",
		"202601011020260101;202601021020260101;",
		"  202601040020260101;  ",
	}, "\n")

	table, err := ReadTable(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	h, ok := table.FromYmd(2026, time.January, 4)
	require.True(t, ok)
	assert.True(t, h.IsWorkday)

	_, err = ReadTable(strings.NewReader("# bad\n2026010110202601;\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.txt")
	require.NoError(t, os.WriteFile(path, []byte("202610011620261001;\n"), 0o644))

	table, err := LoadTableFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2026}, table.Years())

	_, err = LoadTableFile(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.Error(t, err)
}

func TestFromDate_Builtin(t *testing.T) {
	h, ok := FromDate(time.Date(2024, time.May, 11, 9, 30, 0, 0, time.UTC))
	require.True(t, ok)
	assert.True(t, h.IsWorkday)
	assert.Equal(t, "劳动节", h.Name)
	assert.Equal(t, ymd(2024, time.May, 1), h.Target)
}

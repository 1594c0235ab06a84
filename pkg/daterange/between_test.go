package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBetween_Abs(t *testing.T) {
	early := day(2024, time.January, 1)
	late := day(2024, time.January, 3)

	abs := NewBetween(late, early, true)
	assert.Equal(t, early, abs.Begin())
	assert.Equal(t, late, abs.End())
	assert.Equal(t, int64(2), abs.Between(Day))

	raw := NewBetween(late, early, false)
	assert.Equal(t, late, raw.Begin())
	assert.Equal(t, int64(-2), raw.Between(Day))
}

func TestBetween_Units(t *testing.T) {
	b := NewBetween(
		time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 16, 9, 30, 15, 500000000, time.UTC),
		true,
	)

	tests := []struct {
		unit Unit
		want int64
	}{
		{Millisecond, 15*86400000 + 5415500},
		{Second, 15*86400 + 5415},
		{Minute, 15*1440 + 90},
		{Hour, 15*24 + 1},
		{Day, 15},
		{Week, 2},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, b.Between(tt.unit))
		})
	}
}

func TestBetween_Month(t *testing.T) {
	tests := []struct {
		name    string
		begin   time.Time
		end     time.Time
		isReset bool
		want    int64
	}{
		{"month not yet elapsed", day(2022, time.January, 31), day(2022, time.March, 1), false, 1},
		{"reset counts calendar months", day(2022, time.January, 31), day(2022, time.March, 1), true, 2},
		{"exactly one month", day(2022, time.January, 15), day(2022, time.February, 15), false, 1},
		{"across years", day(2021, time.November, 20), day(2023, time.February, 19), false, 14},
		{"same day", day(2022, time.May, 5), day(2022, time.May, 5), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBetween(tt.begin, tt.end, true).BetweenMonth(tt.isReset)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBetween_Year(t *testing.T) {
	tests := []struct {
		name    string
		begin   time.Time
		end     time.Time
		isReset bool
		want    int64
	}{
		{"year not yet elapsed", day(2020, time.June, 10), day(2021, time.June, 9), false, 0},
		{"year elapsed", day(2020, time.June, 10), day(2021, time.June, 10), false, 1},
		{"reset", day(2020, time.December, 31), day(2021, time.January, 1), true, 1},
		{"earlier month", day(2020, time.June, 10), day(2023, time.May, 30), false, 2},
		{"later month", day(2020, time.June, 10), day(2023, time.July, 1), false, 3},
		{"leap day to Feb 28", day(2020, time.February, 29), day(2021, time.February, 28), false, 1},
		{"Feb 28 to leap day", day(2023, time.February, 28), day(2024, time.February, 29), false, 1},
		{"Feb 28 in leap year is not month end", day(2020, time.February, 28), day(2021, time.February, 27), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBetween(tt.begin, tt.end, true).BetweenYear(tt.isReset)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBetween(t *testing.T) {
	ms := int64(3*86400000 + 4*3600000 + 5*60000 + 6000 + 7)

	assert.Equal(t, "3d4h5m6s7ms", FormatBetween(ms, Millisecond))
	assert.Equal(t, "3d4h5m", FormatBetween(ms, Minute))
	assert.Equal(t, "0s", FormatBetween(999, Second))
	assert.Equal(t, "-1h", FormatBetween(-3600000, Millisecond))
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"ms":           Millisecond,
		" MS ":         Millisecond,
		"milliseconds": Millisecond,
		"secs":         Second,
		"m":            Minute,
		"min":          Minute,
		"mins":         Minute,
		"Days":         Day,
		"hour":         Hour,
		"h":            Hour,
		"weeks":        Week,
	} {
		got, err := ParseUnit(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseUnit("fortnight")
	assert.Error(t, err)
}

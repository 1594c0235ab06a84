package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
calendar:
  first_day_of_week: sunday
  minimal_days_in_first_week: 4
  timezone: UTC
  force_zero_millisecond: true
holidays:
  table_file: /tmp/holidays.txt
  working_hours: 7
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Sunday, cfg.Calendar.GetFirstDayOfWeek())
	assert.Equal(t, 4, cfg.Calendar.MinimalDaysInFirstWeek)
	assert.Equal(t, time.UTC, cfg.Calendar.GetLocation())
	assert.True(t, cfg.Calendar.ForceZeroMillisecond)
	assert.Equal(t, "/tmp/holidays.txt", cfg.Holidays.TableFile)
	assert.Equal(t, 7, cfg.Holidays.GetWorkingHours())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "log:\n  level: warn\n"))
	require.NoError(t, err)

	assert.Equal(t, time.Monday, cfg.Calendar.GetFirstDayOfWeek())
	assert.Equal(t, 1, cfg.Calendar.MinimalDaysInFirstWeek)
	assert.Equal(t, 8, cfg.Holidays.GetWorkingHours())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CNCAL_HOLIDAYS_WORKING_HOURS", "6")

	cfg, err := Load(writeConfig(t, "holidays:\n  working_hours: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Holidays.GetWorkingHours())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit path must exist")

	_, err = Load(writeConfig(t, "calendar:\n  first_day_of_week: someday\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"short weekday", func(c *Config) { c.Calendar.FirstDayOfWeek = "Sat" }, false},
		{"unknown weekday", func(c *Config) { c.Calendar.FirstDayOfWeek = "funday" }, true},
		{"minimal days too small", func(c *Config) { c.Calendar.MinimalDaysInFirstWeek = 0 }, true},
		{"minimal days too large", func(c *Config) { c.Calendar.MinimalDaysInFirstWeek = 8 }, true},
		{"bad timezone", func(c *Config) { c.Calendar.Timezone = "Mars/Olympus" }, true},
		{"negative hours", func(c *Config) { c.Holidays.WorkingHours = -1 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetters_Fallbacks(t *testing.T) {
	c := CalendarConfig{FirstDayOfWeek: "nope", Timezone: "Nowhere/City"}
	assert.Equal(t, time.Monday, c.GetFirstDayOfWeek())
	assert.Equal(t, time.Local, c.GetLocation())

	h := HolidaysConfig{}
	assert.Equal(t, 8, h.GetWorkingHours())
}

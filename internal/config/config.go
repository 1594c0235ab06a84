package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig controls how time points are interpreted
type CalendarConfig struct {
	// FirstDayOfWeek is a weekday name, e.g. "monday"
	FirstDayOfWeek         string `mapstructure:"first_day_of_week"`
	MinimalDaysInFirstWeek int    `mapstructure:"minimal_days_in_first_week"`
	// Timezone is an IANA name, e.g. "Asia/Shanghai"
	Timezone               string `mapstructure:"timezone"`
	ForceZeroMillisecond   bool   `mapstructure:"force_zero_millisecond"`
}

// HolidaysConfig represents holiday table configuration
type HolidaysConfig struct {
	TableFile    string `mapstructure:"table_file"` // optional override records, merged by year
	WorkingHours int    `mapstructure:"working_hours"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			FirstDayOfWeek:         "monday",
			MinimalDaysInFirstWeek: 1,
			Timezone:               "Local",
		},
		Holidays: HolidaysConfig{WorkingHours: 8},
		Log:      LogConfig{Level: "info"},
	}
}

// Load loads configuration from file. An explicit path must exist; without
// one the usual locations are searched and a missing file means defaults.
// Every key can be overridden by a CNCAL_ prefixed environment variable,
// e.g. CNCAL_CALENDAR_TIMEZONE.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cncal")
		v.AddConfigPath("/etc/cncal")
	}

	// Read environment variables
	v.SetEnvPrefix("cncal")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("calendar.first_day_of_week", d.Calendar.FirstDayOfWeek)
	v.SetDefault("calendar.minimal_days_in_first_week", d.Calendar.MinimalDaysInFirstWeek)
	v.SetDefault("calendar.timezone", d.Calendar.Timezone)
	v.SetDefault("calendar.force_zero_millisecond", d.Calendar.ForceZeroMillisecond)
	v.SetDefault("holidays.table_file", d.Holidays.TableFile)
	v.SetDefault("holidays.working_hours", d.Holidays.WorkingHours)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := parseWeekday(c.Calendar.FirstDayOfWeek); err != nil {
		return fmt.Errorf("calendar.first_day_of_week: %w", err)
	}
	if c.Calendar.MinimalDaysInFirstWeek < 1 || c.Calendar.MinimalDaysInFirstWeek > 7 {
		return fmt.Errorf("calendar.minimal_days_in_first_week must be between 1 and 7")
	}
	if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
		return fmt.Errorf("calendar.timezone: %w", err)
	}

	if c.Holidays.WorkingHours < 0 || c.Holidays.WorkingHours > 24 {
		return fmt.Errorf("holidays.working_hours must be between 0 and 24")
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// GetFirstDayOfWeek returns the configured first day of week. Default: Monday
func (c *CalendarConfig) GetFirstDayOfWeek() time.Weekday {
	day, err := parseWeekday(c.FirstDayOfWeek)
	if err != nil {
		return time.Monday
	}
	return day
}

// GetLocation returns the configured time zone, falling back to time.Local
func (c *CalendarConfig) GetLocation() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// GetWorkingHours returns the hours of a workday. Default: 8
func (c *HolidaysConfig) GetWorkingHours() int {
	if c.WorkingHours <= 0 {
		return 8
	}
	return c.WorkingHours
}

func parseWeekday(s string) (time.Weekday, error) {
	if s == "" {
		return time.Monday, nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday '%s'", s)
}

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/cncal/internal/calendar"
	"github.com/username/cncal/pkg/daterange"
	"github.com/username/cncal/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05.000"
)

func parseTime(s string) (time.Time, error) {
	return dateutil.ParseDateIn(s, cfg.Calendar.GetLocation())
}

// formatTime prints t in the configured zone, with its UTC offset when iso
// is set
func formatTime(t time.Time, iso bool) string {
	if iso {
		return dateutil.FormatISO8601(t)
	}
	return t.Format(dateTimeLayout)
}

func modifyCmd() *cobra.Command {
	var fieldName, modeName string
	var forceZero, iso bool

	cmd := &cobra.Command{
		Use:   "modify <time>",
		Short: "Truncate, round or ceil a time point at a calendar field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTime(args[0])
			if err != nil {
				return err
			}
			field, err := dateutil.ParseField(fieldName)
			if err != nil {
				return err
			}
			mode, err := dateutil.ParseModifyType(modeName)
			if err != nil {
				return err
			}

			dt := dateutil.New(t).
				WithFirstDayOfWeek(cfg.Calendar.GetFirstDayOfWeek()).
				WithMinimalDaysInFirstWeek(cfg.Calendar.MinimalDaysInFirstWeek)
			result := dateutil.Modify(dt, field, mode, forceZero || cfg.Calendar.ForceZeroMillisecond)

			logger.Debug("Modified time point",
				zap.Time("input", t),
				zap.Stringer("field", field),
				zap.Stringer("mode", mode))

			fmt.Fprintln(cmd.OutOrStdout(), formatTime(result.Time(), iso))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldName, "field", "f", "day", "Calendar field (year, month, week, day, am_pm, hour, minute, second, ...)")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "truncate", "Modification mode (truncate, round, ceiling)")
	cmd.Flags().BoolVar(&forceZero, "force-zero-ms", false, "Zero the millisecond field")
	cmd.Flags().BoolVar(&iso, "iso", false, "Print ISO 8601 with the UTC offset")

	return cmd
}

func betweenCmd() *cobra.Command {
	var unitName string
	var raw, reset bool

	cmd := &cobra.Command{
		Use:   "between <begin> <end>",
		Short: "Measure the distance between two time points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, err := parseTime(args[0])
			if err != nil {
				return err
			}
			end, err := parseTime(args[1])
			if err != nil {
				return err
			}
			unit, err := daterange.ParseUnit(unitName)
			if err != nil {
				return err
			}

			b := daterange.NewBetween(begin, end, !raw)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%ss:   %d\n", unit, b.Between(unit))
			fmt.Fprintf(out, "months: %d\n", b.BetweenMonth(reset))
			fmt.Fprintf(out, "years:  %d\n", b.BetweenYear(reset))
			fmt.Fprintf(out, "total:  %s\n", b)
			return nil
		},
	}

	cmd.Flags().StringVarP(&unitName, "unit", "u", "day", "Unit (ms, second, minute, hour, day, week)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Keep the argument order and allow negative results")
	cmd.Flags().BoolVar(&reset, "reset", false, "Count calendar months and years, ignoring the day")

	return cmd
}

func rangeCmd() *cobra.Command {
	var fieldName string
	var step int
	var includeStart, includeEnd, iso bool

	cmd := &cobra.Command{
		Use:   "range <start> <end>",
		Short: "List time points from start to end in steps of a calendar field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseTime(args[0])
			if err != nil {
				return err
			}
			end, err := parseTime(args[1])
			if err != nil {
				return err
			}
			field, err := dateutil.ParseField(fieldName)
			if err != nil {
				return err
			}

			b, err := daterange.NewBoundary(start, end, field, step, includeStart, includeEnd)
			if err != nil {
				return err
			}
			for t := range b.All() {
				fmt.Fprintln(cmd.OutOrStdout(), formatTime(t, iso))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldName, "field", "f", "day", "Calendar field to step by")
	cmd.Flags().IntVarP(&step, "step", "s", 1, "Step size, positive")
	cmd.Flags().BoolVar(&includeStart, "include-start", true, "Include the start point")
	cmd.Flags().BoolVar(&includeEnd, "include-end", true, "Include the end point when reached")
	cmd.Flags().BoolVar(&iso, "iso", false, "Print ISO 8601 with the UTC offset")

	return cmd
}

func holidayCmd() *cobra.Command {
	var next int
	var year bool

	cmd := &cobra.Command{
		Use:   "holiday <date>",
		Short: "Look up a date in the holiday table or move from it",
		Long: "Look up a date in the holiday table. With --next n, move n records " +
			"forward (negative: backward) from a listed date. With --year, " +
			"list every record of the date's year.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseTime(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if year {
				records := table.HolidaysInYear(date.Year())
				if len(records) == 0 {
					return fmt.Errorf("year %d: %w", date.Year(), calendar.ErrYearNotCovered)
				}
				for _, h := range records {
					printHoliday(out, h)
				}
				return nil
			}

			h, ok := table.Next(date, next)
			if !ok {
				if next == 0 {
					fmt.Fprintf(out, "%s: not listed\n", date.Format(dateLayout))
					return nil
				}
				return fmt.Errorf("no record %+d from %s", next, date.Format(dateLayout))
			}
			printHoliday(out, h)
			return nil
		},
	}

	cmd.Flags().IntVarP(&next, "next", "n", 0, "Move n records from the date")
	cmd.Flags().BoolVar(&year, "year", false, "List the records of the date's year")

	return cmd
}

func printHoliday(out io.Writer, h calendar.Holiday) {
	kind := "rest"
	if h.IsWorkday {
		kind = "work"
	}
	fmt.Fprintf(out, "%s %s %s %s\n",
		h.Date.Format(dateLayout), kind, h.Name, h.Target.Format(dateLayout))
}

func workdayCmd() *cobra.Command {
	var add int

	cmd := &cobra.Command{
		Use:   "workday <date>",
		Short: "Tell whether a date is a workday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseTime(args[0])
			if err != nil {
				return err
			}
			cal := newCalendar()

			if add != 0 {
				date, err = calendar.AddWorkdays(cal, date, add)
				if err != nil {
					return err
				}
			}

			info, err := cal.GetDayInfo(date)
			if err != nil {
				return err
			}
			printDay(cmd.OutOrStdout(), info)
			return nil
		},
	}

	cmd.Flags().IntVar(&add, "add", 0, "Move this many workdays first")

	return cmd
}

func printDay(out io.Writer, info *calendar.DayInfo) {
	line := fmt.Sprintf("%s %s %s %dh", info.Date.Format(dateLayout),
		info.Date.Weekday().String()[:3], info.Type, info.WorkingHours)
	if info.Note != "" {
		line += " " + info.Note
	}
	fmt.Fprintln(out, line)
}

func monthCmd() *cobra.Command {
	var days bool

	cmd := &cobra.Command{
		Use:   "month <yyyy-mm>",
		Short: "Summarize the workdays of a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q: %w", args[0], err)
			}

			monthInfo, err := newCalendar().GetMonthInfo(m.Year(), m.Month())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d-%02d\n", monthInfo.Year, monthInfo.Month)
			fmt.Fprintf(out, "  Working days:  %d\n", monthInfo.WorkDays)
			fmt.Fprintf(out, "  Working hours: %d\n", monthInfo.WorkingHours)
			fmt.Fprintf(out, "  Weekends:      %d\n", monthInfo.Weekends)
			fmt.Fprintf(out, "  Holidays:      %d\n", monthInfo.Holidays)
			if days {
				for i := range monthInfo.Days {
					printDay(out, &monthInfo.Days[i])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&days, "days", "d", false, "Print every day")

	return cmd
}

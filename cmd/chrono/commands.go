package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rapturekit/helper/pkg/chrono"
	"github.com/rapturekit/helper/pkg/logger"
)

func newNowCommand(a *app) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time in the default zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := a.calendar.Now()
			if layout != "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), now.Format(layout))
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), now.String(), now.Location())
			return err
		},
	}
	cmd.Flags().StringVar(&layout, "format", "", "Go time layout for the output")
	return cmd
}

func newAtCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "at VALUE",
		Short: "Parse a time and describe it",
		Long: `Parse VALUE and print its calendar fields.

VALUE is a date/time literal ("2017-01-01 12:00:00", RFC 3339), an epoch
("@1483228800"), a keyword (now, today, tomorrow, yesterday), a weekday
reference ("next friday") or a relative phrase ("3 days ago").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.at(cmd, args[0])
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), a.calendar, t)
		},
	}
	cmd.Flags().String("in", "", "zone VALUE is read in")
	return cmd
}

func describe(w io.Writer, cal *chrono.Calendar, t chrono.Time) error {
	rows := [][2]string{
		{"datetime", t.String()},
		{"zone", t.Location().String()},
		{"unix", fmt.Sprint(t.Unix())},
		{"weekday", cal.Days()[t.DayOfWeek()-1]},
		{"month", cal.Months()[t.Month()-1]},
		{"yearday", fmt.Sprint(t.DayOfYear())},
		{"week", fmt.Sprint(t.WeekOfYear())},
		{"quarter", fmt.Sprint(t.Quarter())},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	return nil
}

func newZoneCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "zone REF",
		Short: "Resolve a timezone reference",
		Long: `Resolve REF to a zone and print its name and current offset.

REF is an IANA name ("Europe/Bucharest"), a city ("New York"), an
abbreviation ("EET") or an offset in minutes ("120").`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.calendar.ResolveTimezone(args[0])
			if err != nil {
				return err
			}
			now := a.calendar.Now().Std().In(loc)
			a.logger.DebugContext(cmd.Context(), "zone resolved", slog.String("ref", args[0]), logger.Zone(loc))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), loc, now.Format("-07:00 MST"))
			return err
		},
	}
}

func newShiftCommand(a *app) *cobra.Command {
	var back bool
	cmd := &cobra.Command{
		Use:   "shift VALUE INTERVAL",
		Short: "Add an interval to a time",
		Long: `Move VALUE by INTERVAL and print the result.

INTERVAL is an ISO-8601 duration ("P1Y2M3DT4H") or a phrase
("1 day + 12 hours", "2 weeks").`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.at(cmd, args[0])
			if err != nil {
				return err
			}
			if back {
				t, err = t.SubInterval(args[1])
			} else {
				t, err = t.AddInterval(args[1])
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&back, "back", false, "subtract the interval instead")
	cmd.Flags().String("in", "", "zone VALUE is read in")
	return cmd
}

func newBoundsCommand(a *app) *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "bounds VALUE",
		Short: "Print the first and last second of the unit containing a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := chrono.ParseUnit(unit)
			if err != nil {
				return err
			}
			t, err := a.at(cmd, args[0])
			if err != nil {
				return err
			}
			start, err := t.StartOf(u)
			if err != nil {
				return err
			}
			end, err := t.EndOf(u)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", start, end)
			return err
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "day", "year, quarter, month, week, day, hour or minute")
	cmd.Flags().String("in", "", "zone VALUE is read in")
	return cmd
}

func newUnitsCommand(a *app) *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "units FROM TO",
		Short: "Measure the distance between two times",
		Long: `Print the calendar distance from FROM to TO.

Without --unit the distance is broken down into years, months, weeks,
days, hours, minutes and seconds. With --unit it is projected onto that
unit and truncated. Counts are absolute.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.calendar.At(args[0], nil)
			if err != nil {
				return err
			}
			to, err := a.calendar.At(args[1], nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if unit != "" {
				u, err := chrono.ParseUnit(unit)
				if err != nil {
					return err
				}
				n, err := from.UnitDuration(to, u)
				if err != nil {
					return err
				}
				a.logger.DebugContext(cmd.Context(), "units measured", logger.Unit(u))
				_, err = fmt.Fprintln(out, n)
				return err
			}

			for _, uc := range from.Breakdown(to) {
				if _, err := fmt.Fprintf(out, "%-7s %d\n", uc.Unit, uc.Count); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "", "project onto a single unit")
	return cmd
}

func newHumanCommand(a *app) *cobra.Command {
	var (
		limit     int64
		limitText string
		maxUnits  int
		upper     bool
		zone      string
	)
	cmd := &cobra.Command{
		Use:   "human [FROM] TO",
		Short: "Describe the distance between two times in words",
		Long: `Describe the distance from FROM to TO in words.

FROM defaults to now, in which case the phrase reads relative to the
present ("3 days ago", "2 hours from now").`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := a.calendar.Now()
			if len(args) == 2 {
				var err error
				if from, err = a.calendar.At(args[0], nil); err != nil {
					return err
				}
			}
			to, err := a.calendar.At(args[len(args)-1], nil)
			if err != nil {
				return err
			}

			var opts []chrono.HumanOption
			if limit > 0 {
				opts = append(opts, chrono.SecondsLimit(limit, limitText))
			}
			if maxUnits > 0 {
				opts = append(opts, chrono.MaxUnits(maxUnits))
			}
			if zone != "" {
				opts = append(opts, chrono.InZone(zone))
			}
			if upper {
				opts = append(opts, chrono.Capitalized())
			}
			ctx := chrono.ContextWithLocale(cmd.Context(), a.calendar.Locale())
			a.logger.DebugContext(ctx, "human duration requested",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), from.HumanDurationContext(ctx, to, opts...))
			return err
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", 0, "collapse distances above this many seconds")
	cmd.Flags().StringVar(&limitText, "limit-text", "a while", "text used when --limit is exceeded")
	cmd.Flags().IntVar(&maxUnits, "max-units", 0, "keep only the most significant units")
	cmd.Flags().BoolVar(&upper, "capitalize", false, "capitalize the first letter")
	cmd.Flags().StringVar(&zone, "in", "", "reinterpret TO in this zone")
	return cmd
}

func newLocaleCommand(a *app) *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Show the configured locale and the available ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := chrono.NewLocaleRegistry(nil, chrono.WithRegistryLogger(a.logger))
			if err != nil {
				return err
			}
			if a.cfg.LocaleFile != "" {
				if err := registry.LoadFile(cmd.Context(), a.cfg.LocaleFile); err != nil {
					return err
				}
			}

			l := a.calendar.Locale()
			if match != "" {
				l = registry.Match(match)
			}

			registered := registry.Tags()
			tags := make([]string, 0, len(registered))
			for _, t := range registered {
				tags = append(tags, t.String())
			}
			days := l.DayNames
			months := l.MonthNames
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "tag       %s\navailable %s\ndays      %s\nmonths    %s\n",
				l.Tag,
				strings.Join(tags, ", "),
				strings.Join(days[:], ", "),
				strings.Join(months[:], ", "),
			)
			return err
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "pick the best locale for an Accept-Language list")
	return cmd
}

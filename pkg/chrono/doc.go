// Package chrono provides immutable calendar values with second precision,
// calendar-aware intervals and human readable durations.
//
// A Time is created by a Calendar, which holds the clock, the timezone
// resolver, the first day of the week and optionally a pinned Locale.
// Package-level helpers use the process default calendar.
//
//	t, err := chrono.At("2017-07-01", "Bucharest")
//	if err != nil {
//		return err
//	}
//	next, _ := t.AddInterval("P1M")
//	start, _ := next.StartOf(chrono.Week)
//	fmt.Println(t.HumanDuration(start)) // "4 weeks and 2 days after"
//
// # Intervals
//
// AddInterval and SubInterval accept integer seconds, time.Duration,
// Interval values, ISO-8601 durations ("P1Y2M3DT4H5M6S") and relative
// phrases ("1 day + 12 hours", "3 hours ago"). The date part of an interval
// is applied to the wall clock and normalised, so month steps are not
// always reversible.
//
// # Human durations
//
// HumanDuration renders the calendar-component difference between two
// values using a Locale: units with a zero count are dropped, counts of
// zero and one use fixed words ("one year") and larger counts fill a
// template ("%d years"). The phrase reads "... ago" / "... from now" when
// the receiver is the present instant and "... before" / "... after"
// otherwise.
//
// The active process locale is swapped atomically with SetLocale and
// ResetLocale. Calendars may pin their own locale with WithLocale, and a
// request-scoped locale can travel in a context (ContextWithLocale).
// LocaleRegistry negotiates between locales by BCP 47 tag and loads
// locale files in YAML or JSON.
//
// # Errors
//
// Malformed input fails with ErrInvalidArgument and unknown zones with
// ErrInvalidTimezone; both are matched with errors.Is.
package chrono

// Package helper is the root of a small date and time toolkit.
//
// The packages are independent and can be used on their own:
//
//   - pkg/chrono: timezone aware instants, calendar arithmetic, unit
//     differences and localised human readable durations
//   - pkg/timezone: resolves zone names, cities, abbreviations and UTC
//     offsets into *time.Location values
//   - pkg/config: loads environment variables and .env files into tagged
//     structs
//   - pkg/logger: slog factory with context attribute extraction
//
// The chrono command under cmd/chrono exposes the same operations on the
// command line.
//
// Basic usage:
//
//	cal := chrono.New(chrono.WithLocation(bucharest))
//	t, err := cal.At("2017-01-01 12:00:00", nil)
//	if err != nil {
//		return err
//	}
//	later, _ := t.AddInterval("1 day + 12 hours")
//	fmt.Println(t.HumanDuration(later)) // one day and 12 hours after
package helper

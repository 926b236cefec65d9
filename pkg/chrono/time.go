package chrono

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts used by String, DateString and TimeString.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
)

// Time is an immutable instant with second precision bound to a zone.
// Every operation returns a new value; the receiver is never modified.
// The zero value evaluates against the default calendar.
type Time struct {
	t   time.Time
	cal *Calendar
}

// tupleDefaults fills missing trailing elements of a []int value.
var tupleDefaults = [6]int{2000, 1, 1, 0, 0, 0}

// At builds a Time from value in the zone referenced by tz.
//
// Accepted values:
//   - nil: the current instant
//   - any integer kind: Unix epoch seconds; unsigned values above
//     math.MaxInt64 fail with ErrInvalidArgument
//   - string: a date/time literal (see parseLiteral)
//   - []int: year, month, day, hour, minute, second; missing trailing
//     elements default to 2000, 1, 1, 0, 0, 0
//   - time.Time, *time.Time, Time, *Time: the wall clock reading is kept
//     and reinterpreted in tz
//
// Other types fail with ErrInvalidArgument, unknown zones with ErrInvalidTimezone.
func (c *Calendar) At(value any, tz any) (Time, error) {
	loc, err := c.zones.Resolve(tz)
	if err != nil {
		return Time{}, err
	}

	if sec, ok := asInt64(value); ok {
		return c.wrap(time.Unix(sec, 0).In(loc)), nil
	}

	switch v := value.(type) {
	case nil:
		return c.wrap(c.clock.Now().In(loc)), nil
	case string:
		return c.parseLiteral(v, loc)
	case []int:
		return c.fromTuple(v, loc)
	case time.Time:
		return c.wrap(reinterpret(v, loc)), nil
	case *time.Time:
		if v != nil {
			return c.wrap(reinterpret(*v, loc)), nil
		}
	case Time:
		return c.wrap(reinterpret(v.t, loc)), nil
	case *Time:
		if v != nil {
			return c.wrap(reinterpret(v.t, loc)), nil
		}
	}

	return Time{}, fmt.Errorf("%w: unsupported time value %T(%v)", ErrInvalidArgument, value, value)
}

// AtUTC is At with the UTC zone.
func (c *Calendar) AtUTC(value any) (Time, error) {
	return c.At(value, time.UTC)
}

func (c *Calendar) fromTuple(parts []int, loc *time.Location) (Time, error) {
	if len(parts) > len(tupleDefaults) {
		return Time{}, fmt.Errorf("%w: date tuple has %d elements, at most 6 allowed", ErrInvalidArgument, len(parts))
	}
	f := tupleDefaults
	copy(f[:], parts)

	year, month, day, hour, minute, second := f[0], f[1], f[2], f[3], f[4], f[5]
	if month < 1 || month > 12 ||
		day < 1 || day > daysIn(year, time.Month(month)) ||
		hour < 0 || hour > 23 ||
		minute < 0 || minute > 59 ||
		second < 0 || second > 59 {
		return Time{}, fmt.Errorf("%w: date tuple %v out of range", ErrInvalidArgument, parts)
	}

	return c.wrap(time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)), nil
}

// Layouts interpreted in the requested zone.
var localLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	DateLayout,
	"2006-1-2 15:4:5",
	"2006-1-2",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// Layouts that carry their own offset; the instant is kept and converted.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

// parseLiteral understands keywords (now, today, midnight, tomorrow,
// yesterday), "@<epoch>", "next <weekday>", "last <weekday>", the layouts
// above and relative phrases anchored at now ("+2 days", "3 hours ago").
func (c *Calendar) parseLiteral(s string, loc *time.Location) (Time, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	now := c.wrap(c.clock.Now().In(loc))

	switch lower {
	case "", "now":
		return now, nil
	case "today", "midnight":
		return now.startOfDay(), nil
	case "tomorrow":
		return now.startOfDay().Shift(Interval{Days: 1}), nil
	case "yesterday":
		return now.startOfDay().Shift(Interval{Days: -1}), nil
	}

	if rest, ok := strings.CutPrefix(s, "@"); ok {
		sec, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return Time{}, fmt.Errorf("%w: bad epoch literal %q", ErrInvalidArgument, s)
		}
		return c.wrap(time.Unix(sec, 0).In(loc)), nil
	}

	if dir, name, ok := strings.Cut(lower, " "); ok && (dir == "next" || dir == "last") {
		if d, err := ParseWeekday(name); err == nil {
			if dir == "next" {
				return now.NextWeekday(d), nil
			}
			return now.LastWeekday(d), nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return c.wrap(t), nil
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return c.wrap(t.In(loc)), nil
		}
	}

	if iv, err := parsePhrase(lower); err == nil {
		return now.Shift(iv), nil
	}

	return Time{}, fmt.Errorf("%w: cannot parse time %q", ErrInvalidArgument, s)
}

func reinterpret(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		return fitInt64(uint64(n))
	case uint64:
		return fitInt64(n)
	case uintptr:
		return fitInt64(uint64(n))
	}
	return 0, false
}

func fitInt64(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (t Time) calendar() *Calendar {
	if t.cal == nil {
		return Default()
	}
	return t.cal
}

// derive returns a new Time from the same calendar.
func (t Time) derive(tt time.Time) Time {
	return t.calendar().wrap(tt)
}

// Std returns the underlying time.Time.
func (t Time) Std() time.Time { return t.t }

// Location returns the bound zone.
func (t Time) Location() *time.Location { return t.t.Location() }

// Unix returns the Unix epoch seconds.
func (t Time) Unix() int64 { return t.t.Unix() }

// IsZero reports whether t is the zero instant.
func (t Time) IsZero() bool { return t.t.IsZero() }

// Year returns the calendar year.
func (t Time) Year() int { return t.t.Year() }

// Month returns the month of the year, 1 through 12.
func (t Time) Month() int { return int(t.t.Month()) }

// Day returns the day of the month, 1 through 31.
func (t Time) Day() int { return t.t.Day() }

// Hour returns the hour of the day, 0 through 23.
func (t Time) Hour() int { return t.t.Hour() }

// Minute returns the minute of the hour, 0 through 59.
func (t Time) Minute() int { return t.t.Minute() }

// Second returns the second of the minute, 0 through 59.
func (t Time) Second() int { return t.t.Second() }

// Weekday returns the time.Weekday of t.
func (t Time) Weekday() time.Weekday { return t.t.Weekday() }

// DayOfWeek returns the ISO-8601 day of the week, 1=Monday … 7=Sunday.
func (t Time) DayOfWeek() int { return isoWeekday(t.t.Weekday()) }

// DayOfYear returns the zero-based day of the year, 0 through 365.
func (t Time) DayOfYear() int { return t.t.YearDay() - 1 }

// WeekOfYear returns the ISO-8601 week number.
func (t Time) WeekOfYear() int {
	_, w := t.t.ISOWeek()
	return w
}

// DaysInMonth returns the number of days in t's month.
func (t Time) DaysInMonth() int { return daysIn(t.t.Year(), t.t.Month()) }

// Quarter returns the quarter of the year, 1 through 4.
func (t Time) Quarter() int { return (t.Month()-1)/3 + 1 }

// String formats t as "2006-01-02 15:04:05".
func (t Time) String() string { return t.t.Format(DateTimeLayout) }

// DateTimeString is an alias of String.
func (t Time) DateTimeString() string { return t.String() }

// DateString formats the date part, "2006-01-02".
func (t Time) DateString() string { return t.t.Format(DateLayout) }

// TimeString formats the clock part, "15:04:05".
func (t Time) TimeString() string { return t.t.Format(TimeLayout) }

// Format formats t with a time package layout.
func (t Time) Format(layout string) string { return t.t.Format(layout) }

package chrono

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit is a calendar unit used for boundaries, unit durations and locale forms.
type Unit int

const (
	Year Unit = iota + 1
	Quarter
	Month
	Week
	Day
	Hour
	Minute
	Second
)

// durationUnits lists the units of a human duration, most significant first.
var durationUnits = []Unit{Year, Month, Week, Day, Hour, Minute, Second}

var unitNames = map[Unit]string{
	Year:    "year",
	Quarter: "quarter",
	Month:   "month",
	Week:    "week",
	Day:     "day",
	Hour:    "hour",
	Minute:  "minute",
	Second:  "second",
}

var unitSymbols = map[Unit]string{
	Year:    "y",
	Quarter: "q",
	Month:   "m",
	Week:    "w",
	Day:     "d",
	Hour:    "h",
	Minute:  "i",
	Second:  "s",
}

// String returns the lower-case unit name ("year", "minute").
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// Symbol returns the one-letter unit symbol (y, q, m, w, d, h, i, s).
func (u Unit) Symbol() string {
	return unitSymbols[u]
}

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

// ParseUnit parses a unit symbol ("i"), name ("minute") or plural name ("minutes").
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for u, sym := range unitSymbols {
		if s == sym {
			return u, nil
		}
	}
	singular := strings.TrimSuffix(s, "s")
	for u, name := range unitNames {
		if singular == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidArgument, s)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses an English weekday name, its three-letter
// abbreviation or an ISO day number (1=Monday … 7=Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 7 {
		return time.Weekday(n % 7), nil
	}
	for name, d := range weekdayNames {
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidArgument, s)
}

// isoWeekday converts a time.Weekday into the ISO-8601 day number.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

package chrono

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Equal reports whether t and o are the same instant, at second precision.
func (t Time) Equal(o Time) bool { return t.Unix() == o.Unix() }

// Before reports whether t is strictly before o.
func (t Time) Before(o Time) bool { return t.Unix() < o.Unix() }

// After reports whether t is strictly after o.
func (t Time) After(o Time) bool { return t.Unix() > o.Unix() }

// Compare returns -1, 0 or +1 as t is before, equal to or after o.
func (t Time) Compare(o Time) int { return cmp.Compare(t.Unix(), o.Unix()) }

// Between reports whether t lies within [a, b]. The bounds may be given
// in either order.
func (t Time) Between(a, b Time) bool {
	if a.After(b) {
		a, b = b, a
	}
	return !t.Before(a) && !t.After(b)
}

// now is the calendar's current instant in t's zone.
func (t Time) now() Time {
	cal := t.calendar()
	return cal.wrap(cal.clock.Now().In(t.t.Location()))
}

func (t Time) sameDate(o Time) bool {
	return t.Year() == o.Year() && t.t.Month() == o.t.Month() && t.Day() == o.Day()
}

func (t Time) sameWeek(o Time) bool {
	a, _ := t.StartOf(Week)
	b, _ := o.StartOf(Week)
	return a.sameDate(b)
}

func (t Time) sameMonth(o Time) bool {
	return t.Year() == o.Year() && t.t.Month() == o.t.Month()
}

// IsToday reports whether t falls on the current date.
func (t Time) IsToday() bool { return t.sameDate(t.now()) }

// IsYesterday reports whether t falls on the day before today.
func (t Time) IsYesterday() bool { return t.sameDate(t.now().Yesterday()) }

// IsTomorrow reports whether t falls on the day after today.
func (t Time) IsTomorrow() bool { return t.sameDate(t.now().Tomorrow()) }

// IsDay reports whether t falls on weekday d.
func (t Time) IsDay(d time.Weekday) bool { return t.t.Weekday() == d }

// IsWeekend reports whether t falls on a Saturday or Sunday.
func (t Time) IsWeekend() bool {
	return t.IsDay(time.Saturday) || t.IsDay(time.Sunday)
}

// IsWeekday reports whether t falls on Monday through Friday.
func (t Time) IsWeekday() bool { return !t.IsWeekend() }

// IsCurrentWeek reports whether t falls in the current week.
func (t Time) IsCurrentWeek() bool { return t.sameWeek(t.now()) }

// IsNextWeek reports whether t falls in the week after the current one.
func (t Time) IsNextWeek() bool { return t.sameWeek(t.now().Shift(Interval{Days: 7})) }

// IsLastWeek reports whether t falls in the week before the current one.
func (t Time) IsLastWeek() bool { return t.sameWeek(t.now().Shift(Interval{Days: -7})) }

// IsCurrentMonth reports whether t falls in the current month of the current year.
func (t Time) IsCurrentMonth() bool { return t.sameMonth(t.now()) }

// IsNextMonth reports whether t falls in the month after the current one.
func (t Time) IsNextMonth() bool { return t.sameMonth(t.monthFromNow(1)) }

// IsLastMonth reports whether t falls in the month before the current one.
func (t Time) IsLastMonth() bool { return t.sameMonth(t.monthFromNow(-1)) }

// monthFromNow steps from the first of the current month so that day
// overflow (Mar 31 - 1 month) never skips a month.
func (t Time) monthFromNow(n int) Time {
	start, _ := t.now().StartOf(Month)
	return start.Shift(Interval{Months: n})
}

// IsCurrentYear reports whether t falls in the current year.
func (t Time) IsCurrentYear() bool { return t.Year() == t.now().Year() }

// IsNextYear reports whether t falls in the year after the current one.
func (t Time) IsNextYear() bool { return t.Year() == t.now().Year()+1 }

// IsLastYear reports whether t falls in the year before the current one.
func (t Time) IsLastYear() bool { return t.Year() == t.now().Year()-1 }

// IsFuture reports whether t is after now.
func (t Time) IsFuture() bool { return t.After(t.now()) }

// IsPast reports whether t is before now.
func (t Time) IsPast() bool { return t.Before(t.now()) }

// IsPresent reports whether t is within tolerance of now.
func (t Time) IsPresent(tolerance time.Duration) bool {
	diff := t.Unix() - t.now().Unix()
	if diff < 0 {
		diff = -diff
	}
	return diff <= int64(tolerance/time.Second)
}

// Min returns the earliest of values. Each value is normalised with At in
// the default zone. An empty list fails with ErrInvalidArgument.
func (c *Calendar) Min(values ...any) (Time, error) {
	ts, err := c.normalize(values)
	if err != nil {
		return Time{}, err
	}
	return slices.MinFunc(ts, Time.Compare), nil
}

// Max returns the latest of values. See Min.
func (c *Calendar) Max(values ...any) (Time, error) {
	ts, err := c.normalize(values)
	if err != nil {
		return Time{}, err
	}
	return slices.MaxFunc(ts, Time.Compare), nil
}

func (c *Calendar) normalize(values []any) ([]Time, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty list of times", ErrInvalidArgument)
	}
	ts := make([]Time, len(values))
	for i, v := range values {
		t, err := c.At(v, nil)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

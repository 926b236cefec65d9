package chrono

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Shift applies iv to t. The date part is added to the wall clock and
// normalised (Jan 31 + 1 month is Mar 3 in non-leap years), the clock part is
// added as elapsed time, so whole-second shifts are exactly reversible.
func (t Time) Shift(iv Interval) Time {
	tt := t.t
	if iv.Years != 0 || iv.Months != 0 || iv.Days != 0 {
		tt = time.Date(
			tt.Year()+iv.Years, tt.Month()+time.Month(iv.Months), tt.Day()+iv.Days,
			tt.Hour(), tt.Minute(), tt.Second(), 0, tt.Location(),
		)
	}
	// Counted in whole seconds: a time.Duration overflows past ~292 years.
	secs := int64(iv.Hours)*3600 + int64(iv.Minutes)*60 + int64(iv.Seconds)
	if secs != 0 {
		tt = time.Unix(tt.Unix()+secs, 0).In(tt.Location())
	}
	return t.derive(tt)
}

// AddInterval moves t forward by v: an integer number of seconds, a
// time.Duration, an Interval, an ISO-8601 duration ("P1Y2M3DT4H5M6S") or a
// relative phrase ("1 day + 12 hours").
func (t Time) AddInterval(v any) (Time, error) {
	iv, err := toInterval(v)
	if err != nil {
		return Time{}, err
	}
	return t.Shift(iv), nil
}

// SubInterval moves t backward by v. See AddInterval for accepted values.
//
// Adding and then subtracting the same interval is only guaranteed to
// round-trip for intervals without a date part; month and year steps are
// normalised against month lengths.
func (t Time) SubInterval(v any) (Time, error) {
	iv, err := toInterval(v)
	if err != nil {
		return Time{}, err
	}
	return t.Shift(iv.Negate()), nil
}

// Tomorrow returns t plus one calendar day.
func (t Time) Tomorrow() Time { return t.Shift(Interval{Days: 1}) }

// Yesterday returns t minus one calendar day.
func (t Time) Yesterday() Time { return t.Shift(Interval{Days: -1}) }

func (t Time) withFields(year int, month time.Month, day, hour, minute, second int) Time {
	return t.derive(time.Date(year, month, day, hour, minute, second, 0, t.t.Location()))
}

// WithYear returns t with the year replaced.
func (t Time) WithYear(year int) Time {
	return t.withFields(year, t.t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// WithMonth returns t with the month (1=January) replaced. Overflowing days
// roll into the following month.
func (t Time) WithMonth(month int) Time {
	return t.withFields(t.Year(), time.Month(month), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// WithDay returns t with the day of month replaced.
func (t Time) WithDay(day int) Time {
	return t.withFields(t.Year(), t.t.Month(), day, t.Hour(), t.Minute(), t.Second())
}

// WithHour returns t with the hour replaced.
func (t Time) WithHour(hour int) Time {
	return t.withFields(t.Year(), t.t.Month(), t.Day(), hour, t.Minute(), t.Second())
}

// WithMinute returns t with the minute replaced.
func (t Time) WithMinute(minute int) Time {
	return t.withFields(t.Year(), t.t.Month(), t.Day(), t.Hour(), minute, t.Second())
}

// WithSecond returns t with the second replaced.
func (t Time) WithSecond(second int) Time {
	return t.withFields(t.Year(), t.t.Month(), t.Day(), t.Hour(), t.Minute(), second)
}

// InTimezone returns the same instant displayed in the zone referenced by tz.
func (t Time) InTimezone(tz any) (Time, error) {
	loc, err := t.calendar().zones.Resolve(tz)
	if err != nil {
		return Time{}, err
	}
	return t.derive(t.t.In(loc)), nil
}

// UTC returns the same instant in UTC.
func (t Time) UTC() Time { return t.derive(t.t.UTC()) }

// WithWeekStart returns t bound to a calendar whose weeks start on d.
func (t Time) WithWeekStart(d time.Weekday) Time {
	cal := *t.calendar()
	WithWeekStart(d)(&cal)
	return Time{t: t.t, cal: &cal}
}

func (t Time) startOfDay() Time {
	return t.withFields(t.Year(), t.t.Month(), t.Day(), 0, 0, 0)
}

func (t Time) endOfDay() Time {
	return t.withFields(t.Year(), t.t.Month(), t.Day(), 23, 59, 59)
}

// weekOffset is the number of days since the start of t's week.
func (t Time) weekOffset() int {
	return (int(t.t.Weekday()) - int(t.calendar().weekStart) + 7) % 7
}

// StartOf truncates t to the start of unit. Year, Quarter, Month, Week, Day,
// Hour and Minute are supported; other units fail with ErrInvalidArgument.
func (t Time) StartOf(unit Unit) (Time, error) {
	m := t.t.Month()
	switch unit {
	case Year:
		return t.withFields(t.Year(), time.January, 1, 0, 0, 0), nil
	case Quarter:
		return t.withFields(t.Year(), time.Month((t.Quarter()-1)*3+1), 1, 0, 0, 0), nil
	case Month:
		return t.withFields(t.Year(), m, 1, 0, 0, 0), nil
	case Week:
		return t.Shift(Interval{Days: -t.weekOffset()}).startOfDay(), nil
	case Day:
		return t.startOfDay(), nil
	case Hour:
		return t.withFields(t.Year(), m, t.Day(), t.Hour(), 0, 0), nil
	case Minute:
		return t.withFields(t.Year(), m, t.Day(), t.Hour(), t.Minute(), 0), nil
	}
	return Time{}, fmt.Errorf("%w: no start of unit %s", ErrInvalidArgument, unit)
}

// EndOf moves t to the last second of unit. Supported units match StartOf.
func (t Time) EndOf(unit Unit) (Time, error) {
	m := t.t.Month()
	switch unit {
	case Year:
		return t.withFields(t.Year(), time.December, 31, 23, 59, 59), nil
	case Quarter:
		last := time.Month(t.Quarter() * 3)
		return t.withFields(t.Year(), last, daysIn(t.Year(), last), 23, 59, 59), nil
	case Month:
		return t.withFields(t.Year(), m, t.DaysInMonth(), 23, 59, 59), nil
	case Week:
		return t.Shift(Interval{Days: 6 - t.weekOffset()}).endOfDay(), nil
	case Day:
		return t.endOfDay(), nil
	case Hour:
		return t.withFields(t.Year(), m, t.Day(), t.Hour(), 59, 59), nil
	case Minute:
		return t.withFields(t.Year(), m, t.Day(), t.Hour(), t.Minute(), 59), nil
	}
	return Time{}, fmt.Errorf("%w: no end of unit %s", ErrInvalidArgument, unit)
}

var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// weeklyRule yields midnight of every d, starting a week and a day before t.
func (t Time) weeklyRule(d time.Weekday) (*rrule.RRule, error) {
	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[d]},
		Dtstart:   t.startOfDay().Shift(Interval{Days: -8}).t,
	})
}

// NextWeekday returns midnight of the first d strictly after t's date.
func (t Time) NextWeekday(d time.Weekday) Time {
	day := t.startOfDay()
	r, err := t.weeklyRule(d)
	if err != nil {
		return day.Shift(Interval{Days: 7 - (int(day.t.Weekday())-int(d)+7)%7})
	}
	return t.derive(r.After(day.t, false))
}

// LastWeekday returns midnight of the last d strictly before t's date.
func (t Time) LastWeekday(d time.Weekday) Time {
	day := t.startOfDay()
	r, err := t.weeklyRule(d)
	if err != nil {
		return day.Shift(Interval{Days: -(7 - (int(d)-int(day.t.Weekday())+7)%7)})
	}
	return t.derive(r.Before(day.t, false))
}

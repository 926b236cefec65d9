package chrono

import (
	"fmt"
	"time"
)

// Difference is a calendar-component difference between two instants.
//
// Years through Seconds are the normalised component counts; TotalDays is
// the number of whole elapsed days. Invert is true when the target lies
// before the origin.
type Difference struct {
	Years     int
	Months    int
	Days      int
	Hours     int
	Minutes   int
	Seconds   int
	TotalDays int
	Invert    bool
}

// UnitCount is one entry of a duration breakdown.
type UnitCount struct {
	Unit  Unit
	Count int
}

// Diff returns the calendar-component difference from t to target.
func (t Time) Diff(target Time) Difference {
	return calendarDiff(t.t, target.t)
}

// calendarDiff subtracts the UTC fields of the later instant from the
// earlier one and normalises the result, borrowing days from the month
// before the later date (forward) or from the earlier date's month
// (inverted). When both ends share a zone but not an offset, the hour
// difference introduced by a DST change is added back so that equal wall
// clock readings differ by whole days.
func calendarDiff(a, b time.Time) Difference {
	var d Difference
	one, two := a, b
	if one.Unix() > two.Unix() {
		one, two = two, one
		d.Invert = true
	}

	_, offOne := one.Zone()
	_, offTwo := two.Zone()
	var corr, corrH, corrM int
	if one.Location().String() == two.Location().String() && offOne != offTwo {
		corr = offTwo - offOne
		corrH, corrM = corr/3600, (corr%3600)/60
	}

	u1, u2 := one.UTC(), two.UTC()
	d.Years = u2.Year() - u1.Year()
	d.Months = int(u2.Month()) - int(u1.Month())
	d.Days = u2.Day() - u1.Day()
	d.Hours = u2.Hour() - u1.Hour()
	d.Minutes = u2.Minute() - u1.Minute()
	d.Seconds = u2.Second() - u1.Second()

	sse1, sse2 := one.Unix(), two.Unix()
	if !one.IsDST() && two.IsDST() && sse2 >= sse1+86400-int64(corr) {
		d.Hours += corrH
		d.Minutes += corrM
	}

	total := sse1 - sse2 - int64(corrH*3600) - int64(corrM*60)
	if total < 0 {
		total = -total
	}
	d.TotalDays = int(total / 86400)

	base := u2
	if d.Invert {
		base = u1
	}
	d.normalize(base)

	if one.IsDST() && !two.IsDST() && sse2 >= sse1+86400 {
		d.Hours += corrH
		d.Minutes += corrM
		if d.Hours < 0 || d.Minutes < 0 {
			d.normalize(base)
		}
	}

	return d
}

// rangeLimit brings *a into [0, adj) carrying whole multiples into *b.
func rangeLimit(adj int, a, b *int) {
	if *a < 0 {
		borrow := (-*a-1)/adj + 1
		*b -= borrow
		*a += adj * borrow
	}
	if *a >= adj {
		*b += *a / adj
		*a %= adj
	}
}

func (d *Difference) normalize(base time.Time) {
	rangeLimit(60, &d.Seconds, &d.Minutes)
	rangeLimit(60, &d.Minutes, &d.Hours)
	rangeLimit(24, &d.Hours, &d.Days)
	rangeLimit(12, &d.Months, &d.Years)

	year, month := base.Year(), base.Month()
	if d.Invert {
		for d.Days < 0 {
			d.Days += daysIn(year, month)
			d.Months--
			if month++; month > time.December {
				month = time.January
				year++
			}
		}
	} else {
		for d.Days < 0 {
			if month--; month < time.January {
				month = time.December
				year--
			}
			d.Days += daysIn(year, month)
			d.Months--
		}
	}

	rangeLimit(12, &d.Months, &d.Years)
}

// Breakdown lists the non-zero units of d, most significant first, with
// days split into weeks and remaining days.
func (d Difference) Breakdown() []UnitCount {
	counts := map[Unit]int{
		Year:   d.Years,
		Month:  d.Months,
		Week:   d.Days / 7,
		Day:    d.Days % 7,
		Hour:   d.Hours,
		Minute: d.Minutes,
		Second: d.Seconds,
	}
	out := make([]UnitCount, 0, len(durationUnits))
	for _, u := range durationUnits {
		if n := counts[u]; n != 0 {
			out = append(out, UnitCount{Unit: u, Count: n})
		}
	}
	return out
}

// In projects d onto a single unit:
//
//	Second  total days × 86400 + hours × 3600 + minutes × 60 + seconds
//	Minute  total days × 1440 + hours × 60 + minutes
//	Hour    total days × 24 + hours
//	Day     total days
//	Week    total days / 7
//	Month   years × 12 + months
//	Quarter (years × 12 + months) / 3
//	Year    years
func (d Difference) In(unit Unit) (int64, error) {
	days := int64(d.TotalDays)
	h, m, s := int64(d.Hours), int64(d.Minutes), int64(d.Seconds)
	months := int64(d.Years)*12 + int64(d.Months)

	switch unit {
	case Second:
		return days*86400 + h*3600 + m*60 + s, nil
	case Minute:
		return days*1440 + h*60 + m, nil
	case Hour:
		return days*24 + h, nil
	case Day:
		return days, nil
	case Week:
		return days / 7, nil
	case Month:
		return months, nil
	case Quarter:
		return months / 3, nil
	case Year:
		return int64(d.Years), nil
	}
	return 0, fmt.Errorf("%w: unknown unit %s", ErrInvalidArgument, unit)
}

// UnitDuration returns the absolute difference between t and target
// counted in unit. See Difference.In for the projection rules.
func (t Time) UnitDuration(target Time, unit Unit) (int64, error) {
	return t.Diff(target).In(unit)
}

// Breakdown returns the non-zero units between t and target.
func (t Time) Breakdown(target Time) []UnitCount {
	return t.Diff(target).Breakdown()
}

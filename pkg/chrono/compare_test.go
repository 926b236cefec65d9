package chrono_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapturekit/helper/pkg/chrono"
)

func TestComparisons(t *testing.T) {
	cal := newCalendar(t, "2017-03-10 10:00:00", "UTC")
	a := mustAt(t, cal, "2017-01-01 00:00:00")
	b := mustAt(t, cal, "2017-01-01 00:00:01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	fraction := cal.From(time.Date(2017, 1, 1, 0, 0, 0, 500_000_000, time.UTC))
	assert.True(t, a.Equal(fraction), "sub-second precision is discarded")

	bucharest, err := a.InTimezone("Bucharest")
	require.NoError(t, err)
	assert.True(t, a.Equal(bucharest), "zones do not matter for instants")

	mid := mustAt(t, cal, "2017-06-01")
	end := mustAt(t, cal, "2017-12-31")
	assert.True(t, mid.Between(a, end))
	assert.True(t, mid.Between(end, a))
	assert.True(t, a.Between(a, end), "bounds are inclusive")
	assert.False(t, a.Between(mid, end))
}

func TestDayChecks(t *testing.T) {
	cal := newCalendar(t, "2017-03-10 10:00:00", "UTC")
	monday := mustAt(t, cal, "2017-01-02")

	days := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	for i, d := range days {
		tm := monday.Shift(chrono.Interval{Days: i})
		assert.True(t, tm.IsDay(d), d.String())
		assert.Equal(t, i >= 5, tm.IsWeekend(), d.String())
		assert.Equal(t, i < 5, tm.IsWeekday(), d.String())
	}
}

func TestRelativeChecks(t *testing.T) {
	cal := newCalendar(t, "2017-03-10 10:00:00", "UTC")
	now := cal.Now()

	shift := func(s string) chrono.Time {
		t.Helper()
		tm, err := now.AddInterval(s)
		require.NoError(t, err)
		return tm
	}

	assert.True(t, now.IsToday())
	assert.True(t, now.Yesterday().IsYesterday())
	assert.True(t, now.Tomorrow().IsTomorrow())
	assert.False(t, now.IsTomorrow())
	assert.True(t, shift("-7 days").IsLastWeek())
	assert.True(t, shift("P7D").IsNextWeek())
	assert.True(t, shift("-1 month").IsLastMonth())
	assert.True(t, shift("P1M").IsNextMonth())
	assert.True(t, shift("-1 year").IsLastYear())
	assert.True(t, shift("P1Y").IsNextYear())

	assert.True(t, now.Tomorrow().IsFuture())
	assert.True(t, now.Yesterday().IsPast())
	assert.False(t, now.IsFuture())
	assert.False(t, now.IsPast())
	assert.True(t, shift("2").IsPresent(3*time.Second))
	assert.False(t, shift("5").IsPresent(3*time.Second))

	assert.True(t, now.IsCurrentWeek())
	assert.True(t, now.IsCurrentMonth())
	assert.True(t, now.IsCurrentYear())
	assert.False(t, shift("P1Y").IsCurrentMonth(), "same month of another year")
	assert.True(t, mustAt(t, cal, "2017-03-06").IsCurrentWeek())
	assert.False(t, mustAt(t, cal, "2017-03-05").IsCurrentWeek())
}

func TestMonthChecks_EndOfMonth(t *testing.T) {
	cal := newCalendar(t, "2017-03-31 12:00:00", "UTC")

	assert.True(t, mustAt(t, cal, "2017-02-15").IsLastMonth())
	assert.True(t, mustAt(t, cal, "2017-04-30").IsNextMonth())
	assert.False(t, mustAt(t, cal, "2017-05-01").IsNextMonth())
}

func TestMinMax(t *testing.T) {
	cal := newCalendar(t, "2017-03-10 10:00:00", "UTC")
	values := []any{"2010-01-01", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), mustAt(t, cal, "2013-01-01")}

	low, err := cal.Min(values...)
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", low.DateString())

	high, err := cal.Max(values...)
	require.NoError(t, err)
	assert.Equal(t, "2013-01-01", high.DateString())

	_, err = cal.Min()
	assert.ErrorIs(t, err, chrono.ErrInvalidArgument)
	_, err = cal.Max()
	assert.ErrorIs(t, err, chrono.ErrInvalidArgument)
	_, err = cal.Min("2010-01-01", 1.5)
	assert.ErrorIs(t, err, chrono.ErrInvalidArgument)
}

func TestPackageMinMax(t *testing.T) {
	prev := chrono.Default()
	t.Cleanup(func() { chrono.SetDefault(prev) })
	chrono.SetDefault(newCalendar(t, "2017-03-10 10:00:00", "UTC"))

	low, err := chrono.Min("2010-01-01", 0)
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01 00:00:00", low.String())

	high, err := chrono.Max("2010-01-01", nil)
	require.NoError(t, err)
	assert.Equal(t, "2017-03-10 10:00:00", high.String())
}

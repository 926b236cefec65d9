package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapturekit/helper/pkg/chrono"
)

func TestUnitDuration(t *testing.T) {
	cal := newCalendar(t, "2017-03-10 10:00:00", "UTC")
	from := mustAt(t, cal, "2010-01-01")
	to := mustAt(t, cal, "2010-01-02")

	tests := []struct {
		unit chrono.Unit
		want int64
	}{
		{chrono.Second, 86400},
		{chrono.Minute, 1440},
		{chrono.Hour, 24},
		{chrono.Day, 1},
		{chrono.Week, 0},
		{chrono.Month, 0},
		{chrono.Quarter, 0},
		{chrono.Year, 0},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			got, err := from.UnitDuration(to, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := to.UnitDuration(from, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, back, "durations are absolute")
		})
	}

	_, err := from.UnitDuration(to, chrono.Unit(99))
	assert.ErrorIs(t, err, chrono.ErrInvalidArgument)
}

func TestUnitDuration_Calendar(t *testing.T) {
	cal := newCalendar(t, "2017-03-10 10:00:00", "UTC")
	from := mustAt(t, cal, "2016-01-15 08:00:00")
	to := mustAt(t, cal, "2017-08-20 10:30:15")

	d := from.Diff(to)
	assert.Equal(t, chrono.Difference{
		Years: 1, Months: 7, Days: 5, Hours: 2, Minutes: 30, Seconds: 15,
		TotalDays: 583,
	}, d)

	for unit, want := range map[chrono.Unit]int64{
		chrono.Year:    1,
		chrono.Quarter: 6,
		chrono.Month:   19,
		chrono.Week:    83,
		chrono.Day:     583,
		chrono.Hour:    583*24 + 2,
		chrono.Minute:  583*1440 + 2*60 + 30,
		chrono.Second:  583*86400 + 2*3600 + 30*60 + 15,
	} {
		got, err := d.In(unit)
		require.NoError(t, err)
		assert.Equal(t, want, got, unit.String())
	}
}

func TestDiff(t *testing.T) {
	cal := newCalendar(t, "2020-01-01 00:00:00", "Europe/Bucharest")

	tests := []struct {
		name string
		from string
		to   string
		want chrono.Difference
	}{
		{
			name: "forward across months",
			from: "2017-07-01", to: "2018-08-02",
			want: chrono.Difference{Years: 1, Months: 1, Days: 2, TotalDays: 397},
		},
		{
			name: "backward across DST",
			from: "2017-07-01", to: "2017-01-01",
			want: chrono.Difference{Months: 5, Days: 30, TotalDays: 181, Invert: true},
		},
		{
			name: "borrow from february",
			from: "2017-01-31", to: "2017-03-01",
			want: chrono.Difference{Days: 29, TotalDays: 29},
		},
		{
			name: "same instant",
			from: "2017-05-05 05:05:05", to: "2017-05-05 05:05:05",
			want: chrono.Difference{},
		},
		{
			name: "hours only",
			from: "2017-05-05 23:00:00", to: "2017-05-06 01:30:00",
			want: chrono.Difference{Hours: 2, Minutes: 30},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustAt(t, cal, tt.from).Diff(mustAt(t, cal, tt.to))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBreakdown(t *testing.T) {
	cal := newCalendar(t, "2020-01-01 00:00:00", "Europe/Bucharest")

	got := mustAt(t, cal, "2017-07-01").Breakdown(mustAt(t, cal, "2017-01-01"))
	assert.Equal(t, []chrono.UnitCount{
		{Unit: chrono.Month, Count: 5},
		{Unit: chrono.Week, Count: 4},
		{Unit: chrono.Day, Count: 2},
	}, got)

	assert.Empty(t, cal.Now().Breakdown(cal.Now()))
}

package chrono_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rapturekit/helper/pkg/chrono"
)

// newCalendar returns a calendar in zone whose clock is frozen at now.
func newCalendar(t *testing.T, now, zone string, opts ...chrono.Option) *chrono.Calendar {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	require.NoError(t, err)
	fixed, err := time.ParseInLocation(chrono.DateTimeLayout, now, loc)
	require.NoError(t, err)

	base := []chrono.Option{
		chrono.WithLocation(loc),
		chrono.WithClock(chrono.ClockFunc(func() time.Time { return fixed })),
	}
	return chrono.New(append(base, opts...)...)
}

func mustAt(t *testing.T, cal *chrono.Calendar, value any) chrono.Time {
	t.Helper()
	tm, err := cal.At(value, nil)
	require.NoError(t, err)
	return tm
}

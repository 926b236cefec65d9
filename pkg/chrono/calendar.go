package chrono

import (
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/rapturekit/helper/pkg/timezone"
)

// DefaultPresentTolerance is how far from now an instant may be and still
// count as the present when choosing between "ago" and "before".
const DefaultPresentTolerance = 2 * time.Second

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Calendar holds the environment Time values are evaluated against: the
// clock for "now", the timezone resolver and default zone, the first day of
// the week and the locale used for human durations.
//
// A Calendar is never modified after New returns, so it can be shared
// freely between goroutines. Every Time remembers the Calendar that built it.
type Calendar struct {
	clock     Clock
	zones     *timezone.Resolver
	weekStart time.Weekday
	locale    *Locale
	tolerance time.Duration
	logger    *slog.Logger
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock replaces the system clock. Mostly useful in tests.
func WithClock(c Clock) Option {
	return func(cal *Calendar) {
		if c != nil {
			cal.clock = c
		}
	}
}

// WithZoneResolver sets the resolver used for timezone references.
func WithZoneResolver(r *timezone.Resolver) Option {
	return func(cal *Calendar) {
		if r != nil {
			cal.zones = r
		}
	}
}

// WithLocation sets the default zone used when no timezone is given.
func WithLocation(loc *time.Location) Option {
	return func(cal *Calendar) {
		if loc != nil {
			cal.zones = timezone.NewResolver(timezone.WithDefault(loc))
		}
	}
}

// WithWeekStart sets the first day of the week used by week boundaries.
// Monday by default.
func WithWeekStart(d time.Weekday) Option {
	return func(cal *Calendar) {
		if d >= time.Sunday && d <= time.Saturday {
			cal.weekStart = d
		}
	}
}

// WithLocale pins the locale used for human durations. Keys missing from l
// are taken from the English table. Without this option the process-wide
// active locale (see SetLocale) is used.
func WithLocale(l Locale) Option {
	return func(cal *Calendar) {
		merged := English().Merge(l)
		cal.locale = &merged
	}
}

// WithPresentTolerance sets how close to now an instant must be to count as
// the present. Negative values are ignored.
func WithPresentTolerance(d time.Duration) Option {
	return func(cal *Calendar) {
		if d >= 0 {
			cal.tolerance = d
		}
	}
}

// WithLogger sets the logger used for diagnostics. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(cal *Calendar) {
		if l != nil {
			cal.logger = l
		}
	}
}

// New creates a Calendar.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		clock:     systemClock{},
		zones:     timezone.NewResolver(),
		weekStart: time.Monday,
		tolerance: DefaultPresentTolerance,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCalendar atomic.Pointer[Calendar]

func init() {
	defaultCalendar.Store(New())
}

// Default returns the process default calendar used by the package-level
// helpers and by zero Time values.
func Default() *Calendar {
	return defaultCalendar.Load()
}

// SetDefault replaces the process default calendar. Nil is ignored.
func SetDefault(c *Calendar) {
	if c != nil {
		defaultCalendar.Store(c)
	}
}

// Location returns the calendar's default zone.
func (c *Calendar) Location() *time.Location {
	return c.zones.Default()
}

// WeekStart returns the first day of the week.
func (c *Calendar) WeekStart() time.Weekday {
	return c.weekStart
}

// ResolveTimezone resolves a timezone reference with the calendar's resolver.
// See package timezone for the accepted forms.
func (c *Calendar) ResolveTimezone(ref any) (*time.Location, error) {
	return c.zones.Resolve(ref)
}

// Locale returns the locale used by this calendar: the pinned one, or a
// snapshot of the active process locale.
func (c *Calendar) Locale() Locale {
	if c.locale != nil {
		return c.locale.Clone()
	}
	return GetLocale()
}

func (c *Calendar) effectiveLocale() *Locale {
	if c.locale != nil {
		return c.locale
	}
	return active.Load()
}

// Now returns the current instant in the calendar's default zone.
func (c *Calendar) Now() Time {
	return c.wrap(c.clock.Now().In(c.Location()))
}

// From wraps t, keeping its location.
func (c *Calendar) From(t time.Time) Time {
	return c.wrap(t)
}

// Date builds a Time from calendar fields in loc (the default zone when nil).
// Out-of-range fields are normalised the way time.Date does.
func (c *Calendar) Date(year int, month time.Month, day, hour, minute, second int, loc *time.Location) Time {
	if loc == nil {
		loc = c.Location()
	}
	return c.wrap(time.Date(year, month, day, hour, minute, second, 0, loc))
}

func (c *Calendar) wrap(t time.Time) Time {
	return Time{t: t.Truncate(time.Second), cal: c}
}

// Now returns the current instant from the default calendar.
func Now() Time {
	return Default().Now()
}

// At builds a Time from value with the default calendar. See Calendar.At.
func At(value any, tz any) (Time, error) {
	return Default().At(value, tz)
}

// ResolveTimezone resolves a timezone reference with the default calendar.
func ResolveTimezone(ref any) (*time.Location, error) {
	return Default().ResolveTimezone(ref)
}

// Min returns the earliest of values using the default calendar.
func Min(values ...any) (Time, error) {
	return Default().Min(values...)
}

// Max returns the latest of values using the default calendar.
func Max(values ...any) (Time, error) {
	return Default().Max(values...)
}

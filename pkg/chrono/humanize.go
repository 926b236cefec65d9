package chrono

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/rapturekit/helper/pkg/logger"
)

type humanOptions struct {
	limit      int64
	limitText  string
	maxUnits   int
	zone       any
	hasZone    bool
	locale     *Locale
	capitalize bool
}

// HumanOption configures HumanDuration.
type HumanOption func(*humanOptions)

// SecondsLimit renders "more than <text> ago/from now" when the difference
// exceeds limit seconds. Non-positive limits disable the check.
func SecondsLimit(limit int64, text string) HumanOption {
	return func(o *humanOptions) {
		o.limit = limit
		o.limitText = text
	}
}

// MaxUnits keeps only the n most significant units. Zero means all.
func MaxUnits(n int) HumanOption {
	return func(o *humanOptions) {
		if n >= 0 {
			o.maxUnits = n
		}
	}
}

// InZone reinterprets the target's wall clock in tz before comparing.
// Unresolvable zones are logged and the target is used as is.
func InZone(tz any) HumanOption {
	return func(o *humanOptions) {
		o.zone = tz
		o.hasZone = true
	}
}

// UsingLocale renders with l instead of the calendar or context locale.
// Keys missing from l are taken from the English table.
func UsingLocale(l Locale) HumanOption {
	return func(o *humanOptions) {
		merged := English().Merge(l)
		o.locale = &merged
	}
}

// Capitalized upper-cases the first letter of the phrase using the
// casing rules of the locale's language.
func Capitalized() HumanOption {
	return func(o *humanOptions) {
		o.capitalize = true
	}
}

// HumanDuration describes the distance from t to target in words, for
// example "one year one month and 2 days after".
//
// When t is the present instant (within the calendar's present tolerance)
// the phrase reads relative to now ("2 hours ago", "3 days from now"),
// otherwise relative to t ("2 days before", "one month after").
func (t Time) HumanDuration(target Time, opts ...HumanOption) string {
	return t.HumanDurationContext(context.Background(), target, opts...)
}

// HumanDurationContext is HumanDuration with a context. A locale stored
// with ContextWithLocale takes precedence over the calendar's locale;
// UsingLocale takes precedence over both.
func (t Time) HumanDurationContext(ctx context.Context, target Time, opts ...HumanOption) string {
	cal := t.calendar()
	var o humanOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.hasZone {
		zoned, err := cal.At(target, o.zone)
		if err != nil {
			cal.logger.WarnContext(ctx, "human duration: keeping target zone",
				logger.Zone(o.zone),
				logger.Error(err),
			)
		} else {
			target = zoned
		}
	}

	loc := o.locale
	if loc == nil {
		loc = localeFromContext(ctx)
	}
	if loc == nil {
		loc = cal.effectiveLocale()
	}

	text := humanize(t, target, loc, &o, cal)
	if o.capitalize {
		text = capitalize(loc, text)
	}
	cal.logger.DebugContext(ctx, "human duration rendered",
		logger.Locale(loc.Tag.String()),
		slog.String("text", text),
	)
	return text
}

func humanize(t, target Time, loc *Locale, o *humanOptions, cal *Calendar) string {
	d := t.Diff(target)

	if o.limit > 0 {
		if secs, _ := d.In(Second); secs > o.limit {
			rel := loc.FromNow
			if d.Invert {
				rel = loc.Ago
			}
			return loc.wrap(loc.MoreThan, loc.wrap(rel, o.limitText))
		}
	}

	units := d.Breakdown()
	if o.maxUnits > 0 && len(units) > o.maxUnits {
		units = units[:o.maxUnits]
	}

	var text string
	if len(units) == 0 {
		text = loc.unit(Second, 0)
	} else {
		words := make([]string, len(units))
		for i, uc := range units {
			words[i] = loc.unit(uc.Unit, uc.Count)
		}
		last := len(words) - 1
		switch {
		case last == 0:
			text = words[0]
		case loc.Conjunction == "":
			text = strings.Join(words, loc.Separator)
		default:
			text = strings.Join(words[:last], loc.Separator) +
				loc.Separator + loc.Conjunction + loc.Separator + words[last]
		}
	}

	present := t.IsPresent(cal.tolerance)
	switch {
	case d.Invert && present:
		return loc.wrap(loc.Ago, text)
	case d.Invert:
		return loc.wrap(loc.Before, text)
	case present:
		return loc.wrap(loc.FromNow, text)
	default:
		return loc.wrap(loc.After, text)
	}
}

func capitalize(loc *Locale, s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(loc.Tag).String(string(r)) + s[size:]
}

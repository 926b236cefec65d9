package chrono

import (
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"
)

// Forms are the word forms of one unit. Zero and One are used verbatim for
// counts of 0 and 1; Other is a template the count is interpolated into,
// either with a fmt verb ("%d days") or the named placeholder "%{count}".
type Forms struct {
	Zero  string `json:"zero" yaml:"zero"`
	One   string `json:"one" yaml:"one"`
	Other string `json:"other" yaml:"other"`
}

// Locale is the grammar used to render human durations.
//
// Ago, FromNow, Before, After and MoreThan are templates taking one text
// argument ("%s ago" or "%{text} ago"). Separator joins units and
// Conjunction precedes the last one. Without a Conjunction every unit is
// joined by Separator alone.
//
// Merge treats empty strings as unset. NoSeparator and NoConjunction make a
// partial locale clear the inherited separator or conjunction instead.
//
// A Locale is a plain value; the package never mutates a Locale it was given.
type Locale struct {
	Tag         language.Tag
	Units       map[Unit]Forms
	Separator   string
	Conjunction string
	// NoSeparator and NoConjunction mark Separator and Conjunction as
	// deliberately empty.
	NoSeparator   bool
	NoConjunction bool
	Ago           string
	FromNow       string
	Before        string
	After         string
	MoreThan      string
	// DayNames are listed Monday first.
	DayNames   [7]string
	MonthNames [12]string
}

// English returns the built-in English locale.
func English() Locale {
	return Locale{
		Tag: language.English,
		Units: map[Unit]Forms{
			Year:   {"0 years", "one year", "%d years"},
			Month:  {"0 months", "one month", "%d months"},
			Week:   {"0 weeks", "one week", "%d weeks"},
			Day:    {"0 days", "one day", "%d days"},
			Hour:   {"0 hours", "one hour", "%d hours"},
			Minute: {"0 minutes", "one minute", "%d minutes"},
			Second: {"0 seconds", "one second", "%d seconds"},
		},
		Separator:   " ",
		Conjunction: "and",
		Ago:         "%s ago",
		FromNow:     "%s from now",
		Before:      "%s before",
		After:       "%s after",
		MoreThan:    "more than %s",
		DayNames:    [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		MonthNames: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	}
}

// Merge returns l overridden by the set fields of partial: non-empty
// strings, a non-root tag, every unit present in partial.Units and the
// NoSeparator and NoConjunction flags win. Everything else is kept from l.
func (l Locale) Merge(partial Locale) Locale {
	out := l.Clone()
	if partial.Tag != language.Und {
		out.Tag = partial.Tag
	}
	if out.Units == nil {
		out.Units = make(map[Unit]Forms, len(partial.Units))
	}
	maps.Copy(out.Units, partial.Units)

	out.Separator, out.NoSeparator = mergeClearable(out.Separator, out.NoSeparator, partial.Separator, partial.NoSeparator)
	out.Conjunction, out.NoConjunction = mergeClearable(out.Conjunction, out.NoConjunction, partial.Conjunction, partial.NoConjunction)

	for _, f := range []struct {
		dst *string
		src string
	}{
		{&out.Ago, partial.Ago},
		{&out.FromNow, partial.FromNow},
		{&out.Before, partial.Before},
		{&out.After, partial.After},
		{&out.MoreThan, partial.MoreThan},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	for i, name := range partial.DayNames {
		if name != "" {
			out.DayNames[i] = name
		}
	}
	for i, name := range partial.MonthNames {
		if name != "" {
			out.MonthNames[i] = name
		}
	}
	return out
}

func mergeClearable(cur string, curCleared bool, src string, cleared bool) (string, bool) {
	switch {
	case cleared:
		return "", true
	case src != "":
		return src, false
	}
	return cur, curCleared
}

// Clone returns a deep copy of l.
func (l Locale) Clone() Locale {
	l.Units = maps.Clone(l.Units)
	return l
}

// unit renders count with the forms of u.
func (l *Locale) unit(u Unit, count int) string {
	forms := l.Units[u]
	switch count {
	case 0:
		return forms.Zero
	case 1:
		return forms.One
	}
	return render(forms.Other, "count", strconv.Itoa(count), count)
}

// wrap renders a text template such as Ago or MoreThan.
func (l *Locale) wrap(tmpl, text string) string {
	return render(tmpl, "text", text, text)
}

var placeholderRe = regexp.MustCompile(`%\{([^}]+)\}`)

// render interpolates arg into tmpl. Named placeholders matching name are
// replaced by value, unknown ones are kept. Templates without any
// placeholder are returned unchanged.
func render(tmpl, name, value string, arg any) string {
	if strings.Contains(tmpl, "%{") {
		return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
			if match[2:len(match)-1] == name {
				return value
			}
			return match
		})
	}
	if !strings.Contains(tmpl, "%") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, arg)
}

var active atomic.Pointer[Locale]

func init() {
	en := English()
	active.Store(&en)
}

// SetLocale merges partial over the active process locale. Calendars
// created with WithLocale are not affected.
func SetLocale(partial Locale) {
	for {
		cur := active.Load()
		next := cur.Merge(partial)
		if active.CompareAndSwap(cur, &next) {
			return
		}
	}
}

// GetLocale returns a copy of the active process locale.
func GetLocale() Locale {
	return active.Load().Clone()
}

// ResetLocale restores the built-in English locale.
func ResetLocale() {
	en := English()
	active.Store(&en)
}

// Days returns the day names of the active locale, Monday first.
func Days() []string {
	return active.Load().days()
}

// Months returns the month names of the active locale, January first.
func Months() []string {
	return active.Load().months()
}

// Days returns the day names of the calendar's locale, Monday first.
func (c *Calendar) Days() []string {
	return c.effectiveLocale().days()
}

// Months returns the month names of the calendar's locale, January first.
func (c *Calendar) Months() []string {
	return c.effectiveLocale().months()
}

func (l *Locale) days() []string {
	out := make([]string, len(l.DayNames))
	copy(out, l.DayNames[:])
	return out
}

func (l *Locale) months() []string {
	out := make([]string, len(l.MonthNames))
	copy(out, l.MonthNames[:])
	return out
}

package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Zone records a timezone reference under the key "zone".
// If zone is nil, it returns an empty Attr.
func Zone(zone any) slog.Attr {
	if zone == nil {
		return slog.Attr{}
	}
	if s, ok := zone.(fmt.Stringer); ok {
		return slog.String("zone", s.String())
	}
	return slog.Any("zone", zone)
}

// Locale records a locale tag under the key "locale".
func Locale(tag string) slog.Attr {
	return slog.String("locale", tag)
}

// Unit records a calendar unit under the key "unit".
func Unit(unit fmt.Stringer) slog.Attr {
	if unit == nil {
		return slog.Attr{}
	}
	return slog.String("unit", unit.String())
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Command records the CLI command path under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

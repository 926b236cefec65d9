package chrono

import (
	"context"
	"time"
)

// EnvPrefix namespaces the Config environment variables.
const EnvPrefix = "CHRONO_"

// Config describes a Calendar in environment variable form. Load it with
// config.Load(&cfg, config.WithPrefix(chrono.EnvPrefix)).
type Config struct {
	// Timezone is any reference Resolve accepts; empty means the local zone.
	Timezone         string        `env:"TIMEZONE"`
	WeekStart        string        `env:"WEEK_START" envDefault:"monday"`
	Locale           string        `env:"LOCALE" envDefault:"en"`
	LocaleFile       string        `env:"LOCALE_FILE"`
	PresentTolerance time.Duration `env:"PRESENT_TOLERANCE" envDefault:"2s"`
}

// NewFromConfig builds a Calendar from cfg. The locale named by cfg.Locale
// is looked up among English and the locales of cfg.LocaleFile, and pinned
// to the calendar. Options are applied after the configured ones.
//
// cfg.Timezone is resolved with the zone resolver the options set up and
// always becomes the calendar's default zone: a WithZoneResolver option
// keeps its zone list but not its default. With an empty cfg.Timezone the
// options' default zone is kept.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Calendar, error) {
	base := New(opts...)

	loc, err := base.zones.Resolve(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	weekStart := time.Monday
	if cfg.WeekStart != "" {
		if weekStart, err = ParseWeekday(cfg.WeekStart); err != nil {
			return nil, err
		}
	}

	registry, err := NewLocaleRegistry(nil, WithRegistryLogger(base.logger))
	if err != nil {
		return nil, err
	}
	if cfg.LocaleFile != "" {
		if err := registry.LoadFile(ctx, cfg.LocaleFile); err != nil {
			return nil, err
		}
	}
	tag := cfg.Locale
	if tag == "" {
		tag = "en"
	}
	locale, err := registry.Lookup(tag)
	if err != nil {
		return nil, err
	}

	configured := []Option{
		WithLocation(loc),
		WithWeekStart(weekStart),
		WithLocale(locale),
	}
	if cfg.PresentTolerance > 0 {
		configured = append(configured, WithPresentTolerance(cfg.PresentTolerance))
	}
	configured = append(configured, opts...)
	configured = append(configured, WithZoneResolver(base.zones.WithDefaultLocation(loc)))
	return New(configured...), nil
}

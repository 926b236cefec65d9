package chrono

import "context"

type localeContextKey struct{}

// ContextWithLocale returns a copy of ctx carrying l. Keys missing from l
// are taken from the English table. HumanDurationContext prefers this
// locale over the calendar's one, which allows per-request languages
// without touching the process locale.
func ContextWithLocale(ctx context.Context, l Locale) context.Context {
	merged := English().Merge(l)
	return context.WithValue(ctx, localeContextKey{}, &merged)
}

// LocaleFromContext returns the locale stored by ContextWithLocale.
func LocaleFromContext(ctx context.Context) (Locale, bool) {
	l, ok := ctx.Value(localeContextKey{}).(*Locale)
	if !ok || l == nil {
		return Locale{}, false
	}
	return l.Clone(), true
}

func localeFromContext(ctx context.Context) *Locale {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(localeContextKey{}).(*Locale)
	return l
}

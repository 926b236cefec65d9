package chrono

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/text/language"
)

// LocaleRegistry keeps locales keyed by BCP 47 tag and negotiates between
// them. English is always registered and is the fallback of Match.
type LocaleRegistry struct {
	mu      sync.RWMutex
	tags    []language.Tag
	locales map[language.Tag]Locale
	matcher language.Matcher
	logger  *slog.Logger
}

// RegistryOption configures a LocaleRegistry.
type RegistryOption func(*LocaleRegistry)

// WithRegistryLogger sets the logger used when loading locale files.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *LocaleRegistry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewLocaleRegistry returns a registry holding the English locale and
// any locales given.
func NewLocaleRegistry(locales []Locale, opts ...RegistryOption) (*LocaleRegistry, error) {
	r := &LocaleRegistry{
		locales: make(map[language.Tag]Locale),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.Register(English()); err != nil {
		return nil, err
	}
	for _, l := range locales {
		if err := r.Register(l); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds l, merged over English, replacing any locale with the same tag.
func (r *LocaleRegistry) Register(l Locale) error {
	if l.Tag == language.Und {
		return fmt.Errorf("%w: locale has no tag", ErrInvalidLocaleTag)
	}
	merged := English().Merge(l)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.locales[l.Tag]; !ok {
		r.tags = append(r.tags, l.Tag)
	}
	r.locales[l.Tag] = merged
	r.matcher = language.NewMatcher(r.tags)
	return nil
}

// Lookup returns the locale registered under tag exactly.
func (r *LocaleRegistry) Lookup(tag string) (Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %w", ErrInvalidLocaleTag, tag, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locales[t]
	if !ok {
		return Locale{}, fmt.Errorf("%w: %s", ErrUnknownLocale, t)
	}
	return l.Clone(), nil
}

// Match picks the best registered locale for an Accept-Language style
// list such as "ro-RO,ro;q=0.9,en;q=0.5". Unparseable or unmatched input
// yields English.
func (r *LocaleRegistry) Match(acceptLanguage string) Locale {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		r.logger.Debug("bad accept-language list", slog.String("value", acceptLanguage), slog.Any("error", err))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(prefs) == 0 {
		return r.locales[language.English].Clone()
	}
	_, idx, conf := r.matcher.Match(prefs...)
	if conf == language.No {
		return r.locales[language.English].Clone()
	}
	return r.locales[r.tags[idx]].Clone()
}

// Tags lists the registered tags in registration order.
func (r *LocaleRegistry) Tags() []language.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.tags)
}

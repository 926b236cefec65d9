package chrono

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LocaleFile is the on-disk shape of one locale. Units are keyed by unit
// symbol or name and hold exactly three forms: zero, one and other. An
// explicitly empty separator or conjunction clears the inherited one.
//
//	ro:
//	  units:
//	    year: ["0 ani", "un an", "%d ani"]
//	  conjunction: "și"
//	  ago: "acum %s"
type LocaleFile struct {
	Units       map[string][]string `json:"units" yaml:"units"`
	Separator   *string             `json:"separator" yaml:"separator"`
	Conjunction *string             `json:"conjunction" yaml:"conjunction"`
	Ago         string              `json:"ago" yaml:"ago"`
	FromNow     string              `json:"from_now" yaml:"from_now"`
	Before      string              `json:"before" yaml:"before"`
	After       string              `json:"after" yaml:"after"`
	MoreThan    string              `json:"more_than" yaml:"more_than"`
	Days        []string            `json:"days" yaml:"days"`
	Months      []string            `json:"months" yaml:"months"`
}

// LocaleParser decodes locale files keyed by language tag.
type LocaleParser interface {
	Parse(ctx context.Context, content []byte) (map[string]LocaleFile, error)
	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// YAMLParser parses YAML locale files.
type YAMLParser struct{}

// Parse implements LocaleParser.
func (YAMLParser) Parse(ctx context.Context, content []byte) (map[string]LocaleFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingLocalesCancelled, err)
	}
	var data map[string]LocaleFile
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseLocaleFile, err)
	}
	return data, nil
}

// SupportsFileExtension implements LocaleParser.
func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser parses JSON locale files.
type JSONParser struct{}

// Parse implements LocaleParser.
func (JSONParser) Parse(ctx context.Context, content []byte) (map[string]LocaleFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingLocalesCancelled, err)
	}
	var data map[string]LocaleFile
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseLocaleFile, err)
	}
	return data, nil
}

// SupportsFileExtension implements LocaleParser.
func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

var parsers = []LocaleParser{YAMLParser{}, JSONParser{}}

// ParserForFile returns the parser matching the extension of path, or nil.
func ParserForFile(path string) LocaleParser {
	ext := filepath.Ext(path)
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// LoadLocales reads the locales defined in a YAML or JSON file. The file
// format is chosen by extension. Locales are returned sorted by tag and are
// partial: merge them over a base table before use.
func LoadLocales(ctx context.Context, path string) ([]Locale, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingLocalesCancelled, err)
	}
	parser := ParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocaleFormat, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadLocaleFile, err)
	}
	files, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no locales in %s", ErrInvalidLocaleFile, path)
	}

	locales := make([]Locale, 0, len(files))
	for tag, f := range files {
		l, err := f.Locale(tag)
		if err != nil {
			return nil, err
		}
		locales = append(locales, l)
	}
	slices.SortFunc(locales, func(a, b Locale) int {
		return strings.Compare(a.Tag.String(), b.Tag.String())
	})
	return locales, nil
}

// Locale validates f and converts it into a partial Locale tagged tag.
func (f LocaleFile) Locale(tag string) (Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q: %w", ErrInvalidLocaleTag, tag, err)
	}
	l := Locale{
		Tag:      t,
		Units:    make(map[Unit]Forms, len(f.Units)),
		Ago:      f.Ago,
		FromNow:  f.FromNow,
		Before:   f.Before,
		After:    f.After,
		MoreThan: f.MoreThan,
	}
	if f.Separator != nil {
		l.Separator, l.NoSeparator = *f.Separator, *f.Separator == ""
	}
	if f.Conjunction != nil {
		l.Conjunction, l.NoConjunction = *f.Conjunction, *f.Conjunction == ""
	}
	for key, forms := range f.Units {
		u, err := ParseUnit(key)
		if err != nil || !slices.Contains(durationUnits, u) {
			return Locale{}, fmt.Errorf("%w: %s: unknown unit %q", ErrInvalidLocaleFile, tag, key)
		}
		if len(forms) != 3 {
			return Locale{}, fmt.Errorf("%w: %s: unit %q needs 3 forms, got %d", ErrInvalidLocaleFile, tag, key, len(forms))
		}
		l.Units[u] = Forms{Zero: forms[0], One: forms[1], Other: forms[2]}
	}
	if len(f.Days) > len(l.DayNames) {
		return Locale{}, fmt.Errorf("%w: %s: %d day names", ErrInvalidLocaleFile, tag, len(f.Days))
	}
	if len(f.Months) > len(l.MonthNames) {
		return Locale{}, fmt.Errorf("%w: %s: %d month names", ErrInvalidLocaleFile, tag, len(f.Months))
	}
	copy(l.DayNames[:], f.Days)
	copy(l.MonthNames[:], f.Months)
	return l, nil
}

// LoadFile registers every locale defined in path.
func (r *LocaleRegistry) LoadFile(ctx context.Context, path string) error {
	locales, err := LoadLocales(ctx, path)
	if err != nil {
		return err
	}
	tags := make([]string, 0, len(locales))
	for _, l := range locales {
		if err := r.Register(l); err != nil {
			return err
		}
		tags = append(tags, l.Tag.String())
	}
	r.logger.InfoContext(ctx, "Locales loaded",
		slog.String("file", path),
		slog.Any("tags", tags),
	)
	return nil
}

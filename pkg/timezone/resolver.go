package timezone

//go:generate go run ./internal/zonegen -out zones.go

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

// Resolver turns timezone references into locations.
// It is safe for concurrent use.
type Resolver struct {
	def   *time.Location
	zones []string
	year  int

	indexOnce sync.Once
	byOffset  map[int][]string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDefault sets the location returned for nil and empty references.
// Nil locations are ignored.
func WithDefault(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.def = loc
		}
	}
}

// WithZones replaces the canonical zone list used for offset and city lookups.
func WithZones(names ...string) Option {
	return func(r *Resolver) {
		if len(names) == 0 {
			return
		}
		zones := slices.Clone(names)
		slices.Sort(zones)
		r.zones = slices.Compact(zones)
	}
}

// WithReferenceYear pins the year used to compute standard offsets.
// Zones change their rules over time, so offset lookups are evaluated
// against a single year. Defaults to the current year.
func WithReferenceYear(year int) Option {
	return func(r *Resolver) {
		if year > 0 {
			r.year = year
		}
	}
}

// NewResolver creates a Resolver. Without options it defaults to time.Local
// and the embedded canonical zone list.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		def:   time.Local,
		zones: canonical,
		year:  time.Now().Year(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve resolves ref with a resolver that defaults to time.Local.
func Resolve(ref any) (*time.Location, error) {
	return defaultResolver.Resolve(ref)
}

// Names returns a copy of the embedded canonical zone list.
func Names() []string {
	return slices.Clone(canonical)
}

// WithDefaultLocation returns a resolver with r's zone list and reference
// year that defaults to loc. A nil loc keeps r's default.
func (r *Resolver) WithDefaultLocation(loc *time.Location) *Resolver {
	if loc == nil {
		loc = r.def
	}
	return &Resolver{def: loc, zones: r.zones, year: r.year}
}

// Default returns the location used for nil references.
func (r *Resolver) Default() *time.Location {
	return r.def
}

// Resolve maps ref to a location. Supported reference types are nil,
// *time.Location, string and the integer kinds (offset in minutes).
func (r *Resolver) Resolve(ref any) (*time.Location, error) {
	switch v := ref.(type) {
	case nil:
		return r.def, nil
	case *time.Location:
		if v == nil {
			return r.def, nil
		}
		return v, nil
	case string:
		return r.resolveName(v)
	case int:
		return r.resolveOffset(v)
	case int8:
		return r.resolveOffset(int(v))
	case int16:
		return r.resolveOffset(int(v))
	case int32:
		return r.resolveOffset(int(v))
	case int64:
		return r.resolveOffset(int(v))
	case uint8:
		return r.resolveOffset(int(v))
	case uint16:
		return r.resolveOffset(int(v))
	case uint32:
		return r.resolveOffset(int(v))
	}
	return nil, fmt.Errorf("%w: unsupported reference type %T", ErrInvalidTimezone, ref)
}

func (r *Resolver) resolveName(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r.def, nil
	}
	if minutes, err := strconv.Atoi(name); err == nil {
		return r.resolveOffset(minutes)
	}

	switch name {
	case "UTC", "utc":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	}

	if _, found := slices.BinarySearch(r.zones, name); found {
		return load(name)
	}
	for _, z := range r.zones {
		if strings.EqualFold(z, name) {
			return load(z)
		}
	}

	// Links ("US/Eastern") and legacy zone names ("EET", "CET", "EST") are
	// not in the canonical list but exist in the tz database.
	for _, candidate := range []string{name, strings.ToUpper(name)} {
		if loc, err := time.LoadLocation(candidate); err == nil {
			return loc, nil
		}
	}

	suffix := "/" + strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	for _, z := range r.zones {
		if strings.HasSuffix(strings.ToLower(z), suffix) {
			return load(z)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, name)
}

func (r *Resolver) resolveOffset(minutes int) (*time.Location, error) {
	if StandardOffset(r.def, r.year) == minutes {
		return r.def, nil
	}

	r.indexOnce.Do(r.buildIndex)
	if names := r.byOffset[minutes]; len(names) > 0 {
		return load(names[0])
	}

	return nil, fmt.Errorf("%w: no zone with offset %+d minutes", ErrInvalidTimezone, minutes)
}

// buildIndex groups the zone list by standard offset, keeping list order.
func (r *Resolver) buildIndex() {
	r.byOffset = make(map[int][]string)
	for _, z := range r.zones {
		loc, err := time.LoadLocation(z)
		if err != nil {
			continue
		}
		off := StandardOffset(loc, r.year)
		r.byOffset[off] = append(r.byOffset[off], z)
	}
}

// StandardOffset returns the standard (non-DST) UTC offset of loc in minutes
// for the given year. It is the smaller of the offsets in effect on January 1
// and July 1, which covers both hemispheres.
func StandardOffset(loc *time.Location, year int) int {
	if loc == nil {
		loc = time.UTC
	}
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, loc).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, loc).Zone()
	return min(jan, jul) / 60
}

func load(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

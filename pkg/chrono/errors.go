package chrono

import (
	"errors"

	"github.com/rapturekit/helper/pkg/timezone"
)

var (
	// ErrInvalidArgument covers unsupported input shapes, unparseable
	// interval or date strings and units a given operation does not accept.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTimezone is returned when a timezone reference cannot be resolved.
	ErrInvalidTimezone = timezone.ErrInvalidTimezone

	// Locale registry and locale files
	ErrUnknownLocale           = errors.New("locale not registered")
	ErrInvalidLocaleTag        = errors.New("invalid locale tag")
	ErrInvalidLocaleFile       = errors.New("invalid locale file structure")
	ErrUnsupportedLocaleFormat = errors.New("unsupported locale file format")
	ErrFailedToReadLocaleFile  = errors.New("failed to read locale file")
	ErrFailedToParseLocaleFile = errors.New("failed to parse locale file")
	ErrLoadingLocalesCancelled = errors.New("loading locales cancelled")
)

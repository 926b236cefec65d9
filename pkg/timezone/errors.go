package timezone

import "errors"

// ErrInvalidTimezone is returned when a reference matches no known zone.
var ErrInvalidTimezone = errors.New("invalid timezone")

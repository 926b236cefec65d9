// Package timezone resolves loose timezone references into *time.Location values.
//
// A reference can be nil (the resolver default), a *time.Location, a canonical
// tz database name ("Europe/Bucharest"), a UTC offset in minutes (120 or
// "120"), or a bare city name matched against the last path element of the
// canonical names ("Bucharest", "new york").
//
// # Resolution order
//
//  1. nil or empty string: the default location.
//  2. *time.Location: returned unchanged.
//  3. Integer or numeric string: the first zone whose standard (non-DST)
//     offset equals the value. The default zone is tried before the
//     canonical list so that a local offset resolves to the local zone.
//  4. Exact canonical name, then a case-insensitive match.
//  5. Any other tz database name, as given or upper-cased: links such as
//     "US/Eastern" and legacy zone names such as "EET", "CET" or "EST".
//  6. Suffix match on "/{name}", case-insensitive, spaces folded to "_".
//
// Anything else fails with ErrInvalidTimezone.
//
// # Usage
//
//	r := timezone.NewResolver(timezone.WithDefault(time.UTC))
//	loc, err := r.Resolve("Bucharest")
//	if errors.Is(err, timezone.ErrInvalidTimezone) {
//		// unknown zone
//	}
//
// The zone table is embedded in the binary and regenerated with go generate
// from a tzdata.zi file. The tz database itself is embedded through
// time/tzdata so resolution does not depend on the host zoneinfo.
package timezone

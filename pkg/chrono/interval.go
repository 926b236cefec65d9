package chrono

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Interval is a signed calendar span. Weeks are folded into Days.
type Interval struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Seconds returns an interval of n seconds.
func Seconds(n int64) Interval {
	return Interval{Seconds: int(n)}
}

// Negate flips the sign of every component.
func (iv Interval) Negate() Interval {
	return Interval{
		Years:   -iv.Years,
		Months:  -iv.Months,
		Days:    -iv.Days,
		Hours:   -iv.Hours,
		Minutes: -iv.Minutes,
		Seconds: -iv.Seconds,
	}
}

// Add sums two intervals component-wise.
func (iv Interval) Add(o Interval) Interval {
	return Interval{
		Years:   iv.Years + o.Years,
		Months:  iv.Months + o.Months,
		Days:    iv.Days + o.Days,
		Hours:   iv.Hours + o.Hours,
		Minutes: iv.Minutes + o.Minutes,
		Seconds: iv.Seconds + o.Seconds,
	}
}

// IsZero reports whether every component is zero.
func (iv Interval) IsZero() bool {
	return iv == Interval{}
}

// String formats iv as an ISO-8601 duration. Negative components keep their sign.
func (iv Interval) String() string {
	if iv.IsZero() {
		return "PT0S"
	}
	var b strings.Builder
	b.WriteByte('P')
	for _, p := range []struct {
		n      int
		suffix byte
	}{{iv.Years, 'Y'}, {iv.Months, 'M'}, {iv.Days, 'D'}} {
		if p.n != 0 {
			b.WriteString(strconv.Itoa(p.n))
			b.WriteByte(p.suffix)
		}
	}
	if iv.Hours != 0 || iv.Minutes != 0 || iv.Seconds != 0 {
		b.WriteByte('T')
		for _, p := range []struct {
			n      int
			suffix byte
		}{{iv.Hours, 'H'}, {iv.Minutes, 'M'}, {iv.Seconds, 'S'}} {
			if p.n != 0 {
				b.WriteString(strconv.Itoa(p.n))
				b.WriteByte(p.suffix)
			}
		}
	}
	return b.String()
}

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseInterval parses a number of seconds ("90"), an ISO-8601 duration
// ("P1Y2M3DT4H5M6S", "P2W") or a relative phrase ("2 days",
// "1 day + 12 hours", "-3 weeks", "2 hours ago"). Anything else fails with
// ErrInvalidArgument.
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Seconds(n), nil
	}
	if strings.HasPrefix(s, "P") && !strings.ContainsRune(s, ' ') {
		return parseISODuration(s)
	}
	return parsePhrase(strings.ToLower(s))
}

func parseISODuration(s string) (Interval, error) {
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil || s == "P" || strings.HasSuffix(s, "T") {
		return Interval{}, fmt.Errorf("%w: bad ISO-8601 duration %q", ErrInvalidArgument, s)
	}
	n := make([]int, len(m))
	for i := 1; i < len(m); i++ {
		if m[i] == "" {
			continue
		}
		v, err := strconv.Atoi(m[i])
		if err != nil {
			return Interval{}, fmt.Errorf("%w: bad ISO-8601 duration %q: %w", ErrInvalidArgument, s, err)
		}
		n[i] = v
	}
	return Interval{
		Years:   n[1],
		Months:  n[2],
		Days:    n[3]*7 + n[4],
		Hours:   n[5],
		Minutes: n[6],
		Seconds: n[7],
	}, nil
}

// phraseUnits maps unit words onto an interval of one unit.
var phraseUnits = map[string]Interval{
	"sec": {Seconds: 1}, "secs": {Seconds: 1}, "second": {Seconds: 1}, "seconds": {Seconds: 1},
	"min": {Minutes: 1}, "mins": {Minutes: 1}, "minute": {Minutes: 1}, "minutes": {Minutes: 1},
	"hour": {Hours: 1}, "hours": {Hours: 1},
	"day": {Days: 1}, "days": {Days: 1},
	"week": {Days: 7}, "weeks": {Days: 7},
	"fortnight": {Days: 14}, "fortnights": {Days: 14},
	"month": {Months: 1}, "months": {Months: 1},
	"year": {Years: 1}, "years": {Years: 1},
}

var phraseWords = map[string]int{
	"a": 1, "an": 1, "one": 1,
	"next": 1, "last": -1, "previous": -1,
}

var phraseTokenRe = regexp.MustCompile(`^([+-]?\d+)([a-z]+)$`)

// parsePhrase parses lower-cased relative phrases: a sequence of
// "<count> <unit>" terms optionally joined by "+", "," or "and", with an
// optional trailing "ago" that negates the whole phrase.
func parsePhrase(s string) (Interval, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) > 0 && fields[len(fields)-1] == "ago" {
		iv, err := parsePhrase(strings.Join(fields[:len(fields)-1], " "))
		return iv.Negate(), err
	}

	var (
		result  Interval
		terms   int
		sign    = 1
		count   int
		pending bool
		joined  bool
	)
	bad := func() (Interval, error) {
		return Interval{}, fmt.Errorf("%w: bad relative interval %q", ErrInvalidArgument, s)
	}

	for _, tok := range fields {
		if m := phraseTokenRe.FindStringSubmatch(tok); m != nil && !pending {
			tok = m[2]
			n, _ := strconv.Atoi(m[1])
			count, pending = sign*n, true
		}
		switch {
		case tok == "+" || tok == "and":
			if pending {
				return bad()
			}
			joined = true
		case tok == "-":
			if pending {
				return bad()
			}
			sign, joined = -sign, true
		case !pending:
			if n, err := strconv.Atoi(tok); err == nil {
				count, pending = sign*n, true
			} else if n, ok := phraseWords[tok]; ok {
				count, pending = sign*n, true
			} else {
				return bad()
			}
		default:
			unit, ok := phraseUnits[tok]
			if !ok {
				return bad()
			}
			result = result.Add(unit.scale(count))
			terms++
			sign, pending, joined = 1, false, false
		}
	}

	if terms == 0 || pending || joined {
		return bad()
	}
	return result, nil
}

func (iv Interval) scale(n int) Interval {
	return Interval{
		Years:   iv.Years * n,
		Months:  iv.Months * n,
		Days:    iv.Days * n,
		Hours:   iv.Hours * n,
		Minutes: iv.Minutes * n,
		Seconds: iv.Seconds * n,
	}
}

func toInterval(v any) (Interval, error) {
	switch x := v.(type) {
	case Interval:
		return x, nil
	case *Interval:
		if x != nil {
			return *x, nil
		}
	case time.Duration:
		return Seconds(int64(x / time.Second)), nil
	case string:
		return ParseInterval(x)
	}
	if n, ok := asInt64(v); ok {
		return Seconds(n), nil
	}
	return Interval{}, fmt.Errorf("%w: unsupported interval %T(%v)", ErrInvalidArgument, v, v)
}

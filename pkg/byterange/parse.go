package byterange

import (
	"errors"
	"net/textproto"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedUnit is returned for Range headers whose unit is not "bytes".
	ErrUnsupportedUnit = errors.New("byterange: unsupported range unit")

	// ErrMalformedRange is returned for Range headers without a usable range.
	ErrMalformedRange = errors.New("byterange: malformed range")
)

// ParseHeader parses the value of a Range header, such as "bytes=0-499,-100".
// Only the bytes unit is accepted. Entries of the comma-separated list which
// cannot be parsed are skipped, but at least one entry must be valid.
func ParseHeader(value string) ([]Spec, error) {
	unit, set, found := strings.Cut(value, "=")
	if !found {
		return nil, ErrMalformedRange
	}
	unit = textproto.TrimString(unit)
	if unit == "" {
		return nil, ErrMalformedRange
	}
	if !strings.EqualFold(unit, "bytes") {
		return nil, ErrUnsupportedUnit
	}

	var specs []Spec
	for _, entry := range strings.Split(set, ",") {
		entry = textproto.TrimString(entry)
		if entry == "" {
			continue
		}

		spec, ok := parseSpec(entry)
		if !ok {
			continue
		}
		specs = append(specs, spec)
	}

	if len(specs) == 0 {
		return nil, ErrMalformedRange
	}
	return specs, nil
}

// parseSpec parses a single byte-range-spec or suffix-byte-range-spec.
func parseSpec(entry string) (Spec, bool) {
	first, last, found := strings.Cut(entry, "-")
	if !found {
		return Spec{}, false
	}
	first, last = textproto.TrimString(first), textproto.TrimString(last)

	if first == "" {
		n, ok := parsePos(last)
		if !ok {
			return Spec{}, false
		}
		return Last(n), true
	}

	from, ok := parsePos(first)
	if !ok {
		return Spec{}, false
	}
	if last == "" {
		return From(from), true
	}

	to, ok := parsePos(last)
	if !ok || from > to {
		return Spec{}, false
	}
	return FromTo(from, to), true
}

// parsePos parses a non-negative decimal position. Signs are not allowed.
func parsePos(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

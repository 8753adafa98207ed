package byterange

import (
	"errors"
	"strings"
)

var ErrInvalidContentRange = errors.New("byterange: invalid Content-Range")

// ContentRange is a parsed Content-Range response header. Start and End are
// -1 for unsatisfied-range values ("bytes */1000") and Size is -1 if the
// complete length is unknown ("bytes 0-499/*").
type ContentRange struct {
	Start int64
	End   int64
	Size  int64
}

// Range returns the byte range described by the header, if any.
func (c ContentRange) Range() (Range, bool) {
	if c.Start < 0 {
		return Range{}, false
	}
	return Range{Start: c.Start, End: c.End}, true
}

// ParseContentRange parses a Content-Range string like "bytes 5-10/100".
// See https://httpwg.org/specs/rfc9110.html#field.content-range.
func ParseContentRange(s string) (ContentRange, error) {
	const prefix = "bytes "
	if !strings.HasPrefix(s, prefix) {
		return ContentRange{}, ErrInvalidContentRange
	}
	s = s[len(prefix):]

	resp, total, found := strings.Cut(s, "/")
	if !found {
		return ContentRange{}, ErrInvalidContentRange
	}

	c := ContentRange{Start: -1, End: -1, Size: -1}

	if total != "*" {
		size, ok := parsePos(total)
		if !ok {
			return ContentRange{}, ErrInvalidContentRange
		}
		c.Size = size
	}

	if resp == "*" {
		// An unsatisfied-range must carry the complete length.
		if c.Size < 0 {
			return ContentRange{}, ErrInvalidContentRange
		}
		return c, nil
	}

	first, last, found := strings.Cut(resp, "-")
	if !found {
		return ContentRange{}, ErrInvalidContentRange
	}
	start, ok := parsePos(first)
	if !ok {
		return ContentRange{}, ErrInvalidContentRange
	}
	end, ok := parsePos(last)
	if !ok {
		return ContentRange{}, ErrInvalidContentRange
	}

	// A byte-content-range whose last-pos is less than its first-pos, or whose
	// complete-length is less than or equal to its last-pos, is invalid.
	if end < start || (c.Size >= 0 && c.Size <= end) {
		return ContentRange{}, ErrInvalidContentRange
	}

	c.Start = start
	c.End = end
	return c, nil
}

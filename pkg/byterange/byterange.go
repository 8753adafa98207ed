// Package byterange models the byte ranges a client may request using the
// HTTP Range header (RFC 7233) and resolves them against the size of a
// resource.
//
// A Spec is the parsed client intent and never knows about the resource. Only
// Resolve combines it with the resource's size, producing a Range which is
// guaranteed to lie within the resource:
//
//	specs, err := byterange.ParseHeader(r.Header.Get("Range"))
//	if err != nil {
//		// respond with 416 Range Not Satisfiable
//	}
//	rng, ok := byterange.Resolve(byterange.FirstOf(specs), size)
package byterange

import (
	"strconv"
)

// UnknownSize is passed to Resolve if the size of the resource cannot be
// determined. No Spec can be resolved against a resource of unknown size.
const UnknownSize int64 = -1

// Kind identifies the form of a requested byte range.
type Kind int

const (
	// OpenStart requests all bytes starting at From, e.g. "500-".
	OpenStart Kind = iota
	// Bounded requests the bytes From through To (inclusive), e.g. "0-499".
	// To may exceed the resource's size.
	Bounded
	// Suffix requests the last SuffixLength bytes, e.g. "-100".
	Suffix
)

func (k Kind) String() string {
	switch k {
	case OpenStart:
		return "open-start"
	case Bounded:
		return "bounded"
	case Suffix:
		return "suffix"
	}
	return "unknown"
}

// Spec is a single byte range as requested by a client. Which fields are
// meaningful depends on Kind.
type Spec struct {
	Kind         Kind
	From         int64
	To           int64
	SuffixLength int64
}

// From returns a Spec for all bytes starting at offset from.
func From(from int64) Spec {
	return Spec{Kind: OpenStart, From: from}
}

// FromTo returns a Spec for the bytes from through to, both inclusive.
func FromTo(from, to int64) Spec {
	return Spec{Kind: Bounded, From: from, To: to}
}

// Last returns a Spec for the final n bytes.
func Last(n int64) Spec {
	return Spec{Kind: Suffix, SuffixLength: n}
}

// String returns the byte-range-spec as it appears in a Range header.
func (s Spec) String() string {
	switch s.Kind {
	case OpenStart:
		return strconv.FormatInt(s.From, 10) + "-"
	case Bounded:
		return strconv.FormatInt(s.From, 10) + "-" + strconv.FormatInt(s.To, 10)
	case Suffix:
		return "-" + strconv.FormatInt(s.SuffixLength, 10)
	}
	return ""
}

// FirstOf narrows a list of requested ranges to the first one. Multi-range
// requests are served as if only their first range had been requested. An
// empty list stands for the entire resource.
func FirstOf(specs []Spec) Spec {
	if len(specs) == 0 {
		return From(0)
	}
	return specs[0]
}

// Range is a validated, end-inclusive byte range inside a resource.
type Range struct {
	Start int64
	End   int64
}

// Length returns the number of bytes covered by the range.
func (r Range) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange returns the value for the Content-Range response header. If
// size is negative, the complete length is reported as unknown ("*").
func (r Range) ContentRange(size int64) string {
	total := "*"
	if size >= 0 {
		total = strconv.FormatInt(size, 10)
	}
	return "bytes " + strconv.FormatInt(r.Start, 10) + "-" + strconv.FormatInt(r.End, 10) + "/" + total
}

// Resolve maps the requested range onto a resource of the given size. The
// boolean result is false if the range cannot be satisfied, which includes
// every request against a resource of unknown (negative) size and every
// request against an empty resource.
//
// Bounded ranges extending past the end are truncated to the last byte and
// suffix ranges longer than the resource select the entire resource. A
// suffix of zero bytes selects nothing and is unsatisfiable.
func Resolve(spec Spec, size int64) (Range, bool) {
	if size < 0 {
		return Range{}, false
	}

	switch spec.Kind {
	case Bounded:
		if spec.From < 0 || spec.From > spec.To || spec.From >= size {
			return Range{}, false
		}
		return Range{Start: spec.From, End: min(spec.To, size-1)}, true
	case OpenStart:
		if spec.From < 0 || spec.From >= size {
			return Range{}, false
		}
		return Range{Start: spec.From, End: size - 1}, true
	case Suffix:
		if spec.SuffixLength <= 0 || size == 0 {
			return Range{}, false
		}
		if spec.SuffixLength < size {
			return Range{Start: size - spec.SuffixLength, End: size - 1}, true
		}
		return Range{Start: 0, End: size - 1}, true
	}

	return Range{}, false
}

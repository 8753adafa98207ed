package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tus/rangeserve/pkg/byterange"
	"golang.org/x/exp/slog"
)

// RangeResponder wraps a Resource and answers requests carrying a Range
// header with the requested window of the resource. Only the first range of
// the header is served.
//
// If the header cannot be parsed or does not describe any byte of the
// resource, the full response of the resource is returned with its status set
// to 416 Range Not Satisfiable. The other headers and the body are kept.
type RangeResponder struct {
	resource Resource
	logger   *slog.Logger
}

func NewRangeResponder(resource Resource, logger *slog.Logger) *RangeResponder {
	if logger == nil {
		logger = slog.Default()
	}

	return &RangeResponder{
		resource: resource,
		logger:   logger,
	}
}

// Respond produces the response for r. Headers are only modified once a
// valid window has been resolved and the resource has been positioned at
// its start.
func (rr *RangeResponder) Respond(ctx context.Context, r *http.Request) (*Response, error) {
	values := r.Header.Values("Range")
	if len(values) == 0 {
		return rr.resource.Respond(ctx)
	}

	specs, err := byterange.ParseHeader(values[0])
	if err != nil {
		rr.logger.Debug("RangeMalformed", "range", values[0], "error", err)
		return rr.unsatisfiable(ctx)
	}

	size, err := rr.resource.Length(ctx)
	if err != nil {
		size = byterange.UnknownSize
	}

	spec := byterange.FirstOf(specs)
	rng, ok := byterange.Resolve(spec, size)
	if !ok {
		rr.logger.Debug("RangeUnsatisfiable", "range", spec.String(), "size", size)
		return rr.unsatisfiable(ctx)
	}

	if err := rr.resource.Seek(ctx, rng.Start); err != nil {
		rr.logger.Error("RangeSeekFailed", "offset", rng.Start, "error", err)
		return nil, ErrResourceSeek
	}

	resp, err := rr.resource.Take(rng.Length()).Respond(ctx)
	if err != nil {
		return nil, err
	}

	resp.SetHeader("Content-Length", strconv.FormatInt(rng.Length(), 10))
	resp.SetHeader("Content-Range", rng.ContentRange(size))
	resp.SetStatus(http.StatusPartialContent)

	rr.logger.Debug("RangeResolved", "start", rng.Start, "end", rng.End, "size", size)

	return resp, nil
}

func (rr *RangeResponder) unsatisfiable(ctx context.Context) (*Response, error) {
	resp, err := rr.resource.Respond(ctx)
	if err != nil {
		return nil, err
	}

	resp.SetStatus(http.StatusRequestedRangeNotSatisfiable)
	return resp, nil
}

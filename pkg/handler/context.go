package handler

import (
	"context"
	"net/http"

	"golang.org/x/exp/slog"
)

// httpContext is wrapper around context.Context that also carries the
// corresponding HTTP request and response writer.
type httpContext struct {
	context.Context

	res http.ResponseWriter
	req *http.Request
	log *slog.Logger
}

func (handler *UnroutedHandler) newContext(w http.ResponseWriter, r *http.Request) *httpContext {
	return &httpContext{
		Context: r.Context(),
		res:     w,
		req:     r,
		log:     handler.logger.With("method", r.Method, "path", r.URL.Path, "requestId", getRequestId(r)),
	}
}

package handler

import (
	"net/http"
	"strings"
)

// Handler is a ready to use handler with routing
type Handler struct {
	*UnroutedHandler
	http.Handler
}

// NewHandler creates a routed handler serving the resources of the data
// store. It expects the base path to already be stripped from the request
// URL, for example using http.StripPrefix. Only GET and HEAD requests for a
// resource are accepted, other methods are answered with 405 Method Not
// Allowed. If you want to combine the handlers with your own router, use
// NewUnroutedHandler instead.
func NewHandler(config Config) (*Handler, error) {
	handler, err := NewUnroutedHandler(config)
	if err != nil {
		return nil, err
	}

	routedHandler := &Handler{
		UnroutedHandler: handler,
	}

	mux := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.Method
		path := strings.Trim(r.URL.Path, "/")

		switch {
		case path == "":
			handler.sendError(handler.newContext(w, r), ErrInvalidResourceID)
		case method == "GET" || method == "HEAD":
			handler.GetFile(w, r)
		default:
			w.Header().Add("Allow", "GET, HEAD")
			handler.sendError(handler.newContext(w, r), ErrMethodNotAllowed)
		}
	})

	routedHandler.Handler = handler.Middleware(mux)

	return routedHandler, nil
}

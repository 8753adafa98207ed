package handler

import (
	"context"
	"net"
	"net/http"
	"regexp"
	"strings"

	"github.com/tus/rangeserve/internal/uid"
	"golang.org/x/exp/slog"
)

var reExtractFileID = regexp.MustCompile(`([^/]+)\/?$`)

var (
	ErrReadTimeout     = NewError("ERR_READ_TIMEOUT", "timeout while reading from the data store", http.StatusInternalServerError)
	ErrConnectionReset = NewError("ERR_CONNECTION_RESET", "TCP connection reset by peer", http.StatusInternalServerError)
)

// UnroutedHandler exposes methods to serve resources from a data store, most
// importantly GetFile which handles GET and HEAD requests including byte
// ranges.
type UnroutedHandler struct {
	config   Config
	basePath string
	logger   *slog.Logger

	// Metrics provides numbers of the usage for this handler.
	Metrics Metrics
}

// NewUnroutedHandler creates a new handler without routing using the given
// configuration. It exposes the http handlers which need to be combined with
// a router (aka mux) of your choice. If you are looking for preconfigured
// handler see NewHandler.
func NewUnroutedHandler(config Config) (*UnroutedHandler, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	handler := &UnroutedHandler{
		config:   config,
		basePath: config.BasePath,
		logger:   config.Logger,
		Metrics:  newMetrics(),
	}

	return handler, nil
}

// Middleware assigns a request ID, if the client did not supply one, logs the
// incoming request and counts it in the metrics. If you are using the
// handlers of UnroutedHandler directly, you should wrap them in this
// middleware.
func (handler *UnroutedHandler) Middleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			r.Header.Set("X-Request-ID", uid.Uid())
		}

		handler.logger.Info("RequestIncoming", "method", r.Method, "path", r.URL.Path, "requestId", getRequestId(r))

		handler.Metrics.incRequestsTotal(r.Method)

		header := w.Header()

		header.Set("X-Request-ID", getRequestId(r))

		// Add nosniff to all responses https://golang.org/src/net/http/server.go#L1429
		header.Set("X-Content-Type-Options", "nosniff")

		// Proceed with routing the request
		h.ServeHTTP(w, r)
	})
}

// GetFile handles requests to download a resource using a GET or HEAD
// request. A Range header is honored unless range requests are disabled.
func (handler *UnroutedHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	c := handler.newContext(w, r)

	id, err := extractIDFromPath(r.URL.Path)
	if err != nil {
		handler.sendError(c, err)
		return
	}

	resource, err := handler.config.Store.GetResource(c, id)
	if err != nil {
		handler.sendError(c, err)
		return
	}
	defer func() {
		if err := resource.Close(); err != nil {
			c.log.Warn("ResourceCloseError", "id", id, "error", err)
		}
	}()

	includeBody := r.Method != "HEAD"

	var ctx context.Context = c
	if !includeBody {
		ctx = WithoutBody(c)
	}

	var resp *Response
	if handler.config.DisableRangeRequests {
		resp, err = resource.Respond(ctx)
		if err == nil {
			resp.Header.Del("Accept-Ranges")
		}
	} else {
		resp, err = NewRangeResponder(resource, c.log.With("id", id)).Respond(ctx, r)
	}
	if err != nil {
		handler.sendError(c, err)
		return
	}

	handler.Metrics.incResponsesTotal(resp.StatusCode)

	n, err := resp.writeTo(w, includeBody)
	handler.Metrics.incBytesServed(uint64(n))
	if err != nil {
		// The status line has already been sent, so we can only log the error.
		c.log.Warn("BodyCopyError", "id", id, "written", n, "error", err)
	}

	c.log.Info("ResponseOutgoing", "id", id, "status", resp.StatusCode, "contentRange", resp.Header.Get("Content-Range"), "written", n)
}

// sendError sends an error response to the client. Errors which are not of
// the type Error are turned into a 500 Internal Server Error.
func (handler *UnroutedHandler) sendError(c *httpContext, err error) {
	// Errors for read timeouts contain too much information which is not
	// necessary for us and makes grouping for the metrics harder. The error
	// message looks like: read tcp 127.0.0.1:1080->127.0.0.1:53673: i/o timeout
	// Therefore, we use a common error message for all of them.
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		err = ErrReadTimeout
	}

	// Errors for connnection resets also contain TCP details, we don't need, e.g:
	// read tcp 127.0.0.1:1080->127.0.0.1:10023: read: connection reset by peer
	// Therefore, we also trim those down.
	if strings.HasSuffix(err.Error(), "read: connection reset by peer") {
		err = ErrConnectionReset
	}

	detailedErr, ok := err.(Error)
	if !ok {
		c.log.Error("InternalServerError", "message", err.Error())
		detailedErr = NewError("ERR_INTERNAL_SERVER_ERROR", err.Error(), http.StatusInternalServerError)
	}

	// If we are sending the response for a HEAD request, ensure that we are not including
	// any response body.
	if c.req.Method == "HEAD" {
		detailedErr.HTTPResponse.Body = ""
	}

	handler.sendResp(c, detailedErr.HTTPResponse)
	handler.Metrics.incErrorsTotal(detailedErr)
}

// sendResp writes the header to w with the specified status code.
func (handler *UnroutedHandler) sendResp(c *httpContext, resp HTTPResponse) {
	resp.writeTo(c.res)

	c.log.Info("ResponseOutgoing", "status", resp.StatusCode, "body", resp.Body)
}

// extractIDFromPath pulls the last segment from the url provided
func extractIDFromPath(url string) (string, error) {
	result := reExtractFileID.FindStringSubmatch(url)
	if len(result) != 2 {
		return "", ErrInvalidResourceID
	}
	return result[1], nil
}

// getRequestId returns the value of the X-Request-ID header, if available,
// and also takes care of truncating the input.
func getRequestId(r *http.Request) string {
	reqId := r.Header.Get("X-Request-ID")
	if reqId == "" {
		return ""
	}

	// Limit the length of the request ID to 36 characters, which is enough
	// to fit a UUID.
	if len(reqId) > 36 {
		reqId = reqId[:36]
	}

	return reqId
}

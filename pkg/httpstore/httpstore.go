// Package httpstore provides a data store which serves resources from another
// HTTP server, the origin.
//
// The resource ID is appended to the origin's base URL. Its size, type and
// modification time are read from the response to a HEAD request. Windows of
// the resource are requested from the origin using a Range header, so only
// the requested bytes are transferred. If the origin ignores the Range header,
// the unneeded bytes are skipped locally. Requests are retried with a linear
// backoff when the origin is unreachable or responds with a server error.
package httpstore

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sethgrid/pester"
	"github.com/tus/rangeserve/pkg/byterange"
	"github.com/tus/rangeserve/pkg/handler"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/semaphore"
)

// See the handler.DataStore interface for documentation about the different
// methods.
type HTTPStore struct {
	// Endpoint is the base URL of the origin, e.g. "https://origin.example/files/".
	Endpoint string
	// Header contains additional headers sent with every request to the
	// origin, such as an Authorization header.
	Header http.Header
	// Logger receives a message for every failed attempt to reach the origin.
	Logger *slog.Logger

	client *pester.Client
	limit  *semaphore.Weighted
}

// New creates a store for the origin at endpoint. Every request is attempted
// up to maxAttempts times, waiting backoff between the attempts.
func New(endpoint string, maxAttempts int, backoff time.Duration) *HTTPStore {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	store := &HTTPStore{
		Endpoint: endpoint,
		Header:   make(http.Header),
		Logger:   slog.Default(),
	}

	// Use linear backoff strategy with the user defined values. Failed
	// attempts are logged instead of being kept in the client's ErrLog.
	client := pester.New()
	client.MaxRetries = maxAttempts
	client.Backoff = func(_ int) time.Duration {
		return backoff
	}
	client.LogHook = store.logAttempt

	store.client = client
	return store
}

func (store *HTTPStore) logAttempt(e pester.ErrEntry) {
	store.Logger.Warn("OriginRequestFailed", "method", e.Verb, "url", e.URL, "attempt", e.Attempt, "error", e.Err)
}

// LimitConcurrentRequests caps the number of requests to the origin which
// are in flight at the same time. A GET request counts until its body has
// been closed. Callers exceeding the limit wait until a slot is free or their
// context is cancelled.
func (store *HTTPStore) LimitConcurrentRequests(n int64) {
	store.limit = semaphore.NewWeighted(n)
}

// do sends the request, retrying according to the client's policy.
func (store *HTTPStore) do(req *http.Request) (*http.Response, error) {
	if store.limit == nil {
		return store.client.Do(req)
	}

	if err := store.limit.Acquire(req.Context(), 1); err != nil {
		return nil, err
	}

	res, err := store.client.Do(req)
	if err != nil {
		store.limit.Release(1)
		return nil, err
	}

	res.Body = &releasingBody{ReadCloser: res.Body, release: func() { store.limit.Release(1) }}
	return res, nil
}

func (store *HTTPStore) resourceURL(id string) string {
	return strings.TrimSuffix(store.Endpoint, "/") + "/" + url.PathEscape(id)
}

func (store *HTTPStore) newRequest(ctx context.Context, method, id string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, store.resourceURL(id), nil)
	if err != nil {
		return nil, err
	}

	for key, values := range store.Header {
		req.Header[key] = values
	}

	return req, nil
}

func (store *HTTPStore) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	req, err := store.newRequest(ctx, "HEAD", id)
	if err != nil {
		return nil, err
	}

	res, err := store.do(req)
	if err != nil {
		return nil, err
	}
	res.Body.Close()

	if err := checkStatus(res, http.StatusOK); err != nil {
		return nil, err
	}

	info := handler.ResourceInfo{
		ID:       id,
		MetaData: make(handler.MetaData),
	}

	// For HEAD responses, net/http does not fill res.ContentLength reliably,
	// so the header is parsed directly.
	if size, err := strconv.ParseInt(res.Header.Get("Content-Length"), 10, 64); err == nil && size >= 0 {
		info.Size = size
	} else {
		info.SizeIsDeferred = true
	}

	if contentType := res.Header.Get("Content-Type"); contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			info.MetaData["filetype"] = mediaType
		}
	}

	if disposition := res.Header.Get("Content-Disposition"); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
			info.MetaData["filename"] = params["filename"]
		}
	}

	if modTime, err := http.ParseTime(res.Header.Get("Last-Modified")); err == nil {
		info.ModTime = modTime
	}

	return handler.NewRemoteResource(info, func(ctx context.Context, offset, length int64) (io.ReadCloser, error) {
		return store.readRange(ctx, id, offset, length)
	}), nil
}

// readRange requests length bytes starting at offset from the origin. A
// negative length reads until the end of the resource.
func (store *HTTPStore) readRange(ctx context.Context, id string, offset, length int64) (io.ReadCloser, error) {
	req, err := store.newRequest(ctx, "GET", id)
	if err != nil {
		return nil, err
	}

	var spec byterange.Spec
	ranged := offset > 0 || length >= 0
	if ranged {
		if length >= 0 {
			spec = byterange.FromTo(offset, offset+length-1)
		} else {
			spec = byterange.From(offset)
		}
		req.Header.Set("Range", "bytes="+spec.String())
	}

	res, err := store.do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case ranged && res.StatusCode == http.StatusPartialContent:
		if err := verifyContentRange(res.Header.Get("Content-Range"), offset, length); err != nil {
			res.Body.Close()
			return nil, err
		}
		return res.Body, nil
	case res.StatusCode == http.StatusOK:
		// The origin ignored the Range header and sent the entire resource.
		if offset > 0 {
			if _, err := io.CopyN(io.Discard, res.Body, offset); err != nil {
				res.Body.Close()
				return nil, err
			}
		}
		if length >= 0 {
			return limitedReadCloser{io.LimitReader(res.Body, length), res.Body}, nil
		}
		return res.Body, nil
	default:
		res.Body.Close()
		if err := checkStatus(res, http.StatusOK); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("httpstore: unexpected response code from origin (%d)", res.StatusCode)
	}
}

// verifyContentRange ensures that the window sent by the origin starts at
// offset and, if length is not negative, covers exactly length bytes.
func verifyContentRange(value string, offset, length int64) error {
	contentRange, err := byterange.ParseContentRange(value)
	if err != nil {
		return fmt.Errorf("httpstore: invalid Content-Range from origin %q: %w", value, err)
	}

	rng, ok := contentRange.Range()
	if !ok || rng.Start != offset || (length >= 0 && rng.Length() != length) {
		return fmt.Errorf("httpstore: origin responded with range %q, but bytes from %d with length %d were requested", value, offset, length)
	}

	return nil
}

// checkStatus maps the status code of the origin's response to an error.
func checkStatus(res *http.Response, expected int) error {
	switch res.StatusCode {
	case expected:
		return nil
	case http.StatusNotFound, http.StatusGone:
		return handler.ErrNotFound
	default:
		return fmt.Errorf("httpstore: unexpected response code from origin (%d)", res.StatusCode)
	}
}

type limitedReadCloser struct {
	io.Reader
	io.Closer
}

// releasingBody frees a slot of the concurrency limit once it is closed.
type releasingBody struct {
	io.ReadCloser
	release func()
	once    sync.Once
}

func (body *releasingBody) Close() error {
	err := body.ReadCloser.Close()
	body.once.Do(body.release)
	return err
}

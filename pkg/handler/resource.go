package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"
)

var reMimeType = regexp.MustCompile(`^[a-z]+\/[a-z0-9\-\+\.]+$`)

// ErrSizeUnknown is returned by Resource.Length if the resource cannot report
// its size.
var ErrSizeUnknown = errors.New("rangeserve: resource size is unknown")

type MetaData map[string]string

// ResourceInfo contains information about a specific resource.
type ResourceInfo struct {
	// ID uniquely identifies a resource inside its data store.
	ID string
	// Size is the total size of the resource in bytes.
	Size int64
	// SizeIsDeferred indicates that the resource cannot report its size. Size
	// must be ignored in this case.
	SizeIsDeferred bool
	// MetaData contains additional meta data about the resource. The keys
	// "filename" and "filetype" are used for the Content-Disposition and
	// Content-Type headers.
	MetaData MetaData
	// ModTime is the time the resource was last modified. It may be zero.
	ModTime time.Time
}

// Responder produces a complete HTTP response, including its body. The
// response is not written yet, so its status and headers may still be
// changed by the caller.
type Responder interface {
	Respond(ctx context.Context) (*Response, error)
}

// ResponderFunc adapts an ordinary function to the Responder interface.
type ResponderFunc func(ctx context.Context) (*Response, error)

func (f ResponderFunc) Respond(ctx context.Context) (*Response, error) {
	return f(ctx)
}

type omitBodyKey struct{}

// WithoutBody marks ctx for requests whose response body is never sent, such
// as HEAD requests. Resources may then skip opening their content and only
// produce the headers.
func WithoutBody(ctx context.Context) context.Context {
	return context.WithValue(ctx, omitBodyKey{}, true)
}

// BodyOmitted reports whether ctx was marked using WithoutBody.
func BodyOmitted(ctx context.Context) bool {
	omitted, _ := ctx.Value(omitBodyKey{}).(bool)
	return omitted
}

// Resource represents a seekable piece of content in a data store. Its
// Respond method produces the response for the entire resource.
//
// A Resource is owned by the request it was retrieved for and is not used
// concurrently. The caller must call Close once the response is written.
type Resource interface {
	Responder
	// Length returns the total size of the resource in bytes. A non-nil error
	// indicates that the size is not known.
	Length(ctx context.Context) (int64, error)
	// Seek moves the read position to the absolute offset.
	Seek(ctx context.Context, offset int64) error
	// Take returns a Responder whose response body consists of at most n
	// bytes, starting at the current read position.
	Take(n int64) Responder
	// Close releases all resources held by the Resource.
	Close() error
}

// DataStore is the interface that must be implemented by a data store.
type DataStore interface {
	// GetResource returns the resource with the specified ID. If no such
	// resource exists, ErrNotFound must be returned.
	GetResource(ctx context.Context, id string) (Resource, error)
}

// NewResourceResponse constructs the response for the resource described by
// info. length is the number of bytes body will produce.
func NewResourceResponse(info ResourceInfo, body io.ReadCloser, length int64) *Response {
	contentType, contentDisposition := filterContentType(info)

	resp := &Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       body,
	}
	resp.SetHeader("Accept-Ranges", "bytes")
	resp.SetHeader("Content-Type", contentType)
	resp.SetHeader("Content-Disposition", contentDisposition)
	if !info.ModTime.IsZero() {
		resp.SetHeader("Last-Modified", info.ModTime.UTC().Format(http.TimeFormat))
	}
	if length >= 0 {
		resp.SetHeader("Content-Length", strconv.FormatInt(length, 10))
	}

	// If the resource is empty, respond with an empty "204 No Content" status.
	if length == 0 && !info.SizeIsDeferred {
		resp.StatusCode = http.StatusNoContent
	}

	return resp
}

// readSeekerResource implements Resource on top of an io.ReadSeeker.
type readSeekerResource struct {
	info   ResourceInfo
	src    io.ReadSeeker
	closer io.Closer
}

// NewReadSeekerResource returns a Resource backed by src, such as an open
// file. closer, if not nil, is invoked when the resource is closed.
func NewReadSeekerResource(info ResourceInfo, src io.ReadSeeker, closer io.Closer) Resource {
	return &readSeekerResource{
		info:   info,
		src:    src,
		closer: closer,
	}
}

func (res *readSeekerResource) Length(ctx context.Context) (int64, error) {
	if res.info.SizeIsDeferred {
		return 0, ErrSizeUnknown
	}
	return res.info.Size, nil
}

func (res *readSeekerResource) Seek(ctx context.Context, offset int64) error {
	_, err := res.src.Seek(offset, io.SeekStart)
	return err
}

func (res *readSeekerResource) Respond(ctx context.Context) (*Response, error) {
	length := res.info.Size
	if res.info.SizeIsDeferred {
		length = -1
	}
	return NewResourceResponse(res.info, io.NopCloser(res.src), length), nil
}

func (res *readSeekerResource) Take(n int64) Responder {
	return ResponderFunc(func(ctx context.Context) (*Response, error) {
		return NewResourceResponse(res.info, io.NopCloser(io.LimitReader(res.src, n)), n), nil
	})
}

func (res *readSeekerResource) Close() error {
	if res.closer == nil {
		return nil
	}
	return res.closer.Close()
}

// RangeReaderFunc opens a stream for length bytes of a resource, starting at
// offset. A negative length reads until the end of the resource.
type RangeReaderFunc func(ctx context.Context, offset, length int64) (io.ReadCloser, error)

// remoteResource implements Resource for data stores which fetch the
// content over the network. Seeking only records the offset, the stream is
// opened once a response is produced.
type remoteResource struct {
	info   ResourceInfo
	open   RangeReaderFunc
	offset int64
}

// NewRemoteResource returns a Resource whose content is read using open.
func NewRemoteResource(info ResourceInfo, open RangeReaderFunc) Resource {
	return &remoteResource{
		info: info,
		open: open,
	}
}

func (res *remoteResource) Length(ctx context.Context) (int64, error) {
	if res.info.SizeIsDeferred {
		return 0, ErrSizeUnknown
	}
	return res.info.Size, nil
}

func (res *remoteResource) Seek(ctx context.Context, offset int64) error {
	if offset < 0 || (!res.info.SizeIsDeferred && offset > res.info.Size) {
		return fmt.Errorf("rangeserve: seek offset %d outside of resource %s", offset, res.info.ID)
	}
	res.offset = offset
	return nil
}

func (res *remoteResource) Respond(ctx context.Context) (*Response, error) {
	length := res.info.Size
	if res.info.SizeIsDeferred {
		length = -1
	}

	// Nothing to fetch for an empty resource or a response without body.
	if length == 0 || BodyOmitted(ctx) {
		return NewResourceResponse(res.info, http.NoBody, length), nil
	}

	body, err := res.open(ctx, 0, -1)
	if err != nil {
		return nil, err
	}
	return NewResourceResponse(res.info, body, length), nil
}

func (res *remoteResource) Take(n int64) Responder {
	offset := res.offset
	return ResponderFunc(func(ctx context.Context) (*Response, error) {
		if n == 0 || BodyOmitted(ctx) {
			return NewResourceResponse(res.info, http.NoBody, n), nil
		}

		body, err := res.open(ctx, offset, n)
		if err != nil {
			return nil, err
		}
		return NewResourceResponse(res.info, body, n), nil
	})
}

func (res *remoteResource) Close() error {
	return nil
}

// mimeInlineBrowserWhitelist is a map containing MIME types which should be
// allowed to be rendered by browser inline, instead of being forced to be
// downloaded. For example, HTML or SVG files are not allowed, since they may
// contain malicious JavaScript. In a similiar fashion PDF is not on this list
// as their parsers commonly contain vulnerabilities which can be exploited.
// The values of this map does not convey any meaning and are therefore just
// empty structs.
var mimeInlineBrowserWhitelist = map[string]struct{}{
	"text/plain": {},

	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/bmp":  {},
	"image/webp": {},

	"audio/wave":      {},
	"audio/wav":       {},
	"audio/x-wav":     {},
	"audio/x-pn-wav":  {},
	"audio/webm":      {},
	"video/webm":      {},
	"audio/ogg":       {},
	"video/ogg":       {},
	"video/mp4":       {},
	"audio/mpeg":      {},
	"application/ogg": {},
}

// filterContentType returns the values for the Content-Type and
// Content-Disposition headers for a given resource. These values should be
// used in responses for GET requests to ensure that only non-malicious file
// types are shown directly in the browser. It will extract the file name and
// type from the "filename" and "filetype" meta data.
// See https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Content-Disposition
func filterContentType(info ResourceInfo) (contentType string, contentDisposition string) {
	filetype := info.MetaData["filetype"]

	if reMimeType.MatchString(filetype) {
		// If the filetype from metadata is well formed, we forward use this
		// for the Content-Type header. However, only whitelisted mime types
		// will be allowed to be shown inline in the browser
		contentType = filetype
		if _, isWhitelisted := mimeInlineBrowserWhitelist[filetype]; isWhitelisted {
			contentDisposition = "inline"
		} else {
			contentDisposition = "attachment"
		}
	} else {
		// If the filetype from the metadata is not well formed, we use a
		// default type and force the browser to download the content.
		contentType = "application/octet-stream"
		contentDisposition = "attachment"
	}

	// Add a filename to Content-Disposition if one is available in the metadata
	if filename, ok := info.MetaData["filename"]; ok {
		contentDisposition += ";filename=" + strconv.Quote(filename)
	}

	return contentType, contentDisposition
}

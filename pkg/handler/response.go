package handler

import (
	"io"
	"net/http"
)

// Response is a streamed HTTP response which has not been written yet. Its
// status and headers can be changed until writeTo is called.
type Response struct {
	StatusCode int
	Header     http.Header
	// Body is the response body. It may be nil for responses without content.
	Body io.ReadCloser
}

func (resp *Response) SetStatus(statusCode int) {
	resp.StatusCode = statusCode
}

func (resp *Response) SetHeader(key, value string) {
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}
	resp.Header.Set(key, value)
}

// writeTo sends the status line and headers to w. If includeBody is true, the
// body is copied afterwards. The body is closed in any case. It returns the
// number of body bytes written.
func (resp *Response) writeTo(w http.ResponseWriter, includeBody bool) (int64, error) {
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	headers := w.Header()
	for key, values := range resp.Header {
		headers[key] = values
	}

	w.WriteHeader(resp.StatusCode)

	if !includeBody || resp.Body == nil || resp.StatusCode == http.StatusNoContent {
		return 0, nil
	}

	return io.Copy(w, resp.Body)
}

package handler

import (
	"net/http"
	"strconv"
)

type HTTPHeaders map[string]string

// HTTPResponse contains basic details of an outgoing HTTP response whose body
// is small enough to be held in memory, such as error messages.
type HTTPResponse struct {
	// StatusCode is status code, e.g. 200 or 400.
	StatusCode int
	// Body is the response body.
	Body string
	// Headers contains additional HTTP headers for the response.
	Headers HTTPHeaders
}

// writeTo writes the HTTP response into w, as specified by the fields in resp.
func (resp HTTPResponse) writeTo(w http.ResponseWriter) {
	headers := w.Header()
	for key, value := range resp.Headers {
		headers.Set(key, value)
	}

	if len(resp.Body) > 0 {
		headers.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}

	w.WriteHeader(resp.StatusCode)

	if len(resp.Body) > 0 {
		w.Write([]byte(resp.Body))
	}
}

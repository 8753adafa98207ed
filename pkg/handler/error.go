package handler

import (
	"net/http"
)

var (
	ErrNotFound          = NewError("ERR_RESOURCE_NOT_FOUND", "resource not found", http.StatusNotFound)
	ErrInvalidResourceID = NewError("ERR_INVALID_RESOURCE_ID", "missing or invalid resource ID", http.StatusBadRequest)
	ErrResourceSeek      = NewError("ERR_RESOURCE_SEEK", "unable to seek to the requested range", http.StatusInternalServerError)
	ErrMethodNotAllowed  = NewError("ERR_METHOD_NOT_ALLOWED", "method not allowed", http.StatusMethodNotAllowed)
)

// Error represents an error with the intent to be sent in the HTTP
// response to the client. Therefore, it also contains a HTTPResponse,
// next to an error code and error message.
type Error struct {
	ErrorCode    string
	Message      string
	HTTPResponse HTTPResponse
}

func (e Error) Error() string {
	return e.ErrorCode + ": " + e.Message
}

func (e1 Error) Is(target error) bool {
	e2, ok := target.(Error)
	return ok && e1.ErrorCode == e2.ErrorCode
}

// NewError constructs a new Error object with the given error code and message.
// The corresponding HTTP response will have the provided status code
// and a body consisting of the error details.
// See the net/http package for standardized status codes.
func NewError(errCode string, message string, statusCode int) Error {
	return Error{
		ErrorCode: errCode,
		Message:   message,
		HTTPResponse: HTTPResponse{
			StatusCode: statusCode,
			Body:       errCode + ": " + message + "\n",
			Headers: HTTPHeaders{
				"Content-Type": "text/plain; charset=utf-8",
			},
		},
	}
}

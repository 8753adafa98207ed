// Package s3log provides a logging wrapper for the AWS S3 API.
package s3log

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tus/rangeserve/pkg/s3store"
)

var _ s3store.S3API = &loggingS3API{}

type loggingS3API struct {
	// Wrapped is the underlying s3store.S3API implementation
	Wrapped s3store.S3API
	Logger  *slog.Logger
}

// New creates a wrapper around the provided S3 API that logs all calls to `logger`
func New(wrapped s3store.S3API, logger *slog.Logger) s3store.S3API {
	return &loggingS3API{
		Wrapped: wrapped,
		Logger:  logger,
	}
}

// sanitizeForLogging creates a copy of the input with large values removed that
// we don't want to print in the logs.
func sanitizeForLogging(v interface{}) interface{} {
	switch input := v.(type) {
	case *s3.GetObjectOutput:
		if input == nil {
			return nil
		}
		sanitized := *input
		sanitized.Body = nil
		return sanitized
	default:
		return v
	}
}

// jsonEncode converts a value to a JSON string, handling errors gracefully
func jsonEncode(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("{\"error\":\"failed to marshal: %v\"}", err)
	}

	return string(data)
}

// logCall logs an API call with its input, output, and error
func (l *loggingS3API) logCall(operation string, input, output interface{}, err error, duration time.Duration) {
	attrs := []any{
		"operation", operation,
		"input", jsonEncode(sanitizeForLogging(input)),
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
	} else {
		attrs = append(attrs, "output", jsonEncode(sanitizeForLogging(output)))
	}

	l.Logger.Debug("S3APICall", attrs...)
}

// GetObject implements the s3store.S3API interface
func (l *loggingS3API) GetObject(ctx context.Context, input *s3.GetObjectInput, opt ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	start := time.Now()
	output, err := l.Wrapped.GetObject(ctx, input, opt...)
	l.logCall("GetObject", input, output, err, time.Since(start))
	return output, err
}

// HeadObject implements the s3store.S3API interface
func (l *loggingS3API) HeadObject(ctx context.Context, input *s3.HeadObjectInput, opt ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	start := time.Now()
	output, err := l.Wrapped.HeadObject(ctx, input, opt...)
	l.logCall("HeadObject", input, output, err, time.Since(start))
	return output, err
}

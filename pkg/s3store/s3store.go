// Package s3store provides a data store serving objects from AWS S3 or
// compatible servers.
//
// # Configuration
//
// In order to allow this backend to function properly, the user accessing the
// bucket must have at least following AWS IAM policy permissions for the
// bucket and all of its subresources:
//
//	s3:GetObject
//
// While this package uses the official AWS SDK for Go, S3Store is able
// to work with any S3-compatible service such as MinIO. In order to change
// the HTTP endpoint used for sending requests to, consult the AWS Go SDK
// (https://aws.github.io/aws-sdk-go-v2/docs/configuring-sdk/endpoints/).
//
// # Implementation
//
// A resource ID maps to the object key ObjectPrefix + ID. Its size, type and
// modification time are read using a HEAD request. The user-defined meta data
// of the object is passed on as resource meta data, so objects uploaded by
// tusd keep their file name. Windows of the object are read with ranged GET
// requests, so only the requested bytes are transferred from S3.
package s3store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tus/rangeserve/pkg/handler"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const (
	metricHeadObject = "head_object"
	metricGetObject  = "get_object"
)

// S3API contains the methods of the S3 client which are used by S3Store.
// It is implemented by *s3.Client.
type S3API interface {
	GetObject(ctx context.Context, input *s3.GetObjectInput, opt ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, input *s3.HeadObjectInput, opt ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

var _ S3API = &s3.Client{}

// See the handler.DataStore interface for documentation about the different
// methods.
type S3Store struct {
	// Bucket used to read the objects from, e.g. "assets.example.com"
	Bucket string
	// ObjectPrefix is prepended to the resource ID to form the object key. It
	// can be used to serve a pseudo-directory of the bucket, e.g. "path/to/files/".
	ObjectPrefix string
	// Service specifies an interface used to communicate with the S3 backend.
	// Usually, this is an instance of github.com/aws/aws-sdk-go-v2/service/s3.Client
	// (https://pkg.go.dev/github.com/aws/aws-sdk-go-v2/service/s3#Client).
	Service S3API

	// requestDurationMetric holds the prometheus instance for storing the request durations.
	requestDurationMetric *prometheus.SummaryVec
}

// New constructs a new storage using the supplied bucket and service object.
func New(bucket string, service S3API) S3Store {
	requestDurationMetric := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name:       "rangeserve_s3_request_duration_ms",
		Help:       "Duration of requests sent to S3 in milliseconds per operation",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	}, []string{"operation"})

	return S3Store{
		Bucket:                bucket,
		Service:               service,
		requestDurationMetric: requestDurationMetric,
	}
}

func (store S3Store) RegisterMetrics(registry prometheus.Registerer) {
	registry.MustRegister(store.requestDurationMetric)
}

func (store S3Store) observeRequestDuration(start time.Time, label string) {
	if store.requestDurationMetric == nil {
		return
	}

	elapsed := time.Since(start)
	ms := float64(elapsed.Nanoseconds() / int64(time.Millisecond))

	store.requestDurationMetric.WithLabelValues(label).Observe(ms)
}

func (store S3Store) keyWithPrefix(id string) *string {
	prefix := store.ObjectPrefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return aws.String(prefix + id)
}

func (store S3Store) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	t := time.Now()
	head, err := store.Service.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(store.Bucket),
		Key:    store.keyWithPrefix(id),
	})
	store.observeRequestDuration(t, metricHeadObject)
	if err != nil {
		return nil, convertS3Error(err)
	}

	info := handler.ResourceInfo{
		ID:       id,
		MetaData: make(handler.MetaData, len(head.Metadata)+1),
	}
	for key, value := range head.Metadata {
		info.MetaData[strings.ToLower(key)] = value
	}
	if _, ok := info.MetaData["filetype"]; !ok && head.ContentType != nil {
		info.MetaData["filetype"] = *head.ContentType
	}
	if head.ContentLength != nil {
		info.Size = *head.ContentLength
	} else {
		info.SizeIsDeferred = true
	}
	if head.LastModified != nil {
		info.ModTime = *head.LastModified
	}

	return handler.NewRemoteResource(info, func(ctx context.Context, offset, length int64) (io.ReadCloser, error) {
		return store.readObject(ctx, id, offset, length)
	}), nil
}

// readObject fetches length bytes of the object starting at offset. A negative
// length reads until the end of the object.
func (store S3Store) readObject(ctx context.Context, id string, offset, length int64) (io.ReadCloser, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(store.Bucket),
		Key:    store.keyWithPrefix(id),
	}

	switch {
	case length >= 0:
		input.Range = aws.String(fmt.Sprintf("bytes=%d-%d", offset, offset+length-1))
	case offset > 0:
		input.Range = aws.String(fmt.Sprintf("bytes=%d-", offset))
	}

	t := time.Now()
	res, err := store.Service.GetObject(ctx, input)
	store.observeRequestDuration(t, metricGetObject)
	if err != nil {
		return nil, convertS3Error(err)
	}

	return res.Body, nil
}

// convertS3Error maps errors for missing objects to handler.ErrNotFound.
// S3 responds with 403 Forbidden instead of 404 Not Found if the caller is not
// allowed to list the bucket, so both are treated alike.
func convertS3Error(err error) error {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		if respErr.HTTPStatusCode() == http.StatusNotFound || respErr.HTTPStatusCode() == http.StatusForbidden {
			return handler.ErrNotFound
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return handler.ErrNotFound
		}
	}

	return err
}

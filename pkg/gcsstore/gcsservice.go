package gcsstore

import (
	"context"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSObjectParams struct {
	// Bucket specifies the GCS bucket that the object resides in.
	Bucket string

	// ID specifies the ID of the GCS object.
	ID string
}

// GCSReader implements cloud.google.com/go/storage.Reader.
// It is used to read Google Cloud storage objects.
type GCSReader interface {
	Close() error
	Read(p []byte) (int, error)
	Remain() int64
}

// GCSAPI is an interface composed of the GCS operations which are required
// to serve objects from Google's cloud storage.
type GCSAPI interface {
	GetObjectAttrs(ctx context.Context, params GCSObjectParams) (*storage.ObjectAttrs, error)
	ReadObjectRange(ctx context.Context, params GCSObjectParams, offset, length int64) (GCSReader, error)
}

// GCSService holds the cloud.google.com/go/storage client.
// Closures are used as minimal wrappers around the Google Cloud Storage API, since the Storage API cannot be mocked.
type GCSService struct {
	Client *storage.Client
}

// NewGCSService returns a GCSService object given a GCloud service account file path.
// If filename is empty, the application default credentials are used.
func NewGCSService(filename string, opts ...option.ClientOption) (*GCSService, error) {
	if filename != "" {
		opts = append(opts, option.WithCredentialsFile(filename))
	}

	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	service := &GCSService{
		Client: client,
	}

	return service, nil
}

// GetObjectAttrs returns the associated attributes of a GCS object. See: https://godoc.org/cloud.google.com/go/storage#ObjectAttrs
func (service *GCSService) GetObjectAttrs(ctx context.Context, params GCSObjectParams) (*storage.ObjectAttrs, error) {
	obj := service.Client.Bucket(params.Bucket).Object(params.ID)

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, err
	}

	return attrs, nil
}

// ReadObjectRange returns a reader for length bytes of the object starting at
// offset. A negative length reads until the end of the object.
func (service *GCSService) ReadObjectRange(ctx context.Context, params GCSObjectParams, offset, length int64) (GCSReader, error) {
	r, err := service.Client.Bucket(params.Bucket).Object(params.ID).NewRangeReader(ctx, offset, length)
	if err != nil {
		return nil, err
	}

	return r, nil
}

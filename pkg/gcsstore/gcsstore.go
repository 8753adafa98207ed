// Package gcsstore provides a data store serving objects from Google Cloud
// Storage.
//
// The object key of a resource is ObjectPrefix + ID. The size, content type
// and custom meta data of the object are retrieved from its attributes, while
// windows of the object are read using range readers. The service account
// used must be allowed to read objects (roles/storage.objectViewer).
package gcsstore

import (
	"context"
	"errors"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/tus/rangeserve/pkg/handler"
)

// See the handler.DataStore interface for documentation about the different
// methods.
type GCSStore struct {
	// Specifies the GCS bucket that objects will be read from.
	Bucket string

	// ObjectPrefix is prepended to the resource ID to form the object name.
	ObjectPrefix string

	// Service specifies an interface used to communicate with the Google
	// cloud storage backend. Implementation can be seen in gcsservice file.
	Service GCSAPI
}

// New constructs a new GCS storage backend using the supplied GCS bucket name
// and service object.
func New(bucket string, service GCSAPI) GCSStore {
	return GCSStore{
		Bucket:  bucket,
		Service: service,
	}
}

func (store GCSStore) keyWithPrefix(id string) string {
	prefix := store.ObjectPrefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + id
}

func (store GCSStore) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	params := GCSObjectParams{
		Bucket: store.Bucket,
		ID:     store.keyWithPrefix(id),
	}

	attrs, err := store.Service.GetObjectAttrs(ctx, params)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, handler.ErrNotFound
		}
		return nil, err
	}

	info := handler.ResourceInfo{
		ID:       id,
		Size:     attrs.Size,
		MetaData: make(handler.MetaData, len(attrs.Metadata)+1),
		ModTime:  attrs.Updated,
	}
	for key, value := range attrs.Metadata {
		info.MetaData[key] = value
	}
	if _, ok := info.MetaData["filetype"]; !ok && attrs.ContentType != "" {
		info.MetaData["filetype"] = attrs.ContentType
	}

	return handler.NewRemoteResource(info, func(ctx context.Context, offset, length int64) (io.ReadCloser, error) {
		r, err := store.Service.ReadObjectRange(ctx, params, offset, length)
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotExist) {
				return nil, handler.ErrNotFound
			}
			return nil, err
		}
		return r, nil
	}), nil
}

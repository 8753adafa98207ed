// Package azurestore provides a data store serving blobs from Azure Blob
// Storage.
//
// A resource ID maps to the blob ObjectPrefix + ID in the configured
// container. The blob properties supply the size, content type and meta data,
// while windows are read using ranged downloads.
package azurestore

import (
	"context"
	"io"
	"strings"

	"github.com/tus/rangeserve/pkg/handler"
)

type AzureStore struct {
	Service      AzService
	ObjectPrefix string
}

func New(service AzService) *AzureStore {
	return &AzureStore{
		Service: service,
	}
}

func (store AzureStore) keyWithPrefix(id string) string {
	prefix := store.ObjectPrefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + id
}

func (store AzureStore) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	blob, err := store.Service.NewBlob(ctx, store.keyWithPrefix(id))
	if err != nil {
		return nil, err
	}

	props, err := blob.GetProperties(ctx)
	if err != nil {
		return nil, err
	}

	info := handler.ResourceInfo{
		ID:       id,
		Size:     props.Size,
		MetaData: make(handler.MetaData, len(props.Metadata)+1),
		ModTime:  props.LastModified,
	}
	for key, value := range props.Metadata {
		info.MetaData[key] = value
	}
	if _, ok := info.MetaData["filetype"]; !ok && props.ContentType != "" {
		info.MetaData["filetype"] = props.ContentType
	}

	return handler.NewRemoteResource(info, func(ctx context.Context, offset, length int64) (io.ReadCloser, error) {
		return blob.DownloadRange(ctx, offset, length)
	}), nil
}

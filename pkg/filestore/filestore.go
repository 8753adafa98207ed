// Package filestore provides data stores serving resources from the local
// file system.
//
// Every regular file in the configured directory is a resource, identified
// by its file name. An optional `[id].info` file next to it may contain meta
// data in JSON format, which is used for the Content-Type and
// Content-Disposition headers:
//
//	{"MetaData": {"filename": "cat.png", "filetype": "image/png"}}
//
// The layout matches the one used by tusd's filestore, so a directory of
// finished tus uploads can be served as-is. The `.info` files themselves are
// never served.
//
// FileStore resolves IDs relative to a path on the host file system, while
// RootStore confines all lookups to an os.Root.
package filestore

import (
	"context"

	"github.com/tus/rangeserve/pkg/handler"
)

var _ handler.DataStore = FileStore{}

// FileStore is a data store which reads resources from a directory on the
// local file system.
type FileStore struct {
	// Relative or absolute path to read files from. FileStore does not check
	// whether the path exists.
	Path string
}

// New creates a new file based storage backend. The directory specified will
// be used as the only storage entry. This method does not check
// whether the path exists.
func New(path string) FileStore {
	return FileStore{path}
}

func (store FileStore) base() baseStore {
	return baseStore{Path: store.Path, FS: osFS{}}
}

func (store FileStore) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	return store.base().GetResource(ctx, id)
}

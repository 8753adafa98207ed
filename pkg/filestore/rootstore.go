package filestore

import (
	"context"
	"os"

	"github.com/tus/rangeserve/pkg/handler"
)

var _ handler.DataStore = RootStore{}

// RootStore is a file based storage backend that uses the
// os.Root type to safely read resources.
type RootStore struct {
	// Root is the root directory where all resources are stored.
	// See https://go.dev/blog/osroot for more information.
	Root *os.Root
}

// NewRootStore creates a new file based storage backend. The directory specified will
// be used as the only storage entry.
func NewRootStore(root *os.Root) RootStore {
	return RootStore{root}
}

func (store RootStore) base() baseStore {
	return baseStore{Path: "", FS: store.Root}
}

func (store RootStore) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	return store.base().GetResource(ctx, id)
}

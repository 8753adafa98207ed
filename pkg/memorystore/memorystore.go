// Package memorystore provides an in-memory data store.
//
// It is mostly useful for testing and for serving small, generated content.
// Resources are added using Put and removed using Delete. All methods are
// safe for concurrent use. A resource can be stored with
// handler.ResourceInfo.SizeIsDeferred set to model content whose length is
// not known; range requests for such resources are never satisfiable.
package memorystore

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/tus/rangeserve/pkg/handler"
)

var _ handler.DataStore = &MemoryStore{}

type entry struct {
	info handler.ResourceInfo
	data []byte
}

// MemoryStore holds resources in memory.
type MemoryStore struct {
	mutex     sync.RWMutex
	resources map[string]entry
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		resources: make(map[string]entry),
	}
}

// Put stores data as the resource info.ID, replacing any existing resource
// with the same ID. info.Size is set to the length of data and info.ModTime
// defaults to the current time.
func (store *MemoryStore) Put(info handler.ResourceInfo, data []byte) {
	info.Size = int64(len(data))
	if info.ModTime.IsZero() {
		info.ModTime = time.Now()
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	store.mutex.Lock()
	defer store.mutex.Unlock()

	store.resources[info.ID] = entry{info, buf}
}

// Delete removes the resource. It returns handler.ErrNotFound if no such
// resource exists.
func (store *MemoryStore) Delete(id string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	if _, ok := store.resources[id]; !ok {
		return handler.ErrNotFound
	}
	delete(store.resources, id)
	return nil
}

func (store *MemoryStore) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	store.mutex.RLock()
	e, ok := store.resources[id]
	store.mutex.RUnlock()

	if !ok {
		return nil, handler.ErrNotFound
	}

	// The stored slice is never modified after Put, so readers can share it.
	return handler.NewReadSeekerResource(e.info, bytes.NewReader(e.data), nil), nil
}

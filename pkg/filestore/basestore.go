package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tus/rangeserve/pkg/handler"
)

// InfoExtension is the suffix of the sidecar files holding the meta data of a
// resource. Files with this suffix are never served themselves.
const InfoExtension = ".info"

// See the handler.DataStore interface for documentation about the different
// methods.
type baseStore struct {
	// Relative or absolute path to read files from.
	Path string

	FS FS
}

func (store baseStore) GetResource(ctx context.Context, id string) (handler.Resource, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return nil, handler.ErrInvalidResourceID
	}
	if strings.HasSuffix(id, InfoExtension) {
		return nil, handler.ErrNotFound
	}

	binPath := filepath.Join(store.Path, id)
	stat, err := store.FS.Stat(binPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Interpret os.ErrNotExist as 404 Not Found
			err = handler.ErrNotFound
		}
		return nil, err
	}
	if !stat.Mode().IsRegular() {
		return nil, handler.ErrNotFound
	}

	info, err := store.readInfo(id)
	if err != nil {
		return nil, err
	}
	info.ID = id
	info.Size = stat.Size()
	info.SizeIsDeferred = false
	info.ModTime = stat.ModTime()

	file, err := store.FS.Open(binPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = handler.ErrNotFound
		}
		return nil, err
	}

	return handler.NewReadSeekerResource(info, file, file), nil
}

// readInfo loads the optional sidecar file of the resource. Its layout is
// compatible with the .info files written by tusd, so upload directories can
// be served directly.
func (store baseStore) readInfo(id string) (handler.ResourceInfo, error) {
	var info handler.ResourceInfo

	infoPath := filepath.Join(store.Path, id+InfoExtension)
	data, err := fs.ReadFile(store.FS.FS(), filepath.ToSlash(infoPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return info, nil
		}
		return info, err
	}

	if err := json.Unmarshal(data, &info); err != nil {
		return info, err
	}

	return info, nil
}

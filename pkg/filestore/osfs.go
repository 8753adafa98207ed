package filestore

import (
	"io/fs"
	"os"
)

type osFS struct{}

func (o osFS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

func (o osFS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (o osFS) FS() fs.FS {
	return &osReadFS{}
}

type osReadFS struct{}

func (o osReadFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

package filestore

import (
	"io/fs"
	"os"
)

var (
	_ FS = osFS{}
	_ FS = &os.Root{}
)

// FS is the subset of file system operations the stores need. It is
// implemented by os.Root and by osFS, which operates on the host file system.
type FS interface {
	// FS returns the underlying file system interface.
	FS() fs.FS

	// Open opens the named file for reading.
	Open(name string) (*os.File, error)
	// Stat returns the FileInfo structure describing file.
	Stat(name string) (os.FileInfo, error)
}

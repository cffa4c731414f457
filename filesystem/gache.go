package filesystem

import (
	"io"
	"os"
)

// GacheFs exposes the active backend through the gache.FileSystem interface,
// so persisted caches like the window-property snapshot and the viewing log
// land on the same tree as the rest of the profile.
type GacheFs struct{}

// OpenFile opens a cache file on the active backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates cache directories on the active backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}

// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"time"
)

// makeRetries bounds the create-delete-create dance used to convince the host
// to re-create a directory it refused moments earlier.
const makeRetries = 3

// MakeDirectory creates a directory tree, retrying through a sibling
// create-and-remove cycle when the backend refuses to re-create a path that
// was deleted in the same session.
func MakeDirectory(path string) error {
	path = Translate(path)

	var err error
	for attempt := 0; attempt < makeRetries; attempt++ {
		if err = API().MkdirAll(path, os.ModePerm); err == nil {
			return nil
		}

		sibling := path + ".probe"
		if API().MkdirAll(sibling, os.ModePerm) == nil {
			_ = API().RemoveAll(sibling)
		}
		time.Sleep(100 * time.Millisecond)
	}
	return err
}

// DeleteFile removes a single file, tolerating an already-absent target.
func DeleteFile(path string) error {
	path = Translate(path)
	err := API().Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// DeleteDirectory removes a directory tree. It falls through three
// strategies: recursive removal, per-entry iteration, then a permission
// reset followed by a final removal attempt.
func DeleteDirectory(path string) error {
	path = Translate(path)

	if err := API().RemoveAll(path); err == nil {
		return nil
	}

	entries, err := API().ReadDir(path)
	if err == nil {
		for _, entry := range entries {
			child := filepath.Join(path, entry.Name())
			if entry.IsDir() {
				_ = DeleteDirectory(child)
			} else {
				_ = API().Remove(child)
			}
		}
		if err := API().Remove(path); err == nil {
			return nil
		}
	}

	_ = API().Chmod(path, 0o777)
	return API().RemoveAll(path)
}

// CopyFile duplicates a file, creating the destination directory when absent.
func CopyFile(source, destination string) error {
	source = Translate(source)
	destination = Translate(destination)

	if err := API().MkdirAll(filepath.Dir(destination), os.ModePerm); err != nil {
		return err
	}

	in, err := API().Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := API().Create(destination)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// MoveFile relocates a file, falling back to copy-and-delete across devices
// or filesystem backends that reject rename.
func MoveFile(source, destination string) error {
	source = Translate(source)
	destination = Translate(destination)

	if err := API().Rename(source, destination); err == nil {
		return nil
	}

	if err := CopyFile(source, destination); err != nil {
		return err
	}
	return API().Remove(source)
}

// ListDirectory returns the names of files and subdirectories separately.
func ListDirectory(path string) (files, directories []string, err error) {
	entries, err := API().ReadDir(Translate(path))
	if err != nil {
		return nil, nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			directories = append(directories, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}
	return files, directories, nil
}

// ClearDirectory removes all contents of a directory while keeping the
// directory itself in place.
func ClearDirectory(path string) error {
	path = Translate(path)
	files, directories, err := ListDirectory(path)
	if err != nil {
		return err
	}
	for _, name := range files {
		_ = API().Remove(filepath.Join(path, name))
	}
	for _, name := range directories {
		_ = DeleteDirectory(filepath.Join(path, name))
	}
	return nil
}

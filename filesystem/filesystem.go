// Package filesystem routes every disk access through a swappable backend.
//
// All profile, cache, log and temp traffic goes through the afero filesystem
// returned by API, so tests and headless tools can redirect the whole addon
// onto an in-memory tree without touching any caller.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active filesystem backend.
func API() afero.Afero {
	return backend
}

// Set installs a custom backend behind the convenience wrapper.
func Set(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs routes all access to the operating system filesystem.
func SetOsFs() {
	Set(afero.NewOsFs())
}

// SetMemMapFs routes all access to a fresh in-memory tree.
func SetMemMapFs() {
	Set(afero.NewMemMapFs())
}

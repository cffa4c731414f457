// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
package filesystem

import (
	"path/filepath"
	"strings"
	"sync"
)

// SpecialScheme is the prefix of host-virtual paths that must be translated
// to OS paths before any OS-level call.
const SpecialScheme = "special://"

// Remote path schemes the host mounts without local filesystem backing.
var remoteSchemes = []string{"smb://", "nfs://", "http://", "https://", "ftp://", "ftps://", "dav://", "davs://"}

var (
	rootMutex sync.RWMutex
	roots     = map[string]string{}
)

// RegisterRoot maps a virtual root name (eg. "profile", "home", "temp") to an
// OS directory. Later registrations replace earlier ones.
func RegisterRoot(name, path string) {
	rootMutex.Lock()
	defer rootMutex.Unlock()
	roots[strings.ToLower(name)] = path
}

// Roots returns a copy of the registered virtual root table.
func Roots() map[string]string {
	rootMutex.RLock()
	defer rootMutex.RUnlock()
	result := make(map[string]string, len(roots))
	for name, path := range roots {
		result[name] = path
	}
	return result
}

// Translate converts a host-virtual path into an OS path. Paths that do not
// carry the virtual scheme are returned unchanged. An unregistered root
// returns the input untouched so callers degrade instead of failing.
func Translate(path string) string {
	if !strings.HasPrefix(path, SpecialScheme) {
		return path
	}

	rest := strings.TrimPrefix(path, SpecialScheme)
	root, sub, _ := strings.Cut(rest, "/")

	rootMutex.RLock()
	base, ok := roots[strings.ToLower(root)]
	rootMutex.RUnlock()
	if !ok {
		return path
	}

	if sub == "" {
		return base
	}
	return filepath.Join(base, filepath.FromSlash(sub))
}

// IsRemote reports whether the path refers to a network-mounted location
// which must not be touched through OS-level calls.
func IsRemote(path string) bool {
	lower := strings.ToLower(path)
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// ExistsKind classifies what a path points at.
type ExistsKind int

const (
	ExistsNone ExistsKind = iota
	ExistsFile
	ExistsDirectory
	ExistsRemote
)

// Exists reports what, if anything, the path refers to. Remote paths are
// classified by scheme alone since probing them can block indefinitely.
func Exists(path string) ExistsKind {
	if IsRemote(path) {
		return ExistsRemote
	}

	stat, err := API().Stat(Translate(path))
	if err != nil {
		return ExistsNone
	}
	if stat.IsDir() {
		return ExistsDirectory
	}
	return ExistsFile
}

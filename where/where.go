// Package where implements a cross-platform resolver for addon-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/samber/lo"
)

// EnvProfilePath is the environment variable identifier used to override the default profile directory.
const EnvProfilePath = "GAIACORE_PROFILE_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Profile resolves the absolute path to the addon profile directory holding
// settings, databases and backups.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths on Darwin and Windows.
// Direct override: The path resolution can be explicitly specified via the GAIACORE_PROFILE_PATH environment variable.
func Profile() string {
	if custom, ok := os.LookupEnv(EnvProfilePath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Name))
}

// Cache resolves the absolute path to the addon's persistent cache directory.
// Compliance: Adheres to the XDG_CACHE_HOME specification or platform-specific equivalent.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fallback: Revert to a localized cache directory if the system-provided path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Name))
}

// Logs resolves the absolute path to the directory used for diagnostic and audit logs.
func Logs() string {
	return ensureDir(filepath.Join(Profile(), "logs"))
}

// Settings resolves the absolute path to the user settings file.
func Settings() string {
	return filepath.Join(Profile(), "settings.xml")
}

// Descriptors resolves the absolute path to the declared settings descriptor file.
func Descriptors() string {
	return filepath.Join(Profile(), "descriptors.xml")
}

// Database resolves the absolute path to the settings key-value database.
func Database() string {
	return filepath.Join(Profile(), "settings.db")
}

// Backups resolves the absolute path to the rolling settings backup directory.
func Backups() string {
	return ensureDir(filepath.Join(Profile(), "backups"))
}

// Properties resolves the absolute path to the persisted window-property snapshot.
func Properties() string {
	return filepath.Join(Cache(), "properties.json")
}

// Events resolves the absolute path to the persisted observer event log.
func Events() string {
	return filepath.Join(Cache(), "events.json")
}

// Sounds resolves the absolute path to the directory of bundled audio cues.
func Sounds() string {
	return ensureDir(filepath.Join(Profile(), "sounds"))
}

// Temp resolves a unique, volatile filesystem path for transient addon artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Name))
}

// RegisterRoots binds the host-virtual roots to the profile layout. A real
// host bridge may re-register these afterwards with its own mount table.
func RegisterRoots() {
	filesystem.RegisterRoot("profile", Profile())
	filesystem.RegisterRoot("temp", Temp())
	filesystem.RegisterRoot("home", Profile())
	filesystem.RegisterRoot("logpath", Logs())
}

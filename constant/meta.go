// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Name is the canonical application identifier used for filesystem paths, logging and CLI branding.
	Name = "gaiacore"

	// Addon is the host-facing plugin identifier used in invocation URLs and window properties.
	Addon = "plugin.video.gaia"

	// Version is the current application semantic version string.
	Version = "7.2.0"

	// SchemaVersion is the compacted settings schema generation. Backup imports
	// refuse archives written by an older generation.
	SchemaVersion = 600
)

// UserAgent is the default HTTP User-Agent string used for network requests to external services.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

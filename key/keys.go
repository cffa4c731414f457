// Package key defines the canonical set of setting identifiers used for centralized settings management.
//
// Identifiers are dotted paths (category.group.name). A companion identifier
// with a ".label" suffix carries the human-readable form of a structured
// value, and one with a ".value" suffix carries a structured payload kept in
// the key-value database instead of the settings file.
package key

// Suffixes appended to a primary identifier for its companion entries.
const (
	SuffixLabel = ".label"
	SuffixValue = ".value"
)

// Internal State - these keys persist addon bookkeeping invisible to the user.
const (
	InternalVersion    = "internal.version"
	InternalIdentifier = "internal.identifier"
	InternalLaunch     = "internal.launch"
	InternalBackupTime = "internal.backup.time"
	InternalPromotion  = "internal.promotion"
)

// General Behavior - these keys govern global addon behavior.
const (
	GeneralLanguagePrimary   = "general.language.primary"
	GeneralLanguageSecondary = "general.language.secondary"
	GeneralCountry           = "general.country"
)

// Playback - these keys configure player hand-off and timing.
const (
	PlaybackTimeWait    = "playback.time.wait"
	PlaybackBingeMode   = "playback.binge.mode"
	PlaybackBingeSound  = "playback.binge.sound"
	PlaybackHistorySync = "playback.history.sync"
)

// Scraping Concurrency - these keys tune provider scrape parallelism against the hardware rating.
const (
	ScrapeLimitThread = "scrape.limit.thread"
	ScrapeLimitTime   = "scrape.limit.time"
	ScrapeLimitMemory = "scrape.limit.memory"
)

// Observer Automation - these keys hold the user-defined watch observations.
const (
	ObserverEnabled      = "observer.enabled"
	ObserverObservations = "observer.observations"
)

// Settings Store Maintenance - these keys configure backups and cleanup sweeps.
const (
	BackupEnabled   = "backup.enabled"
	BackupCount     = "backup.count"
	BackupAutomatic = "backup.automatic"
)

// Logging Infrastructure - these keys manage the addon's diagnostics policy.
const (
	LogsLevel = "logs.level"
	LogsWrite = "logs.write"
)

// Extension Integrations - these keys track external companion addon configuration.
const (
	ExtensionResolverPrimary = "extension.resolver.primary"
	ExtensionEnginePort      = "extension.engine.port"
)

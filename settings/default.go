package settings

import (
	"github.com/gaiakodi/gaiacore/key"
)

// Field represents a declared setting definition.
type Field struct {
	ID          string
	Value       any
	Description string
}

// Default holds the map of all declared settings.
var Default = make(map[string]Field)

func init() {
	// register validates and adds a new declared setting to the registry.
	register := func(id string, value any, description string) {
		if _, exists := Default[id]; exists {
			panic("duplicate setting id: " + id)
		}
		Default[id] = Field{ID: id, Value: value, Description: description}
	}

	register(key.InternalVersion, "", "Last addon version that completed a launch.\nUsed to detect upgrades")
	register(key.InternalIdentifier, "", "Random device identity used when the OS exposes no machine UUID or MAC")
	register(key.InternalLaunch, 0, "Timestamp of the last completed launch sequence")
	register(key.InternalBackupTime, 0, "Timestamp of the most recent automatic settings backup")

	register(key.GeneralLanguagePrimary, "en", "Primary metadata and subtitle language")
	register(key.GeneralLanguageSecondary, "", "Secondary metadata and subtitle language")
	register(key.GeneralCountry, "us", "Country used for certificates and regional catalogs")

	register(key.PlaybackTimeWait, 60, "Seconds to wait for a stream before giving up")
	register(key.PlaybackBingeMode, true, "Automatically play the next episode when the current one finishes")
	register(key.PlaybackBingeSound, true, "Play an audio cue when binge playback advances")
	register(key.PlaybackHistorySync, true, "Synchronize playback history before power actions")

	register(key.ScrapeLimitThread, 0, "Upper bound on concurrent scrape threads.\n0 derives the bound from the hardware rating")
	register(key.ScrapeLimitTime, 45, "Seconds before a scrape round is cut off")
	register(key.ScrapeLimitMemory, 0, "Memory budget for scraping in MB.\n0 derives the budget from free memory")

	register(key.ObserverEnabled, false, "Evaluate watch observations after playback events")
	register(key.ObserverObservations, "[]", "User-defined observations as a JSON array")

	register(key.BackupEnabled, true, "Keep rolling settings backups")
	register(key.BackupCount, 5, "Number of backup snapshots retained")
	register(key.BackupAutomatic, true, "Write a backup at the end of every launch")

	register(key.LogsLevel, "standard", "Verbosity policy.\nAvailable options are: disabled, essential, standard, extended")
	register(key.LogsWrite, false, "Write logs to the profile directory instead of standard error")

	register(key.ExtensionResolverPrimary, "", "Identifier of the preferred external resolver addon")
	register(key.ExtensionEnginePort, 64321, "Port of the local torrent engine, when installed")
}

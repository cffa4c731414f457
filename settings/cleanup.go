package settings

import (
	"strings"

	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/log"
)

// Cleanup sweeps the user tier, removing identifiers no longer declared in
// the default registry or a custom descriptor. Upgrades rename and retire
// settings; without the sweep the user file accretes dead entries forever.
func Cleanup() (removed int, err error) {
	ensure()

	mutex.RLock()
	var stale []string
	for id := range memory {
		primary := strings.TrimSuffix(strings.TrimSuffix(id, key.SuffixLabel), key.SuffixValue)
		if _, declared := Default[primary]; declared {
			continue
		}
		if descriptors[primary] != nil {
			continue
		}
		stale = append(stale, id)
	}
	mutex.RUnlock()

	for _, id := range stale {
		if err := Remove(id); err != nil {
			return removed, err
		}
		removed++
	}

	if removed > 0 {
		log.Infof("settings: cleanup removed %d stale entries", removed)
	}
	return removed, nil
}

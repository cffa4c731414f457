package launch

import (
	"os"
	"time"

	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/observer"
	"github.com/gaiakodi/gaiacore/settings"
)

// ObserveAbort starts the shutdown observer: a goroutine parked on the
// host's abort signal that flushes persistent state and exits the process
// as soon as the host starts closing, shortening host shutdown.
func ObserveAbort() {
	go func() {
		for !host.Current().WaitForAbort(24 * time.Hour) {
		}

		log.Info("launch: host abort signalled, flushing state")
		if err := observer.Persist(); err != nil {
			log.Debugf("launch: persist events: %v", err)
		}
		if err := host.PersistProperties(); err != nil {
			log.Debugf("launch: persist properties: %v", err)
		}
		settings.CloseDatabase()
		os.Exit(0)
	}()
}

package launch

import (
	"fmt"
	"math/rand/v2"
	"net"
	"path/filepath"
	"time"

	"github.com/gaiakodi/gaiacore/clock"
	"github.com/gaiakodi/gaiacore/command"
	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/media"
	"github.com/gaiakodi/gaiacore/settings"
	"github.com/gaiakodi/gaiacore/system"
	"github.com/gaiakodi/gaiacore/where"
)

// patchAdvanced writes the playlist and cache tuning stanzas into the
// host's advanced settings, sizing the read-ahead buffer from memory.
func patchAdvanced(buffer int64) error {
	path := filepath.Join(where.Profile(), "advancedsettings.xml")
	return system.PatchAdvanced(path, []system.AdvancedStanza{
		{Path: "playlistretries", Value: "10"},
		{Path: "playlisttimeout", Value: "30"},
		{Path: "network/curlclienttimeout", Value: "45"},
		{Path: "cache/buffermode", Value: "1"},
		{Path: "cache/memorysize", Value: convert.String(buffer)},
		{Path: "cache/readfactor", Value: "8"},
	})
}

// seedMenu pre-encodes the root menu envelopes so the first directory
// listing after launch skips the encoding cost.
var menuRoots = []struct {
	name  string
	kinds media.Kind
}{
	{"movies", media.Film},
	{"shows", media.Show},
	{"docus", media.Join(media.Film, media.Docu)},
	{"shorts", media.Join(media.Film, media.Short)},
}

func seedMenu() {
	for _, root := range menuRoots {
		envelope := command.Encode("menu", map[string]any{
			"media": string(root.kinds),
		}, command.OriginGaia)
		host.SetProperty("gaia.menu."+root.name, envelope)
	}
}

// Announcer, when attached, runs after a foreground launch completes so the
// window layer can fetch and show pending service announcements.
var Announcer func()

// Promoter, when attached, runs on the occasional foreground launch where
// the support prompt is due.
var Promoter func()

// The support prompt repeats at most once per window, and only on a random
// fraction of eligible launches so it does not feel scheduled.
const (
	promoteWindow = int64(30 * 24 * 60 * 60)
	promoteOdds   = 5
)

// promoteDue reports whether this launch should show the support prompt and
// advances the stamp when it does. The first launch only records the stamp.
func promoteDue() bool {
	now := clock.Timestamp()
	last := settings.GetInteger64(key.InternalPromotion)
	if last == 0 {
		if err := settings.Set(key.InternalPromotion, now); err != nil {
			log.Debugf("launch: promotion stamp: %v", err)
		}
		return false
	}
	if now-last < promoteWindow {
		return false
	}
	if rand.IntN(promoteOdds) != 0 {
		return false
	}
	if err := settings.Set(key.InternalPromotion, now); err != nil {
		log.Debugf("launch: promotion stamp: %v", err)
	}
	return true
}

// probeEngine attempts one bounded connection to the local torrent engine
// and records whether it answered.
func probeEngine(port int) {
	address := fmt.Sprintf("127.0.0.1:%d", port)
	conn, err := net.DialTimeout("tcp", address, 2*time.Second)
	if err != nil {
		log.Debugf("launch: engine not reachable on %s: %v", address, err)
		host.SetProperty("gaia.engine.alive", "false")
		return
	}
	_ = conn.Close()
	host.SetProperty("gaia.engine.alive", "true")
}

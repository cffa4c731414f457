// Package sound plays short bundled audio cues through the host player.
package sound

import (
	"fmt"
	"path/filepath"

	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/settings"
	"github.com/gaiakodi/gaiacore/where"
)

// Cue names a bundled audio file.
type Cue string

const (
	CueBinge  Cue = "binge.mp3"
	CueFinish Cue = "finish.mp3"
	CueNotify Cue = "notify.mp3"
)

// Play fires a cue through the host's media player. Cues are opt-in; the
// call is a no-op when the user switched them off or the file is missing.
func Play(cue Cue) error {
	if !settings.GetBoolean(key.PlaybackBingeSound) {
		return nil
	}

	path := filepath.Join(where.Sounds(), string(cue))
	if exists, _ := filesystem.API().Exists(path); !exists {
		return fmt.Errorf("sound cue %s not bundled", cue)
	}
	return host.Current().ExecuteBuiltin(fmt.Sprintf("PlayMedia(%s)", path))
}

package sound

import (
	"path/filepath"
	"testing"

	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/settings"
	"github.com/gaiakodi/gaiacore/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPlay(t *testing.T) {
	Convey("Audio cues", t, func() {
		So(settings.Setup(), ShouldBeNil)

		bridge := host.NewLocalBridge()
		host.SetBridge(bridge)
		defer host.SetBridge(nil)

		Convey("Switched off cues are a silent no-op", func() {
			So(settings.SetBoolean(key.PlaybackBingeSound, false), ShouldBeNil)
			So(Play(CueBinge), ShouldBeNil)
			So(bridge.Builtins(), ShouldBeEmpty)
		})

		Convey("A missing cue file errors", func() {
			So(settings.SetBoolean(key.PlaybackBingeSound, true), ShouldBeNil)
			So(Play(CueFinish), ShouldNotBeNil)
		})

		Convey("A bundled cue plays through the host", func() {
			So(settings.SetBoolean(key.PlaybackBingeSound, true), ShouldBeNil)
			path := filepath.Join(where.Sounds(), string(CueNotify))
			So(filesystem.API().WriteFile(path, []byte("mp3"), 0o644), ShouldBeNil)

			So(Play(CueNotify), ShouldBeNil)
			builtins := bridge.Builtins()
			So(len(builtins), ShouldEqual, 1)
			So(builtins[0], ShouldContainSubstring, "PlayMedia(")
			So(builtins[0], ShouldContainSubstring, string(CueNotify))
		})
	})
}

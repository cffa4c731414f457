package launch

import (
	"net"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gaiakodi/gaiacore/clock"
	"github.com/gaiakodi/gaiacore/command"
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

func TestStateMachine(t *testing.T) {
	Convey("The launch state machine", t, func() {
		host.ClearProperties()

		Convey("Starts uninitialized", func() {
			So(CurrentState(), ShouldEqual, StateUninitialized)
			So(Progress(), ShouldEqual, 0)
		})

		Convey("State round-trips through the property", func() {
			setState(StateHiddenComplete)
			So(CurrentState(), ShouldEqual, StateHiddenComplete)
			setState(StateForegroundComplete)
			So(CurrentState(), ShouldEqual, StateForegroundComplete)
		})
	})
}

func TestTaskWeights(t *testing.T) {
	Convey("Task shares cover the whole progress bar", t, func() {
		total := 0
		for _, task := range tasks {
			So(task.percent, ShouldBeGreaterThan, 0)
			total += task.percent
		}
		So(total, ShouldEqual, 100)
	})
}

func TestSeedMenu(t *testing.T) {
	Convey("Menu seeding", t, func() {
		host.ClearProperties()
		seedMenu()

		for _, root := range menuRoots {
			envelope := host.Property("gaia.menu." + root.name)
			So(envelope, ShouldNotBeEmpty)

			decoded, err := command.Decode(envelope)
			So(err, ShouldBeNil)
			So(decoded[command.ParameterAction], ShouldEqual, "menu")
			So(decoded["media"], ShouldEqual, string(root.kinds))
		}
	})
}

func TestPatchAdvanced(t *testing.T) {
	Convey("Advanced-settings tuning", t, func() {
		So(patchAdvanced(128<<20), ShouldBeNil)

		path := filepath.Join(where.Profile(), "advancedsettings.xml")
		data, err := filesystem.API().ReadFile(path)
		So(err, ShouldBeNil)

		content := string(data)
		So(content, ShouldContainSubstring, "<playlistretries>10</playlistretries>")
		So(content, ShouldContainSubstring,
			"<cache><memorysize>"+strconv.FormatInt(128<<20, 10)+"</memorysize></cache>")
		So(content, ShouldContainSubstring, "<cache><readfactor>8</readfactor></cache>")
	})
}

func TestProbeEngine(t *testing.T) {
	Convey("Engine liveness probe", t, func() {
		host.ClearProperties()

		Convey("A listening engine reports alive", func() {
			listener, err := net.Listen("tcp", "127.0.0.1:0")
			So(err, ShouldBeNil)
			defer listener.Close()

			port := listener.Addr().(*net.TCPAddr).Port
			probeEngine(port)
			So(host.Property("gaia.engine.alive"), ShouldEqual, "true")
		})

		Convey("A dead port reports not alive", func() {
			listener, err := net.Listen("tcp", "127.0.0.1:0")
			So(err, ShouldBeNil)
			port := listener.Addr().(*net.TCPAddr).Port
			So(listener.Close(), ShouldBeNil)

			probeEngine(port)
			So(host.Property("gaia.engine.alive"), ShouldEqual, "false")
		})
	})
}

func TestFinishHooks(t *testing.T) {
	Convey("Completion hooks", t, func() {
		host.ClearProperties()
		So(settings.Setup(), ShouldBeNil)

		announced := 0
		Announcer = func() { announced++ }
		defer func() { Announcer = nil }()

		Convey("A foreground finish fetches announcements", func() {
			finish(&context{mode: ModeForeground})
			So(announced, ShouldEqual, 1)
			So(CurrentState(), ShouldEqual, StateForegroundComplete)
		})

		Convey("A hidden finish skips the fetch", func() {
			finish(&context{mode: ModeHidden})
			So(announced, ShouldEqual, 0)
			So(CurrentState(), ShouldEqual, StateHiddenComplete)
		})
	})
}

func TestPromotionDraw(t *testing.T) {
	Convey("Support prompt rate limiting", t, func() {
		So(settings.Setup(), ShouldBeNil)
		So(settings.Remove(key.InternalPromotion), ShouldBeNil)

		Convey("The first launch only records the stamp", func() {
			So(promoteDue(), ShouldBeFalse)
			So(settings.GetInteger64(key.InternalPromotion), ShouldBeGreaterThan, 0)
		})

		Convey("A fresh stamp suppresses the prompt", func() {
			So(settings.Set(key.InternalPromotion, clock.Timestamp()), ShouldBeNil)
			So(promoteDue(), ShouldBeFalse)
		})

		Convey("An aged stamp eventually wins a draw", func() {
			due := false
			for i := 0; i < 200 && !due; i++ {
				So(settings.Set(key.InternalPromotion, clock.Timestamp()-2*promoteWindow), ShouldBeNil)
				due = promoteDue()
			}
			So(due, ShouldBeTrue)
		})
	})
}

func TestVersionBump(t *testing.T) {
	Convey("Version bump effects", t, func() {
		host.ClearProperties()
		So(settings.Setup(), ShouldBeNil)
		So(settings.Remove(key.InternalVersion), ShouldBeNil)

		Convey("A bump drops cross-session properties", func() {
			host.SetProperty("gaia.stale", "leftover")

			c := &context{}
			So(taskVersion(c), ShouldBeNil)
			So(c.versionBumped, ShouldBeTrue)
			So(host.Property("gaia.stale"), ShouldEqual, "")
		})

		Convey("Stale window files go only after a bump", func() {
			stale := filepath.Join(where.Temp(), "window-home.xml")
			keep := filepath.Join(where.Temp(), "notes.txt")
			So(filesystem.API().WriteFile(stale, []byte("<window/>"), 0o644), ShouldBeNil)
			So(filesystem.API().WriteFile(keep, []byte("keep"), 0o644), ShouldBeNil)

			So(taskWindows(&context{}), ShouldBeNil)
			So(filesystem.Exists(stale), ShouldEqual, filesystem.ExistsFile)

			So(taskWindows(&context{versionBumped: true}), ShouldBeNil)
			So(filesystem.Exists(stale), ShouldEqual, filesystem.ExistsNone)
			So(filesystem.Exists(keep), ShouldEqual, filesystem.ExistsFile)
		})
	})
}

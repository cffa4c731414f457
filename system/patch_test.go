package system

import (
	"strings"
	"testing"

	"github.com/gaiakodi/gaiacore/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func readAll(path string) string {
	data, err := filesystem.API().ReadFile(path)
	So(err, ShouldBeNil)
	return string(data)
}

func TestPatchAdvanced(t *testing.T) {
	Convey("Advanced-settings patching", t, func() {
		path := "/profile/advancedsettings.xml"
		stanzas := []AdvancedStanza{
			{Path: "playlistretries", Value: "10"},
			{Path: "network/curlclienttimeout", Value: "45"},
			{Path: "cache/memorysize", Value: "104857600"},
		}

		Convey("Creates the document when absent", func() {
			So(filesystem.DeleteFile(path), ShouldBeNil)
			So(PatchAdvanced(path, stanzas), ShouldBeNil)

			content := readAll(path)
			So(content, ShouldContainSubstring, "<advancedsettings>")
			So(content, ShouldContainSubstring, "<playlistretries>10</playlistretries>")
			So(content, ShouldContainSubstring,
				"<network><curlclienttimeout>45</curlclienttimeout></network>")
			So(content, ShouldContainSubstring, advancedMarker)
		})

		Convey("Preserves user-authored content", func() {
			existing := "<advancedsettings>\n<loglevel>1</loglevel>\n</advancedsettings>\n"
			So(filesystem.API().WriteFile(path, []byte(existing), 0o644), ShouldBeNil)

			So(PatchAdvanced(path, stanzas), ShouldBeNil)
			content := readAll(path)
			So(content, ShouldContainSubstring, "<loglevel>1</loglevel>")
			So(content, ShouldContainSubstring, "<playlistretries>10</playlistretries>")

			Convey("Patching twice does not duplicate stanzas", func() {
				So(PatchAdvanced(path, stanzas), ShouldBeNil)
				repatched := readAll(path)
				So(strings.Count(repatched, "<playlistretries>"), ShouldEqual, 1)
				So(strings.Count(repatched, "<loglevel>"), ShouldEqual, 1)
			})

			Convey("Unpatching restores only user content", func() {
				So(UnpatchAdvanced(path), ShouldBeNil)
				restored := readAll(path)
				So(restored, ShouldContainSubstring, "<loglevel>1</loglevel>")
				So(restored, ShouldNotContainSubstring, advancedMarker)
				So(restored, ShouldNotContainSubstring, "playlistretries")
			})
		})

		Convey("Unpatching a missing document is a no-op", func() {
			So(UnpatchAdvanced("/profile/never-written.xml"), ShouldBeNil)
		})
	})
}

func TestPatchAutoexec(t *testing.T) {
	Convey("Autoexec patching", t, func() {
		path := "/profile/autoexec.py"
		envelope := "plugin://plugin.video.gaia/?data=abc"

		Convey("Creates the file with a fenced block", func() {
			So(filesystem.DeleteFile(path), ShouldBeNil)
			So(PatchAutoexec(path, envelope), ShouldBeNil)

			content := readAll(path)
			So(content, ShouldContainSubstring, autoexecOpen)
			So(content, ShouldContainSubstring, autoexecClose)
			So(content, ShouldContainSubstring, "RunPlugin("+envelope+")")

			Convey("Removal deletes a file the addon wholly owns", func() {
				So(UnpatchAutoexec(path), ShouldBeNil)
				So(filesystem.Exists(path), ShouldEqual, filesystem.ExistsNone)
			})
		})

		Convey("Appends after user content and replaces its own block", func() {
			user := "import xbmc\nxbmc.executebuiltin('Notification(hi,there)')"
			So(filesystem.API().WriteFile(path, []byte(user), 0o644), ShouldBeNil)

			So(PatchAutoexec(path, envelope), ShouldBeNil)
			So(PatchAutoexec(path, envelope), ShouldBeNil)

			content := readAll(path)
			So(strings.Count(content, autoexecOpen), ShouldEqual, 1)
			So(content, ShouldContainSubstring, "Notification(hi,there)")

			Convey("Removal keeps the user's lines", func() {
				So(UnpatchAutoexec(path), ShouldBeNil)
				remaining := readAll(path)
				So(remaining, ShouldContainSubstring, "Notification(hi,there)")
				So(remaining, ShouldNotContainSubstring, autoexecOpen)
			})
		})

		Convey("Unpatching a missing file is a no-op", func() {
			So(UnpatchAutoexec("/profile/never-written.py"), ShouldBeNil)
		})
	})
}

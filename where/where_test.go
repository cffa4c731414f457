package where

import (
	"testing"

	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Profile()", func() {
			path := Profile()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Backups()", func() {
			path := Backups()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("File paths live under the profile", func() {
			So(Settings(), ShouldStartWith, Profile())
			So(Descriptors(), ShouldStartWith, Profile())
			So(Database(), ShouldStartWith, Profile())
		})

		Convey("Snapshot paths live under the cache", func() {
			So(Properties(), ShouldStartWith, Cache())
			So(Events(), ShouldStartWith, Cache())
		})
	})
}

func TestRegisterRoots(t *testing.T) {
	Convey("RegisterRoots binds the host-virtual roots", t, func() {
		RegisterRoots()
		roots := filesystem.Roots()
		So(roots["profile"], ShouldEqual, Profile())
		So(roots["temp"], ShouldEqual, Temp())
		So(roots["home"], ShouldEqual, Profile())
		So(roots["logpath"], ShouldEqual, Logs())
	})
}

package system

import (
	"testing"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/expression"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/platform"
	"github.com/gaiakodi/gaiacore/settings"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResetAll(t *testing.T) {
	Convey("Centralized cache reset", t, func() {
		host.ClearProperties()
		So(settings.Setup(), ShouldBeNil)

		compiled := expression.Compile(`session-(\d+)`, expression.FlagNone)
		So(compiled, ShouldNotBeNil)
		platform.Detect()
		So(host.Property("gaia.platform.profile."+constant.Version), ShouldNotBeEmpty)

		ResetAll(false)

		Convey("The platform profile cache is gone", func() {
			So(host.Property("gaia.platform.profile."+constant.Version), ShouldBeEmpty)
		})

		Convey("The settings property cache is gone", func() {
			So(host.Property("gaia.settings.cache"), ShouldBeEmpty)
		})

		Convey("The regex memo recompiles from scratch", func() {
			So(expression.Compile(`session-(\d+)`, expression.FlagNone), ShouldNotEqual, compiled)
		})
	})
}

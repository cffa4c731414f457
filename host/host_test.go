package host

import (
	"testing"
	"time"

	"github.com/gaiakodi/gaiacore/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestProperties(t *testing.T) {
	Convey("Window properties", t, func() {
		ClearProperties()

		Convey("Read, write and clear", func() {
			So(Property("gaia.test"), ShouldEqual, "")
			SetProperty("gaia.test", "value")
			So(Property("gaia.test"), ShouldEqual, "value")
			ClearProperty("gaia.test")
			So(Property("gaia.test"), ShouldEqual, "")
		})

		Convey("ClearProperties wipes the registry", func() {
			SetProperty("gaia.one", "1")
			SetProperty("gaia.two", "2")
			ClearProperties()
			So(Property("gaia.one"), ShouldEqual, "")
			So(Property("gaia.two"), ShouldEqual, "")
		})

		Convey("Persist and restore across invocations", func() {
			SetProperty("gaia.keep", "persisted")
			So(PersistProperties(), ShouldBeNil)

			ClearProperties()
			So(RestoreProperties(), ShouldBeNil)
			So(Property("gaia.keep"), ShouldEqual, "persisted")

			Convey("Values set this invocation win over the snapshot", func() {
				ClearProperties()
				SetProperty("gaia.keep", "fresh")
				So(RestoreProperties(), ShouldBeNil)
				So(Property("gaia.keep"), ShouldEqual, "fresh")
			})
		})
	})
}

func TestBridgeRegistry(t *testing.T) {
	Convey("Bridge substitution", t, func() {
		original := Current()
		defer SetBridge(original)

		local := NewLocalBridge()
		SetBridge(local)
		So(Current(), ShouldEqual, local)

		Convey("nil restores a local bridge", func() {
			SetBridge(nil)
			So(Current(), ShouldNotBeNil)
			So(Current(), ShouldNotEqual, local)
		})
	})
}

func TestLocalBridge(t *testing.T) {
	Convey("The local bridge", t, func() {
		bridge := NewLocalBridge()

		Convey("Records builtins in order", func() {
			So(bridge.ExecuteBuiltin("ActivateWindow(home)"), ShouldBeNil)
			So(bridge.ExecuteBuiltin("Dialog.Close(all,true)"), ShouldBeNil)
			So(bridge.Builtins(), ShouldResemble, []string{
				"ActivateWindow(home)",
				"Dialog.Close(all,true)",
			})
		})

		Convey("Serves registered info labels", func() {
			bridge.SetInfoLabel("System.BuildVersion", "21.0")
			value, err := bridge.InfoLabel("System.BuildVersion")
			So(err, ShouldBeNil)
			So(value, ShouldEqual, "21.0")

			value, err = bridge.InfoLabel("System.Unknown")
			So(err, ShouldBeNil)
			So(value, ShouldEqual, "")
		})

		Convey("Dispatches JSON-RPC to handlers", func() {
			bridge.HandleRPC("Player.GetProperties", func(params map[string]any) (any, error) {
				return map[string]any{"position": 2.0}, nil
			})

			result, err := bridge.JSONRPC("Player.GetProperties", nil)
			So(err, ShouldBeNil)
			So(result.(map[string]any)["position"], ShouldEqual, 2.0)

			_, err = bridge.JSONRPC("Player.Unhandled", nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Abort is observable and idempotent", func() {
			So(bridge.Aborted(), ShouldBeFalse)
			So(bridge.WaitForAbort(time.Millisecond), ShouldBeFalse)

			bridge.Abort()
			bridge.Abort()
			So(bridge.Aborted(), ShouldBeTrue)
			So(bridge.WaitForAbort(time.Hour), ShouldBeTrue)

			Convey("Sleep returns immediately once aborted", func() {
				started := time.Now()
				bridge.Sleep(time.Hour)
				So(time.Since(started), ShouldBeLessThan, time.Second)
			})
		})
	})
}

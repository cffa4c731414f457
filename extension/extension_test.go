package extension

import (
	"testing"

	"github.com/gaiakodi/gaiacore/host"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	// Keep credential tests away from the real system keyring
	keyring.MockInit()
}

func TestRegistry(t *testing.T) {
	Convey("The companion registry", t, func() {
		Convey("All returns a copy", func() {
			all := All()
			So(len(all), ShouldEqual, len(registry))
			all[0].ID = "mutated"
			So(registry[0].ID, ShouldNotEqual, "mutated")
		})

		Convey("Required filters by type", func() {
			required := Required()
			So(len(required), ShouldBeGreaterThan, 0)
			for _, e := range required {
				So(e.Type, ShouldEqual, TypeRequired)
			}
		})

		Convey("Lookup finds by addon id", func() {
			e, found := Lookup("script.module.resolveurl")
			So(found, ShouldBeTrue)
			So(e.Name, ShouldEqual, "ResolveURL")

			_, found = Lookup("plugin.video.nonexistent")
			So(found, ShouldBeFalse)
		})
	})
}

func TestEnablement(t *testing.T) {
	Convey("Addon enablement", t, func() {
		bridge := host.NewLocalBridge()
		host.SetBridge(bridge)
		defer host.SetBridge(nil)

		enabled := map[string]bool{"script.module.resolveurl": true}
		bridge.HandleRPC("Addons.GetAddonDetails", func(params map[string]any) (any, error) {
			id := params["addonid"].(string)
			return map[string]any{
				"addon": map[string]any{"addonid": id, "enabled": enabled[id]},
			}, nil
		})
		bridge.HandleRPC("Addons.SetAddonEnabled", func(params map[string]any) (any, error) {
			enabled[params["addonid"].(string)] = params["enabled"].(bool)
			return "OK", nil
		})

		Convey("Enabled reflects the host state", func() {
			So(Enabled("script.module.resolveurl"), ShouldBeTrue)
			So(Enabled("script.elementum"), ShouldBeFalse)
		})

		Convey("Enable and Disable flip the host state", func() {
			So(Enable("script.elementum"), ShouldBeNil)
			So(Enabled("script.elementum"), ShouldBeTrue)

			So(Disable("script.elementum"), ShouldBeNil)
			So(Enabled("script.elementum"), ShouldBeFalse)
		})

		Convey("A bridge without the methods reports disabled", func() {
			host.SetBridge(host.NewLocalBridge())
			So(Enabled("script.module.resolveurl"), ShouldBeFalse)
			So(Enable("script.elementum"), ShouldNotBeNil)
		})
	})
}

func TestAccounts(t *testing.T) {
	Convey("Service accounts", t, func() {
		So(DeleteAccount(ServiceOrion), ShouldBeNil)

		Convey("Absent credentials read empty", func() {
			So(Account(ServiceOrion), ShouldEqual, "")
			So(Authenticated(ServiceOrion), ShouldBeFalse)
		})

		Convey("Stored credentials round-trip", func() {
			So(SetAccount(ServiceOrion, "api-key-123"), ShouldBeNil)
			So(Account(ServiceOrion), ShouldEqual, "api-key-123")
			So(Authenticated(ServiceOrion), ShouldBeTrue)

			So(DeleteAccount(ServiceOrion), ShouldBeNil)
			So(Authenticated(ServiceOrion), ShouldBeFalse)
		})

		Convey("Deleting twice is harmless", func() {
			So(DeleteAccount(ServicePremiumize), ShouldBeNil)
			So(DeleteAccount(ServicePremiumize), ShouldBeNil)
		})
	})
}

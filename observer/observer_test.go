package observer

import (
	"fmt"
	"testing"

	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/settings"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestRing(t *testing.T) {
	Convey("The event ring", t, func() {
		Clear()

		Convey("Starts empty", func() {
			So(Events(), ShouldBeNil)
		})

		Convey("Records in order with timestamps filled in", func() {
			Record(Event{Kind: EventPlay, Show: "a", Season: 1, Episode: 1})
			Record(Event{Kind: EventStop, Show: "a", Season: 1, Episode: 1, Duration: 1200})

			events := Events()
			So(len(events), ShouldEqual, 2)
			So(events[0].Kind, ShouldEqual, EventPlay)
			So(events[0].Time, ShouldBeGreaterThan, 0)
			So(events[1].Duration, ShouldEqual, 1200)
		})

		Convey("Trims to the bound", func() {
			for i := 0; i < eventLimit+25; i++ {
				Record(Event{Kind: EventStop, Show: fmt.Sprintf("show-%d", i)})
			}
			events := Events()
			So(len(events), ShouldEqual, eventLimit)
			So(events[len(events)-1].Show, ShouldEqual, fmt.Sprintf("show-%d", eventLimit+24))
		})

		Convey("Clear drops everything", func() {
			Record(Event{Kind: EventPlay})
			Clear()
			So(Events(), ShouldBeNil)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Loading stored observations", t, func() {
		So(settings.Setup(), ShouldBeNil)

		Convey("Disabled observer yields nothing", func() {
			So(settings.SetBoolean(key.ObserverEnabled, false), ShouldBeNil)
			So(Load(), ShouldBeNil)
		})

		Convey("Enabled observer decodes the stored rules", func() {
			So(settings.SetBoolean(key.ObserverEnabled, true), ShouldBeNil)
			So(settings.SetString(key.ObserverObservations,
				`[{"watchedCount":3,"action":{"notify":true,"sound":false}}]`), ShouldBeNil)

			observations := Load()
			So(len(observations), ShouldEqual, 1)
			So(observations[0].WatchedCount.MustGet(), ShouldEqual, 3)
			So(observations[0].WatchedDuration.IsAbsent(), ShouldBeTrue)
			So(observations[0].Action.Notify, ShouldBeTrue)
		})

		Convey("Unreadable rules yield nothing", func() {
			So(settings.SetBoolean(key.ObserverEnabled, true), ShouldBeNil)
			So(settings.SetString(key.ObserverObservations, "{broken"), ShouldBeNil)
			So(Load(), ShouldBeNil)
		})
	})
}

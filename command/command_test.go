package command

import (
	"strings"
	"testing"

	"github.com/gaiakodi/gaiacore/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	Convey("Encode and Decode", t, func() {
		parameters := map[string]any{
			"media":  "show-episode",
			"season": float64(2),
			"flag":   true,
			"hidden": false,
			"nested": map[string]any{"id": "tt123", "watched": true},
			"list":   []any{"a", true, float64(3)},
		}

		envelope := Encode("play", parameters, OriginGaia)

		Convey("The envelope is a plugin URL for the addon", func() {
			So(envelope, ShouldStartWith, "plugin://"+constant.Addon+"/?data=")
		})

		Convey("Decoding restores every parameter", func() {
			decoded, err := Decode(envelope)
			So(err, ShouldBeNil)

			So(Action(decoded), ShouldEqual, "play")
			So(OriginOf(decoded), ShouldEqual, OriginGaia)
			So(decoded["media"], ShouldEqual, "show-episode")
			So(decoded["season"], ShouldEqual, float64(2))

			Convey("Booleans survive as booleans", func() {
				So(decoded["flag"], ShouldBeTrue)
				So(decoded["hidden"], ShouldBeFalse)
			})

			Convey("Structures survive as structures", func() {
				So(decoded["nested"], ShouldResemble, map[string]any{"id": "tt123", "watched": true})
				So(decoded["list"], ShouldResemble, []any{"a", true, float64(3)})
			})
		})
	})
}

func TestEnvelopeExtras(t *testing.T) {
	Convey("Extra payloads", t, func() {
		extra := EncodePayload(map[string]any{"resume": true, "offset": float64(42)})
		envelope := Encode("play", map[string]any{"media": "film"}, OriginWidget, extra)

		So(strings.Count(envelope, "data="), ShouldEqual, 2)

		decoded, err := Decode(envelope)
		So(err, ShouldBeNil)

		Convey("Segments merge with later payloads winning", func() {
			So(decoded["media"], ShouldEqual, "film")
			So(decoded["resume"], ShouldBeTrue)
			So(decoded["offset"], ShouldEqual, float64(42))
		})
	})
}

func TestOriginDefaults(t *testing.T) {
	Convey("Origin handling", t, func() {
		Convey("Empty origin encodes as first-party", func() {
			decoded, err := Decode(Encode("menu", nil, ""))
			So(err, ShouldBeNil)
			So(OriginOf(decoded), ShouldEqual, OriginGaia)
		})

		Convey("Missing origin reads as widget", func() {
			So(OriginOf(map[string]any{}), ShouldEqual, OriginWidget)
		})
	})
}

func TestDecodeFailures(t *testing.T) {
	Convey("Decode failure modes", t, func() {
		Convey("No data segment", func() {
			_, err := Decode("plugin://" + constant.Addon + "/?other=1")
			So(err, ShouldNotBeNil)
		})

		Convey("Undecodable segment", func() {
			_, err := Decode("plugin://" + constant.Addon + "/?data=%%%")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNavigation(t *testing.T) {
	Convey("Navigation breadcrumb", t, func() {
		parameters := map[string]any{}

		parameters = WithNavigation(parameters, "Movies")
		parameters = WithNavigation(parameters, "Discover")
		parameters = WithNavigation(parameters, "Years")

		So(Navigation(parameters), ShouldResemble, []string{"Movies", "Discover", "Years"})
		So(NavigationLabel(parameters), ShouldEqual, "Movies › Discover › Years")

		Convey("The breadcrumb survives the envelope", func() {
			decoded, err := Decode(Encode("menu", parameters, OriginGaia))
			So(err, ShouldBeNil)
			So(NavigationLabel(decoded), ShouldEqual, "Movies › Discover › Years")
		})
	})
}

package convert

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCoercion(t *testing.T) {
	Convey("Scalar coercion never errors", t, func() {
		Convey("Boolean", func() {
			So(Boolean("true"), ShouldBeTrue)
			So(Boolean(1), ShouldBeTrue)
			So(Boolean("false"), ShouldBeFalse)
			So(Boolean("garbage"), ShouldBeFalse)
			So(Boolean(nil), ShouldBeFalse)
		})

		Convey("Integer", func() {
			So(Integer("42"), ShouldEqual, 42)
			So(Integer(3.0), ShouldEqual, 3)
			So(Integer("garbage"), ShouldEqual, 0)
		})

		Convey("Float", func() {
			So(Float("2.5"), ShouldEqual, 2.5)
			So(Float(7), ShouldEqual, 7.0)
			So(Float(nil), ShouldEqual, 0.0)
		})

		Convey("String", func() {
			So(String(42), ShouldEqual, "42")
			So(String(true), ShouldEqual, "true")
			So(String(nil), ShouldEqual, "")
		})
	})
}

func TestJSON(t *testing.T) {
	Convey("JSON round trips", t, func() {
		encoded := JSONEncode(map[string]any{"name": "gaia", "count": 3})
		So(encoded, ShouldNotBeEmpty)

		decoded := JSONDecodeObject(encoded)
		So(decoded, ShouldNotBeNil)
		So(decoded["name"], ShouldEqual, "gaia")
		So(decoded["count"], ShouldEqual, 3.0)

		Convey("Failures degrade to neutral values", func() {
			So(JSONEncode(make(chan int)), ShouldEqual, "")
			So(JSONDecode("{broken"), ShouldBeNil)
			So(JSONDecodeObject(`[1,2,3]`), ShouldBeNil)
		})
	})
}

func TestBase64(t *testing.T) {
	Convey("URL-safe base64", t, func() {
		payload := []byte(`{"action":"play","id":"tt0111161"}`)
		encoded := Base64Encode(payload)
		So(encoded, ShouldNotContainSubstring, "=")
		So(encoded, ShouldNotContainSubstring, "+")
		So(encoded, ShouldNotContainSubstring, "/")
		So(Base64Decode(encoded), ShouldResemble, payload)

		Convey("Padded and standard-alphabet variants still decode", func() {
			So(Base64Decode("aGVsbG8="), ShouldResemble, []byte("hello"))
			So(string(Base64Decode("w7/Dvw==")), ShouldEqual, "ÿÿ")
		})

		Convey("Garbage yields nil", func() {
			So(Base64Decode("%%%"), ShouldBeNil)
		})
	})
}

func TestURL(t *testing.T) {
	Convey("URL component escaping", t, func() {
		So(URLEncode("a b&c"), ShouldEqual, "a+b%26c")
		So(URLDecode("a+b%26c"), ShouldEqual, "a b&c")
		So(URLDecode("%zz"), ShouldEqual, "%zz")
	})
}

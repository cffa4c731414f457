package country

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Lookup resolves codes and names", t, func() {
		Convey("Both code lengths hit the same record", func() {
			So(Lookup("us"), ShouldEqual, Lookup("usa"))
			So(Lookup("gb"), ShouldEqual, Lookup("gbr"))
		})

		Convey("Variant names resolve", func() {
			So(Lookup("UK"), ShouldEqual, Lookup("gb"))
			So(Lookup("Deutschland"), ShouldEqual, Lookup("de"))
			So(Lookup("日本"), ShouldEqual, Lookup("jp"))
		})

		Convey("Case does not matter", func() {
			So(Lookup("FRANCE"), ShouldEqual, Lookup("fr"))
		})

		Convey("Unknown forms yield nil", func() {
			So(Lookup("atlantis"), ShouldBeNil)
			So(Lookup(""), ShouldBeNil)
		})
	})
}

func TestCatalog(t *testing.T) {
	Convey("Catalog integrity", t, func() {
		seen := map[string]bool{}
		for _, record := range All() {
			So(record.Code2, ShouldNotBeEmpty)
			So(record.Code3, ShouldNotBeEmpty)
			So(record.Name, ShouldNotBeEmpty)
			So(seen[record.Code2], ShouldBeFalse)
			seen[record.Code2] = true
		}

		common := Common()
		So(len(common), ShouldBeGreaterThan, 0)
		for _, record := range common {
			So(record.Frequency, ShouldEqual, FrequencyCommon)
		}
	})
}

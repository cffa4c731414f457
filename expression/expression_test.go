package expression

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestMatching(t *testing.T) {
	convey.Convey("Matching", t, func() {
		convey.Convey("Patterns are case-insensitive by default", func() {
			convey.So(Match(`season\s+\d+`, "SEASON 3 complete"), convey.ShouldBeTrue)
			convey.So(Match(`episode`, "no match here"), convey.ShouldBeFalse)
		})

		convey.Convey("Invalid patterns never match", func() {
			convey.So(Match(`(`, "anything"), convey.ShouldBeFalse)
		})

		convey.Convey("Search returns the first full match", func() {
			convey.So(Search(`\d{4}`, "released 2019, remastered 2021"), convey.ShouldEqual, "2019")
			convey.So(Search(`\d{4}`, "undated"), convey.ShouldEqual, "")
			convey.So(Search(`[`, "anything"), convey.ShouldEqual, "")
		})
	})
}

func TestExtraction(t *testing.T) {
	convey.Convey("Group extraction", t, func() {
		convey.Convey("Extract returns a single group", func() {
			convey.So(Extract(`s(\d+)e(\d+)`, "Show.S03E07.mkv", 1), convey.ShouldEqual, "03")
			convey.So(Extract(`s(\d+)e(\d+)`, "Show.S03E07.mkv", 2), convey.ShouldEqual, "07")
		})

		convey.Convey("Missing groups and misses yield empty", func() {
			convey.So(Extract(`s(\d+)`, "Show.S03.mkv", 5), convey.ShouldEqual, "")
			convey.So(Extract(`s(\d+)`, "no seasons", 1), convey.ShouldEqual, "")
		})

		convey.Convey("ExtractAll walks every match", func() {
			convey.So(ExtractAll(`(\d+)p`, "720p and 1080p and 2160p", 1), convey.ShouldResemble, []string{"720", "1080", "2160"})
			convey.So(ExtractAll(`(\d+)p`, "nothing", 1), convey.ShouldBeNil)
		})
	})
}

func TestReplacement(t *testing.T) {
	convey.Convey("Replacement", t, func() {
		convey.Convey("Replace substitutes every match", func() {
			convey.So(Replace(`\s+`, "a  b \t c", "."), convey.ShouldEqual, "a.b.c")
		})

		convey.Convey("Invalid patterns leave input untouched", func() {
			convey.So(Replace(`(`, "input", "x"), convey.ShouldEqual, "input")
		})

		convey.Convey("ReplaceGroup substitutes only the group", func() {
			convey.So(ReplaceGroup(`s(\d+)e\d+`, "S03E07 and S04E01", 1, "NN"), convey.ShouldEqual, "SNNE07 and SNNE01")
			convey.So(ReplaceGroup(`s(\d+)`, "no match", 1, "NN"), convey.ShouldEqual, "no match")
		})

		convey.Convey("Remove deletes every match", func() {
			convey.So(Remove(`\[.*?\]`, "[tag] Title [720p]"), convey.ShouldEqual, " Title ")
		})
	})
}

func TestSplit(t *testing.T) {
	convey.Convey("Split", t, func() {
		convey.So(Split(`[,;]`, "a,b;c"), convey.ShouldResemble, []string{"a", "b", "c"})
		convey.So(Split(`(`, "whole"), convey.ShouldResemble, []string{"whole"})
	})
}

func TestMemoization(t *testing.T) {
	convey.Convey("The memo table survives resets", t, func() {
		Reset()
		convey.So(Compile(`\d+`, FlagInsensitive), convey.ShouldNotBeNil)
		convey.So(Compile(`\d+`, FlagInsensitive), convey.ShouldEqual, Compile(`\d+`, FlagInsensitive))

		convey.Convey("Distinct flags compile distinct entries", func() {
			convey.So(Compile(`^x$`, FlagMultiline).MatchString("a\nx\nb"), convey.ShouldBeTrue)
			convey.So(Compile(`^x$`, FlagNone).MatchString("a\nx\nb"), convey.ShouldBeFalse)
		})

		Reset()
		convey.So(Compile(`\d+`, FlagInsensitive), convey.ShouldNotBeNil)
	})
}

package audience

import (
	"testing"

	"github.com/gaiakodi/gaiacore/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLadder(t *testing.T) {
	Convey("Certificate ladder", t, func() {
		Convey("Ages", func() {
			So(Age(CertificateG), ShouldEqual, 0)
			So(Age(CertificatePG13), ShouldEqual, 13)
			So(Age(CertificateTVMA), ShouldEqual, 17)
			So(Age("bogus"), ShouldEqual, -1)
		})

		Convey("Labels", func() {
			So(Label(CertificatePG13), ShouldEqual, "PG-13")
			So(Label(CertificateTV14), ShouldEqual, "TV-14")
			So(Label("bogus"), ShouldEqual, "")
		})

		Convey("Crosswalk is total over the ladder", func() {
			for _, e := range ladder {
				So(Crosswalk(e.certificate), ShouldNotBeEmpty)
			}
			So(Crosswalk(CertificatePG13), ShouldEqual, CertificateTV14)
			So(Crosswalk(CertificateTVMA), ShouldEqual, CertificateR)
		})
	})
}

func TestSelectMonotonicity(t *testing.T) {
	Convey("Selection against age thresholds", t, func() {
		Convey("SelectionAll grows monotonically with the threshold", func() {
			for _, kind := range []media.Kind{media.Film, media.Show} {
				previous := map[Certificate]bool{}
				for age := 0; age <= 18; age++ {
					selected := Select(age, SelectionAll, kind)
					for certificate := range previous {
						So(selected, ShouldContain, certificate)
					}
					previous = map[Certificate]bool{}
					for _, certificate := range selected {
						previous[certificate] = true
					}
				}
			}
		})

		Convey("SelectionSingle returns the highest eligible certificate", func() {
			So(Select(13, SelectionSingle, media.Film), ShouldResemble, []Certificate{CertificatePG13})
			So(Select(16, SelectionSingle, media.Show), ShouldResemble, []Certificate{CertificateTV14})
		})

		Convey("Thresholds below the floor yield nothing", func() {
			So(Select(-1, SelectionAll, media.Film), ShouldBeNil)
		})
	})
}

func TestConvert(t *testing.T) {
	Convey("Regional code conversion", t, func() {
		cases := []struct {
			code  string
			kind  media.Kind
			wants Certificate
		}{
			{"TV-14", media.Show, CertificateTV14},
			{"TV-14", media.Film, CertificatePG13},
			{"tv ma", media.Show, CertificateTVMA},
			{"PG-13", media.Film, CertificatePG13},
			{"PG", media.Film, CertificatePG},
			{"15", media.Film, CertificateR},
			{"18+", media.Film, CertificateNC17},
			{"U", media.Film, CertificateG},
			{"12A", media.Film, CertificatePG13},
			{"gibberish", media.Film, ""},
		}

		for _, c := range cases {
			So(Convert(c.code, c.kind), ShouldEqual, c.wants)
		}
	})
}

func TestAllowed(t *testing.T) {
	Convey("Audience gates", t, func() {
		Convey("Kid-safe codes", func() {
			So(AllowedKid("G"), ShouldBeTrue)
			So(AllowedKid("PG"), ShouldBeTrue)
			So(AllowedKid("R"), ShouldBeFalse)
			So(AllowedKid("TV-MA"), ShouldBeFalse)
		})

		Convey("Teen-safe codes", func() {
			So(AllowedTeen("PG-13"), ShouldBeTrue)
			So(AllowedTeen("TV-14"), ShouldBeTrue)
			So(AllowedTeen("NC-17"), ShouldBeFalse)
		})

		Convey("Unknown codes are never allowed", func() {
			So(AllowedKid("gibberish"), ShouldBeFalse)
			So(AllowedTeen("gibberish"), ShouldBeFalse)
		})
	})
}

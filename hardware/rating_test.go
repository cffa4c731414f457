package hardware

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRate(t *testing.T) {
	Convey("Hardware rating", t, func() {
		Convey("A strong machine rates excellent", func() {
			report := Report{
				Processor: Processor{
					Type:        ProcessorAmd,
					Threads:     16,
					CommonClock: 3400,
					TotalClock:  54400,
				},
				Memory:  Memory{Total: 32 << 30},
				Storage: Storage{ReadSpeed: mo.Some[uint64](500 << 20), WriteSpeed: mo.Some[uint64](450 << 20)},
				Network: Network{Download: mo.Some[uint64](50000 << 10)},
			}

			rating := Rate(report)
			So(rating.Value, ShouldBeGreaterThanOrEqualTo, 0.8)
			So(rating.Value, ShouldBeLessThanOrEqualTo, 1)
			So(rating.Band, ShouldEqual, BandExcellent)
		})

		Convey("A weak machine rates bad", func() {
			report := Report{
				Processor: Processor{
					Type:        ProcessorArm,
					Threads:     2,
					CommonClock: 1600,
					TotalClock:  3200,
				},
				Memory:  Memory{Total: 1 << 30},
				Storage: Storage{ReadSpeed: mo.Some[uint64](30 << 20), WriteSpeed: mo.Some[uint64](30 << 20)},
				Network: Network{Download: mo.Some[uint64](125 << 10)},
			}

			rating := Rate(report)
			So(rating.Value, ShouldBeLessThan, 0.2)
			So(rating.Band, ShouldEqual, BandBad)
		})

		Convey("Missing metrics substitute architecture fallbacks", func() {
			Convey("ARM", func() {
				rating := Rate(Report{Processor: Processor{Type: ProcessorArm, Threads: 4}})
				So(rating.Memory, ShouldEqual, fallbackArm)
				So(rating.Storage, ShouldEqual, fallbackArm)
				So(rating.Network, ShouldEqual, fallbackArm)
			})

			Convey("Many-core x86", func() {
				rating := Rate(Report{Processor: Processor{Type: ProcessorIntel, Threads: 8}})
				So(rating.Memory, ShouldEqual, fallbackX86Many)
			})

			Convey("Few-core x86", func() {
				rating := Rate(Report{Processor: Processor{Type: ProcessorIntel, Threads: 2}})
				So(rating.Memory, ShouldEqual, fallbackX86Few)
			})
		})

		Convey("Partial storage measurements still count", func() {
			report := Report{
				Processor: Processor{Type: ProcessorIntel, Threads: 8},
				Storage:   Storage{ReadSpeed: mo.Some[uint64](400 << 20)},
			}
			rating := Rate(report)
			So(rating.Storage, ShouldEqual, scaleCeiling)
		})

		Convey("The value is always a unit interval", func() {
			So(Rate(Report{}).Value, ShouldBeGreaterThanOrEqualTo, 0)
			So(Rate(Report{}).Value, ShouldBeLessThanOrEqualTo, 1)
		})
	})
}

func TestScale(t *testing.T) {
	Convey("Linear scaling clamps into its interval", t, func() {
		So(scale(2300, 1600, 3000), ShouldEqual, 0.5)
		So(scale(0, 1600, 3000), ShouldEqual, scaleFloor)
		So(scale(99999, 1600, 3000), ShouldEqual, scaleCeiling)
		So(scale(5, 10, 10), ShouldEqual, scaleFloor)
	})
}

func TestBands(t *testing.T) {
	Convey("Band boundaries", t, func() {
		So(band(0.95), ShouldEqual, BandExcellent)
		So(band(0.8), ShouldEqual, BandExcellent)
		So(band(0.79), ShouldEqual, BandGood)
		So(band(0.6), ShouldEqual, BandGood)
		So(band(0.5), ShouldEqual, BandMedium)
		So(band(0.3), ShouldEqual, BandPoor)
		So(band(0.1), ShouldEqual, BandBad)
	})
}

func TestThreadLimit(t *testing.T) {
	Convey("Thread limits", t, func() {
		Convey("More memory allows more threads", func() {
			small := ThreadLimit(256<<20, 1)
			large := ThreadLimit(8<<30, 1)
			So(small, ShouldBeGreaterThanOrEqualTo, 1)
			So(large, ShouldBeGreaterThan, small)
		})

		Convey("The limit never drops below one", func() {
			So(ThreadLimit(1, 1), ShouldEqual, 1)
		})

		Convey("Out-of-range adjustments normalize to full memory", func() {
			So(ThreadLimit(8<<30, -5), ShouldEqual, ThreadLimit(8<<30, 1))
			So(ThreadLimit(8<<30, 42), ShouldEqual, ThreadLimit(8<<30, 1))
		})

		Convey("The adjustment scales the budget", func() {
			So(ThreadLimit(8<<30, 0.5), ShouldEqual, ThreadLimit(4<<30, 1))
		})
	})
}

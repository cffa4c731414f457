package observer

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func watched(show string, season, episode int, duration int64) []Event {
	return []Event{
		{Kind: EventPlay, Show: show, Season: season, Episode: episode},
		{Kind: EventStop, Show: show, Season: season, Episode: episode, Duration: duration},
	}
}

func session(entries ...[]Event) []Event {
	var events []Event
	for _, entry := range entries {
		events = append(events, entry...)
	}
	return events
}

func TestCollapse(t *testing.T) {
	Convey("Contiguous identical interactions merge", t, func() {
		events := []Event{
			{Kind: EventInteract, Interact: InteractSkip},
			{Kind: EventInteract, Interact: InteractSkip},
			{Kind: EventInteract, Interact: InteractSkip},
			{Kind: EventInteract, Interact: InteractRating},
			{Kind: EventInteract, Interact: InteractSkip},
		}
		collapsed := collapse(events)
		So(len(collapsed), ShouldEqual, 3)
		So(collapsed[0].Interact, ShouldEqual, InteractSkip)
		So(collapsed[1].Interact, ShouldEqual, InteractRating)
		So(collapsed[2].Interact, ShouldEqual, InteractSkip)

		Convey("Playbacks in between break the run", func() {
			broken := []Event{
				{Kind: EventInteract, Interact: InteractSkip},
				{Kind: EventStop, Show: "a"},
				{Kind: EventInteract, Interact: InteractSkip},
			}
			So(len(collapse(broken)), ShouldEqual, 3)
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Watched and uninterrupted tallies", t, func() {
		events := session(
			watched("a", 1, 1, 1200),
			watched("a", 1, 2, 1200),
			[]Event{{Kind: EventInteract, Interact: InteractContinue}},
			watched("a", 1, 3, 1300),
			watched("a", 1, 4, 1300),
		)

		s := summarize(events)
		So(s.watchedCount, ShouldEqual, 4)
		So(s.watchedDuration, ShouldEqual, 5000)
		So(s.uninterruptedCount, ShouldEqual, 2)
		So(s.uninterruptedDuration, ShouldEqual, 2600)
	})
}

func TestEvaluate(t *testing.T) {
	Convey("Observation evaluation", t, func() {
		notify := Action{Notify: true}

		Convey("Absent thresholds pass unconditionally", func() {
			action := Evaluate(watched("a", 1, 1, 100), []Observation{{Action: notify}})
			So(action, ShouldNotBeNil)
			So(action.Notify, ShouldBeTrue)
		})

		Convey("All present thresholds must be met", func() {
			observation := Observation{
				WatchedCount:    mo.Some[int64](3),
				WatchedDuration: mo.Some[int64](3000),
				Action:          notify,
			}

			short := session(watched("a", 1, 1, 1200), watched("a", 1, 2, 1200))
			So(Evaluate(short, []Observation{observation}), ShouldBeNil)

			long := session(watched("a", 1, 1, 1200), watched("a", 1, 2, 1200), watched("a", 1, 3, 1200))
			So(Evaluate(long, []Observation{observation}), ShouldNotBeNil)
		})

		Convey("Interactions reset the uninterrupted tally only", func() {
			observation := Observation{
				UninterruptedCount: mo.Some[int64](2),
				Action:             notify,
			}
			events := session(
				watched("a", 1, 1, 1200),
				watched("a", 1, 2, 1200),
				[]Event{{Kind: EventInteract, Interact: InteractRating}},
				watched("a", 1, 3, 1200),
			)
			So(Evaluate(events, []Observation{observation}), ShouldBeNil)

			events = append(events, watched("a", 1, 4, 1200)...)
			So(Evaluate(events, []Observation{observation}), ShouldNotBeNil)
		})

		Convey("The first matching observation wins", func() {
			first := Observation{Action: Action{Power: "shutdown"}}
			second := Observation{Action: Action{Power: "hibernate"}}
			action := Evaluate(watched("a", 1, 1, 100), []Observation{first, second})
			So(action.Power, ShouldEqual, "shutdown")
		})

		Convey("No events and no observations yield nil", func() {
			So(Evaluate(nil, []Observation{{Action: notify}}), ShouldNotBeNil)
			So(Evaluate(watched("a", 1, 1, 100), nil), ShouldBeNil)
		})
	})
}

func TestNewShowReset(t *testing.T) {
	Convey("ResetNewShow truncates at a show boundary", t, func() {
		observation := Observation{
			WatchedCount: mo.Some[int64](3),
			ResetNewShow: true,
			Action:       Action{Notify: true},
		}

		Convey("Episodes of an earlier show do not count", func() {
			events := session(
				watched("old", 1, 1, 1200),
				watched("old", 1, 2, 1200),
				watched("new", 1, 1, 1200),
			)
			So(Evaluate(events, []Observation{observation}), ShouldBeNil)
		})

		Convey("Three of the current show do", func() {
			events := session(
				watched("old", 5, 9, 1200),
				watched("new", 1, 1, 1200),
				watched("new", 1, 2, 1200),
				watched("new", 1, 3, 1200),
			)
			So(Evaluate(events, []Observation{observation}), ShouldNotBeNil)
		})
	})
}

func TestExceptions(t *testing.T) {
	Convey("Exceptions short-circuit the thresholds", t, func() {
		unreachable := Observation{
			WatchedCount: mo.Some[int64](999),
			Action:       Action{Notify: true},
		}

		finale := session(watched("a", 1, 1, 1200))
		finale[len(finale)-1].Last = true

		Convey("Last episode", func() {
			always := unreachable
			always.LastEpisode = ExceptionAlways
			So(Evaluate(finale, []Observation{always}), ShouldNotBeNil)

			never := Observation{Action: Action{Notify: true}, LastEpisode: ExceptionNever}
			So(Evaluate(finale, []Observation{never}), ShouldBeNil)
		})

		Convey("Discrete content", func() {
			film := session(watched("", 0, 0, 6000))
			film[len(film)-1].Discrete = true

			always := unreachable
			always.Discrete = ExceptionAlways
			So(Evaluate(film, []Observation{always}), ShouldNotBeNil)

			never := Observation{Action: Action{Notify: true}, Discrete: ExceptionNever}
			So(Evaluate(film, []Observation{never}), ShouldBeNil)
		})

		Convey("Default applies thresholds normally", func() {
			So(Evaluate(finale, []Observation{unreachable}), ShouldBeNil)
		})
	})
}

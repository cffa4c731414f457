package observer

import (
	"github.com/samber/mo"
)

// Exception short-circuits an observation for a class of content.
type Exception string

const (
	// ExceptionDefault applies the thresholds normally.
	ExceptionDefault Exception = ""
	// ExceptionAlways triggers regardless of thresholds.
	ExceptionAlways Exception = "always"
	// ExceptionNever suppresses the observation.
	ExceptionNever Exception = "never"
)

// Action describes what a matched observation wants done. The caller
// executes it; evaluation itself never touches the host.
type Action struct {
	Power   string `json:"power,omitempty"`
	Timeout int64  `json:"timeout,omitempty"`
	Notify  bool   `json:"notify"`
	Sound   bool   `json:"sound"`
}

// Observation is one user-defined binge rule. All four thresholds must be
// met to trigger; an absent threshold passes unconditionally.
type Observation struct {
	WatchedCount          mo.Option[int64] `json:"watchedCount"`
	WatchedDuration       mo.Option[int64] `json:"watchedDuration"`
	UninterruptedCount    mo.Option[int64] `json:"uninterruptedCount"`
	UninterruptedDuration mo.Option[int64] `json:"uninterruptedDuration"`

	// ResetNewShow truncates the log at the first playback of a show
	// other than the one currently playing.
	ResetNewShow bool `json:"resetNewShow"`

	LastEpisode Exception `json:"lastEpisode,omitempty"`
	Discrete    Exception `json:"discrete,omitempty"`

	Action Action `json:"action"`
}

// summary holds the two threshold pairs computed over a log.
type summary struct {
	watchedCount          int64
	watchedDuration       int64
	uninterruptedCount    int64
	uninterruptedDuration int64
}

// Evaluate checks the observations against the event log in order and
// returns the action of the first that triggers, or nil.
func Evaluate(events []Event, observations []Observation) *Action {
	events = collapse(events)

	for i := range observations {
		observation := &observations[i]
		if triggered(events, observation) {
			action := observation.Action
			return &action
		}
	}
	return nil
}

// triggered evaluates a single observation.
func triggered(events []Event, observation *Observation) bool {
	if observation.ResetNewShow {
		events = truncateNewShow(events)
	}

	if latest, ok := latestPlayback(events); ok {
		if latest.Last {
			switch observation.LastEpisode {
			case ExceptionAlways:
				return true
			case ExceptionNever:
				return false
			}
		}
		if latest.Discrete {
			switch observation.Discrete {
			case ExceptionAlways:
				return true
			case ExceptionNever:
				return false
			}
		}
	}

	s := summarize(events)
	return meets(observation.WatchedCount, s.watchedCount) &&
		meets(observation.WatchedDuration, s.watchedDuration) &&
		meets(observation.UninterruptedCount, s.uninterruptedCount) &&
		meets(observation.UninterruptedDuration, s.uninterruptedDuration)
}

// meets reports whether an actual value satisfies an optional threshold.
// An absent threshold passes.
func meets(threshold mo.Option[int64], actual int64) bool {
	limit, present := threshold.Get()
	return !present || actual >= limit
}

// collapse merges runs of identical contiguous interactions, so holding a
// button or reopening the same dialog counts once.
func collapse(events []Event) []Event {
	collapsed := make([]Event, 0, len(events))
	for _, event := range events {
		if event.Kind == EventInteract && len(collapsed) > 0 {
			previous := collapsed[len(collapsed)-1]
			if previous.Kind == EventInteract && previous.Interact == event.Interact {
				continue
			}
		}
		collapsed = append(collapsed, event)
	}
	return collapsed
}

// truncateNewShow keeps only the suffix of the log belonging to the show
// of the most recent playback entry.
func truncateNewShow(events []Event) []Event {
	current, ok := latestPlayback(events)
	if !ok {
		return events
	}

	start := 0
	for i := len(events) - 1; i >= 0; i-- {
		event := events[i]
		if event.Kind == EventInteract {
			continue
		}
		if !event.sameShow(current) {
			start = i + 1
			break
		}
	}
	return events[start:]
}

// latestPlayback finds the most recent play or stop entry.
func latestPlayback(events []Event) (Event, bool) {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind != EventInteract {
			return events[i], true
		}
	}
	return Event{}, false
}

// summarize computes both threshold pairs. Watched counts every completed
// playback; uninterrupted counts only those after the last interaction.
func summarize(events []Event) summary {
	var s summary
	uninterrupted := true
	for i := len(events) - 1; i >= 0; i-- {
		event := events[i]
		switch event.Kind {
		case EventInteract:
			uninterrupted = false
		case EventStop:
			s.watchedCount++
			s.watchedDuration += event.Duration
			if uninterrupted {
				s.uninterruptedCount++
				s.uninterruptedDuration += event.Duration
			}
		}
	}
	return s
}

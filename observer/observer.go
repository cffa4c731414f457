// Package observer records playback and interaction events and evaluates
// user-defined binge observations against them.
//
// The event log is a bounded ring held in a window property as JSON so the
// player process and the invoker share one view of the session. Appends
// follow a single-writer convention: only the player thread records.
// Evaluation is pure; the caller performs whatever action matches.
package observer

import (
	"encoding/json"

	"github.com/gaiakodi/gaiacore/clock"
	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/settings"
)

const (
	propertyEvents = "gaia.observer.events"

	// eventLimit bounds the ring so a long session cannot grow the
	// property without end.
	eventLimit = 200
)

// EventKind separates playback boundaries from explicit user interactions.
type EventKind string

const (
	EventPlay     EventKind = "play"
	EventStop     EventKind = "stop"
	EventInteract EventKind = "interact"
)

// Interaction sources, matching the dialogs a user can press a button in.
const (
	InteractRating   = "rating"
	InteractContinue = "continue"
	InteractSkip     = "skip"
	InteractBinge    = "binge"
	InteractScrape   = "scrape"
	InteractStream   = "stream"
)

// Event is one entry in the session log.
type Event struct {
	Kind     EventKind `json:"kind"`
	Time     int64     `json:"time"`
	Duration int64     `json:"duration,omitempty"`
	Show     string    `json:"show,omitempty"`
	Season   int       `json:"season,omitempty"`
	Episode  int       `json:"episode,omitempty"`
	Interact string    `json:"interact,omitempty"`
	Last     bool      `json:"last,omitempty"`
	Discrete bool      `json:"discrete,omitempty"`
}

// sameShow reports whether two events refer to the same show.
func (e Event) sameShow(other Event) bool {
	return e.Show == other.Show
}

// Events returns the current session log, oldest first.
func Events() []Event {
	raw := host.Property(propertyEvents)
	if raw == "" {
		return nil
	}
	var events []Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil
	}
	return events
}

// Record appends an event to the session log, trimming the ring to its
// bound. The timestamp is filled in when absent.
func Record(event Event) {
	if event.Time == 0 {
		event.Time = clock.Timestamp()
	}

	events := append(Events(), event)
	if len(events) > eventLimit {
		events = events[len(events)-eventLimit:]
	}
	host.SetProperty(propertyEvents, convert.JSONEncode(events))
}

// Clear drops the session log.
func Clear() {
	host.ClearProperty(propertyEvents)
}

// Load returns the user-defined observations, empty when the observer is
// switched off or the stored rules are unreadable.
func Load() []Observation {
	if !settings.GetBoolean(key.ObserverEnabled) {
		return nil
	}
	raw := settings.GetString(key.ObserverObservations)
	if raw == "" {
		return nil
	}
	var observations []Observation
	if err := json.Unmarshal([]byte(raw), &observations); err != nil {
		return nil
	}
	return observations
}

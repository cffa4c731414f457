package clock

import "time"

// Timer tracks an instant and reports elapsed time against it. The zero
// Timer is stopped; Start it before reading.
type Timer struct {
	start time.Time
}

// StartTimer returns a running timer anchored at the current instant.
// The instant carries Go's monotonic reading, so elapsed values are immune
// to wall-clock adjustments.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Restart re-anchors the timer at the current instant.
func (t *Timer) Restart() {
	t.start = time.Now()
}

// Running reports whether the timer has been started.
func (t *Timer) Running() bool {
	return !t.start.IsZero()
}

// Elapsed returns whole seconds since the timer started, 0 when stopped.
func (t *Timer) Elapsed() int64 {
	if t.start.IsZero() {
		return 0
	}
	return int64(time.Since(t.start).Seconds())
}

// ElapsedMilli returns whole milliseconds since the timer started.
func (t *Timer) ElapsedMilli() int64 {
	if t.start.IsZero() {
		return 0
	}
	return time.Since(t.start).Milliseconds()
}

// Expired reports whether at least n seconds have elapsed.
func (t *Timer) Expired(n int64) bool {
	return t.Elapsed() >= n
}

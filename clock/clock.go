// Package clock provides timezone-aware conversions, monotonic timers and
// approximate calendar arithmetic for the rest of the addon.
//
// Parsing and formatting never panic: a failure yields the zero value or the
// original input, documented per function.
package clock

import (
	"time"
)

// Fixed formatting patterns used across menus and logs.
const (
	FormatDate      = "2006-01-02"
	FormatDateTime  = "2006-01-02 15:04:05"
	FormatTimeShort = "15:04"
)

// Approximate calendar lengths used by Past and Future.
const (
	DayDuration   = 24 * time.Hour
	WeekDuration  = 7 * DayDuration
	MonthDuration = time.Duration(30.44 * float64(DayDuration))
	YearDuration  = time.Duration(365.25 * float64(DayDuration))
)

// sleeper lets the host bridge substitute its own sleep primitive, which
// must be used so player events keep firing while the addon waits.
var sleeper = time.Sleep

// SetSleeper replaces the sleep primitive used by Sleep.
func SetSleeper(f func(time.Duration)) {
	if f != nil {
		sleeper = f
	}
}

// Sleep suspends the calling goroutine through the registered primitive.
func Sleep(d time.Duration) {
	sleeper(d)
}

// Timestamp returns the current UTC time in whole seconds.
func Timestamp() int64 {
	return time.Now().UTC().Unix()
}

// TimestampMilli returns the current UTC time in whole milliseconds.
func TimestampMilli() int64 {
	return time.Now().UTC().UnixMilli()
}

// ISO layouts tried in order by ParseISO.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseISO parses an ISO-8601 string, honouring an embedded offset when
// present and assuming UTC otherwise. Returns UTC epoch seconds, 0 on failure.
func ParseISO(value string) int64 {
	for _, layout := range isoLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC().Unix()
		}
	}
	return 0
}

// ConvertZone re-expresses an epoch timestamp in a named tz-database zone
// and formats it with the given pattern. Returns the empty string when the
// zone is unknown.
func ConvertZone(timestamp int64, zone, pattern string) string {
	location, err := time.LoadLocation(zone)
	if err != nil {
		return ""
	}
	if pattern == "" {
		pattern = FormatDateTime
	}
	return time.Unix(timestamp, 0).In(location).Format(pattern)
}

// Format renders an epoch timestamp in UTC with the given pattern. A zero
// timestamp yields the empty string.
func Format(timestamp int64, pattern string) string {
	if timestamp == 0 {
		return ""
	}
	if pattern == "" {
		pattern = FormatDateTime
	}
	return time.Unix(timestamp, 0).UTC().Format(pattern)
}

// Shift describes a calendar displacement for Past and Future.
type Shift struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

func (s Shift) duration() time.Duration {
	d := time.Duration(s.Years) * YearDuration
	d += time.Duration(s.Months) * MonthDuration
	d += time.Duration(s.Weeks) * WeekDuration
	d += time.Duration(s.Days) * DayDuration
	d += time.Duration(s.Hours) * time.Hour
	d += time.Duration(s.Minutes) * time.Minute
	d += time.Duration(s.Seconds) * time.Second
	return d
}

// Past shifts a reference timestamp backwards. A zero reference means now.
func Past(reference int64, shift Shift) int64 {
	if reference == 0 {
		reference = Timestamp()
	}
	return reference - int64(shift.duration()/time.Second)
}

// Future shifts a reference timestamp forwards. A zero reference means now.
func Future(reference int64, shift Shift) int64 {
	if reference == 0 {
		reference = Timestamp()
	}
	return reference + int64(shift.duration()/time.Second)
}

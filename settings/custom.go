package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gaiakodi/gaiacore/key"
)

// Custom settings store a bare numeric while maintaining a human-readable
// label in the companion entry. The descriptor declares how the numeric
// renders and, inversely, how a label parses back to the exact numeric.

// CustomType classifies a custom setting.
type CustomType string

const (
	CustomNumber   CustomType = "number"
	CustomPercent  CustomType = "percent"
	CustomDuration CustomType = "duration"
	CustomSize     CustomType = "size"
	CustomColor    CustomType = "color"
	CustomIcon     CustomType = "icon"
)

// Display tokens for sentinel values.
const (
	TokenDefault   = "Default"
	TokenAutomatic = "Automatic"
	TokenUnlimited = "Unlimited"
	TokenNone      = "None"
	TokenNever     = "Never"
	TokenAlways    = "Always"
)

// durationUnits order matters: Label picks the largest unit that divides
// the value exactly so the rendered form re-parses to the same numeric.
var durationUnits = []struct {
	seconds int64
	label   string
}{
	{31557600, "years"},
	{2630016, "months"},
	{604800, "weeks"},
	{86400, "days"},
	{3600, "hours"},
	{60, "min"},
	{1, "sec"},
}

var sizeUnits = []struct {
	bytes int64
	label string
}{
	{1 << 40, "TB"},
	{1 << 30, "GB"},
	{1 << 20, "MB"},
	{1 << 10, "KB"},
	{1, "bytes"},
}

// Descriptor declares a custom setting's rendering and bounds.
type Descriptor struct {
	ID   string
	Type CustomType

	Minimum int64
	Maximum int64

	// Sentinels maps special stored values to display tokens.
	Sentinels map[int64]string

	// Nones lists stored values callers should read as absent, letting a
	// "user chose unlimited" survive distinctly from any real numeric.
	Nones []int64
}

var descriptors = map[string]*Descriptor{}

// Describe registers a custom descriptor. Later registrations replace
// earlier ones so upgrades can tighten bounds.
func Describe(d *Descriptor) {
	descriptors[d.ID] = d
}

// Descriptor returns the registered descriptor for an identifier, nil when
// the setting is not custom.
func DescriptorOf(id string) *Descriptor {
	return descriptors[id]
}

// Label renders a stored numeric into its display form.
func (d *Descriptor) Label(value int64) string {
	if token, ok := d.Sentinels[value]; ok {
		return token
	}

	switch d.Type {
	case CustomDuration:
		for _, unit := range durationUnits {
			if value%unit.seconds == 0 && value/unit.seconds > 0 {
				return fmt.Sprintf("%d %s", value/unit.seconds, unit.label)
			}
		}
		return fmt.Sprintf("%d sec", value)
	case CustomSize:
		for _, unit := range sizeUnits {
			if value%unit.bytes == 0 && value/unit.bytes > 0 {
				return fmt.Sprintf("%d %s", value/unit.bytes, unit.label)
			}
		}
		return fmt.Sprintf("%d bytes", value)
	case CustomPercent:
		return fmt.Sprintf("%d%%", value)
	case CustomColor:
		return fmt.Sprintf("#%06X", value)
	default:
		return strconv.FormatInt(value, 10)
	}
}

// Parse inverts Label, returning the exact stored numeric. Sentinel tokens
// resolve to their stored value. Reports false for unparsable labels.
func (d *Descriptor) Parse(label string) (int64, bool) {
	label = strings.TrimSpace(label)
	for value, token := range d.Sentinels {
		if strings.EqualFold(token, label) {
			return value, true
		}
	}

	switch d.Type {
	case CustomDuration:
		count, unit, ok := splitUnit(label)
		if !ok {
			return 0, false
		}
		for _, u := range durationUnits {
			if strings.EqualFold(u.label, unit) {
				return count * u.seconds, true
			}
		}
		return 0, false
	case CustomSize:
		count, unit, ok := splitUnit(label)
		if !ok {
			return 0, false
		}
		for _, u := range sizeUnits {
			if strings.EqualFold(u.label, unit) {
				return count * u.bytes, true
			}
		}
		return 0, false
	case CustomPercent:
		parsed, err := strconv.ParseInt(strings.TrimSuffix(label, "%"), 10, 64)
		return parsed, err == nil
	case CustomColor:
		parsed, err := strconv.ParseInt(strings.TrimPrefix(label, "#"), 16, 64)
		return parsed, err == nil
	default:
		parsed, err := strconv.ParseInt(label, 10, 64)
		return parsed, err == nil
	}
}

func splitUnit(label string) (count int64, unit string, ok bool) {
	number, unit, found := strings.Cut(label, " ")
	if !found {
		return 0, "", false
	}
	parsed, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return 0, "", false
	}
	return parsed, strings.TrimSpace(unit), true
}

// none reports whether the stored value reads as absent.
func (d *Descriptor) none(value int64) bool {
	for _, v := range d.Nones {
		if v == value {
			return true
		}
	}
	return false
}

// SetCustom stores a custom numeric and writes its rendered label to the
// display companion atomically. Values are clamped to the declared bounds.
func SetCustom(id string, value int64) error {
	d := descriptors[id]
	if d == nil {
		return Set(id, value)
	}

	if _, sentinel := d.Sentinels[value]; !sentinel {
		if d.Maximum > d.Minimum {
			if value < d.Minimum {
				value = d.Minimum
			}
			if value > d.Maximum {
				value = d.Maximum
			}
		}
	}
	return Set(id, value, d.Label(value))
}

// GetCustom reads a custom numeric. The second result is false when the
// value is a sentinel declared as absent, so callers can distinguish
// "automatic" from any real numeric.
func GetCustom(id string) (int64, bool) {
	d := descriptors[id]
	value := GetInteger64(id)
	if d != nil && d.none(value) {
		return value, false
	}
	return value, true
}

func init() {
	Describe(&Descriptor{
		ID:      key.PlaybackTimeWait,
		Type:    CustomDuration,
		Minimum: 0, Maximum: 3600,
		Sentinels: map[int64]string{0: TokenAutomatic},
		Nones:     []int64{0},
	})
	Describe(&Descriptor{
		ID:      key.ScrapeLimitTime,
		Type:    CustomDuration,
		Minimum: 10, Maximum: 600,
	})
	Describe(&Descriptor{
		ID:      key.ScrapeLimitMemory,
		Type:    CustomSize,
		Minimum: 0, Maximum: 8 << 30,
		Sentinels: map[int64]string{0: TokenAutomatic},
		Nones:     []int64{0},
	})
	Describe(&Descriptor{
		ID:      key.ScrapeLimitThread,
		Type:    CustomNumber,
		Minimum: 0, Maximum: 512,
		Sentinels: map[int64]string{0: TokenAutomatic},
		Nones:     []int64{0},
	})
}

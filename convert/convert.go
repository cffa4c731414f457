// Package convert provides lossless-where-possible coercion and encoding helpers.
//
// Every function returns a neutral value on failure instead of an error. The
// host surfaces uncaught failures as modal popups, so the foundation layer
// degrades silently and leaves diagnostics to the log package.
package convert

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// Boolean coerces any scalar to a bool. Unparseable input yields false.
func Boolean(value any) bool {
	return cast.ToBool(value)
}

// Integer coerces any scalar to an int. Unparseable input yields 0.
func Integer(value any) int {
	return cast.ToInt(value)
}

// Float coerces any scalar to a float64. Unparseable input yields 0.
func Float(value any) float64 {
	return cast.ToFloat64(value)
}

// String coerces any scalar to its string form. nil yields the empty string.
func String(value any) string {
	if value == nil {
		return ""
	}
	return cast.ToString(value)
}

// JSONEncode serializes a value to compact JSON. Failure yields the empty string.
func JSONEncode(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}

// JSONDecode deserializes JSON into a generic value. Failure yields nil.
func JSONDecode(data string) any {
	var value any
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return nil
	}
	return value
}

// JSONDecodeObject deserializes a JSON object. Non-object input yields nil.
func JSONDecodeObject(data string) map[string]any {
	var value map[string]any
	if err := json.Unmarshal([]byte(data), &value); err != nil {
		return nil
	}
	return value
}

// Base64Encode encodes bytes using the URL-safe alphabet without padding,
// matching the alphabet accepted inside plugin invocation URLs.
func Base64Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Base64Decode decodes URL-safe base64, tolerating padded and standard
// variants. Failure yields nil.
func Base64Decode(data string) []byte {
	data = strings.TrimRight(data, "=")
	if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return decoded
	}
	normalized := strings.NewReplacer("+", "-", "/", "_").Replace(data)
	decoded, err := base64.RawURLEncoding.DecodeString(normalized)
	if err != nil {
		return nil
	}
	return decoded
}

// URLEncode escapes a string for use inside a URL query component.
func URLEncode(value string) string {
	return url.QueryEscape(value)
}

// URLDecode unescapes a URL query component. Failure returns the input unchanged.
func URLDecode(value string) string {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}

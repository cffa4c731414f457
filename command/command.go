// Package command encodes and decodes the invocation envelope the host
// passes back into the addon on every UI action.
//
// The envelope is a plugin URL carrying a single base64 JSON parameter:
//
//	plugin://<id>/?data=<base64url(json(params))>[&data=...]
//
// Extra pre-encoded payloads append as further data entries and merge on
// decode. Booleans travel as the strings "true"/"false" because the host
// collapses typed arrays on the way through; nested structures stay JSON.
package command

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/convert"
)

// Origin tags the caller identity on every envelope so the addon can
// distinguish first-party navigation from widget and external calls.
type Origin = string

const (
	OriginGaia     Origin = "gaia"
	OriginPlaylist Origin = "playlist"
	OriginLibrary  Origin = "library"
	OriginWidget   Origin = "widget"
	OriginAddon    Origin = "addon"
	OriginExternal Origin = "external"
	OriginInternal Origin = "gaia-internal"
)

// Parameter names the envelope reserves.
const (
	ParameterAction     = "action"
	ParameterOrigin     = "origin"
	ParameterNavigation = "navigation"
)

// Encode builds an envelope URL for an action. The origin defaults to
// first-party when empty. Extra payloads must already be encoded data
// segments (the value part only).
func Encode(action string, parameters map[string]any, origin Origin, extras ...string) string {
	merged := make(map[string]any, len(parameters)+2)
	for name, value := range parameters {
		merged[name] = sanitize(value)
	}
	merged[ParameterAction] = action
	if origin == "" {
		origin = OriginGaia
	}
	merged[ParameterOrigin] = origin

	encoded := convert.Base64Encode([]byte(convert.JSONEncode(merged)))

	var b strings.Builder
	b.WriteString("plugin://")
	b.WriteString(constant.Addon)
	b.WriteString("/?data=")
	b.WriteString(encoded)
	for _, extra := range extras {
		b.WriteString("&data=")
		b.WriteString(extra)
	}
	return b.String()
}

// EncodePayload pre-encodes a parameter map into a data segment suitable
// as an extra payload.
func EncodePayload(parameters map[string]any) string {
	sanitized := make(map[string]any, len(parameters))
	for name, value := range parameters {
		sanitized[name] = sanitize(value)
	}
	return convert.Base64Encode([]byte(convert.JSONEncode(sanitized)))
}

// Decode parses an envelope URL back into its parameters, merging every
// data segment in order so later payloads override earlier ones.
func Decode(envelope string) (map[string]any, error) {
	_, query, found := strings.Cut(envelope, "?")
	if !found {
		query = envelope
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("parse envelope query: %w", err)
	}

	segments := values["data"]
	if len(segments) == 0 {
		return nil, fmt.Errorf("envelope holds no data segment")
	}

	merged := map[string]any{}
	for _, segment := range segments {
		decoded := convert.Base64Decode(segment)
		if decoded == nil {
			return nil, fmt.Errorf("undecodable data segment")
		}
		parameters := convert.JSONDecodeObject(string(decoded))
		if parameters == nil {
			return nil, fmt.Errorf("data segment is not an object")
		}
		for name, value := range parameters {
			merged[name] = restore(value)
		}
	}
	return merged, nil
}

// Action extracts the action of a decoded envelope, empty when absent.
func Action(parameters map[string]any) string {
	return convert.String(parameters[ParameterAction])
}

// OriginOf extracts the origin of a decoded envelope, defaulting to widget
// which is the identity of callers that declare nothing.
func OriginOf(parameters map[string]any) Origin {
	if origin := convert.String(parameters[ParameterOrigin]); origin != "" {
		return origin
	}
	return OriginWidget
}

// sanitize prepares a value for transport: booleans become strings and
// nested structures stay JSON-compatible as-is.
func sanitize(value any) any {
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case map[string]any:
		sanitized := make(map[string]any, len(v))
		for name, nested := range v {
			sanitized[name] = sanitize(nested)
		}
		return sanitized
	case []any:
		sanitized := make([]any, len(v))
		for i, nested := range v {
			sanitized[i] = sanitize(nested)
		}
		return sanitized
	default:
		return value
	}
}

// restore undoes sanitize on the receiving side.
func restore(value any) any {
	switch v := value.(type) {
	case string:
		switch v {
		case "true":
			return true
		case "false":
			return false
		}
		return v
	case map[string]any:
		restored := make(map[string]any, len(v))
		for name, nested := range v {
			restored[name] = restore(nested)
		}
		return restored
	case []any:
		restored := make([]any, len(v))
		for i, nested := range v {
			restored[i] = restore(nested)
		}
		return restored
	default:
		return value
	}
}

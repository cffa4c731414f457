// Package system provides the host-invocation primitives: plugin calls,
// navigation, window activation, info-label reads and power actions.
package system

import (
	"fmt"
	"strings"
	"time"

	"github.com/gaiakodi/gaiacore/command"
	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/host"
)

// Info-label reads retry while the host reports itself busy, which it does
// for a short window after boot.
const (
	busyRetries  = 20
	busyInterval = 100 * time.Millisecond
)

// PluginCall fires an envelope at the addon without waiting for a result.
func PluginCall(action string, parameters map[string]any, origin command.Origin) error {
	envelope := command.Encode(action, parameters, origin)
	return host.Current().ExecuteBuiltin(fmt.Sprintf("RunPlugin(%s)", envelope))
}

// ContainerUpdate pushes a new directory onto the host's navigation stack.
// With replace the current level is swapped instead of stacked.
func ContainerUpdate(action string, parameters map[string]any, replace bool) error {
	envelope := command.Encode(action, parameters, command.OriginGaia)
	if replace {
		return host.Current().ExecuteBuiltin(fmt.Sprintf("Container.Update(%s,replace)", envelope))
	}
	return host.Current().ExecuteBuiltin(fmt.Sprintf("Container.Update(%s)", envelope))
}

// WindowActivate opens a skin window, optionally seeding it with an envelope.
func WindowActivate(window string, parameters map[string]any) error {
	if parameters == nil {
		return host.Current().ExecuteBuiltin(fmt.Sprintf("ActivateWindow(%s)", window))
	}
	envelope := command.Encode("", parameters, command.OriginGaia)
	return host.Current().ExecuteBuiltin(fmt.Sprintf("ActivateWindow(%s,%s,return)", window, envelope))
}

// JSONRPC forwards a call to the host's JSON-RPC surface.
func JSONRPC(method string, parameters map[string]any) (any, error) {
	return host.Current().JSONRPC(method, parameters)
}

// InfoLabel reads a host info label, retrying through the post-boot busy
// window. Returns the empty string when the label never settles.
func InfoLabel(label string) string {
	bridge := host.Current()
	for attempt := 0; attempt < busyRetries; attempt++ {
		value, err := bridge.InfoLabel(label)
		if err != nil {
			return ""
		}
		if value != host.Busy {
			return value
		}
		bridge.Sleep(busyInterval)
	}
	return ""
}

// OriginDetect determines the caller identity of the current invocation.
// A self-declared origin in the envelope wins; otherwise the container's
// plugin name separates first-party calls, other addons and widgets (which
// run with no plugin name at all).
func OriginDetect(parameters map[string]any) command.Origin {
	if parameters != nil {
		if origin := command.OriginOf(parameters); origin != command.OriginWidget {
			return origin
		}
	}

	name := InfoLabel("Container.PluginName")
	switch {
	case name == "":
		return command.OriginWidget
	case strings.EqualFold(name, constant.Addon):
		return command.OriginGaia
	default:
		return command.OriginAddon
	}
}

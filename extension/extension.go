// Package extension manages the companion addons the core depends on:
// resolvers, scraper packs, torrent engines and info addons. It drives the
// host's install surface, verifies enablement and stores service-account
// credentials in the system keyring.
package extension

import (
	"fmt"

	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/samber/lo"
)

// Type ranks how strongly the core needs a companion addon.
type Type string

const (
	TypeRequired    Type = "required"
	TypeRecommended Type = "recommended"
	TypeOptional    Type = "optional"
)

// Extension describes one companion addon.
type Extension struct {
	ID           string
	Name         string
	Type         Type
	Help         string
	Icon         string
	Dependencies []string

	// Repository is installed as a fallback when the addon itself fails
	// with a missing dependency.
	Repository string
}

// registry lists every companion the core knows about. Order matters for
// display: required first.
var registry = []Extension{
	{
		ID:         "script.module.resolveurl",
		Name:       "ResolveURL",
		Type:       TypeRequired,
		Help:       "Resolves hoster links into playable streams.",
		Icon:       "resolveurl.png",
		Repository: "repository.resolveurl",
	},
	{
		ID:           "script.gaia.externals",
		Name:         "Gaia Externals",
		Type:         TypeRequired,
		Help:         "Bundled native libraries used for compression and parsing.",
		Icon:         "externals.png",
		Dependencies: []string{"script.module.gaia.binaries"},
	},
	{
		ID:         "plugin.video.youtube",
		Name:       "YouTube",
		Type:       TypeRecommended,
		Help:       "Plays trailers and other promotional videos.",
		Icon:       "youtube.png",
		Repository: "repository.kodi.official",
	},
	{
		ID:   "script.elementum",
		Name: "Elementum",
		Type: TypeOptional,
		Help: "External torrent engine for peer-to-peer streams.",
		Icon: "elementum.png",
	},
	{
		ID:   "script.module.orion",
		Name: "Orion",
		Type: TypeOptional,
		Help: "Indexes cached stream links across providers.",
		Icon: "orion.png",
	},
}

// All returns the full registry.
func All() []Extension {
	return append([]Extension(nil), registry...)
}

// Required returns the companions the core cannot run without.
func Required() []Extension {
	return lo.Filter(registry, func(e Extension, _ int) bool {
		return e.Type == TypeRequired
	})
}

// Lookup finds an extension by addon id.
func Lookup(id string) (Extension, bool) {
	return lo.Find(registry, func(e Extension) bool {
		return e.ID == id
	})
}

// Enabled reports whether an addon is installed and switched on.
func Enabled(id string) bool {
	result, err := host.Current().JSONRPC("Addons.GetAddonDetails", map[string]any{
		"addonid":    id,
		"properties": []any{"enabled"},
	})
	if err != nil {
		return false
	}
	envelope, ok := result.(map[string]any)
	if !ok {
		return false
	}
	addon, ok := envelope["addon"].(map[string]any)
	if !ok {
		return false
	}
	return convert.Boolean(addon["enabled"])
}

// Enable switches an installed addon on.
func Enable(id string) error {
	return setEnabled(id, true)
}

// Disable switches an installed addon off.
func Disable(id string) error {
	return setEnabled(id, false)
}

func setEnabled(id string, enabled bool) error {
	_, err := host.Current().JSONRPC("Addons.SetAddonEnabled", map[string]any{
		"addonid": id,
		"enabled": enabled,
	})
	if err != nil {
		return fmt.Errorf("set addon %s enabled=%t: %w", id, enabled, err)
	}
	return nil
}

// Package playlist wraps the host's video playlist behind JSON-RPC.
package playlist

import (
	"fmt"

	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/host"
)

// The host keeps one playlist per media class; video is what the addon
// queues into.
const playlistVideo = 1

// Add appends a path to the queue.
func Add(path string) error {
	_, err := host.Current().JSONRPC("Playlist.Add", map[string]any{
		"playlistid": playlistVideo,
		"item":       map[string]any{"file": path},
	})
	if err != nil {
		return fmt.Errorf("playlist add: %w", err)
	}
	return nil
}

// Remove drops the entry at the given position.
func Remove(position int) error {
	_, err := host.Current().JSONRPC("Playlist.Remove", map[string]any{
		"playlistid": playlistVideo,
		"position":   position,
	})
	if err != nil {
		return fmt.Errorf("playlist remove: %w", err)
	}
	return nil
}

// Clear empties the queue.
func Clear() error {
	_, err := host.Current().JSONRPC("Playlist.Clear", map[string]any{
		"playlistid": playlistVideo,
	})
	if err != nil {
		return fmt.Errorf("playlist clear: %w", err)
	}
	return nil
}

// Items returns the queued file paths in order.
func Items() ([]string, error) {
	result, err := host.Current().JSONRPC("Playlist.GetItems", map[string]any{
		"playlistid": playlistVideo,
		"properties": []any{"file"},
	})
	if err != nil {
		return nil, fmt.Errorf("playlist items: %w", err)
	}

	envelope, ok := result.(map[string]any)
	if !ok {
		return nil, nil
	}
	entries, ok := envelope["items"].([]any)
	if !ok {
		return nil, nil
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if item, ok := entry.(map[string]any); ok {
			paths = append(paths, convert.String(item["file"]))
		}
	}
	return paths, nil
}

// Position reports the player's index into the queue, -1 when idle.
func Position() int {
	result, err := host.Current().JSONRPC("Player.GetProperties", map[string]any{
		"playerid":   playlistVideo,
		"properties": []any{"position"},
	})
	if err != nil {
		return -1
	}
	envelope, ok := result.(map[string]any)
	if !ok {
		return -1
	}
	if _, present := envelope["position"]; !present {
		return -1
	}
	return convert.Integer(envelope["position"])
}

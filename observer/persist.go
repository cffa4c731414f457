package observer

import (
	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/where"
	"github.com/metafates/gache"
)

// eventCacher persists the event ring across host restarts so a binge
// session interrupted by a reboot keeps its history.
var eventCacher = gache.New[[]Event](&gache.Options{
	Path:       where.Events(),
	FileSystem: &filesystem.GacheFs{},
})

// Persist snapshots the event ring to disk.
func Persist() error {
	return eventCacher.Set(Events())
}

// Restore loads the persisted event ring when the session has none yet.
func Restore() error {
	if host.Property(propertyEvents) != "" {
		return nil
	}
	events, expired, err := eventCacher.Get()
	if err != nil {
		return err
	}
	if expired || len(events) == 0 {
		return nil
	}
	host.SetProperty(propertyEvents, convert.JSONEncode(events))
	return nil
}

package host

import (
	"sync"

	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/where"
	"github.com/metafates/gache"
)

// Window properties are the host's process-wide string store surviving
// across addon invocations within one session. Headless they map to an
// in-process registry with a file-persisted snapshot for cross-invocation
// continuity.

var (
	propertyMutex sync.RWMutex
	properties    = map[string]string{}
)

// propertyCacher persists the property snapshot between invocations.
var propertyCacher = gache.New[map[string]string](&gache.Options{
	Path:       where.Properties(),
	FileSystem: &filesystem.GacheFs{},
})

// Property reads a window property, empty when unset.
func Property(name string) string {
	propertyMutex.RLock()
	defer propertyMutex.RUnlock()
	return properties[name]
}

// SetProperty writes a window property.
func SetProperty(name, value string) {
	propertyMutex.Lock()
	defer propertyMutex.Unlock()
	properties[name] = value
}

// ClearProperty removes a window property.
func ClearProperty(name string) {
	propertyMutex.Lock()
	defer propertyMutex.Unlock()
	delete(properties, name)
}

// ClearProperties removes every window property.
func ClearProperties() {
	propertyMutex.Lock()
	defer propertyMutex.Unlock()
	properties = map[string]string{}
}

// PersistProperties snapshots the property registry to disk so the next
// invocation can restore it.
func PersistProperties() error {
	propertyMutex.RLock()
	snapshot := make(map[string]string, len(properties))
	for name, value := range properties {
		snapshot[name] = value
	}
	propertyMutex.RUnlock()
	return propertyCacher.Set(snapshot)
}

// RestoreProperties loads the persisted snapshot, keeping any values already
// set in this invocation.
func RestoreProperties() error {
	snapshot, expired, err := propertyCacher.Get()
	if err != nil {
		return err
	}
	if expired || snapshot == nil {
		return nil
	}

	propertyMutex.Lock()
	defer propertyMutex.Unlock()
	for name, value := range snapshot {
		if _, taken := properties[name]; !taken {
			properties[name] = value
		}
	}
	return nil
}

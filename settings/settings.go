// Package settings implements the multi-tier, typed, versioned settings
// store every other subsystem configures itself from.
//
// Reads walk four tiers: the process-memory map, the window-property cache,
// the user settings file, and finally the declared default. Writes serialize
// on a process-wide mutex, update the memory map, invalidate the property
// cache, and persist either the settings file or the key-value database for
// structured payloads too large for the file.
package settings

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gaiakodi/gaiacore/constant"
	"github.com/gaiakodi/gaiacore/convert"
	"github.com/gaiakodi/gaiacore/filesystem"
	"github.com/gaiakodi/gaiacore/host"
	"github.com/gaiakodi/gaiacore/key"
	"github.com/gaiakodi/gaiacore/log"
	"github.com/gaiakodi/gaiacore/where"
	"github.com/spf13/viper"
)

// propertyCache keys the settings file snapshot in the window-property
// store so sibling invocations skip the parse.
const propertyCache = "gaia.settings.cache"

// Write retry policy: the host sporadically overwrites on-disk changes from
// its in-memory copy, so writes repeat until the file size matches or the
// deadline lapses.
var (
	writeDeadline = 2500 * time.Millisecond
	writeInterval = 250 * time.Millisecond
)

var (
	mutex  sync.RWMutex
	memory map[string]string
	loaded bool
)

// Setup loads the settings file into the memory tier and registers the
// declared defaults with the viper engine. Missing files are not an error;
// the store starts from defaults.
func Setup() error {
	viper.SetTypeByDefaultValue(true)
	for id, field := range Default {
		viper.SetDefault(id, field.Value)
	}

	mutex.Lock()
	defer mutex.Unlock()
	return loadLocked()
}

// loadLocked populates the memory map from the property cache or the file.
func loadLocked() error {
	memory = map[string]string{}
	loaded = true

	if cached := host.Property(propertyCache); cached != "" {
		if values, _, err := decodeFile([]byte(cached)); err == nil {
			memory = values
			return nil
		}
	}

	values, _, err := readFile(where.Settings())
	if err != nil {
		// A fresh profile has no settings file yet.
		return nil
	}
	memory = values

	if data, err := filesystem.API().ReadFile(where.Settings()); err == nil {
		host.SetProperty(propertyCache, string(data))
	}
	return nil
}

// ensure lazily loads the store so accessors work before Setup, honouring
// the lazy-initialization contract between subsystems.
func ensure() {
	mutex.RLock()
	ready := loaded
	mutex.RUnlock()
	if ready {
		return
	}
	mutex.Lock()
	if !loaded {
		_ = loadLocked()
	}
	mutex.Unlock()
}

// raw returns the stored string form of a setting and whether it exists in
// the user tier.
func raw(id string) (string, bool) {
	ensure()
	mutex.RLock()
	defer mutex.RUnlock()
	value, ok := memory[id]
	return value, ok
}

// Get returns a setting's string form, falling back to the declared
// default, then the empty string.
func Get(id string) string {
	if value, ok := raw(id); ok {
		return value
	}
	return convert.String(viper.Get(id))
}

// GetBoolean returns a setting coerced to bool.
func GetBoolean(id string) bool {
	return convert.Boolean(Get(id))
}

// GetInteger returns a setting coerced to int.
func GetInteger(id string) int {
	return convert.Integer(Get(id))
}

// GetInteger64 returns a setting parsed as int64. Byte-size settings exceed
// the platform int on 32-bit devices, so they must never pass through the
// int coercion.
func GetInteger64(id string) int64 {
	value, _ := strconv.ParseInt(Get(id), 10, 64)
	return value
}

// GetFloat returns a setting coerced to float64.
func GetFloat(id string) float64 {
	return convert.Float(Get(id))
}

// GetString returns a setting's string form.
func GetString(id string) string {
	return Get(id)
}

// GetList returns a JSON-array setting, nil when absent or malformed.
func GetList(id string) []any {
	decoded, _ := convert.JSONDecode(Get(id)).([]any)
	return decoded
}

// GetObject returns a JSON-object setting, nil when absent or malformed.
func GetObject(id string) map[string]any {
	return convert.JSONDecodeObject(Get(id))
}

// GetLabel returns the display companion of a structured setting.
func GetLabel(id string) string {
	return Get(id + key.SuffixLabel)
}

// Set writes a setting. Scalars are stored in string form, everything else
// as JSON. The label companion, when given, is written atomically with the
// primary value.
func Set(id string, value any, label ...string) error {
	encoded := encodeValue(value)

	mutex.Lock()
	defer mutex.Unlock()
	if !loaded {
		_ = loadLocked()
	}

	memory[id] = encoded
	for _, l := range label {
		memory[id+key.SuffixLabel] = l
	}
	host.ClearProperty(propertyCache)

	return persistLocked()
}

// SetBoolean, SetInteger, SetFloat and SetString are typed conveniences
// over Set.
func SetBoolean(id string, value bool) error  { return Set(id, value) }
func SetInteger(id string, value int) error   { return Set(id, value) }
func SetFloat(id string, value float64) error { return Set(id, value) }
func SetString(id string, value string) error { return Set(id, value) }
func SetObject(id string, value any) error    { return Set(id, value) }
func SetList(id string, value []any) error    { return Set(id, value) }

// Remove deletes a setting and its companions from the user tier.
func Remove(id string) error {
	mutex.Lock()
	defer mutex.Unlock()
	if !loaded {
		_ = loadLocked()
	}

	delete(memory, id)
	delete(memory, id+key.SuffixLabel)
	host.ClearProperty(propertyCache)

	if err := deleteData(id); err != nil {
		log.Errorf("settings: delete data %s: %v", id, err)
	}
	return persistLocked()
}

// encodeValue renders a value into its stored string form.
func encodeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool, int, int32, int64, float32, float64:
		return convert.String(v)
	default:
		return convert.JSONEncode(v)
	}
}

// persistLocked writes the settings file, retrying until its size changes
// or the deadline lapses. Callers hold the write mutex.
func persistLocked() error {
	encoded, err := encodeFile(memory, constant.SchemaVersion)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	path := where.Settings()
	deadline := time.Now().Add(writeDeadline)
	verified := false
	for {
		if err = filesystem.API().WriteFile(path, encoded, 0o644); err == nil {
			// The host can clobber the file from its in-memory copy moments
			// after the write; only a matching on-disk size counts.
			if stat, statErr := filesystem.API().Stat(path); statErr == nil && stat.Size() == int64(len(encoded)) {
				verified = true
				break
			}
		}
		if time.Now().After(deadline) {
			break
		}
		time.Sleep(writeInterval)
	}
	if err != nil {
		log.Errorf("settings: persist: %v", err)
	} else if !verified {
		log.Errorf("settings: persist: write to %s not verified within %s", path, writeDeadline)
	}
	return err
}

// Reset clears every cache tier. With keepSettings the memory map survives
// so an invoker restart skips the file parse at the cost of staleness after
// an external settings change.
func Reset(keepSettings bool) {
	mutex.Lock()
	defer mutex.Unlock()
	host.ClearProperty(propertyCache)
	if !keepSettings {
		memory = map[string]string{}
		loaded = false
	}
}

// Declared reports whether an identifier exists in the user tier.
func Declared(id string) bool {
	_, ok := raw(id)
	return ok
}

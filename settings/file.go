package settings

import (
	"encoding/xml"
	"sort"
	"strconv"
	"strings"

	"github.com/gaiakodi/gaiacore/filesystem"
)

// The user settings file is a flat XML list of settings, matching the
// format the host itself maintains:
//
//	<settings version="600">
//	  <setting id="playback.time.wait">120</setting>
//	</settings>
//
// Scalars are stored in string form; structured values as JSON.

type settingEntry struct {
	XMLName xml.Name `xml:"setting"`
	ID      string   `xml:"id,attr"`
	Value   string   `xml:",chardata"`
}

type settingsFile struct {
	XMLName xml.Name       `xml:"settings"`
	Version int            `xml:"version,attr"`
	Entries []settingEntry `xml:"setting"`
}

// encodeFile renders the settings map as the flat XML document, entries
// sorted by identifier for stable diffs.
func encodeFile(values map[string]string, version int) ([]byte, error) {
	file := settingsFile{Version: version}
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		file.Entries = append(file.Entries, settingEntry{ID: id, Value: values[id]})
	}

	encoded, err := xml.MarshalIndent(file, "", "    ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(encoded, '\n')...), nil
}

// decodeFile parses the flat XML document into a settings map.
func decodeFile(data []byte) (map[string]string, int, error) {
	var file settingsFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, 0, err
	}
	values := make(map[string]string, len(file.Entries))
	for _, entry := range file.Entries {
		values[entry.ID] = entry.Value
	}
	return values, file.Version, nil
}

// readFile loads and parses a settings file from disk.
func readFile(path string) (map[string]string, int, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	return decodeFile(data)
}

// fileVersion extracts the schema version attribute, 0 when unparsable.
func fileVersion(data []byte) int {
	var file settingsFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return 0
	}
	if file.Version > 0 {
		return file.Version
	}
	// Older archives kept the version as an internal setting instead of an
	// attribute; compact "6.0.0" style values to an integer.
	for _, entry := range file.Entries {
		if entry.ID == "internal.version" {
			return compactVersion(entry.Value)
		}
	}
	return 0
}

// compactVersion reduces a dotted version string to an integer, "6.0.0"
// becoming 600. Unparsable parts count as zero.
func compactVersion(value string) int {
	compact := 0
	for i, part := range strings.SplitN(value, ".", 3) {
		parsed, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			parsed = 0
		}
		switch i {
		case 0:
			compact += parsed * 100
		case 1:
			compact += parsed * 10
		default:
			compact += parsed
		}
	}
	return compact
}

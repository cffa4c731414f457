// Package country provides the static catalog of countries with a
// case-folded name and code index.
package country

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Frequency buckets how often a country appears in provider metadata.
type Frequency int

const (
	FrequencyNone Frequency = iota
	FrequencyUncommon
	FrequencyOccasional
	FrequencyCommon
)

// Record is an immutable country catalog entry.
type Record struct {
	Code2 string // ISO-3166 alpha-2
	Code3 string // ISO-3166 alpha-3

	Name      string   // English name
	Names     []string // variant and translated name forms
	Language  string   // primary ISO-639-1 language
	Frequency Frequency
}

var folder = cases.Fold()

func fold(s string) string {
	return folder.String(strings.TrimSpace(s))
}

var (
	indexOnce sync.Once
	index     map[string]*Record
)

func buildIndex() {
	index = make(map[string]*Record, len(catalog)*4)
	for i := range catalog {
		record := &catalog[i]
		keys := []string{record.Code2, record.Code3, record.Name}
		keys = append(keys, record.Names...)
		for _, k := range keys {
			folded := fold(k)
			if folded == "" {
				continue
			}
			if _, taken := index[folded]; !taken {
				index[folded] = record
			}
		}
	}
}

// Lookup resolves a code or name form, in any case, to its record. Returns
// nil when unknown.
func Lookup(query string) *Record {
	indexOnce.Do(buildIndex)
	return index[fold(query)]
}

// All returns the full catalog.
func All() []Record {
	return catalog
}

// Common returns the records in the common frequency bucket.
func Common() []Record {
	var result []Record
	for _, record := range catalog {
		if record.Frequency == FrequencyCommon {
			result = append(result, record)
		}
	}
	return result
}

// Package language provides the static catalog of languages with a
// multi-script name index.
//
// Every record is reachable by any of its ISO codes or any of its name
// forms, folded case-insensitively. A fuzzy fallback covers misspelled
// queries from provider metadata.
package language

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Frequency buckets how often a language appears in provider metadata.
type Frequency int

const (
	FrequencyNone Frequency = iota
	FrequencyUncommon
	FrequencyOccasional
	FrequencyCommon
)

// Record is an immutable language catalog entry.
type Record struct {
	Code1 string // ISO-639-1
	Code2 string // ISO-639-2/B
	Code3 string // ISO-639-2/T or ISO-639-3

	Name      string   // English name
	Native    string   // endonym
	Names     []string // translated and variant name forms
	Country   string   // representative ISO-3166 alpha-2 country
	Frequency Frequency
}

// Codes returns the record's non-empty ISO codes.
func (r *Record) Codes() []string {
	var codes []string
	for _, code := range []string{r.Code1, r.Code2, r.Code3} {
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

var folder = cases.Fold()

// fold case-folds a name form for index keys, trimming surrounding space.
func fold(s string) string {
	return folder.String(strings.TrimSpace(s))
}

var (
	indexOnce sync.Once
	index     map[string]*Record
	indexKeys []string
)

// buildIndex constructs the case-folded inverted index over every code and
// name form. Earlier catalog entries win on key collisions so common
// languages shadow rare ones sharing a variant name.
func buildIndex() {
	index = make(map[string]*Record, len(catalog)*6)
	for i := range catalog {
		record := &catalog[i]
		keys := append(record.Codes(), record.Name, record.Native)
		keys = append(keys, record.Names...)
		for _, k := range keys {
			folded := fold(k)
			if folded == "" {
				continue
			}
			if _, taken := index[folded]; !taken {
				index[folded] = record
				indexKeys = append(indexKeys, folded)
			}
		}
	}
}

// Lookup resolves a code or name form, in any script or case, to its
// record. Returns nil when unknown.
func Lookup(query string) *Record {
	indexOnce.Do(buildIndex)
	return index[fold(query)]
}

// Search resolves a query to a record, falling back to fuzzy matching over
// the index when no exact form matches.
func Search(query string) *Record {
	if record := Lookup(query); record != nil {
		return record
	}

	folded := fold(query)
	if folded == "" {
		return nil
	}

	ranks := fuzzy.RankFindFold(folded, indexKeys)
	if len(ranks) == 0 {
		return nil
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
		}
	}
	return index[best.Target]
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

// Tag parses the record's primary code into a BCP-47 tag for callers
// interfacing with locale-aware libraries. Returns language.Und on failure.
func (r *Record) Tag() language.Tag {
	tag, err := language.Parse(r.Code1)
	if err != nil {
		return language.Und
	}
	return tag
}

// Package expression wraps regular-expression evaluation behind a compiled-pattern memoization table.
//
// Patterns are case-insensitive by default, mirroring how loosely formatted
// provider data is matched throughout the addon. The memo table is keyed by
// (pattern, flags) so repeated evaluations of hot patterns skip compilation.
package expression

import (
	"regexp"
	"strings"
	"sync"
)

// Flags alter pattern compilation.
type Flags int

const (
	// FlagNone compiles the pattern verbatim, case-sensitively.
	FlagNone Flags = 0
	// FlagInsensitive compiles the pattern case-insensitively. Default.
	FlagInsensitive Flags = 1 << iota
	// FlagMultiline lets ^ and $ match at line boundaries.
	FlagMultiline
	// FlagDotAll lets . match newlines.
	FlagDotAll
)

type memoKey struct {
	pattern string
	flags   Flags
}

var (
	memoMutex sync.RWMutex
	memo      = map[memoKey]*regexp.Regexp{}
)

// Compile returns a compiled pattern, serving repeats from the memo table.
// An invalid pattern yields nil.
func Compile(pattern string, flags Flags) *regexp.Regexp {
	k := memoKey{pattern: pattern, flags: flags}

	memoMutex.RLock()
	compiled, ok := memo[k]
	memoMutex.RUnlock()
	if ok {
		return compiled
	}

	var prefix strings.Builder
	if flags&FlagInsensitive != 0 {
		prefix.WriteString("i")
	}
	if flags&FlagMultiline != 0 {
		prefix.WriteString("m")
	}
	if flags&FlagDotAll != 0 {
		prefix.WriteString("s")
	}

	full := pattern
	if prefix.Len() > 0 {
		full = "(?" + prefix.String() + ")" + pattern
	}

	compiled, err := regexp.Compile(full)
	if err != nil {
		return nil
	}

	memoMutex.Lock()
	memo[k] = compiled
	memoMutex.Unlock()
	return compiled
}

// Reset drops every memoized pattern. Used on invoker reuse.
func Reset() {
	memoMutex.Lock()
	memo = map[memoKey]*regexp.Regexp{}
	memoMutex.Unlock()
}

// Match reports whether the pattern matches anywhere in the input.
func Match(pattern, input string) bool {
	compiled := Compile(pattern, FlagInsensitive)
	return compiled != nil && compiled.MatchString(input)
}

// Search returns the first full match, or the empty string when absent.
func Search(pattern, input string) string {
	compiled := Compile(pattern, FlagInsensitive)
	if compiled == nil {
		return ""
	}
	return compiled.FindString(input)
}

// Extract returns the contents of capture group n of the first match, or the
// empty string when the pattern does not match or lacks the group.
func Extract(pattern, input string, group int) string {
	compiled := Compile(pattern, FlagInsensitive)
	if compiled == nil {
		return ""
	}
	match := compiled.FindStringSubmatch(input)
	if match == nil || group < 0 || group >= len(match) {
		return ""
	}
	return match[group]
}

// ExtractAll returns group n of every match.
func ExtractAll(pattern, input string, group int) []string {
	compiled := Compile(pattern, FlagInsensitive)
	if compiled == nil {
		return nil
	}
	var results []string
	for _, match := range compiled.FindAllStringSubmatch(input, -1) {
		if group >= 0 && group < len(match) {
			results = append(results, match[group])
		}
	}
	return results
}

// Replace substitutes every match with the replacement. An invalid pattern
// returns the input unchanged.
func Replace(pattern, input, replacement string) string {
	compiled := Compile(pattern, FlagInsensitive)
	if compiled == nil {
		return input
	}
	return compiled.ReplaceAllString(input, replacement)
}

// ReplaceGroup substitutes only the contents of capture group n inside every
// match, leaving the surrounding match text intact. Offsets are computed per
// match so earlier substitutions do not shift later ones.
func ReplaceGroup(pattern, input string, group int, replacement string) string {
	compiled := Compile(pattern, FlagInsensitive)
	if compiled == nil {
		return input
	}

	matches := compiled.FindAllStringSubmatchIndex(input, -1)
	if matches == nil {
		return input
	}

	var b strings.Builder
	last := 0
	for _, match := range matches {
		if group < 0 || 2*group+1 >= len(match) {
			continue
		}
		start, end := match[2*group], match[2*group+1]
		if start < 0 {
			continue
		}
		b.WriteString(input[last:start])
		b.WriteString(replacement)
		last = end
	}
	b.WriteString(input[last:])
	return b.String()
}

// Remove deletes every match from the input.
func Remove(pattern, input string) string {
	return Replace(pattern, input, "")
}

// Split divides the input around every match. An invalid pattern yields the
// whole input as the single element.
func Split(pattern, input string) []string {
	compiled := Compile(pattern, FlagInsensitive)
	if compiled == nil {
		return []string{input}
	}
	return compiled.Split(input, -1)
}

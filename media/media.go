// Package media implements the closed tag algebra of media kinds.
//
// A kind is a "-"-joined tag string such as "show-mini-recent". Primitives
// (film, show, episode, ...) compose with niche, topic, mood, age, quality
// and region modifiers. All classification reduces to token membership, and
// the composite classes are fixed token bags tested by intersection.
package media

import "strings"

// Kind is a "-"-joined media tag string.
type Kind = string

// Separator joins tags inside a Kind.
const Separator = "-"

// Primitive kinds.
const (
	Film    = "film"
	Set     = "set"
	Show    = "show"
	Season  = "season"
	Episode = "episode"
	Person  = "person"
	Mixed   = "mixed"
	Pack    = "pack"
)

// Niche modifiers.
const (
	Short      = "short"
	Special    = "special"
	Mini       = "mini"
	Television = "television"
)

// Topic modifiers.
const (
	Anime  = "anime"
	Docu   = "docu"
	Family = "family"
	Music  = "music"
	Sport  = "sport"
	Telly  = "telly"
	Soap   = "soap"
)

// Age-bucket modifiers.
const (
	New    = "new"
	Home   = "home"
	Recent = "recent"
	Aged   = "aged"
)

// Quality-bucket modifiers.
const (
	Great = "great"
	Good  = "good"
	Fair  = "fair"
	Bad   = "bad"
)

// Audience-age modifiers derived from certificate thresholds.
const (
	Kid  = "kid"
	Teen = "teen"
)

// bag is a fixed token set used by the composite class predicates.
type bag map[string]struct{}

func newBag(tokens ...string) bag {
	b := make(bag, len(tokens))
	for _, token := range tokens {
		b[token] = struct{}{}
	}
	return b
}

func (b bag) contains(token string) bool {
	_, ok := b[token]
	return ok
}

// Composite class bags. Membership of any token qualifies the kind.
var (
	bagFilm      = newBag(Film, Set)
	bagSerie     = newBag(Show, Season, Episode, Pack)
	bagPrimitive = newBag(Film, Set, Show, Season, Episode, Person, Mixed, Pack)
	bagNiche     = newBag(Short, Special, Mini, Television)
	bagTopic     = newBag(Anime, Docu, Family, Music, Sport, Telly, Soap)
	bagAge       = newBag(New, Home, Recent, Aged)
	bagQuality   = newBag(Great, Good, Fair, Bad)
	bagAudience  = newBag(Kid, Teen)
)

// Tokens splits a kind into its ordered tags. Empty input yields nil.
func Tokens(kind Kind) []string {
	if kind == "" {
		return nil
	}
	return strings.Split(kind, Separator)
}

// Join composes tags into a kind, skipping empties.
func Join(tokens ...string) Kind {
	var kept []string
	for _, token := range tokens {
		if token != "" {
			kept = append(kept, token)
		}
	}
	return strings.Join(kept, Separator)
}

// Has reports whether the kind carries the exact tag.
func Has(kind Kind, tag string) bool {
	for _, token := range Tokens(kind) {
		if token == tag {
			return true
		}
	}
	return false
}

// intersects reports whether any token of the kind is in the bag.
func intersects(kind Kind, b bag) bool {
	for _, token := range Tokens(kind) {
		if b.contains(token) {
			return true
		}
	}
	return false
}

// Add appends a tag, returning a new kind. Adding a tag already present
// returns the kind unchanged.
func Add(kind Kind, tag string) Kind {
	if tag == "" || Has(kind, tag) {
		return kind
	}
	if kind == "" {
		return tag
	}
	return kind + Separator + tag
}

// Remove deletes a tag, returning a new kind and preserving tag order.
func Remove(kind Kind, tag string) Kind {
	tokens := Tokens(kind)
	kept := tokens[:0:0]
	for _, token := range tokens {
		if token != tag {
			kept = append(kept, token)
		}
	}
	return strings.Join(kept, Separator)
}

// Type returns the first primitive tag of the kind, or the empty string.
func Type(kind Kind) string {
	for _, token := range Tokens(kind) {
		if bagPrimitive.contains(token) {
			return token
		}
	}
	return ""
}

// Index returns the position of a tag within the kind, -1 when absent.
func Index(kind Kind, tag string) int {
	for i, token := range Tokens(kind) {
		if token == tag {
			return i
		}
	}
	return -1
}

// Classification predicates. Each reduces to token membership against a
// fixed bag.

func IsFilm(kind Kind) bool    { return intersects(kind, bagFilm) }
func IsSerie(kind Kind) bool   { return intersects(kind, bagSerie) }
func IsShow(kind Kind) bool    { return Has(kind, Show) }
func IsSeason(kind Kind) bool  { return Has(kind, Season) }
func IsEpisode(kind Kind) bool { return Has(kind, Episode) }
func IsSet(kind Kind) bool     { return Has(kind, Set) }
func IsPerson(kind Kind) bool  { return Has(kind, Person) }
func IsMixed(kind Kind) bool   { return Has(kind, Mixed) }
func IsPack(kind Kind) bool    { return Has(kind, Pack) }

func IsShort(kind Kind) bool      { return Has(kind, Short) }
func IsSpecial(kind Kind) bool    { return Has(kind, Special) }
func IsMini(kind Kind) bool       { return Has(kind, Mini) }
func IsTelevision(kind Kind) bool { return Has(kind, Television) }

func IsNiche(kind Kind) bool    { return intersects(kind, bagNiche) }
func IsTopic(kind Kind) bool    { return intersects(kind, bagTopic) }
func IsAge(kind Kind) bool      { return intersects(kind, bagAge) }
func IsQuality(kind Kind) bool  { return intersects(kind, bagQuality) }
func IsAudience(kind Kind) bool { return intersects(kind, bagAudience) }

func IsAnime(kind Kind) bool  { return Has(kind, Anime) }
func IsDocu(kind Kind) bool   { return Has(kind, Docu) }
func IsFamily(kind Kind) bool { return Has(kind, Family) }
func IsMusic(kind Kind) bool  { return Has(kind, Music) }
func IsSport(kind Kind) bool  { return Has(kind, Sport) }
func IsTelly(kind Kind) bool  { return Has(kind, Telly) }
func IsSoap(kind Kind) bool   { return Has(kind, Soap) }

// Package audience implements the age-rating certificate ladder.
//
// Certificates cover the theatrical (MPAA) and television ladders with a
// crosswalk between the two, a regex normalizer for regional codes and an
// age-threshold selector with three selection modes.
package audience

import (
	"github.com/gaiakodi/gaiacore/expression"
	"github.com/gaiakodi/gaiacore/media"
)

// Certificate is a canonical lowercase rating code.
type Certificate = string

// Theatrical ladder.
const (
	CertificateG    = "g"
	CertificatePG   = "pg"
	CertificatePG13 = "pg13"
	CertificateR    = "r"
	CertificateNC17 = "nc17"
)

// Television ladder.
const (
	CertificateTVY  = "tvy"
	CertificateTVY7 = "tvy7"
	CertificateTVG  = "tvg"
	CertificateTVPG = "tvpg"
	CertificateTV14 = "tv14"
	CertificateTVMA = "tvma"
)

// Audience age thresholds used by the Allowed predicates and the media
// audience niches.
const (
	AgeKid  = 12
	AgeTeen = 16
)

type entry struct {
	certificate Certificate
	age         int
	serie       bool
	label       string
}

// ladder is ordered by ascending age within each media class.
var ladder = []entry{
	{CertificateG, 0, false, "G"},
	{CertificatePG, 10, false, "PG"},
	{CertificatePG13, 13, false, "PG-13"},
	{CertificateR, 17, false, "R"},
	{CertificateNC17, 18, false, "NC-17"},
	{CertificateTVY, 0, true, "TV-Y"},
	{CertificateTVG, 0, true, "TV-G"},
	{CertificateTVY7, 7, true, "TV-Y7"},
	{CertificateTVPG, 10, true, "TV-PG"},
	{CertificateTV14, 14, true, "TV-14"},
	{CertificateTVMA, 17, true, "TV-MA"},
}

// crosswalk maps each certificate to its counterpart on the other ladder so
// lookups against either set return a hit.
var crosswalk = map[Certificate]Certificate{
	CertificateG:    CertificateTVG,
	CertificatePG:   CertificateTVPG,
	CertificatePG13: CertificateTV14,
	CertificateR:    CertificateTVMA,
	CertificateNC17: CertificateTVMA,
	CertificateTVY:  CertificateG,
	CertificateTVG:  CertificateG,
	CertificateTVY7: CertificateG,
	CertificateTVPG: CertificatePG,
	CertificateTV14: CertificatePG13,
	CertificateTVMA: CertificateR,
}

// conversions normalizes regional and loosely formatted codes to the
// canonical ladder. First match wins; patterns are case-insensitive.
var conversions = []struct {
	pattern     string
	film, serie Certificate
}{
	{`^tv[\s\-_]*y7`, CertificateG, CertificateTVY7},
	{`^tv[\s\-_]*y`, CertificateG, CertificateTVY},
	{`^tv[\s\-_]*g`, CertificateG, CertificateTVG},
	{`^tv[\s\-_]*pg`, CertificatePG, CertificateTVPG},
	{`^tv[\s\-_]*14`, CertificatePG13, CertificateTV14},
	{`^tv[\s\-_]*ma`, CertificateR, CertificateTVMA},
	{`^nc[\s\-_]*17`, CertificateNC17, CertificateTVMA},
	{`^pg[\s\-_]*13`, CertificatePG13, CertificateTV14},
	{`^pg`, CertificatePG, CertificateTVPG},
	{`^(g|u|uc|0\+?|all)$`, CertificateG, CertificateTVG},
	{`^(r|x)$`, CertificateR, CertificateTVMA},
	{`^(m|ma|18\+?|r18|x18|ao)`, CertificateNC17, CertificateTVMA},
	{`^(12a?|13\+?|t)$`, CertificatePG13, CertificateTV14},
	{`^(14\+?|15|16\+?)$`, CertificateR, CertificateTV14},
	{`^(7\+?|y7)$`, CertificateG, CertificateTVY7},
	{`^(3\+?|6\+?|y)$`, CertificateG, CertificateTVY},
	{`^10\+?$`, CertificatePG, CertificateTVPG},
}

// Age returns the minimum viewer age of a certificate, -1 for unknown codes.
func Age(certificate Certificate) int {
	for _, e := range ladder {
		if e.certificate == certificate {
			return e.age
		}
	}
	return -1
}

// Label returns the display form of a certificate, empty for unknown codes.
func Label(certificate Certificate) string {
	for _, e := range ladder {
		if e.certificate == certificate {
			return e.label
		}
	}
	return ""
}

// Crosswalk returns the counterpart certificate on the other ladder.
func Crosswalk(certificate Certificate) Certificate {
	return crosswalk[certificate]
}

// Convert normalizes a region-specific or loosely formatted code to the
// canonical ladder for the given media kind. Unrecognized codes yield the
// empty string.
func Convert(code string, kind media.Kind) Certificate {
	for _, c := range conversions {
		if expression.Match(c.pattern, code) {
			if media.IsSerie(kind) {
				return c.serie
			}
			return c.film
		}
	}
	return ""
}

// Selection chooses how Select picks certificates against a threshold.
type Selection int

const (
	// SelectionAll returns every certificate at or below the threshold.
	SelectionAll Selection = iota
	// SelectionExclusive returns certificates strictly between the previous
	// ladder threshold and the given one, isolating a single audience band.
	SelectionExclusive
	// SelectionSingle returns only the highest certificate at or below the
	// threshold.
	SelectionSingle
)

// Select returns the certificates matching an age threshold for a media
// kind. Thresholds below the ladder floor yield nil.
func Select(age int, mode Selection, kind media.Kind) []Certificate {
	serie := media.IsSerie(kind)

	var eligible []entry
	for _, e := range ladder {
		if e.serie == serie && e.age <= age {
			eligible = append(eligible, e)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	switch mode {
	case SelectionSingle:
		highest := eligible[0]
		for _, e := range eligible[1:] {
			if e.age > highest.age {
				highest = e
			}
		}
		return []Certificate{highest.certificate}
	case SelectionExclusive:
		highest := 0
		for _, e := range eligible {
			if e.age > highest {
				highest = e.age
			}
		}
		previous := -1
		for _, e := range eligible {
			if e.age < highest && e.age > previous {
				previous = e.age
			}
		}
		var result []Certificate
		for _, e := range eligible {
			if e.age > previous {
				result = append(result, e.certificate)
			}
		}
		return result
	default:
		result := make([]Certificate, 0, len(eligible))
		for _, e := range eligible {
			result = append(result, e.certificate)
		}
		return result
	}
}

// allowed reports whether a raw code, once normalized against either ladder,
// sits at or below the age threshold.
func allowed(code string, age int) bool {
	certificate := Convert(code, media.Film)
	if certificate == "" {
		certificate = Convert(code, media.Show)
	}
	certificateAge := Age(certificate)
	return certificateAge >= 0 && certificateAge <= age
}

// AllowedKid reports whether content carrying the code is suitable for kids.
func AllowedKid(code string) bool {
	return allowed(code, AgeKid)
}

// AllowedTeen reports whether content carrying the code is suitable for teens.
func AllowedTeen(code string) bool {
	return allowed(code, AgeTeen)
}

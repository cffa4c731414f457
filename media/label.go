package media

import "strings"

// labels maps tags to their display form. Tags absent from the table are
// title-cased verbatim.
var labels = map[string]string{
	Film:       "Movie",
	Set:        "Collection",
	Show:       "Show",
	Season:     "Season",
	Episode:    "Episode",
	Person:     "Person",
	Mixed:      "Mixed",
	Pack:       "Season Pack",
	Short:      "Short Film",
	Special:    "Special",
	Mini:       "Mini-Series",
	Television: "TV Movie",
	Anime:      "Anime",
	Docu:       "Documentary",
	Family:     "Family",
	Music:      "Music",
	Sport:      "Sport",
	Telly:      "Telenovela",
	Soap:       "Soap Opera",
	Kid:        "Kids",
	Teen:       "Teens",
}

// Label renders a single tag for display.
func Label(tag string) string {
	if label, ok := labels[tag]; ok {
		return label
	}
	if tag == "" {
		return ""
	}
	return strings.ToUpper(tag[:1]) + tag[1:]
}

// LabelKind renders a full kind for display, joining tag labels with a
// separator suited to breadcrumbs and list items.
func LabelKind(kind Kind) string {
	tokens := Tokens(kind)
	rendered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		rendered = append(rendered, Label(token))
	}
	return strings.Join(rendered, " ")
}

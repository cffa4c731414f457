package command

import (
	"strings"

	"github.com/gaiakodi/gaiacore/convert"
)

// The navigation breadcrumb is a comma-separated path of menu labels
// carried in every envelope so the skin can render "Movies › Discover ›
// Years" even after a single-level jump.

const navigationSeparator = ","

// Navigation extracts the breadcrumb of a decoded envelope.
func Navigation(parameters map[string]any) []string {
	raw := convert.String(parameters[ParameterNavigation])
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, navigationSeparator)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// WithNavigation returns a copy of the parameters carrying the breadcrumb
// extended by one more label.
func WithNavigation(parameters map[string]any, label string) map[string]any {
	extended := make(map[string]any, len(parameters)+1)
	for name, value := range parameters {
		extended[name] = value
	}

	crumbs := Navigation(parameters)
	if label != "" {
		crumbs = append(crumbs, label)
	}
	extended[ParameterNavigation] = strings.Join(crumbs, navigationSeparator)
	return extended
}

// NavigationLabel renders the breadcrumb for display.
func NavigationLabel(parameters map[string]any) string {
	return strings.Join(Navigation(parameters), " › ")
}

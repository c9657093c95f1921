package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var nonSlugRegex = regexp.MustCompile(`[^a-z0-9-]`)
var visibleNameRegex = regexp.MustCompile(`^[A-Za-z0-9\s-]+$`)

// Slug turns a display name into a stable technical identifier:
// lowercased, whitespace runs become single hyphens, everything
// outside [a-z0-9-] is stripped.
func Slug(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "-")
	return nonSlugRegex.ReplaceAllString(name, "")
}

// ValidVisibleName reports whether a display name only contains
// letters, digits, whitespace and hyphens.
func ValidVisibleName(name string) bool {
	return visibleNameRegex.MatchString(name)
}

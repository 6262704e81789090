package export

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumRuns = regexp.MustCompile(`[^a-z0-9]+`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Slugify converts a free-text display name into the canonical
// lowercase-hyphen identifier used as a join key across the legacy data
// sources. Lowercases, collapses every run of non-alphanumeric characters to
// a single space, trims, joins remaining whitespace runs with hyphens, and
// drops the literal "-tbc" marker some legacy names carry.
//
// Accented characters are dropped by the character class, not transliterated.
// The function is idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonAlphanumRuns.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = whitespaceRuns.ReplaceAllString(s, "-")
	return strings.Replace(s, "-tbc", "", 1)
}

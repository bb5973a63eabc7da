package content

import (
	"regexp"
	"strings"
)

var reValidSlug = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
var reSlugJunk = regexp.MustCompile(`[^a-z0-9]+`)
var reSlugDashes = regexp.MustCompile(`-+`)

// NormalizeSlug turns arbitrary input into a url-safe slug: lowercase,
// non-alphanumeric runs collapsed to single dashes, leading/trailing dashes
// trimmed. Normalizing is idempotent.
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reSlugJunk.ReplaceAllString(s, "-")
	s = reSlugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func IsValidSlug(s string) bool {
	return reValidSlug.MatchString(s)
}

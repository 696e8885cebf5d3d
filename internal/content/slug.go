package content

import (
	"regexp"
	"strings"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify converts a title into a URL-safe slug: lowercase, stripped
// of non-alphanumerics, spaces replaced with dashes, runs of dashes
// collapsed.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugCollapse.ReplaceAllString(s, "-")
}

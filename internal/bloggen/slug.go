package bloggen

import (
	"regexp"
	"strings"
)

var slugRunPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a post title into a URL-safe slug: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugRunPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

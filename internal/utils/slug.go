package utils

import (
	"regexp"
	"strings"
)

var slugReplacer = strings.NewReplacer("'", "", "&", " and ", "/", " ")

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashRun = regexp.MustCompile(`-+`)
)

// Slugify reduces a title to lowercase a-z, 0-9 and single dashes, suitable
// for a stable URL path segment. Ampersands become "and" so joined titles
// stay readable.
func Slugify(input string) string {
	s := slugReplacer.Replace(strings.ToLower(strings.TrimSpace(input)))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugDashRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

package services

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives a URL slug from a display name: lowercased, with
// every whitespace run collapsed to a single hyphen.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return whitespaceRun.ReplaceAllString(s, "-")
}

package subtitle

import (
	"regexp"
	"strings"
)

// Markup tags are stripped greedily: a '<' up to the next '>' is removed,
// unbalanced markup is tolerated best-effort. Bare '<' or '>' characters
// that never form a tag span are kept.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Clean strips markup tags from subtitle text, collapses whitespace runs to
// single spaces, and trims the result.
func Clean(text string) string {
	text = tagPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

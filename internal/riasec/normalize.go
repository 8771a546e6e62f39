package riasec

import (
	"regexp"
	"strings"
)

var (
	separatorRe  = regexp.MustCompile(`[-_/\\.,;:|]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// normalize lowercases text and flattens common separators to single spaces
// so that indicator phrases match punctuation-insensitively.
// "Hands-On / Technical" → "hands on technical".
func normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = separatorRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

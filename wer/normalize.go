package wer

import (
	"regexp"
	"strings"
)

var (
	punctRe = regexp.MustCompile(`[!"#$%&'()*+,\-./:;<=>?@[\]^_` + "`" + `{|}~\\]`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, strips ASCII punctuation and collapses
// whitespace runs into single spaces. Punctuation is removed outright,
// so "it's" becomes "its", not "it s".
//
// Scoring never normalizes on its own; callers opt in before handing
// texts over.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = punctRe.ReplaceAllString(text, "")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// NormalizeAll normalizes every text, returning a new slice in the
// same order.
func NormalizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = Normalize(t)
	}
	return out
}

package goquery

import "regexp"

// posPattern matches the part of speech as the emphasized word that
// follows a backslash-delimited pronunciation, e.g.
//
//	\ri-ZILE\ &#149; <em>verb</em>
//
// The pattern is lexical: the feed marks the part of speech
// typographically, not structurally, so there is no element to select.
var posPattern = regexp.MustCompile(`\\[^\\]+\\[^<]*<em>(\w+)</em>`)

// matchPartOfSpeech finds the grammatical category in the raw
// description markup.
func matchPartOfSpeech(description string) (string, bool) {
	m := posPattern.FindStringSubmatch(description)
	if m == nil {
		return "", false
	}
	return m[1], true
}

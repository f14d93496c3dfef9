// Package goquery implements word extraction from feed entry markup.
//
// The feed provider does not publish a grammar for the entry
// description and its shape drifts over time, so extraction runs an
// ordered chain of independent matchers with first-match-wins
// semantics. Structural matchers parse the markup leniently through
// goquery; lexical matchers recognize the feed's typographic
// conventions in the raw text. A matcher that finds nothing lets its
// field degrade to an empty string instead of failing the extraction.
package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/wotd"
)

// Ensure Extractor implements wotd.Extractor at compile time.
var _ wotd.Extractor = (*Extractor)(nil)

// Extractor assembles a word record from a feed entry.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the entry's description markup and assembles the word
// record. It fails only when the entry carries no headword; every other
// field degrades to an empty string when no matcher recognizes it.
func (e *Extractor) Extract(entry *wotd.Entry) (*wotd.Word, error) {
	if entry == nil {
		return nil, wotd.Errorf(wotd.EINVALID, "entry required")
	}

	headword := strings.TrimSpace(entry.Title)
	if headword == "" {
		return nil, wotd.Errorf(wotd.EINVALID, "missing headword: entry title is empty")
	}

	word := &wotd.Word{Headword: headword}
	if pos, ok := matchPartOfSpeech(entry.Description); ok {
		word.PartOfSpeech = pos
	}
	word.Definition = capitalize(extractDefinition(entry.Description, headword))
	if example, ok := matchExample(entry.Description); ok {
		word.Example = example
	}

	return word, nil
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

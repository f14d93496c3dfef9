package wotd

import (
	"strings"
	"unicode/utf8"
)

// Default message budgets, in bytes. SMS segments are ~160 characters;
// the definition cap keeps the headline readable on one screen and the
// message cap keeps the whole text inside two segments.
const (
	DefaultDefinitionCap = 120
	DefaultMessageCap    = 300
)

// Limits bounds the formatted message. Zero or negative fields fall
// back to the defaults.
type Limits struct {
	// DefinitionCap bounds the header, part of speech, and definition
	// together. The definition is truncated with an ellipsis to fit
	// whatever room the preceding text leaves.
	DefinitionCap int

	// MessageCap bounds the complete message. The example is appended
	// only while the accumulated text plus the example stays under it.
	MessageCap int
}

// DefaultLimits returns the standard SMS-friendly budgets.
func DefaultLimits() Limits {
	return Limits{
		DefinitionCap: DefaultDefinitionCap,
		MessageCap:    DefaultMessageCap,
	}
}

// FormatMessage renders a word record as a short plain-text message:
//
//	Word of the Day: HEADWORD
//
//	(pos) Definition...
//
//	"Example."
//
// Absent fields are omitted along with their decoration. Formatting
// never fails; oversized content is truncated instead.
func FormatMessage(w *Word, limits Limits) string {
	if limits.DefinitionCap <= 0 {
		limits.DefinitionCap = DefaultDefinitionCap
	}
	if limits.MessageCap <= 0 {
		limits.MessageCap = DefaultMessageCap
	}

	var b strings.Builder
	b.WriteString("Word of the Day: ")
	b.WriteString(strings.ToUpper(w.Headword))
	b.WriteString("\n\n")

	if w.PartOfSpeech != "" {
		b.WriteString("(")
		b.WriteString(w.PartOfSpeech)
		b.WriteString(") ")
	}

	// The definition's room shrinks by whatever the header and part of
	// speech already consumed.
	definition := w.Definition
	if room := limits.DefinitionCap - b.Len(); len(definition) > room {
		definition = truncate(definition, room-3) + "..."
	}
	b.WriteString(definition)

	if w.Example != "" && b.Len()+len(w.Example) < limits.MessageCap {
		b.WriteString("\n\n")
		b.WriteString(w.Example)
	}

	return b.String()
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

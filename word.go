package wotd

// Word is the structured record extracted from a feed entry.
//
// Only the headword is guaranteed: extraction fails outright when it
// cannot be determined. The remaining fields degrade independently to
// empty strings when their patterns do not match, so a Word is usable
// even when the feed's markup drifts.
type Word struct {
	// Headword is the vocabulary word being defined.
	Headword string

	// PartOfSpeech is the grammatical category, e.g. "noun" or "verb".
	PartOfSpeech string

	// Definition is plain text with markup stripped, entities decoded,
	// and the first letter upper-cased.
	Definition string

	// Example is a usage sentence wrapped in double quotes with a
	// single trailing period inside the quotes.
	Example string
}

// Validate returns an error if the word violates the headword guarantee.
func (w *Word) Validate() error {
	if w.Headword == "" {
		return Errorf(EINVALID, "word headword required")
	}
	return nil
}

// MissingFields lists the optional fields that degraded to empty during
// extraction, for diagnostics. The headword is never listed because its
// absence fails extraction instead.
func (w *Word) MissingFields() []string {
	var missing []string
	if w.PartOfSpeech == "" {
		missing = append(missing, "part_of_speech")
	}
	if w.Definition == "" {
		missing = append(missing, "definition")
	}
	if w.Example == "" {
		missing = append(missing, "example")
	}
	return missing
}

package wotd

// Extractor assembles a structured word record from a feed entry.
type Extractor interface {
	// Extract parses the entry's description markup and returns the
	// word record. It fails with EINVALID only when the entry carries
	// no headword; the part of speech, definition, and example degrade
	// independently to empty strings when their patterns do not match.
	Extract(entry *Entry) (*Word, error)
}

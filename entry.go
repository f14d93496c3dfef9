package wotd

import "context"

// Entry is a single item from the word-of-the-day feed. The title
// carries the headword; the description carries markup whose shape the
// feed provider does not guarantee.
type Entry struct {
	// Title is the entry headline, conventionally the headword itself.
	Title string

	// Description is the entry body as raw markup.
	Description string
}

// FeedSource retrieves entries from a word-of-the-day feed.
type FeedSource interface {
	// Latest returns the most recent entry in the feed.
	// Returns ENOTFOUND if the feed contains no entries.
	Latest(ctx context.Context) (*Entry, error)
}

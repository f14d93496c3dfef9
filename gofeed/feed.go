// Package gofeed provides a syndication-feed implementation of
// wotd.FeedSource for RSS and Atom word-of-the-day feeds.
package gofeed

import (
	"context"

	"github.com/fwojciec/wotd"
	"github.com/mmcdole/gofeed"
)

// DefaultFeedURL is Merriam-Webster's word-of-the-day feed.
const DefaultFeedURL = "https://www.merriam-webster.com/wotd/feed/rss2"

// Ensure Source implements wotd.FeedSource at compile time.
var _ wotd.FeedSource = (*Source)(nil)

// Source reads word-of-the-day entries from a syndicated feed.
type Source struct {
	url    string
	parser *gofeed.Parser
}

// Option configures a Source.
type Option func(*Source)

// WithURL points the source at a different feed.
// Defaults to DefaultFeedURL if not specified.
func WithURL(url string) Option {
	return func(s *Source) {
		s.url = url
	}
}

// NewSource creates a new feed-backed Source.
func NewSource(opts ...Option) *Source {
	s := &Source{
		url:    DefaultFeedURL,
		parser: gofeed.NewParser(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Latest returns the most recent entry in the feed. Word-of-the-day
// feeds list newest first, so this is the first item in document order.
func (s *Source) Latest(ctx context.Context) (*wotd.Entry, error) {
	feed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, wotd.Errorf(wotd.EUNAVAILABLE, "fetch feed %s: %v", s.url, err)
	}

	if len(feed.Items) == 0 {
		return nil, wotd.Errorf(wotd.ENOTFOUND, "feed %s has no entries", s.url)
	}

	item := feed.Items[0]

	// Some feeds carry the body in content:encoded instead of the
	// description element.
	description := item.Description
	if description == "" {
		description = item.Content
	}

	return &wotd.Entry{
		Title:       item.Title,
		Description: description,
	}, nil
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wotd"
)

// Ensure LoggingFeedSource implements wotd.FeedSource.
var _ wotd.FeedSource = (*LoggingFeedSource)(nil)

// LoggingFeedSource wraps a FeedSource with operational logging.
type LoggingFeedSource struct {
	next   wotd.FeedSource
	logger *slog.Logger
}

// NewLoggingFeedSource creates a new LoggingFeedSource.
func NewLoggingFeedSource(next wotd.FeedSource, logger *slog.Logger) *LoggingFeedSource {
	return &LoggingFeedSource{next: next, logger: logger}
}

// Latest delegates to the wrapped source and logs the operation.
func (s *LoggingFeedSource) Latest(ctx context.Context) (entry *wotd.Entry, err error) {
	defer func(begin time.Time) {
		title := ""
		if entry != nil {
			title = entry.Title
		}
		s.logger.Info("feed latest",
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Latest(ctx)
}

package slog

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/wotd"
)

// Ensure LoggingExtractor implements wotd.Extractor.
var _ wotd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with operational logging. Beyond
// timing, it reports which optional fields degraded to empty, which is
// the first signal that the feed's markup has drifted.
type LoggingExtractor struct {
	next   wotd.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next wotd.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(entry *wotd.Entry) (word *wotd.Word, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"duration", time.Since(begin),
			"err", err,
		}
		if word != nil {
			attrs = append(attrs, "word", word.Headword)
			if missing := word.MissingFields(); len(missing) > 0 {
				attrs = append(attrs, "missing", strings.Join(missing, ","))
			}
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(entry)
}

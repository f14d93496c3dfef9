package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wotd"
)

// Ensure LoggingSender implements wotd.Sender.
var _ wotd.Sender = (*LoggingSender)(nil)

// LoggingSender wraps a Sender with operational logging.
type LoggingSender struct {
	next   wotd.Sender
	logger *slog.Logger
}

// NewLoggingSender creates a new LoggingSender.
func NewLoggingSender(next wotd.Sender, logger *slog.Logger) *LoggingSender {
	return &LoggingSender{next: next, logger: logger}
}

// Send delegates to the wrapped sender and logs the operation.
func (s *LoggingSender) Send(ctx context.Context, message, phone string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("send",
			"phone", phone,
			"bytes", len(message),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Send(ctx, message, phone)
}

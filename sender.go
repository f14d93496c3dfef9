package wotd

import "context"

// Sender delivers a formatted message to a destination phone number.
// Implementations own the carrier-specific addressing and the relay
// credentials; callers supply only the message text and the bare
// 10-digit number.
type Sender interface {
	// Send delivers the message. The context controls timeout and
	// cancellation of the underlying network exchange.
	Send(ctx context.Context, message, phone string) error
}

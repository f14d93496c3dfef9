package mock

import (
	"context"

	"github.com/fwojciec/wotd"
)

var _ wotd.Sender = (*Sender)(nil)

// Sender is a mock implementation of wotd.Sender.
type Sender struct {
	SendFn func(ctx context.Context, message, phone string) error
}

func (s *Sender) Send(ctx context.Context, message, phone string) error {
	return s.SendFn(ctx, message, phone)
}

package mock

import (
	"context"

	"github.com/fwojciec/wotd"
)

var _ wotd.FeedSource = (*FeedSource)(nil)

// FeedSource is a mock implementation of wotd.FeedSource.
type FeedSource struct {
	LatestFn func(ctx context.Context) (*wotd.Entry, error)
}

func (s *FeedSource) Latest(ctx context.Context) (*wotd.Entry, error) {
	return s.LatestFn(ctx)
}

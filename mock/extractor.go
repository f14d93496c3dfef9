package mock

import "github.com/fwojciec/wotd"

var _ wotd.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wotd.Extractor.
type Extractor struct {
	ExtractFn func(entry *wotd.Entry) (*wotd.Word, error)
}

func (e *Extractor) Extract(entry *wotd.Entry) (*wotd.Word, error) {
	return e.ExtractFn(entry)
}

// Package deliver orchestrates the word-of-the-day pipeline: fetch the
// latest feed entry, extract the word record, format the message, and
// hand it to the sender.
package deliver

import (
	"context"
	"fmt"

	"github.com/fwojciec/wotd"
)

// Pipeline wires the pipeline stages together. All collaborator fields
// must be set.
type Pipeline struct {
	Feed      wotd.FeedSource
	Extractor wotd.Extractor
	Sender    wotd.Sender

	// Limits bounds the formatted message. The zero value uses the
	// default SMS budgets.
	Limits wotd.Limits
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Word    *wotd.Word
	Message string
}

// Run executes the pipeline end to end, delivering the formatted
// message to the given phone number. Stages run strictly in order and
// the first failure stops the run.
func (p *Pipeline) Run(ctx context.Context, phone string) (*Result, error) {
	result, err := p.Preview(ctx)
	if err != nil {
		return nil, err
	}

	if err := p.Sender.Send(ctx, result.Message, phone); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	return result, nil
}

// Preview executes the pipeline up to, but not including, the send and
// returns the message that would be delivered.
func (p *Pipeline) Preview(ctx context.Context) (*Result, error) {
	entry, err := p.Feed.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	word, err := p.Extractor.Extract(entry)
	if err != nil {
		return nil, fmt.Errorf("extract word: %w", err)
	}

	return &Result{
		Word:    word,
		Message: wotd.FormatMessage(word, p.Limits),
	}, nil
}

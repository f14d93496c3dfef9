//go:build integration

package gofeed_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/wotd/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Integration_MerriamWebster(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	source := gofeed.NewSource()
	entry, err := source.Latest(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.Title, "expected the live feed to carry a headword")
	assert.NotEmpty(t, entry.Description, "expected the live feed to carry a description")
	t.Logf("today's word: %s", entry.Title)
}

package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/wotd"
	"github.com/fwojciec/wotd/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Definition matchers run in order, first match wins
//
// Three matchers cover the definition, from the most precise reading of
// the feed layout to the most permissive fallback: a paragraph opening
// with the emphasized headword, then any paragraph that reads like a
// definition, then a bounded prefix of the cleaned description.

func TestExtractor_DefinitionChain(t *testing.T) {
	t.Parallel()

	extract := func(t *testing.T, title, description string) *wotd.Word {
		t.Helper()
		word, err := goquery.NewExtractor().Extract(&wotd.Entry{Title: title, Description: description})
		require.NoError(t, err)
		return word
	}

	t.Run("restated headword wins over the paragraph scan", func(t *testing.T) {
		t.Parallel()

		description := `<p>The adjective mercurial describes people whose moods shift without much warning.</p>` +
			`<p><em>Mercurial</em> means changing moods quickly and unpredictably.</p>`

		word := extract(t, "Mercurial", description)

		assert.Equal(t, "Means changing moods quickly and unpredictably.", word.Definition)
	})

	t.Run("restatement match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		word := extract(t, "Mercurial", `<p><em>mercurial</em> means changing moods quickly.</p>`)

		assert.Equal(t, "Means changing moods quickly.", word.Definition)
	})

	t.Run("restatement tolerates whitespace inside the emphasis", func(t *testing.T) {
		t.Parallel()

		word := extract(t, "Mercurial", `<p><em> Mercurial </em> means changing moods quickly.</p>`)

		assert.Equal(t, "Means changing moods quickly.", word.Definition)
	})

	t.Run("restatement keeps text from nested markup", func(t *testing.T) {
		t.Parallel()

		word := extract(t, "Mercurial", `<p><em>Mercurial</em> means <strong>changing moods</strong> quickly.</p>`)

		assert.Equal(t, "Means changing moods quickly.", word.Definition)
	})

	t.Run("paragraph not opening with the emphasis falls to the scan", func(t *testing.T) {
		t.Parallel()

		word := extract(t, "Mercurial", `<p>The word <em>mercurial</em> describes people whose moods shift without warning.</p>`)

		assert.Equal(t, "The word mercurial describes people whose moods shift without warning.", word.Definition)
	})

	t.Run("paragraph scan skips examples, cross-references, and fragments", func(t *testing.T) {
		t.Parallel()

		description := `<p>// The mercurial forecast kept everyone guessing.</p>` +
			`<p>See the entry &gt; mercurial has a long history worth reading about.</p>` +
			`<p>Examples: mercurial appears in sentences further down this page today.</p>` +
			`<p>mercurial, in short</p>` +
			`<p>A mercurial temperament is one that changes quickly and without warning.</p>`

		word := extract(t, "Mercurial", description)

		assert.Equal(t, "A mercurial temperament is one that changes quickly and without warning.", word.Definition)
	})

	t.Run("paragraph scan requires the headword", func(t *testing.T) {
		t.Parallel()

		description := `<p>This sentence is long enough to qualify but never names the word.</p>`

		word := extract(t, "Mercurial", description)

		// Falls through to the cleaned-prefix matcher.
		assert.Equal(t, "This sentence is long enough to qualify but never names the word.", word.Definition)
	})

	t.Run("prefix fallback collapses whitespace and bounds length", func(t *testing.T) {
		t.Parallel()

		description := strings.Repeat("lorem\n ipsum  ", 40)

		word := extract(t, "Prolix", description)

		assert.Equal(t, 200, len([]rune(word.Definition)))
		assert.True(t, strings.HasPrefix(word.Definition, "Lorem ipsum lorem"))
		assert.NotContains(t, word.Definition, "\n")
		assert.NotContains(t, word.Definition, "  ")
	})

	t.Run("first letter is capitalized on every path", func(t *testing.T) {
		t.Parallel()

		byScan := extract(t, "Mercurial", `<p>the word mercurial describes moods that shift without much warning.</p>`)
		byPrefix := extract(t, "Mercurial", `plain text fallback, nothing structured here`)

		assert.Equal(t, "The word mercurial describes moods that shift without much warning.", byScan.Definition)
		assert.Equal(t, "Plain text fallback, nothing structured here", byPrefix.Definition)
	})

	t.Run("no text at all degrades to empty definition", func(t *testing.T) {
		t.Parallel()

		word := extract(t, "Mercurial", `<p>   </p>`)

		assert.Empty(t, word.Definition)
	})
}

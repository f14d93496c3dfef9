package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// exampleLead is the feed's typographic marker for usage examples.
	exampleLead = "//"

	// crossReference marks "See the entry >" paragraphs that link back
	// to the dictionary instead of defining the word.
	crossReference = "See the entry"

	// examplesHeading labels the example section in some entry layouts.
	examplesHeading = "Examples:"

	// minDefinitionLen guards the paragraph scan against picking up a
	// fragment that merely mentions the headword.
	minDefinitionLen = 30

	// prefixLen bounds the last-resort definition taken from the
	// cleaned description text.
	prefixLen = 200
)

// definitionMatcher reports the definition text found in the entry
// description, or ok=false when its pattern does not apply. Matchers
// parse what they need themselves so each one stands alone.
type definitionMatcher func(description, headword string) (definition string, ok bool)

// definitionMatchers are tried in order; the first match wins. Ordered
// from the most precise reading of the feed's layout to the most
// permissive fallback.
var definitionMatchers = []definitionMatcher{
	matchRestatedHeadword,
	matchHeadwordParagraph,
	matchDescriptionPrefix,
}

func extractDefinition(description, headword string) string {
	for _, match := range definitionMatchers {
		if definition, ok := match(description, headword); ok {
			return definition
		}
	}
	return ""
}

// matchRestatedHeadword finds a paragraph that opens with an emphasized
// restatement of the headword and takes the text that follows it. The
// comparison is structural rather than a regular expression, so
// headwords containing pattern metacharacters need no escaping.
func matchRestatedHeadword(description, headword string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return "", false
	}

	var definition string
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if len(p.Nodes) == 0 {
			return true
		}
		em := leadingElement(p.Nodes[0])
		if em == nil || em.Data != "em" {
			return true
		}
		if !strings.EqualFold(strings.TrimSpace(nodeText(em)), headword) {
			return true
		}
		if text := strings.TrimSpace(textAfter(em)); text != "" {
			definition = text
			return false
		}
		return true
	})

	return definition, definition != ""
}

// matchHeadwordParagraph scans every paragraph for one that mentions
// the headword and reads like a definition: not the usage example, not
// a cross-reference notice, and long enough to be a sentence.
func matchHeadwordParagraph(description, headword string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return "", false
	}

	lower := strings.ToLower(headword)
	var definition string
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		clean := strings.TrimSpace(p.Text())
		if clean == "" ||
			strings.HasPrefix(clean, exampleLead) ||
			strings.Contains(clean, crossReference) ||
			strings.Contains(clean, examplesHeading) ||
			!strings.Contains(strings.ToLower(clean), lower) ||
			len(clean) <= minDefinitionLen {
			return true
		}
		definition = clean
		return false
	})

	return definition, definition != ""
}

// matchDescriptionPrefix is the last resort: the whole description with
// markup stripped and whitespace collapsed, bounded to a short prefix.
// It matches whenever the description has any text at all, so it must
// stay last in the chain.
func matchDescriptionPrefix(description, _ string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return "", false
	}

	clean := strings.Join(strings.Fields(doc.Text()), " ")
	if clean == "" {
		return "", false
	}
	if runes := []rune(clean); len(runes) > prefixLen {
		clean = strings.TrimSpace(string(runes[:prefixLen]))
	}
	return clean, true
}

// leadingElement returns the first element child of n, or nil when
// non-blank text precedes it.
func leadingElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
		case html.ElementNode:
			return c
		}
	}
	return nil
}

// textAfter collects the text content of every sibling following n.
func textAfter(n *html.Node) string {
	var b strings.Builder
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		collectText(s, &b)
	}
	return b.String()
}

// nodeText collects the text content of n's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

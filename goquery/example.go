package goquery

import (
	"html"
	"regexp"
	"strings"
)

// examplePattern captures the usage sentence after the feed's "//" lead
// token, up to the next tag.
var examplePattern = regexp.MustCompile(`//\s*([^<]+)`)

// matchExample finds the usage example in the raw description markup
// and normalizes it to a sentence wrapped in double quotes with a
// single trailing period inside the quotes.
func matchExample(description string) (string, bool) {
	m := examplePattern.FindStringSubmatch(description)
	if m == nil {
		return "", false
	}

	text := strings.TrimSpace(html.UnescapeString(m[1]))
	text = strings.TrimSuffix(text, ".")
	if text == "" {
		return "", false
	}
	return `"` + text + `."`, true
}

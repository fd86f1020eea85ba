package extractor

import (
	"regexp"
	"strings"
)

var (
	// A cluster of three or more newlines (with horizontal whitespace
	// between them) marks a paragraph break.
	paragraphBreakRE = regexp.MustCompile(`\n(?:[ \t\r\f\v]*\n){2,}`)
	whitespaceRE     = regexp.MustCompile(`\s+`)
)

// Normalize collapses every run of whitespace to a single space, except
// that clusters of 3+ newlines become exactly one paragraph break ("\n\n").
// Leading and trailing whitespace is trimmed. The same normalization is
// applied regardless of the source format.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	paragraphs := paragraphBreakRE.Split(text, -1)
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.TrimSpace(whitespaceRE.ReplaceAllString(p, " "))
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

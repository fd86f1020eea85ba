// Package chunker splits normalized text into token-bounded slices.
// Token counts are estimated, not exact: the heuristic only needs to be
// monotonic and bounded, since the budget itself is conservative.
package chunker

import (
	"regexp"
	"strings"
)

// DefaultMaxTokens is the input budget used for generation requests.
const DefaultMaxTokens = 100000

var (
	paragraphSplitRE = regexp.MustCompile(`\n\s*\n`)
	sentenceSplitRE  = regexp.MustCompile(`[.!?]+\s+`)
)

// EstimateTokens approximates the token count of text at roughly 4
// characters per token, rounding up.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + 3) / 4
}

// Split returns an ordered, non-empty sequence of chunks whose estimated
// token counts stay under maxTokens. Text under budget comes back as a
// single chunk. Oversized paragraphs are split further at sentence
// boundaries; a single sentence above budget is emitted as its own
// overrun chunk rather than truncated.
func Split(text string, maxTokens int) []string {
	if EstimateTokens(text) <= maxTokens {
		return []string{text}
	}

	paragraphs := paragraphSplitRE.Split(text, -1)
	var chunks []string
	var current strings.Builder

	closeChunk := func() {
		if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
		current.Reset()
	}

	for _, paragraph := range paragraphs {
		if EstimateTokens(paragraph) > maxTokens {
			// Paragraph alone exceeds the budget: fall back to
			// sentence boundaries with the same greedy rule.
			sentences := sentenceSplitRE.Split(paragraph, -1)
			for _, sentence := range sentences {
				if EstimateTokens(current.String())+EstimateTokens(sentence) > maxTokens {
					closeChunk()
				}
				current.WriteString(sentence)
				current.WriteString(". ")
			}
		} else {
			if EstimateTokens(current.String())+EstimateTokens(paragraph) > maxTokens {
				closeChunk()
			}
			current.WriteString(paragraph)
			current.WriteString("\n\n")
		}
	}
	closeChunk()

	if len(chunks) == 0 {
		return []string{text}
	}
	return chunks
}

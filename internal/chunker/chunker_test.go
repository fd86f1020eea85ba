package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("a"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
	assert.Equal(t, 25, EstimateTokens(strings.Repeat("x", 100)))
}

func TestSplit_UnderBudgetReturnsInputUnchanged(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph."

	chunks := Split(text, DefaultMaxTokens)

	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestSplit_LargeInputYieldsMultipleBoundedChunks(t *testing.T) {
	// 500,000 characters against the default 100,000-token budget.
	paragraph := strings.Repeat("All work and no play makes for dull course notes. ", 20)
	var sb strings.Builder
	for sb.Len() < 500000 {
		sb.WriteString(paragraph)
		sb.WriteString("\n\n")
	}
	text := sb.String()

	chunks := Split(text, DefaultMaxTokens)

	require.GreaterOrEqual(t, len(chunks), 2)
	for i, c := range chunks {
		assert.LessOrEqual(t, EstimateTokens(c), DefaultMaxTokens, "chunk %d over budget", i)
		assert.NotEmpty(t, strings.TrimSpace(c))
	}
}

func TestSplit_ChunkCountScalesWithInput(t *testing.T) {
	paragraph := strings.Repeat("word ", 80) // ~100 tokens
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString(paragraph)
		sb.WriteString("\n\n")
	}
	text := sb.String()

	budget := 1000
	chunks := Split(text, budget)

	// ~5000 tokens of input into 1000-token chunks should land on the
	// order of 5 chunks.
	k := EstimateTokens(text) / budget
	assert.GreaterOrEqual(t, len(chunks), k-1)
	assert.LessOrEqual(t, len(chunks), k+2)
}

func TestSplit_OversizedParagraphSplitsAtSentences(t *testing.T) {
	// One paragraph, no blank lines, far over budget.
	sentence := "This sentence talks about the lecture material in some detail. "
	paragraph := strings.Repeat(sentence, 200)

	budget := 500
	chunks := Split(paragraph, budget)

	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		// A single sentence may overrun; anything larger must not.
		assert.LessOrEqual(t, EstimateTokens(c), budget+EstimateTokens(sentence), "chunk %d over budget", i)
	}
}

func TestSplit_PreservesContentOrder(t *testing.T) {
	var paragraphs []string
	for _, marker := range []string{"alpha", "bravo", "charlie", "delta"} {
		paragraphs = append(paragraphs, marker+" "+strings.Repeat("filler ", 100))
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := Split(text, 200)
	joined := strings.Join(chunks, " ")

	last := -1
	for _, marker := range []string{"alpha", "bravo", "charlie", "delta"} {
		idx := strings.Index(joined, marker)
		require.NotEqual(t, -1, idx, "marker %s missing", marker)
		assert.Greater(t, idx, last, "marker %s out of order", marker)
		last = idx
	}
}

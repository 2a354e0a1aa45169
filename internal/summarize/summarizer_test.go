package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const article = "Go is a language. Go compiles fast and Go runs fast. Cats sleep. " +
	"Go tooling helps Go developers ship Go code. Birds fly."

func TestSummarizeKeepsTopSentencesInOrder(t *testing.T) {
	got := Summarize(article, 2)

	assert.Equal(t, "Go compiles fast and Go runs fast. Go tooling helps Go developers ship Go code.", got.Summary)
	assert.Equal(t, len([]rune(article)), got.OriginalLength)
	assert.Equal(t, len([]rune(got.Summary)), got.SummaryLength)
	assert.Equal(t, reduction(got.OriginalLength, got.SummaryLength), got.ReductionPercentage)
}

func TestSummarizeShortTextIsUnchanged(t *testing.T) {
	got := Summarize("Only one. And two.", 5)
	assert.Equal(t, "Only one. And two.", got.Summary)
	assert.Equal(t, 0, got.ReductionPercentage)
}

func TestSummarizeDefaultsSentenceCount(t *testing.T) {
	got := Summarize(article, 0)
	assert.Equal(t, Summarize(article, DefaultSentences), got)
}

func TestSummarizeEmptyText(t *testing.T) {
	assert.Equal(t, Summarize(" \n ", 3), Summarize("", 3))
	assert.Zero(t, Summarize("", 3))
}

func TestSummarizeCountsRunes(t *testing.T) {
	got := Summarize("Ünïcödé wörds hère.", 1)
	assert.Equal(t, 19, got.OriginalLength)
	assert.Equal(t, 19, got.SummaryLength)
}

func TestReductionRoundsHalfToEven(t *testing.T) {
	assert.Equal(t, 50, reduction(8, 4))
	assert.Equal(t, 88, reduction(8, 1))
	assert.Equal(t, 62, reduction(8, 3))
	assert.Equal(t, 67, reduction(3, 1))
	assert.Equal(t, 0, reduction(0, 0))
}

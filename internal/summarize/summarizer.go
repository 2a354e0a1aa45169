// Package summarize builds extractive summaries by scoring sentences on the
// frequency of the content words they contain.
package summarize

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/textlens/internal/models"
	"github.com/spacesedan/textlens/internal/textutil"
)

const DefaultSentences = 3

type scoredSentence struct {
	index int
	text  string
	score float64
}

// Summarize keeps the n highest scoring sentences in their original order.
// n below 1 uses DefaultSentences.
func Summarize(text string, n int) models.SummaryResult {
	if strings.TrimSpace(text) == "" {
		return models.SummaryResult{}
	}
	if n < 1 {
		n = DefaultSentences
	}

	sentences := textutil.SplitSentences(text)
	summary := strings.Join(pick(sentences, n), " ")

	originalLength := utf8.RuneCountInString(text)
	summaryLength := utf8.RuneCountInString(summary)

	return models.SummaryResult{
		Summary:             summary,
		OriginalLength:      originalLength,
		SummaryLength:       summaryLength,
		ReductionPercentage: reduction(originalLength, summaryLength),
	}
}

func pick(sentences []string, n int) []string {
	if len(sentences) <= n {
		return sentences
	}

	sentenceTokens := make([][]string, len(sentences))
	freq := make(map[string]float64)
	maxFreq := 0.0
	for i, s := range sentences {
		for _, tok := range textutil.Tokenize(strings.ToLower(s)) {
			if textutil.IsPunctuation(tok) || textutil.IsStopword(tok) {
				continue
			}
			sentenceTokens[i] = append(sentenceTokens[i], tok)
			freq[tok]++
			maxFreq = max(maxFreq, freq[tok])
		}
	}

	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		score := 0.0
		for _, tok := range sentenceTokens[i] {
			score += freq[tok] / maxFreq
		}
		scored[i] = scoredSentence{index: i, text: s, score: score}
	}

	// stable: equal scores keep the earlier sentence
	slices.SortStableFunc(scored, func(a, b scoredSentence) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	top := scored[:n]
	slices.SortFunc(top, func(a, b scoredSentence) int { return a.index - b.index })

	out := make([]string, len(top))
	for i, s := range top {
		out[i] = s.text
	}
	return out
}

func reduction(originalLength, summaryLength int) int {
	if originalLength == 0 {
		return 0
	}
	return int(math.RoundToEven(100 - float64(summaryLength)/float64(originalLength)*100))
}

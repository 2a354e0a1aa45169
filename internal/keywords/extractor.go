package keywords

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/textlens/internal/models"
	"github.com/spacesedan/textlens/internal/textutil"
)

const DefaultKeywords = 5

// Extract returns the n most frequent content words of text. Words tied on
// count are ordered by first occurrence.
func Extract(text string, n int) models.KeywordsResult {
	if strings.TrimSpace(text) == "" {
		return models.KeywordsResult{Keywords: models.KeywordCounts{}}
	}
	if n < 1 {
		n = DefaultKeywords
	}

	tokens := textutil.Tokenize(strings.ToLower(text))

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if !isKeyword(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return counts[b] - counts[a]
	})
	if len(order) > n {
		order = order[:n]
	}

	keywords := make(models.KeywordCounts, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, models.KeywordCount{Keyword: word, Count: counts[word]})
	}

	return models.KeywordsResult{
		Keywords:       keywords,
		WordCount:      len(tokens),
		TotalExtracted: len(keywords),
	}
}

func isKeyword(tok string) bool {
	return utf8.RuneCountInString(tok) > 2 &&
		!textutil.IsPunctuation(tok) &&
		!textutil.IsStopword(tok)
}

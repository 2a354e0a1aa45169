// Package sentiment scores text polarity and subjectivity with VADER.
package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/textlens/internal/models"
)

const (
	CategoryStronglyPositive = "Strongly Positive"
	CategoryPositive         = "Positive"
	CategoryNeutral          = "Neutral"
	CategoryNegative         = "Negative"
	CategoryStronglyNegative = "Strongly Negative"
)

var (
	analyzer = govader.NewSentimentIntensityAnalyzer()

	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)

	// plain XHTML output, no smartypants: VADER's negation rules need the
	// original apostrophes.
	plainRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(plainRenderer))
	stripped := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))
	plainText := strings.Join(strings.Fields(stripped), " ")

	return RemoveLinks(plainText)
}

// Category buckets a polarity score.
func Category(polarity float64) string {
	switch {
	case polarity >= 0.5:
		return CategoryStronglyPositive
	case polarity > 0:
		return CategoryPositive
	case polarity == 0:
		return CategoryNeutral
	case polarity > -0.5:
		return CategoryNegative
	default:
		return CategoryStronglyNegative
	}
}

// Analyze uses the VADER compound score as polarity and the share of
// non-neutral sentiment as subjectivity.
func Analyze(text string) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{Category: CategoryNeutral}
	}

	plainText := ConvertMarkdownToText(text)
	scores := analyzer.PolarityScores(plainText)

	subjectivity := scores.Positive + scores.Negative
	if subjectivity > 1 {
		subjectivity = 1
	}

	return models.SentimentResult{
		Polarity:     scores.Compound,
		Subjectivity: subjectivity,
		Category:     Category(scores.Compound),
	}
}

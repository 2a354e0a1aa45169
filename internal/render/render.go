// Package render turns analysis results into the HTML result cards shown in
// the page's results section.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/spacesedan/textlens/internal/languages"
	"github.com/spacesedan/textlens/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// SentimentStyle is the css class and font-awesome icon for a category.
type SentimentStyle struct {
	Class string
	Icon  string
}

var sentimentStyles = map[string]SentimentStyle{
	"Strongly Positive": {Class: "sentiment-strongly-positive", Icon: "fa-laugh-beam"},
	"Positive":          {Class: "sentiment-positive", Icon: "fa-smile"},
	"Neutral":           {Class: "sentiment-neutral", Icon: "fa-meh"},
	"Negative":          {Class: "sentiment-negative", Icon: "fa-frown"},
	"Strongly Negative": {Class: "sentiment-strongly-negative", Icon: "fa-angry"},
}

// StyleForCategory returns the zero style for unknown categories.
func StyleForCategory(category string) SentimentStyle {
	return sentimentStyles[category]
}

var funcs = template.FuncMap{
	"fixed2":         func(f float64) string { return fmt.Sprintf("%.2f", f) },
	"sentimentStyle": StyleForCategory,
	"languageName":   languages.DisplayName,
}

var templates = template.Must(template.New("results").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

// Result renders the card for mode from the raw data object of a success
// envelope.
func Result(mode models.Mode, data json.RawMessage) (template.HTML, error) {
	var value any
	switch mode {
	case models.ModeSentiment:
		value = &models.SentimentResult{}
	case models.ModeSummarize:
		value = &models.SummaryResult{}
	case models.ModeKeywords:
		value = &models.KeywordsResult{}
	case models.ModeEnhance:
		value = &models.EnhancementResult{}
	case models.ModeTranslate:
		value = &models.TranslationResult{}
	default:
		return "", fmt.Errorf("[Render] unknown mode %q", mode)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return "", fmt.Errorf("[Render] decode %s data: %w", mode, err)
	}
	return execute(string(mode), value)
}

// Error renders the inline error card.
func Error(message string) template.HTML {
	out, err := execute("error", message)
	if err != nil {
		return template.HTML(`<div class="error-message"><p>` + template.HTMLEscapeString(message) + `</p></div>`)
	}
	return out
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("[Render] execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

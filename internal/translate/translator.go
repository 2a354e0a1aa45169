// Package translate wraps a Translator with the language rules of the
// translation endpoint.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/textlens/internal/languages"
	"github.com/spacesedan/textlens/internal/models"
)

const (
	AutoLanguage    = "auto"
	DefaultTarget   = "en"
	autoDetected    = "auto-detected"
	autoDetectedEng = "auto-detected (English)"
)

var ErrNoTranslator = errors.New("[Translate] no translator configured")

// Translator turns text from one language code into another. from may be
// "auto".
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

type Service struct {
	translator Translator
}

// NewService accepts a nil translator; every translation then reports
// ErrNoTranslator in its result.
func NewService(t Translator) *Service {
	return &Service{translator: t}
}

// Translate never fails: translator errors are logged and returned inside
// the translated text.
func (s *Service) Translate(ctx context.Context, text, from, to string) models.TranslationResult {
	if from == "" {
		from = AutoLanguage
	}
	if to == "" {
		to = DefaultTarget
	}

	if strings.TrimSpace(text) == "" {
		return models.TranslationResult{SourceLanguage: from, TargetLanguage: to}
	}

	to = languages.ToCode(to)
	length := utf8.RuneCountInString(text)

	if to == DefaultTarget && from == AutoLanguage {
		return models.TranslationResult{
			TranslatedText: text,
			SourceLanguage: autoDetectedEng,
			TargetLanguage: DefaultTarget,
			OriginalLength: length,
		}
	}

	translated, err := s.translate(ctx, text, from, to)
	if err != nil {
		slog.Error("[Translate] Translation failed",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()))
		return models.TranslationResult{
			TranslatedText: fmt.Sprintf("Translation error: %s", err),
			SourceLanguage: from,
			TargetLanguage: to,
			OriginalLength: length,
		}
	}

	source := from
	if from == AutoLanguage {
		source = autoDetected
	}
	return models.TranslationResult{
		TranslatedText: translated,
		SourceLanguage: source,
		TargetLanguage: to,
		OriginalLength: length,
	}
}

func (s *Service) translate(ctx context.Context, text, from, to string) (string, error) {
	if s.translator == nil {
		return "", ErrNoTranslator
	}
	return s.translator.Translate(ctx, text, from, to)
}

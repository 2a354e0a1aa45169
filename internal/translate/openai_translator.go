package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"

	"github.com/spacesedan/textlens/internal/clients"
	"github.com/spacesedan/textlens/internal/languages"
)

var ErrEmptyTranslation = errors.New("[OpenAITranslator] empty translation returned")

const translatePrompt = `You are a translation engine. Translate the user's text %s into %s.
Reply with the translation only: no quotes, notes or explanations. Keep line breaks and formatting.`

type OpenAITranslator struct {
	ai *clients.OpenAIClient
}

func NewOpenAITranslator(ai *clients.OpenAIClient) *OpenAITranslator {
	return &OpenAITranslator{ai: ai}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	chatCompletion, err := t.ai.Client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt(from, to)),
				openai.UserMessage(text),
			}),
			Model:       openai.F(openai.ChatModel(t.ai.Model)),
			Temperature: openai.Float(0),
		},
	)
	if err != nil {
		return "", fmt.Errorf("[OpenAITranslator] chat completion failed: %w", err)
	}

	if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
		return "", ErrEmptyTranslation
	}

	return strings.TrimSpace(chatCompletion.Choices[0].Message.Content), nil
}

func systemPrompt(from, to string) string {
	source := "from the language it is written in"
	if from != AutoLanguage {
		source = "from " + describe(from)
	}
	return fmt.Sprintf(translatePrompt, source, describe(to))
}

func describe(code string) string {
	if name, ok := languages.NameForCode(code); ok {
		return fmt.Sprintf("%s (%s)", name, code)
	}
	return fmt.Sprintf("the language with code %q", code)
}

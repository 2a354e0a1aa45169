package api

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spacesedan/textlens/internal/keywords"
	"github.com/spacesedan/textlens/internal/summarize"
	"github.com/spacesedan/textlens/internal/translate"
)

// countParam accepts a JSON integer or a numeric string. Anything else is
// remembered as unset so the endpoint default applies.
type countParam struct {
	value int
	set   bool
}

func (p *countParam) UnmarshalJSON(data []byte) error {
	*p = countParam{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < math.MaxInt32 {
			*p = countParam{value: int(v), set: true}
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*p = countParam{value: n, set: true}
		}
	}
	return nil
}

func (p countParam) or(def int) int {
	if !p.set || p.value < 1 {
		return def
	}
	return p.value
}

type analysisBody struct {
	Text         *string    `json:"text"`
	NumSentences countParam `json:"num_sentences"`
	NumKeywords  countParam `json:"num_keywords"`
	FromLang     *string    `json:"from_lang"`
	ToLang       *string    `json:"to_lang"`
}

// params is an analysisBody with every default applied. It is also the
// cache key input, so equivalent requests share an entry.
type params struct {
	Text         string `json:"text"`
	NumSentences int    `json:"num_sentences"`
	NumKeywords  int    `json:"num_keywords"`
	FromLang     string `json:"from_lang"`
	ToLang       string `json:"to_lang"`
}

func (b analysisBody) resolve() params {
	p := params{
		NumSentences: b.NumSentences.or(summarize.DefaultSentences),
		NumKeywords:  b.NumKeywords.or(keywords.DefaultKeywords),
		FromLang:     translate.AutoLanguage,
		ToLang:       translate.DefaultTarget,
	}
	if b.Text != nil {
		p.Text = *b.Text
	}
	if b.FromLang != nil && *b.FromLang != "" {
		p.FromLang = *b.FromLang
	}
	if b.ToLang != nil && *b.ToLang != "" {
		p.ToLang = *b.ToLang
	}
	return p
}

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AnalysisRequest is the JSON body posted to /api/{endpoint}. Optional
// fields are pointers so a payload carries exactly the fields of its mode.
type AnalysisRequest struct {
	Text         string  `json:"text"`
	NumSentences *int    `json:"num_sentences,omitempty"`
	NumKeywords  *int    `json:"num_keywords,omitempty"`
	ToLang       *string `json:"to_lang,omitempty"`
	FromLang     *string `json:"from_lang,omitempty"`
}

// APIResponse is the envelope every analysis endpoint answers with.
type APIResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (r APIResponse) IsError() bool {
	return r.Status == StatusError
}

type SentimentResult struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Category     string  `json:"category"`
}

type SummaryResult struct {
	Summary             string `json:"summary"`
	OriginalLength      int    `json:"original_length"`
	SummaryLength       int    `json:"summary_length"`
	ReductionPercentage int    `json:"reduction_percentage"`
}

type KeywordsResult struct {
	Keywords       KeywordCounts `json:"keywords"`
	WordCount      int           `json:"word_count"`
	TotalExtracted int           `json:"total_extracted"`
}

type EnhancementResult struct {
	EnhancedText   string `json:"enhanced_text"`
	OriginalLength int    `json:"original_length"`
	EnhancedLength int    `json:"enhanced_length"`
	ChangesMade    int    `json:"changes_made"`
}

type TranslationResult struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	OriginalLength int    `json:"original_length"`
}

type KeywordCount struct {
	Keyword string
	Count   int
}

// KeywordCounts is a keyword -> count JSON object whose key order is kept,
// most common first as produced by the extractor.
type KeywordCounts []KeywordCount

func (k KeywordCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kc := range k {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kc.Keyword)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", kc.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (k *KeywordCounts) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*k = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("keywords: expected object, got %v", tok)
	}

	out := KeywordCounts{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("keywords: expected string key, got %v", tok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("keywords: count for %q: %w", key, err)
		}
		out = append(out, KeywordCount{Keyword: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*k = out
	return nil
}

// Package enhance improves text flow by prefixing transition phrases to
// some sentences.
package enhance

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/textlens/internal/models"
	"github.com/spacesedan/textlens/internal/textutil"
)

const (
	minSentences     = 3
	minWords         = 5
	sentenceInterval = 3
)

var TransitionPhrases = []string{
	"Furthermore, ",
	"In addition, ",
	"Moreover, ",
	"Similarly, ",
	"Likewise, ",
	"For instance, ",
	"To illustrate, ",
	"Specifically, ",
	"As a result, ",
	"Consequently, ",
	"Therefore, ",
	"Hence, ",
	"In contrast, ",
	"On the other hand, ",
	"However, ",
	"Nevertheless, ",
	"In conclusion, ",
	"To summarize, ",
}

type Enhancer struct {
	intN func(n int) int
}

// New returns an Enhancer drawing phrases from the global random source.
// It is safe for concurrent use.
func New() *Enhancer {
	return &Enhancer{intN: rand.IntN}
}

// NewSeeded returns a deterministic Enhancer. It is not safe for concurrent use.
func NewSeeded(seed uint64) *Enhancer {
	r := rand.New(rand.NewPCG(seed, seed))
	return &Enhancer{intN: r.IntN}
}

// Enhance leaves texts with fewer than three sentences untouched. Otherwise,
// starting with the second sentence, every third sentence longer than four
// words gets a random transition phrase.
func (e *Enhancer) Enhance(text string) models.EnhancementResult {
	if strings.TrimSpace(text) == "" {
		return models.EnhancementResult{}
	}

	originalLength := utf8.RuneCountInString(text)
	sentences := textutil.SplitSentences(text)
	if len(sentences) < minSentences {
		return models.EnhancementResult{
			EnhancedText:   text,
			OriginalLength: originalLength,
			EnhancedLength: originalLength,
		}
	}

	changes := 0
	for i := 1; i < len(sentences); i += sentenceInterval {
		if textutil.WordCount(sentences[i]) < minWords {
			continue
		}
		sentences[i] = TransitionPhrases[e.intN(len(TransitionPhrases))] + sentences[i]
		changes++
	}

	enhanced := strings.Join(sentences, " ")
	return models.EnhancementResult{
		EnhancedText:   enhanced,
		OriginalLength: originalLength,
		EnhancedLength: utf8.RuneCountInString(enhanced),
		ChangesMade:    changes,
	}
}

package models

// Mode is the analysis type a page session has selected.
type Mode string

const (
	ModeSentiment Mode = "sentiment"
	ModeSummarize Mode = "summarize"
	ModeKeywords  Mode = "keywords"
	ModeEnhance   Mode = "enhance"
	ModeTranslate Mode = "translate"
)

const (
	EndpointSentiment = "analyze_sentiment"
	EndpointSummarize = "summarize"
	EndpointKeywords  = "extract_keywords"
	EndpointEnhance   = "enhance_content"
	EndpointTranslate = "translate"
)

// Modes lists every mode in page order.
var Modes = []Mode{ModeSentiment, ModeSummarize, ModeKeywords, ModeEnhance, ModeTranslate}

func ParseMode(raw string) (Mode, bool) {
	for _, m := range Modes {
		if string(m) == raw {
			return m, true
		}
	}
	return "", false
}

// Endpoint is the path segment under /api/ serving this mode.
// Unknown modes map to "".
func (m Mode) Endpoint() string {
	switch m {
	case ModeSentiment:
		return EndpointSentiment
	case ModeSummarize:
		return EndpointSummarize
	case ModeKeywords:
		return EndpointKeywords
	case ModeEnhance:
		return EndpointEnhance
	case ModeTranslate:
		return EndpointTranslate
	default:
		return ""
	}
}

func (m Mode) Label() string {
	switch m {
	case ModeSentiment:
		return "Sentiment Analysis"
	case ModeSummarize:
		return "Text Summarization"
	case ModeKeywords:
		return "Keyword Extraction"
	case ModeEnhance:
		return "Content Enhancement"
	case ModeTranslate:
		return "Translation"
	default:
		return ""
	}
}

func (m Mode) Icon() string {
	switch m {
	case ModeSentiment:
		return "fa-chart-line"
	case ModeSummarize:
		return "fa-file-alt"
	case ModeKeywords:
		return "fa-key"
	case ModeEnhance:
		return "fa-pen-fancy"
	case ModeTranslate:
		return "fa-language"
	default:
		return ""
	}
}

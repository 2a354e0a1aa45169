package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/textlens/internal/enhance"
	"github.com/spacesedan/textlens/internal/keywords"
	"github.com/spacesedan/textlens/internal/models"
	"github.com/spacesedan/textlens/internal/sentiment"
	"github.com/spacesedan/textlens/internal/summarize"
	"github.com/spacesedan/textlens/internal/translate"
)

const (
	MessageSentimentDone = "Sentiment analysis completed successfully"
	MessageSummaryDone   = "Text summarization completed successfully"
	MessageKeywordsDone  = "Keyword extraction completed successfully"
	MessageEnhanceDone   = "Content enhancement completed successfully"
	MessageTranslateDone = "Translation completed successfully"

	translationErrorPrefix = "Translation error:"
)

// analysis runs one service. cacheable is false for results that must not
// be reused, such as random or failed output.
type analysis func(ctx context.Context, p params) (result any, cacheable bool)

type Handler struct {
	translator *translate.Service
	enhancer   *enhance.Enhancer
	cache      ResultCache
}

// NewHandler accepts a nil cache.
func NewHandler(translator *translate.Service, enhancer *enhance.Enhancer, cache ResultCache) *Handler {
	return &Handler{
		translator: translator,
		enhancer:   enhancer,
		cache:      cache,
	}
}

func (h *Handler) AnalyzeSentiment(c *gin.Context) {
	h.serve(c, models.EndpointSentiment, MessageSentimentDone, func(_ context.Context, p params) (any, bool) {
		return sentiment.Analyze(p.Text), true
	})
}

func (h *Handler) Summarize(c *gin.Context) {
	h.serve(c, models.EndpointSummarize, MessageSummaryDone, func(_ context.Context, p params) (any, bool) {
		return summarize.Summarize(p.Text, p.NumSentences), true
	})
}

func (h *Handler) ExtractKeywords(c *gin.Context) {
	h.serve(c, models.EndpointKeywords, MessageKeywordsDone, func(_ context.Context, p params) (any, bool) {
		return keywords.Extract(p.Text, p.NumKeywords), true
	})
}

func (h *Handler) EnhanceContent(c *gin.Context) {
	h.serve(c, models.EndpointEnhance, MessageEnhanceDone, func(_ context.Context, p params) (any, bool) {
		return h.enhancer.Enhance(p.Text), false
	})
}

func (h *Handler) Translate(c *gin.Context) {
	h.serve(c, models.EndpointTranslate, MessageTranslateDone, func(ctx context.Context, p params) (any, bool) {
		result := h.translator.Translate(ctx, p.Text, p.FromLang, p.ToLang)
		return result, !strings.HasPrefix(result.TranslatedText, translationErrorPrefix)
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, envelope{Status: models.StatusSuccess})
}

func (h *Handler) serve(c *gin.Context, endpoint, message string, run analysis) {
	var body analysisBody
	if err := c.ShouldBindJSON(&body); err != nil {
		slog.Debug("[API] Rejected request body",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		Fail(c, http.StatusBadRequest, MessageInvalidJSON)
		return
	}
	if body.Text == nil {
		Fail(c, http.StatusBadRequest, MessageMissingText)
		return
	}

	ctx := c.Request.Context()
	p := body.resolve()

	var key string
	if h.cache != nil {
		key = cacheKey(endpoint, p)
		if cached, ok := h.cache.Get(ctx, key); ok {
			slog.Debug("[API] Cache hit", slog.String("endpoint", endpoint))
			Success(c, message, json.RawMessage(cached))
			return
		}
	}

	result, cacheable := run(ctx, p)

	if key != "" && cacheable {
		if encoded, err := json.Marshal(result); err == nil {
			h.cache.Set(ctx, key, encoded)
		}
	}

	Success(c, message, result)
}

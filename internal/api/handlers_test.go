package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/textlens/internal/enhance"
	"github.com/spacesedan/textlens/internal/models"
	"github.com/spacesedan/textlens/internal/translate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	args := m.Called(ctx, text, from, to)
	return args.String(0), args.Error(1)
}

type panicTranslator struct{}

func (panicTranslator) Translate(context.Context, string, string, string) (string, error) {
	panic("translator exploded")
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	gets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.items[key]
	return v, ok
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t translate.Translator, cache ResultCache) *gin.Engine {
	return NewRouter(NewHandler(translate.NewService(t), enhance.NewSeeded(1), cache))
}

func post(t *testing.T, r http.Handler, endpoint, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/"+endpoint, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestEndpointsRejectInvalidJSON(t *testing.T) {
	r := newTestRouter(nil, nil)

	for _, endpoint := range []string{"analyze_sentiment", "summarize", "extract_keywords", "enhance_content", "translate"} {
		for _, body := range []string{"", "{not json", `["text"]`} {
			w, resp := post(t, r, endpoint, body)
			assert.Equal(t, http.StatusBadRequest, w.Code, endpoint)
			assert.Equal(t, models.StatusError, resp.Status)
			assert.Equal(t, MessageInvalidJSON, resp.Message)
		}
	}
}

func TestEndpointsRequireText(t *testing.T) {
	r := newTestRouter(nil, nil)

	for _, body := range []string{`{}`, `{"text": null}`, `{"num_sentences": 2}`} {
		w, resp := post(t, r, "summarize", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, MessageMissingText, resp.Message)
		assert.Empty(t, resp.Data)
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	w, resp := post(t, newTestRouter(nil, nil), "analyze_sentiment", `{"text":"I love this wonderful day!"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, MessageSentimentDone, resp.Message)

	var got models.SentimentResult
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Greater(t, got.Polarity, 0.0)
	assert.Contains(t, []string{"Positive", "Strongly Positive"}, got.Category)
}

func TestSummarizeDefaultsAndNumericStrings(t *testing.T) {
	text := "One fish swims. Two fish swim. Red fish swim fast. Blue fish swim slow. Old fish rest."
	r := newTestRouter(nil, nil)

	sentences := func(body string) int {
		_, resp := post(t, r, "summarize", body)
		var got models.SummaryResult
		require.NoError(t, json.Unmarshal(resp.Data, &got))
		return strings.Count(got.Summary, ".")
	}

	quoted, err := json.Marshal(text)
	require.NoError(t, err)

	assert.Equal(t, 3, sentences(`{"text":`+string(quoted)+`}`))
	assert.Equal(t, 2, sentences(`{"text":`+string(quoted)+`,"num_sentences":"2"}`))
	assert.Equal(t, 4, sentences(`{"text":`+string(quoted)+`,"num_sentences":4}`))
	assert.Equal(t, 3, sentences(`{"text":`+string(quoted)+`,"num_sentences":0}`))
	assert.Equal(t, 3, sentences(`{"text":`+string(quoted)+`,"num_sentences":"lots"}`))
}

func TestExtractKeywordsKeepsOrder(t *testing.T) {
	w, resp := post(t, newTestRouter(nil, nil), "extract_keywords",
		`{"text":"zebra apple zebra mango apple zebra kiwi","num_keywords":2}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MessageKeywordsDone, resp.Message)
	assert.JSONEq(t, `{"keywords":{"zebra":3,"apple":2},"word_count":7,"total_extracted":2}`, string(resp.Data))
	assert.Contains(t, string(resp.Data), `{"zebra":3,"apple":2}`)
}

func TestEnhanceContent(t *testing.T) {
	w, resp := post(t, newTestRouter(nil, nil), "enhance_content", `{"text":"Too short."}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MessageEnhanceDone, resp.Message)
	assert.JSONEq(t, `{"enhanced_text":"Too short.","original_length":10,"enhanced_length":10,"changes_made":0}`, string(resp.Data))
}

func TestTranslateDefaults(t *testing.T) {
	tr := new(MockTranslator)
	r := newTestRouter(tr, nil)

	_, resp := post(t, r, "translate", `{"text":"Hello"}`)
	assert.Equal(t, MessageTranslateDone, resp.Message)
	assert.JSONEq(t, `{"translated_text":"Hello","source_language":"auto-detected (English)","target_language":"en","original_length":5}`, string(resp.Data))

	tr.On("Translate", mock.Anything, "Hello", "auto", "fr").Return("Bonjour", nil).Once()
	_, resp = post(t, r, "translate", `{"text":"Hello","to_lang":"French"}`)
	assert.JSONEq(t, `{"translated_text":"Bonjour","source_language":"auto-detected","target_language":"fr","original_length":5}`, string(resp.Data))
	tr.AssertExpectations(t)
}

func TestServiceFailureIsServerError(t *testing.T) {
	w, resp := post(t, newTestRouter(panicTranslator{}, nil), "translate", `{"text":"Hello","to_lang":"de"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, models.StatusError, resp.Status)
	assert.Equal(t, "Error processing request: translator exploded", resp.Message)
}

func TestResultsAreCached(t *testing.T) {
	tr := new(MockTranslator)
	tr.On("Translate", mock.Anything, "Hello", "auto", "de").Return("Hallo", nil).Once()
	cache := newMemoryCache()
	r := newTestRouter(tr, cache)

	_, first := post(t, r, "translate", `{"text":"Hello","to_lang":"de"}`)
	_, second := post(t, r, "translate", `{"text":"Hello","to_lang":"German","from_lang":""}`)

	assert.JSONEq(t, string(first.Data), string(second.Data))
	assert.Equal(t, MessageTranslateDone, second.Message)
	tr.AssertNumberOfCalls(t, "Translate", 1)
}

func TestFailedTranslationsAreNotCached(t *testing.T) {
	tr := new(MockTranslator)
	tr.On("Translate", mock.Anything, "Hello", "auto", "de").Return("", errors.New("rate limited")).Twice()
	cache := newMemoryCache()
	r := newTestRouter(tr, cache)

	_, resp := post(t, r, "translate", `{"text":"Hello","to_lang":"de"}`)
	assert.Contains(t, string(resp.Data), "Translation error: rate limited")
	_, _ = post(t, r, "translate", `{"text":"Hello","to_lang":"de"}`)

	assert.Empty(t, cache.items)
	tr.AssertNumberOfCalls(t, "Translate", 2)
}

func TestEnhanceIsNeverCached(t *testing.T) {
	cache := newMemoryCache()
	r := newTestRouter(nil, cache)

	_, _ = post(t, r, "enhance_content", `{"text":"A. B. C."}`)
	assert.Empty(t, cache.items)

	_, _ = post(t, r, "extract_keywords", `{"text":"gopher gopher"}`)
	assert.Len(t, cache.items, 1)
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	newTestRouter(nil, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	r := newTestRouter(nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/summarize", nil)
	req.Header.Set("Origin", "http://other.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	req = httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"text":"Hi."}`))
	req.Header.Set("Origin", "http://other.test")
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

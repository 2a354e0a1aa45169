package clients

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spacesedan/textlens/config"
)

const (
	openAIRequestTimeout = 60 * time.Second // Timeout for individual OpenAI API requests
)

var ErrMissingAPIKey = errors.New("[OpenAIClient] missing OPENAI_API_KEY")

type OpenAIClient struct {
	Client *openai.Client
	Model  string
}

func NewOpenAIClient(cfg config.APIConfig) (*OpenAIClient, error) {
	if cfg.OpenAIAPIKey == "" {
		slog.Warn("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
		return nil, ErrMissingAPIKey
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithHTTPClient(&http.Client{
			Timeout: openAIRequestTimeout,
		}),
		option.WithMaxRetries(MAX_RETRIES),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}

	slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
		slog.Duration("timeout", openAIRequestTimeout),
		slog.String("model", cfg.OpenAIModel))

	return &OpenAIClient{
		Client: openai.NewClient(opts...),
		Model:  cfg.OpenAIModel,
	}, nil
}

package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spacesedan/textlens/internal/models"
)

// ErrRequestFailed marks transport failures and responses that are not a
// decodable analysis envelope.
var ErrRequestFailed = errors.New("analysis request failed")

// AnalysisClient posts payloads to the analysis API. Each call is a single
// attempt; callers surface failures to the user instead of retrying.
type AnalysisClient struct {
	BaseURL string
	Client  *http.Client
}

func NewAnalysisClient(baseURL string, timeout time.Duration) *AnalysisClient {
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	slog.Info("[AnalysisClient] Initializing Client",
		slog.String("base_url", baseURL),
		slog.Duration("timeout", timeout))

	return &AnalysisClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (a *AnalysisClient) endpointURL(endpoint string) string {
	return a.BaseURL + "/api/" + endpoint
}

// Analyze posts payload to /api/{endpoint} and decodes the envelope. The
// HTTP status is not inspected: the backend reports failures through the
// envelope's status field, also on 4xx and 5xx answers.
func (a *AnalysisClient) Analyze(ctx context.Context, endpoint string, payload models.AnalysisRequest) (models.APIResponse, error) {
	var result models.APIResponse
	start := time.Now()

	err := a.postJSON(ctx, a.endpointURL(endpoint), payload, &result)
	if err != nil {
		slog.Error("[AnalysisClient] Analysis request failed",
			slog.String("endpoint", endpoint),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return result, err
	}

	slog.Info("[AnalysisClient] Analysis request completed",
		slog.String("endpoint", endpoint),
		slog.String("status", result.Status),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

// HealthCheck reports whether GET /api/health answers 200.
func (a *AnalysisClient) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.endpointURL("health"), nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := a.Client.Do(req)
	if err != nil {
		slog.Debug("[AnalysisClient] Health check failed",
			slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

func (a *AnalysisClient) postJSON(ctx context.Context, endpoint string, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("[AnalysisClient] failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("[AnalysisClient] failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := a.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", ErrRequestFailed, err)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[AnalysisClient] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.Int("status_code", resp.StatusCode),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return fmt.Errorf("%w: failed to unmarshal response: %w", ErrRequestFailed, err)
	}

	return nil
}

const previewLength = 50

// getPreview keeps at most previewLength bytes, cut on a rune boundary.
func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > previewLength {
		cut := previewLength
		for cut > 0 && !utf8.RuneStart(raw[cut]) {
			cut--
		}
		raw = raw[:cut]
	}
	return slog.String("raw_response", raw)
}

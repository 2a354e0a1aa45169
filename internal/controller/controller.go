// Package controller is the page controller: it owns the selected analysis
// mode of each session, turns page input into analysis requests and renders
// the outcome as a result card.
package controller

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spacesedan/textlens/internal/languages"
	"github.com/spacesedan/textlens/internal/models"
	"github.com/spacesedan/textlens/internal/render"
	"github.com/spacesedan/textlens/internal/session"
)

const (
	MessageEmptyText     = "Please enter some text to analyze"
	MessageNoSelection   = "Please select an analysis type"
	MessageRequestFailed = "An error occurred while processing your request"
)

const (
	DefaultNumSentences = 3
	DefaultNumKeywords  = 5
	AutoLanguage        = "auto"
)

var (
	ErrEmptyText   = errors.New(MessageEmptyText)
	ErrNoSelection = errors.New(MessageNoSelection)
	ErrUnknownMode = errors.New("unknown analysis type")
)

// BackendError is a failure the analysis API reported in its envelope.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	return "[Controller] backend error: " + e.Message
}

// Analyzer issues one analysis request. Implemented by clients.AnalysisClient.
type Analyzer interface {
	Analyze(ctx context.Context, endpoint string, payload models.AnalysisRequest) (models.APIResponse, error)
}

// Input is the raw page form.
type Input struct {
	Text         string
	NumSentences string
	NumKeywords  string
	TargetLang   string
}

// Outcome is what the results section shows after a submission.
type Outcome struct {
	Mode models.Mode
	HTML template.HTML
	Err  error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

type Controller struct {
	analyzer Analyzer
	store    session.Store
}

func New(analyzer Analyzer, store session.Store) *Controller {
	return &Controller{analyzer: analyzer, store: store}
}

// SelectOption makes raw the session's selected mode. Unknown types are
// rejected and leave the current selection untouched.
func (c *Controller) SelectOption(ctx context.Context, sessionID, raw string) (models.Mode, error) {
	mode, ok := models.ParseMode(raw)
	if !ok {
		return "", fmt.Errorf("[Controller] %w: %q", ErrUnknownMode, raw)
	}
	if err := c.store.SetSelection(ctx, sessionID, mode); err != nil {
		return "", fmt.Errorf("[Controller] failed to store selection: %w", err)
	}

	slog.Debug("[Controller] Option selected",
		slog.String("session", sessionID),
		slog.String("mode", string(mode)))
	return mode, nil
}

// Selection returns the session's selected mode, if any. Store failures are
// logged and treated as no selection.
func (c *Controller) Selection(ctx context.Context, sessionID string) (models.Mode, bool) {
	mode, found, err := c.store.GetSelection(ctx, sessionID)
	if err != nil {
		slog.Warn("[Controller] Failed to load selection",
			slog.String("session", sessionID),
			slog.String("error", err.Error()))
		return "", false
	}
	return mode, found
}

// Validate checks the submission preconditions in page order: text first,
// then selection.
func Validate(text string, mode models.Mode, selected bool) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if !selected || mode.Endpoint() == "" {
		return ErrNoSelection
	}
	return nil
}

// Submit validates the input, posts the payload for the session's mode and
// renders the result or the error card. Nothing is sent when validation
// fails.
func (c *Controller) Submit(ctx context.Context, sessionID string, in Input) Outcome {
	mode, selected := c.Selection(ctx, sessionID)

	if err := Validate(in.Text, mode, selected); err != nil {
		return Outcome{Mode: mode, HTML: render.Error(err.Error()), Err: err}
	}

	payload := BuildPayload(mode, in)
	resp, err := c.analyzer.Analyze(ctx, mode.Endpoint(), payload)
	if err != nil {
		slog.Error("[Controller] Analysis request failed",
			slog.String("mode", string(mode)),
			slog.String("error", err.Error()))
		return Outcome{Mode: mode, HTML: render.Error(MessageRequestFailed), Err: err}
	}

	if resp.IsError() {
		message := resp.Message
		if message == "" {
			message = MessageRequestFailed
		}
		return Outcome{Mode: mode, HTML: render.Error(message), Err: &BackendError{Message: resp.Message}}
	}

	html, err := render.Result(mode, resp.Data)
	if err != nil {
		slog.Error("[Controller] Failed to render result",
			slog.String("mode", string(mode)),
			slog.String("error", err.Error()))
		return Outcome{Mode: mode, HTML: render.Error(MessageRequestFailed), Err: err}
	}

	return Outcome{Mode: mode, HTML: html}
}

// BuildPayload assembles the request body for mode. Every payload carries the
// trimmed text; only the fields belonging to mode are set.
func BuildPayload(mode models.Mode, in Input) models.AnalysisRequest {
	payload := models.AnalysisRequest{Text: strings.TrimSpace(in.Text)}

	switch mode {
	case models.ModeSummarize:
		n := parseCount(in.NumSentences, DefaultNumSentences)
		payload.NumSentences = &n
	case models.ModeKeywords:
		n := parseCount(in.NumKeywords, DefaultNumKeywords)
		payload.NumKeywords = &n
	case models.ModeTranslate:
		to := languages.ToCode(in.TargetLang)
		from := AutoLanguage
		payload.ToLang = &to
		payload.FromLang = &from
	}

	return payload
}

// parseCount reads a leading integer like the page's number inputs do and
// falls back to def when there is none.
func parseCount(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && (raw[end] >= '0' && raw[end] <= '9' || end == 0 && (raw[end] == '-' || raw[end] == '+')) {
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return def
	}
	return n
}

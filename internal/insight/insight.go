// Package insight turns raw search results into short natural-language
// summaries via an OpenAI-compatible chat model.
//
// Every entry point degrades to a deterministic template when the model is
// unconfigured or fails; synthesis never blocks a search from completing.
package insight

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/deepsearch-ai/deepsearch/internal/provider"
)

// Config configures the synthesis model.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Synthesizer produces search summaries, zero-result guidance, and general
// answers. Safe for concurrent use.
type Synthesizer struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration
	logger      *slog.Logger
	enabled     bool
}

// NewSynthesizer creates a synthesizer. With no API key the synthesizer is
// disabled and every call answers from the deterministic fallbacks.
func NewSynthesizer(cfg Config, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	s := &Synthesizer{
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
		logger:      logger,
		enabled:     cfg.APIKey != "",
	}
	if !s.enabled {
		logger.Info("insight synthesis disabled, no API key configured")
		return s
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	s.client = openai.NewClient(opts...)
	return s
}

// Enabled reports whether a model is configured.
func (s *Synthesizer) Enabled() bool { return s.enabled }

// Analyze summarizes a non-empty result set for the user.
func (s *Synthesizer) Analyze(ctx context.Context, query string, results []provider.SearchResult) string {
	if len(results) == 0 {
		text, _ := s.Guidance(ctx, query, false)
		return text
	}

	text, err := s.complete(ctx, analyzeSystemPrompt, buildResultDigest(query, results))
	if err != nil {
		s.logger.Warn("analysis synthesis failed, using fallback", slog.String("error", err.Error()))
		return fallbackAnalysis(query, results)
	}
	return text
}

// Guidance produces zero-result advice and refinement suggestions.
// degraded signals that the providers were unreachable rather than empty.
func (s *Synthesizer) Guidance(ctx context.Context, query string, degraded bool) (string, []string) {
	fallbackText, suggestions := fallbackGuidance(query, degraded)

	text, err := s.complete(ctx, guidanceSystemPrompt, buildGuidancePrompt(query, degraded))
	if err != nil {
		if s.enabled {
			s.logger.Warn("guidance synthesis failed, using fallback", slog.String("error", err.Error()))
		}
		return fallbackText, suggestions
	}
	return text, suggestions
}

// Answer handles general questions that carry no person-search intent.
func (s *Synthesizer) Answer(ctx context.Context, question string) string {
	text, err := s.complete(ctx, answerSystemPrompt, question)
	if err != nil {
		if s.enabled {
			s.logger.Warn("answer synthesis failed, using fallback", slog.String("error", err.Error()))
		}
		return fallbackAnswer
	}
	return text
}

var (
	// errDisabled marks the unconfigured-model path so callers fall back quietly.
	errDisabled = errors.New("synthesizer disabled")

	errEmptyCompletion = errors.New("model returned empty completion")
)

// complete runs one chat completion and returns the trimmed reply.
func (s *Synthesizer) complete(ctx context.Context, system, user string) (string, error) {
	if !s.enabled {
		return "", errDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(s.temperature),
	}
	if s.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(s.maxTokens))
	}

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errEmptyCompletion
	}
	return text, nil
}

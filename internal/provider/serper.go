package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
)

// serperName identifies the fallback backend in logs and error details.
const serperName = "serper"

// SerperConfig configures the Serper.dev backend.
type SerperConfig struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	CountryCode string
	Language    string
}

// Serper is the fallback search backend (google.serper.dev).
type Serper struct {
	client *http.Client
	cfg    SerperConfig
	logger *slog.Logger
}

var _ SearchProvider = (*Serper)(nil)

// NewSerper creates the Serper.dev backend.
func NewSerper(cfg SerperConfig, logger *slog.Logger) *Serper {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Serper{
		client: &http.Client{},
		cfg:    cfg,
		logger: logger,
	}
}

// Name implements SearchProvider.
func (s *Serper) Name() string { return serperName }

// serperRequest is the Serper.dev request body.
type serperRequest struct {
	Q        string `json:"q"`
	GL       string `json:"gl"`
	HL       string `json:"hl"`
	Location string `json:"location"`
}

// serperResponse mirrors the Serper.dev JSON payload.
type serperResponse struct {
	Organic []serperOrganicResult `json:"organic"`
}

type serperOrganicResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}

// Search implements SearchProvider.
func (s *Serper) Search(ctx context.Context, req Request) ([]SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(serperRequest{
		Q:        req.SearchTerm(),
		GL:       GoogleCountryCode(s.cfg.CountryCode),
		HL:       s.cfg.Language,
		Location: LocationForCountry(s.cfg.CountryCode),
	})
	if err != nil {
		return nil, dserrors.InternalError("failed to encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, dserrors.InternalError("failed to create request", err)
	}
	httpReq.Header.Set("X-API-KEY", s.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, dserrors.NetworkError(serperName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dserrors.NetworkError(serperName, err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("serper request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("query_type", string(req.Type)))
		return nil, dserrors.ProviderError(serperName, resp.StatusCode,
			fmt.Sprintf("serper returned status %d", resp.StatusCode))
	}

	var payload serperResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, dserrors.New(dserrors.ErrCodeProviderResponse, "malformed serper payload", err).
			WithDetail("provider", serperName)
	}

	results := s.normalize(payload, req)
	s.logger.Debug("serper search completed",
		slog.Int("results", len(results)),
		slog.String("query_type", string(req.Type)))
	return results, nil
}

// normalize maps the raw payload into SearchResult records.
func (s *Serper) normalize(payload serperResponse, req Request) []SearchResult {
	results := make([]SearchResult, 0, len(payload.Organic))
	now := time.Now()

	for i, item := range payload.Organic {
		sourceName := ExtractSourceName(item.Link, "", "Google")

		title, extracted := cleanTitle(item.Title, sourceName)
		snippet := item.Snippet
		if extracted != "" {
			snippet = extracted
		}

		position := item.Position
		if position <= 0 {
			position = i + 1
		}

		results = append(results, SearchResult{
			SourceName: sourceName,
			Title:      title,
			Subtitle:   buildSubtitle(snippet, req.ExtraDetails),
			URL:        item.Link,
			Confidence: Score(i, item.Title, item.Snippet, item.Link, req.Query),
			Highlights: buildHighlights(item.Snippet, sourceName, req.ExtraDetails),
			Metadata: Metadata{
				Position: position,
				Verified: false,
				LastSeen: now,
			},
		})
	}

	return results
}

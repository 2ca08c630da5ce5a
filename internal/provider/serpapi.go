package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
)

// serpAPIName identifies the primary backend in logs and error details.
const serpAPIName = "serpapi"

// maxRelatedQuestions bounds related-question cards appended to results.
const maxRelatedQuestions = 2

// SerpAPIConfig configures the SerpAPI backend.
type SerpAPIConfig struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	CountryCode string
	Language    string
}

// SerpAPI is the primary search backend (serpapi.com Google search).
type SerpAPI struct {
	client *http.Client
	cfg    SerpAPIConfig
	logger *slog.Logger
}

var _ SearchProvider = (*SerpAPI)(nil)

// NewSerpAPI creates the SerpAPI backend.
func NewSerpAPI(cfg SerpAPIConfig, logger *slog.Logger) *SerpAPI {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SerpAPI{
		client: &http.Client{},
		cfg:    cfg,
		logger: logger,
	}
}

// Name implements SearchProvider.
func (s *SerpAPI) Name() string { return serpAPIName }

// serpAPIResponse mirrors the SerpAPI JSON payload.
type serpAPIResponse struct {
	SearchMetadata   *serpSearchMetadata   `json:"search_metadata"`
	OrganicResults   []serpOrganicResult   `json:"organic_results"`
	RelatedQuestions []serpRelatedQuestion `json:"related_questions"`
	Error            string                `json:"error"`
}

type serpSearchMetadata struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type serpOrganicResult struct {
	Position      int    `json:"position"`
	Title         string `json:"title"`
	Link          string `json:"link"`
	RedirectLink  string `json:"redirect_link"`
	Snippet       string `json:"snippet"`
	DisplayedLink string `json:"displayed_link"`
	Source        string `json:"source"`
}

type serpRelatedQuestion struct {
	Question string `json:"question"`
	Snippet  string `json:"snippet"`
	Link     string `json:"link"`
}

// Search implements SearchProvider.
// Returns classified transport errors; an answered query with no organic
// results is a successful empty slice.
func (s *SerpAPI) Search(ctx context.Context, req Request) ([]SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	reqURL, err := s.buildURL(req)
	if err != nil {
		return nil, dserrors.New(dserrors.ErrCodeMalformedRequest, "invalid search request", err).
			WithDetail("provider", serpAPIName)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, dserrors.InternalError("failed to create request", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, dserrors.NetworkError(serpAPIName, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dserrors.NetworkError(serpAPIName, err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("serpapi request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("query_type", string(req.Type)))
		return nil, dserrors.ProviderError(serpAPIName, resp.StatusCode,
			fmt.Sprintf("serpapi returned status %d", resp.StatusCode))
	}

	var payload serpAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, dserrors.New(dserrors.ErrCodeProviderResponse, "malformed serpapi payload", err).
			WithDetail("provider", serpAPIName)
	}
	if payload.SearchMetadata == nil {
		return nil, dserrors.New(dserrors.ErrCodeProviderResponse, "serpapi payload missing search metadata", nil).
			WithDetail("provider", serpAPIName)
	}

	results := s.normalize(payload, req)
	s.logger.Debug("serpapi search completed",
		slog.Int("results", len(results)),
		slog.String("query_type", string(req.Type)))
	return results, nil
}

// buildURL assembles the SerpAPI request URL with geo/language parameters.
func (s *SerpAPI) buildURL(req Request) (string, error) {
	base, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	q := base.Query()
	q.Set("q", req.SearchTerm())
	q.Set("location", LocationForCountry(s.cfg.CountryCode))
	q.Set("hl", s.cfg.Language)
	q.Set("gl", GoogleCountryCode(s.cfg.CountryCode))
	q.Set("google_domain", GoogleDomainForCountry(s.cfg.CountryCode))
	q.Set("device", "desktop")
	q.Set("api_key", s.cfg.APIKey)
	base.RawQuery = q.Encode()

	return base.String(), nil
}

// normalize maps the raw payload into SearchResult records.
func (s *SerpAPI) normalize(payload serpAPIResponse, req Request) []SearchResult {
	results := make([]SearchResult, 0, len(payload.OrganicResults))
	now := time.Now()

	for i, item := range payload.OrganicResults {
		link := item.Link
		if link == "" {
			link = item.RedirectLink
		}
		sourceName := ExtractSourceName(link, item.Source, "Google")

		title := item.Title
		if title == "" {
			title = req.Query
		}
		snippet := item.Snippet
		if snippet == "" {
			snippet = item.DisplayedLink
		}

		position := item.Position
		if position <= 0 {
			position = i + 1
		}

		results = append(results, SearchResult{
			SourceName: sourceName,
			Title:      title,
			Subtitle:   buildSubtitle(snippet, req.ExtraDetails),
			URL:        link,
			Confidence: Score(i, item.Title, item.Snippet, link, req.Query),
			Highlights: buildHighlights(item.Snippet, item.Source, req.ExtraDetails),
			Metadata: Metadata{
				Position: position,
				Verified: false,
				LastSeen: now,
			},
		})
	}

	// Related-question cards ride along with a fixed confidence.
	for i, q := range payload.RelatedQuestions {
		if i >= maxRelatedQuestions {
			break
		}
		subtitle := q.Snippet
		if subtitle == "" {
			subtitle = "Related question from Google"
		}
		results = append(results, SearchResult{
			SourceName: "Google Q&A",
			Title:      q.Question,
			Subtitle:   buildSubtitle(subtitle, ""),
			URL:        q.Link,
			Confidence: RelatedQuestionConfidence,
			Highlights: []string{"Related question", "Google search result"},
			Metadata: Metadata{
				Position: len(results) + 1,
				Verified: false,
				LastSeen: now,
			},
		})
	}

	return results
}

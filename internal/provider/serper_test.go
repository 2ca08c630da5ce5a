package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
	"github.com/deepsearch-ai/deepsearch/internal/intent"
)

const serperPayload = `{
  "organic": [
    {
      "title": "Jane Roe | Acme Corp",
      "link": "https://www.linkedin.com/in/janeroe",
      "snippet": "Software engineer at Acme Corp",
      "position": 1
    },
    {
      "title": "Jane Roe on X",
      "link": "https://x.com/janeroe",
      "snippet": "Latest posts from Jane Roe",
      "position": 2
    }
  ]
}`

func newSerper(t *testing.T, handler http.HandlerFunc) *Serper {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSerper(SerperConfig{
		APIKey:      "serper-key",
		BaseURL:     srv.URL,
		Timeout:     2 * time.Second,
		CountryCode: "GB",
		Language:    "en",
	}, nil)
}

func TestSerper_Search(t *testing.T) {
	var gotHeader string
	var gotBody serperRequest
	p := newSerper(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-API-KEY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(serperPayload))
	})

	results, err := p.Search(context.Background(), Request{
		Query: "Jane Roe",
		Type:  intent.TypeName,
	})
	require.NoError(t, err)

	assert.Equal(t, "serper-key", gotHeader)
	assert.Equal(t, "Jane Roe", gotBody.Q)
	assert.Equal(t, "uk", gotBody.GL)
	assert.Equal(t, "en", gotBody.HL)
	assert.Equal(t, "United Kingdom", gotBody.Location)

	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "LinkedIn", first.SourceName)
	assert.Equal(t, "Jane Roe", first.Title, "pipe suffix stripped for LinkedIn")
	assert.Equal(t, 1, first.Metadata.Position)

	second := results[1]
	assert.Equal(t, "X (Twitter)", second.SourceName)
	assert.Equal(t, "Jane Roe", second.Title, "on X suffix stripped")
}

func TestSerper_EmptyOrganic(t *testing.T) {
	p := newSerper(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"organic": []}`))
	})

	results, err := p.Search(context.Background(), Request{Query: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSerper_StatusClassification(t *testing.T) {
	tests := []struct {
		status   int
		wantCode string
	}{
		{http.StatusTooManyRequests, dserrors.ErrCodeRateLimited},
		{http.StatusUnauthorized, dserrors.ErrCodeAuthFailure},
		{http.StatusBadRequest, dserrors.ErrCodeMalformedRequest},
		{http.StatusBadGateway, dserrors.ErrCodeProviderResponse},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p := newSerper(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := p.Search(context.Background(), Request{Query: "jane"})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, dserrors.Code(err))
		})
	}
}

func TestSerper_MalformedPayload(t *testing.T) {
	p := newSerper(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := p.Search(context.Background(), Request{Query: "jane"})
	require.Error(t, err)
	assert.Equal(t, dserrors.ErrCodeProviderResponse, dserrors.Code(err))
}

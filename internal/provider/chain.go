package provider

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	dserrors "github.com/deepsearch-ai/deepsearch/internal/errors"
	"github.com/deepsearch-ai/deepsearch/internal/telemetry"
)

// Chain tries providers in order and absorbs their failures.
//
// The fallback is strictly sequential: the next provider is attempted only
// after the previous one is confirmed unusable. Running them concurrently
// would double billable calls on every request. Identical concurrent
// requests are collapsed into one upstream call for the same reason.
type Chain struct {
	providers []SearchProvider
	logger    *slog.Logger
	group     singleflight.Group
	metrics   *telemetry.SearchMetrics
}

// NewChain creates a provider chain. Order is the fallback order.
func NewChain(logger *slog.Logger, providers ...SearchProvider) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{
		providers: providers,
		logger:    logger,
	}
}

// SetMetrics enables per-provider call metrics. Optional; call before use.
func (c *Chain) SetMetrics(m *telemetry.SearchMetrics) {
	c.metrics = m
}

// resolution is the outcome of one pass over the chain.
type resolution struct {
	results []SearchResult
	// degraded is true when every provider failed, as opposed to
	// providers answering with zero results.
	degraded bool
}

// Resolve runs the fallback chain for a request. It never returns an error:
// if every provider fails the result set is empty and degraded is true so
// downstream synthesis can mention transient unavailability.
func (c *Chain) Resolve(ctx context.Context, req Request) (results []SearchResult, degraded bool) {
	key := flightKey(req)
	v, _, shared := c.group.Do(key, func() (any, error) {
		return c.resolve(ctx, req), nil
	})
	if shared {
		c.logger.Debug("collapsed duplicate in-flight search", slog.String("key", key))
	}

	res := v.(resolution)
	return res.results, res.degraded
}

// resolve performs the sequential provider pass.
func (c *Chain) resolve(ctx context.Context, req Request) resolution {
	failures := 0

	for _, p := range c.providers {
		start := time.Now()
		results, err := p.Search(ctx, req)
		if c.metrics != nil {
			c.metrics.RecordProviderCall(p.Name(), time.Since(start), err != nil)
		}
		if err == nil {
			// Zero results by design is still an answer; accept it.
			return resolution{results: results}
		}

		failures++
		c.logger.Warn("provider failed, trying next",
			slog.String("provider", p.Name()),
			slog.String("code", dserrors.Code(err)),
			slog.Bool("rate_limited", dserrors.IsRateLimited(err)))

		if ctx.Err() != nil {
			// Caller abandoned the request; stop burning call budget.
			break
		}
	}

	return resolution{degraded: failures == len(c.providers) && failures > 0}
}

// flightKey builds the singleflight key for a request.
func flightKey(req Request) string {
	return strings.Join([]string{string(req.Type), req.Query, req.ExtraDetails}, "\x1f")
}

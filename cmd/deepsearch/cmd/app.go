package cmd

import (
	"log/slog"

	"github.com/deepsearch-ai/deepsearch/internal/config"
	"github.com/deepsearch-ai/deepsearch/internal/history"
	"github.com/deepsearch-ai/deepsearch/internal/insight"
	"github.com/deepsearch-ai/deepsearch/internal/intent"
	"github.com/deepsearch-ai/deepsearch/internal/provider"
	"github.com/deepsearch-ai/deepsearch/internal/search"
	"github.com/deepsearch-ai/deepsearch/internal/store"
	"github.com/deepsearch-ai/deepsearch/internal/telemetry"
	"github.com/deepsearch-ai/deepsearch/internal/usage"
)

// app bundles the wired components behind every command.
type app struct {
	cfg     *config.Config
	store   store.Store
	gate    *usage.Gate
	history *history.Log
	orch    *search.Orchestrator
	metrics *telemetry.SearchMetrics
}

// newApp loads configuration, opens the state store, and assembles the
// orchestrator. The caller must call close.
func newApp() (*app, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	st, err := store.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	gate, err := usage.NewGate(st, nil, cfg.Limits.FreeSearchesPerDay, cfg.Limits.FreeSourcesPerSearch)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	log, err := history.NewLog(st, cfg.History.MaxEntries)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	logger := slog.Default()

	chain := provider.NewChain(logger,
		provider.NewSerpAPI(provider.SerpAPIConfig{
			APIKey:      cfg.Providers.SerpAPI.APIKey,
			BaseURL:     cfg.Providers.SerpAPI.BaseURL,
			Timeout:     cfg.Providers.SerpAPI.Timeout,
			CountryCode: cfg.Locale.CountryCode,
			Language:    cfg.Locale.Language,
		}, logger),
		provider.NewSerper(provider.SerperConfig{
			APIKey:      cfg.Providers.Serper.APIKey,
			BaseURL:     cfg.Providers.Serper.BaseURL,
			Timeout:     cfg.Providers.Serper.Timeout,
			CountryCode: cfg.Locale.CountryCode,
			Language:    cfg.Locale.Language,
		}, logger),
	)

	synth := insight.NewSynthesizer(insight.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Timeout:     cfg.OpenAI.Timeout,
	}, logger)

	orch := search.NewOrchestrator(intent.NewExtractor(), chain, gate, synth, log, logger)

	metrics := telemetry.NewSearchMetrics()
	metrics.Load(st)
	chain.SetMetrics(metrics)
	orch.SetMetrics(metrics)

	return &app{
		cfg:     cfg,
		store:   st,
		gate:    gate,
		history: log,
		orch:    orch,
		metrics: metrics,
	}, nil
}

// close persists metrics and releases the state store.
func (a *app) close() {
	_ = a.metrics.Persist(a.store)
	_ = a.store.Close()
}

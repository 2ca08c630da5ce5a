// Package config loads and validates DeepSearch configuration.
//
// Precedence, lowest to highest: built-in defaults, user config file
// (~/.config/deepsearch/config.yaml), environment variables (DEEPSEARCH_*).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete DeepSearch configuration.
type Config struct {
	Providers ProvidersConfig `yaml:"providers" json:"providers"`
	OpenAI    OpenAIConfig    `yaml:"openai" json:"openai"`
	Limits    LimitsConfig    `yaml:"limits" json:"limits"`
	History   HistoryConfig   `yaml:"history" json:"history"`
	Locale    LocaleConfig    `yaml:"locale" json:"locale"`
	Storage   StorageConfig   `yaml:"storage" json:"storage"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
}

// ProvidersConfig configures the search provider backends.
type ProvidersConfig struct {
	SerpAPI ProviderConfig `yaml:"serpapi" json:"serpapi"`
	Serper  ProviderConfig `yaml:"serper" json:"serper"`
}

// ProviderConfig configures a single search backend.
type ProviderConfig struct {
	APIKey  string        `yaml:"api_key" json:"api_key"`
	BaseURL string        `yaml:"base_url" json:"base_url"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// OpenAIConfig configures the insight synthesis LLM.
type OpenAIConfig struct {
	APIKey      string        `yaml:"api_key" json:"api_key"`
	BaseURL     string        `yaml:"base_url" json:"base_url"`
	Model       string        `yaml:"model" json:"model"`
	Temperature float64       `yaml:"temperature" json:"temperature"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`
}

// LimitsConfig configures free-tier quota limits.
type LimitsConfig struct {
	// FreeSearchesPerDay is the daily search quota for non-premium callers.
	FreeSearchesPerDay int `yaml:"free_searches_per_day" json:"free_searches_per_day"`

	// FreeSourcesPerSearch caps result volume per search for non-premium callers.
	FreeSourcesPerSearch int `yaml:"free_sources_per_search" json:"free_sources_per_search"`
}

// HistoryConfig configures the search history log.
type HistoryConfig struct {
	// MaxEntries bounds the history log; oldest entries are dropped.
	MaxEntries int `yaml:"max_entries" json:"max_entries"`
}

// LocaleConfig configures geo and language hints sent to providers.
type LocaleConfig struct {
	// CountryCode is the ISO country code (e.g., "US", "TR").
	CountryCode string `yaml:"country_code" json:"country_code"`
	// Language is the two-letter language code for results (e.g., "en").
	Language string `yaml:"language" json:"language"`
}

// StorageConfig configures persisted state.
type StorageConfig struct {
	// Path is the SQLite database path for usage and history state.
	Path string `yaml:"path" json:"path"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// Default values for provider endpoints and limits.
const (
	DefaultSerpAPIBaseURL = "https://serpapi.com/search.json"
	DefaultSerperBaseURL  = "https://google.serper.dev/search"
	DefaultOpenAIModel    = "gpt-4o-mini"

	DefaultProviderTimeout = 15 * time.Second
	DefaultOpenAITimeout   = 30 * time.Second

	DefaultFreeSearchesPerDay   = 1
	DefaultFreeSourcesPerSearch = 2
	DefaultHistoryMaxEntries    = 100
)

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Providers: ProvidersConfig{
			SerpAPI: ProviderConfig{
				BaseURL: DefaultSerpAPIBaseURL,
				Timeout: DefaultProviderTimeout,
			},
			Serper: ProviderConfig{
				BaseURL: DefaultSerperBaseURL,
				Timeout: DefaultProviderTimeout,
			},
		},
		OpenAI: OpenAIConfig{
			Model:       DefaultOpenAIModel,
			Temperature: 0.7,
			MaxTokens:   500,
			Timeout:     DefaultOpenAITimeout,
		},
		Limits: LimitsConfig{
			FreeSearchesPerDay:   DefaultFreeSearchesPerDay,
			FreeSourcesPerSearch: DefaultFreeSourcesPerSearch,
		},
		History: HistoryConfig{
			MaxEntries: DefaultHistoryMaxEntries,
		},
		Locale: LocaleConfig{
			CountryCode: "US",
			Language:    "en",
		},
		Storage: StorageConfig{
			Path: DefaultStoragePath(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// GetUserConfigPath returns the user config file path.
// Respects XDG_CONFIG_HOME when set.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "deepsearch", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "deepsearch", "config.yaml")
	}
	return filepath.Join(home, ".config", "deepsearch", "config.yaml")
}

// DefaultStoragePath returns the default SQLite database path.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".deepsearch", "state.db")
	}
	return filepath.Join(home, ".deepsearch", "state.db")
}

// Load builds the effective configuration: defaults, then the user config
// file if present, then environment overrides, then validation.
func Load() (*Config, error) {
	cfg := NewConfig()

	if err := cfg.loadYAML(GetUserConfigPath()); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFile builds the configuration from an explicit file path.
// The file must exist.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err := cfg.loadYAML(path); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadYAML merges a YAML file into the config. Missing files are ignored.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies DEEPSEARCH_* environment variables.
// Env vars take precedence over file values; API keys are usually set here.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DEEPSEARCH_SERPAPI_KEY"); v != "" {
		c.Providers.SerpAPI.APIKey = v
	}
	if v := os.Getenv("DEEPSEARCH_SERPAPI_URL"); v != "" {
		c.Providers.SerpAPI.BaseURL = v
	}
	if v := os.Getenv("DEEPSEARCH_SERPER_KEY"); v != "" {
		c.Providers.Serper.APIKey = v
	}
	if v := os.Getenv("DEEPSEARCH_SERPER_URL"); v != "" {
		c.Providers.Serper.BaseURL = v
	}
	if v := os.Getenv("DEEPSEARCH_OPENAI_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	// OPENAI_API_KEY is an alias for DEEPSEARCH_OPENAI_KEY
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("DEEPSEARCH_OPENAI_URL"); v != "" {
		c.OpenAI.BaseURL = v
	}
	if v := os.Getenv("DEEPSEARCH_OPENAI_MODEL"); v != "" {
		c.OpenAI.Model = v
	}
	if v := os.Getenv("DEEPSEARCH_COUNTRY"); v != "" {
		c.Locale.CountryCode = strings.ToUpper(v)
	}
	if v := os.Getenv("DEEPSEARCH_LANGUAGE"); v != "" {
		c.Locale.Language = strings.ToLower(v)
	}
	if v := os.Getenv("DEEPSEARCH_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("DEEPSEARCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DEEPSEARCH_DAILY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Limits.FreeSearchesPerDay = n
		}
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Providers.SerpAPI.BaseURL == "" {
		return fmt.Errorf("providers.serpapi.base_url cannot be empty")
	}
	if c.Providers.Serper.BaseURL == "" {
		return fmt.Errorf("providers.serper.base_url cannot be empty")
	}
	if c.OpenAI.Model == "" {
		return fmt.Errorf("openai.model cannot be empty")
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be in [0, 2], got %v", c.OpenAI.Temperature)
	}
	if c.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("openai.max_tokens must be positive, got %d", c.OpenAI.MaxTokens)
	}
	if c.Limits.FreeSearchesPerDay < 0 {
		return fmt.Errorf("limits.free_searches_per_day cannot be negative")
	}
	if c.Limits.FreeSourcesPerSearch <= 0 {
		return fmt.Errorf("limits.free_sources_per_search must be positive, got %d", c.Limits.FreeSourcesPerSearch)
	}
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("history.max_entries must be positive, got %d", c.History.MaxEntries)
	}
	if c.Locale.CountryCode != "" && len(c.Locale.CountryCode) != 2 {
		return fmt.Errorf("locale.country_code must be a two-letter ISO code, got %q", c.Locale.CountryCode)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

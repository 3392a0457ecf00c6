// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/skill-intel/internal/llm"
	"github.com/jonathan/skill-intel/internal/trends"
)

// Environment variables read by FromEnv.
const (
	EnvProvider        = "SKILL_INTEL_LLM_PROVIDER"
	EnvMaxAttempts     = "SKILL_INTEL_LLM_MAX_ATTEMPTS"
	EnvBaseDelay       = "SKILL_INTEL_LLM_BASE_DELAY"
	EnvListenAddr      = "SKILL_INTEL_ADDR"
	EnvGeminiAlias     = "GEMINI_API_KEY"
	EnvDatabaseURL     = "DATABASE_URL"
	EnvTrendsURL       = "TRENDS_API_URL"
	EnvTrendsKey       = "TRENDS_API_KEY"
	EnvTrendsRegion    = "TRENDS_REGION"
	EnvTrendsTimeframe = "TRENDS_TIMEFRAME"
	EnvLogLevel        = "LOG_LEVEL"
)

// Config represents the application configuration. Values come from the
// environment, then an optional JSON or YAML file, then Defaults.
type Config struct {
	// Model
	Provider    string `json:"provider,omitempty" yaml:"provider,omitempty"`
	APIKey      string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	BaseURL     string `json:"base_url,omitempty" yaml:"base_url,omitempty"` // OpenAI-compatible endpoint
	MaxAttempts int    `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty"`
	BaseDelay   string `json:"base_delay,omitempty" yaml:"base_delay,omitempty"` // Go duration, e.g. "5s"

	// Storage and trend data
	DatabaseURL     string  `json:"database_url,omitempty" yaml:"database_url,omitempty"`
	TrendsAPIURL    string  `json:"trends_api_url,omitempty" yaml:"trends_api_url,omitempty"`
	TrendsAPIKey    string  `json:"trends_api_key,omitempty" yaml:"trends_api_key,omitempty"`
	TrendsRegion    string  `json:"trends_region,omitempty" yaml:"trends_region,omitempty"`
	TrendsTimeframe string  `json:"trends_timeframe,omitempty" yaml:"trends_timeframe,omitempty"`
	TrendsPerSecond float64 `json:"trends_per_second,omitempty" yaml:"trends_per_second,omitempty"`

	// Server and logging
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
	LogLevel   string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Verbose    bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`

	// SearchedPaths records every .env location consulted. Not serialized.
	SearchedPaths []string `json:"-" yaml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Provider:        string(llm.ProviderGemini),
		MaxAttempts:     llm.DefaultRetryConfig().MaxAttempts,
		BaseDelay:       llm.DefaultRetryConfig().BaseDelay.String(),
		TrendsRegion:    trends.DefaultRegion,
		TrendsTimeframe: trends.DefaultTimeframe,
		TrendsPerSecond: 1,
		ListenAddr:      ":8000",
		LogLevel:        "info",
	}
}

// DotEnvCandidates returns the .env locations searched, in order.
func DotEnvCandidates() []string {
	candidates := []string{".env", filepath.Join("backend", ".env"), filepath.Join("..", ".env")}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ".env"))
	}
	return candidates
}

// LoadDotEnv loads every existing candidate into the process environment
// without overriding variables that are already set. It returns the
// candidates searched, whether or not they existed.
func LoadDotEnv(candidates []string) []string {
	searched := make([]string, 0, len(candidates))
	for _, p := range candidates {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		searched = append(searched, abs)
		if _, err := os.Stat(abs); err != nil {
			continue
		}
		_ = godotenv.Load(abs)
	}
	return searched
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Unset variables
// leave fields empty. The API key is resolved for the configured provider
// by Load, since the provider may come from a file.
func FromEnv() (Config, error) {
	cfg := Config{
		Provider:        os.Getenv(EnvProvider),
		BaseDelay:       os.Getenv(EnvBaseDelay),
		ListenAddr:      os.Getenv(EnvListenAddr),
		DatabaseURL:     os.Getenv(EnvDatabaseURL),
		TrendsAPIURL:    os.Getenv(EnvTrendsURL),
		TrendsAPIKey:    os.Getenv(EnvTrendsKey),
		TrendsRegion:    os.Getenv(EnvTrendsRegion),
		TrendsTimeframe: os.Getenv(EnvTrendsTimeframe),
		LogLevel:        os.Getenv(EnvLogLevel),
	}
	if v := os.Getenv(EnvMaxAttempts); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be an integer: %w", EnvMaxAttempts, err)
		}
		cfg.MaxAttempts = n
	}
	return cfg, nil
}

// APIKeyFromEnv returns the credential for a provider from the environment.
// Gemini also accepts GEMINI_API_KEY.
func APIKeyFromEnv(provider llm.Provider) string {
	cfg := llm.Config{Provider: provider}
	if key := strings.TrimSpace(os.Getenv(cfg.CredentialName())); key != "" {
		return key
	}
	if cfg.CredentialName() == llm.CredentialGemini {
		return strings.TrimSpace(os.Getenv(EnvGeminiAlias))
	}
	return ""
}

// Load assembles the configuration: .env discovery, environment, optional
// file at path (may be empty), then defaults. Environment values win.
func Load(path string) (*Config, error) {
	searched := LoadDotEnv(DotEnvCandidates())

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*file)
	}
	cfg = cfg.MergeWithDefaults(Defaults())

	if key := APIKeyFromEnv(llm.Provider(cfg.Provider)); key != "" {
		cfg.APIKey = key
	}
	cfg.SearchedPaths = searched

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch llm.Provider(c.Provider) {
	case "", llm.ProviderGemini, llm.ProviderOpenAI, llm.ProviderAnthropic:
	default:
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	if c.MaxAttempts < 0 {
		return fmt.Errorf("config error: 'max_attempts' must be non-negative")
	}
	if c.BaseDelay != "" {
		d, err := time.ParseDuration(c.BaseDelay)
		if err != nil {
			return fmt.Errorf("config error: 'base_delay' is not a duration: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("config error: 'base_delay' must be non-negative")
		}
	}
	if c.TrendsPerSecond < 0 {
		return fmt.Errorf("config error: 'trends_per_second' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.Provider, defaults.Provider)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.BaseURL, defaults.BaseURL)
	fill(&result.BaseDelay, defaults.BaseDelay)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.TrendsAPIURL, defaults.TrendsAPIURL)
	fill(&result.TrendsAPIKey, defaults.TrendsAPIKey)
	fill(&result.TrendsRegion, defaults.TrendsRegion)
	fill(&result.TrendsTimeframe, defaults.TrendsTimeframe)
	fill(&result.ListenAddr, defaults.ListenAddr)
	fill(&result.LogLevel, defaults.LogLevel)

	// Numeric fields: use default if zero
	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}
	if result.TrendsPerSecond == 0 {
		result.TrendsPerSecond = defaults.TrendsPerSecond
	}

	// Bool fields: cannot distinguish unset from false, so we OR them
	result.Verbose = result.Verbose || defaults.Verbose

	if len(result.SearchedPaths) == 0 {
		result.SearchedPaths = defaults.SearchedPaths
	}

	return result
}

// LLMConfig builds the model client configuration for the selected provider.
func (c *Config) LLMConfig() *llm.Config {
	out := llm.DefaultConfigFor(llm.Provider(c.Provider))
	out.APIKey = strings.TrimSpace(c.APIKey)
	out.BaseURL = c.BaseURL
	out.SearchedPaths = append([]string(nil), c.SearchedPaths...)

	if c.MaxAttempts > 0 {
		out.Retry.MaxAttempts = c.MaxAttempts
	}
	if d, err := time.ParseDuration(c.BaseDelay); err == nil && c.BaseDelay != "" {
		out.Retry.BaseDelay = d
	}
	return out
}

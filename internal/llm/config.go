// Package llm provides centralized LLM configuration and client abstractions.
// This package wraps the text-completion providers behind a single Client
// interface and owns retry/backoff and circuit breaking for the primary path.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: skill extraction
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: gap analysis, curriculum alignment
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: roadmap planning
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (or any OpenAI-compatible API via BaseURL)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider
	ProviderAnthropic Provider = "anthropic"
)

// Credential names looked up in the environment for each provider.
const (
	CredentialGemini    = "GOOGLE_AI_API_KEY"
	CredentialOpenAI    = "OPENAI_API_KEY"
	CredentialAnthropic = "ANTHROPIC_API_KEY"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string

	// APIKey is the provider credential. Empty means "not configured".
	APIKey string
	// BaseURL overrides the provider endpoint (OpenAI-compatible APIs only).
	BaseURL string
	// SearchedPaths lists the configuration locations consulted for APIKey.
	// It is reported verbatim in ConfigurationError.
	SearchedPaths []string

	Retry   RetryConfig
	Breaker BreakerConfig
}

// RetryConfig configures retry behavior for rate-limited calls.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is multiplied by 2^attempt between attempts.
	BaseDelay time.Duration
	// OnRetry, when set, is called before each backoff sleep.
	OnRetry func(attempt int, wait time.Duration)
}

// BreakerConfig configures the circuit breaker around the primary path.
type BreakerConfig struct {
	Enabled bool
	// ConsecutiveFailures trips the breaker.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// DefaultRetryConfig returns 3 attempts with a 5s base delay (5s, 10s between attempts).
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   5 * time.Second,
	}
}

// DefaultBreakerConfig returns the default breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:             true,
		ConsecutiveFailures: 5,
		OpenTimeout:         60 * time.Second,
	}
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.0-flash-lite",
			TierStandard: "gemini-2.0-flash",
			TierAdvanced: "gemini-2.5-flash",
		},
		Retry:   DefaultRetryConfig(),
		Breaker: DefaultBreakerConfig(),
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o-mini",
			TierAdvanced: "gpt-4o",
		},
		Retry:   DefaultRetryConfig(),
		Breaker: DefaultBreakerConfig(),
	}
}

// DefaultAnthropicConfig returns the default Anthropic configuration
func DefaultAnthropicConfig() *Config {
	return &Config{
		Provider: ProviderAnthropic,
		Models: map[ModelTier]string{
			TierLite:     "claude-haiku-4-5-20251001",
			TierStandard: "claude-haiku-4-5-20251001",
			TierAdvanced: "claude-sonnet-4-20250514",
		},
		Retry:   DefaultRetryConfig(),
		Breaker: DefaultBreakerConfig(),
	}
}

// DefaultConfigFor returns the default configuration for a provider.
// Unknown providers get the Gemini defaults.
func DefaultConfigFor(p Provider) *Config {
	switch p {
	case ProviderOpenAI:
		return DefaultOpenAIConfig()
	case ProviderAnthropic:
		return DefaultAnthropicConfig()
	default:
		return DefaultGeminiConfig()
	}
}

// CredentialName returns the environment variable that holds the provider key.
func (c *Config) CredentialName() string {
	switch c.Provider {
	case ProviderOpenAI:
		return CredentialOpenAI
	case ProviderAnthropic:
		return CredentialAnthropic
	default:
		return CredentialGemini
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := *c
	newConfig.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return &newConfig
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client is an abstraction over text-completion providers
type Client interface {
	// Complete returns the raw completion text for prompt using the model of the tier.
	// Failures are one of ErrRateLimited, ErrServiceUnavailable, ErrAuthentication, ErrUnknown.
	Complete(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// Model returns the provider model name for a tier
	Model(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration, wrapped with
// retry (and the circuit breaker when enabled): caller → breaker → retry → provider.
// A missing API key yields *ConfigurationError.
func NewClient(ctx context.Context, config *Config, logger *zap.Logger) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, &ConfigurationError{
			Credential: config.CredentialName(),
			Searched:   config.SearchedPaths,
		}
	}

	var base Client
	var err error
	switch config.Provider {
	case ProviderOpenAI:
		base, err = NewOpenAIClient(config)
	case ProviderAnthropic:
		base, err = NewAnthropicClient(config)
	default:
		base, err = NewGeminiClient(ctx, config)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s client: %w", config.Provider, err)
	}

	var client Client = WithRetry(base, config.Retry, logger)
	if config.Breaker.Enabled {
		client = WithBreaker(client, config.Breaker, logger)
	}
	return client, nil
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, &ConfigurationError{Credential: CredentialGemini, Searched: config.SearchedPaths}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Complete generates text content using the specified model tier
func (c *GeminiClient) Complete(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", &ErrUnknown{Err: fmt.Errorf("no model configured for tier %s", tier)}
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", mapGeminiError(err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", &ErrUnknown{Err: err}
	}
	return text, nil
}

// Model returns the model name for a tier
func (c *GeminiClient) Model(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

func mapGeminiError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &ErrServiceUnavailable{Err: err}
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if classified, ok := classifyStatus(apiErr.Code, err); ok {
			return classified
		}
	}
	return classifyMessage(err)
}

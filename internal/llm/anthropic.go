package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 4096

// AnthropicClient implements Client using the Anthropic SDK.
type AnthropicClient struct {
	client *anthropic.Client
	config *Config
}

// NewAnthropicClient creates a new Anthropic client.
func NewAnthropicClient(config *Config) (*AnthropicClient, error) {
	if config.APIKey == "" {
		return nil, &ConfigurationError{Credential: CredentialAnthropic, Searched: config.SearchedPaths}
	}

	client := anthropic.NewClient(option.WithAPIKey(config.APIKey))
	return &AnthropicClient{
		client: &client,
		config: config,
	}, nil
}

// Complete sends prompt as a single user message and joins the text blocks.
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", &ErrUnknown{Err: fmt.Errorf("no model configured for tier %s", tier)}
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelName),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", mapAnthropicError(err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", &ErrUnknown{Err: fmt.Errorf("no text content in Anthropic response")}
	}
	return strings.Join(parts, ""), nil
}

// Model returns the model name for a tier
func (c *AnthropicClient) Model(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the SDK holds no long-lived resources.
func (c *AnthropicClient) Close() error { return nil }

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if classified, ok := classifyStatus(apiErr.StatusCode, err); ok {
			return classified
		}
	}
	return classifyMessage(err)
}

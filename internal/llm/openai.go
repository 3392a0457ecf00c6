package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client using the OpenAI SDK.
// It also supports OpenRouter and other OpenAI-compatible APIs via BaseURL.
type OpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI client.
func NewOpenAIClient(config *Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, &ConfigurationError{Credential: CredentialOpenAI, Searched: config.SearchedPaths}
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Complete sends prompt as a single user message.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", &ErrUnknown{Err: fmt.Errorf("no model configured for tier %s", tier)}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &ErrUnknown{Err: fmt.Errorf("no choices in OpenAI response")}
	}
	return resp.Choices[0].Message.Content, nil
}

// Model returns the model name for a tier
func (c *OpenAIClient) Model(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the SDK holds no long-lived resources.
func (c *OpenAIClient) Close() error { return nil }

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if classified, ok := classifyStatus(apiErr.HTTPStatusCode, err); ok {
			return classified
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if classified, ok := classifyStatus(reqErr.HTTPStatusCode, err); ok {
			return classified
		}
	}
	return classifyMessage(err)
}

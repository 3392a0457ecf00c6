package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{
		Credential: CredentialGemini,
		Searched:   []string{"/srv/app/.env", "/home/u/.env"},
	}
	msg := err.Error()
	assert.Contains(t, msg, "GOOGLE_AI_API_KEY not found in environment")
	assert.Contains(t, msg, "\n  - /srv/app/.env")
	assert.Contains(t, msg, "\n  - /home/u/.env")

	bare := &ConfigurationError{Credential: CredentialOpenAI}
	assert.Equal(t, "OPENAI_API_KEY not found in environment", bare.Error())
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(&ErrRateLimited{}))
	assert.True(t, IsRateLimited(fmt.Errorf("wrapped: %w", &ErrRateLimited{})))
	assert.False(t, IsRateLimited(&ErrServiceUnavailable{}))
	assert.False(t, IsRateLimited(nil))
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("provider")
	tests := []struct {
		code int
		want any
		ok   bool
	}{
		{429, &ErrRateLimited{}, true},
		{401, &ErrAuthentication{}, true},
		{403, &ErrAuthentication{}, true},
		{500, &ErrServiceUnavailable{}, true},
		{503, &ErrServiceUnavailable{}, true},
		{400, nil, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			got, ok := classifyStatus(tt.code, base)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.IsType(t, tt.want, got)
				assert.ErrorIs(t, got, base)
			}
		})
	}
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		msg  string
		want any
	}{
		{"googleapi: Error 429: RESOURCE_EXHAUSTED", &ErrRateLimited{}},
		{"rpc error: code = UNAUTHENTICATED", &ErrAuthentication{}},
		{"API key not valid. Please pass a valid API key.", &ErrAuthentication{}},
		{"dial tcp: connection refused", &ErrServiceUnavailable{}},
		{"lookup api.example: no such host", &ErrServiceUnavailable{}},
		{"something odd", &ErrUnknown{}},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.IsType(t, tt.want, classifyMessage(errors.New(tt.msg)))
		})
	}
}

func TestErrorKinds_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	for _, err := range []error{
		&ErrRateLimited{Err: cause},
		&ErrServiceUnavailable{Err: cause},
		&ErrAuthentication{Err: cause},
		&ErrUnknown{Err: cause},
	} {
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "cause")
	}
	assert.Equal(t, "LLM provider unavailable", (&ErrServiceUnavailable{}).Error())
}

package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigurationError indicates a required credential is missing.
// It is the only llm error meant to reach the operator.
type ConfigurationError struct {
	Credential string
	Searched   []string
}

func (e *ConfigurationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s not found in environment", e.Credential))
	if len(e.Searched) > 0 {
		sb.WriteString("; checked locations:")
		for _, p := range e.Searched {
			sb.WriteString("\n  - ")
			sb.WriteString(p)
		}
	}
	return sb.String()
}

// ErrRateLimited indicates the provider rejected the call with a rate limit (429).
type ErrRateLimited struct {
	Err error
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrServiceUnavailable indicates the provider is down, unreachable or the
// circuit breaker is open.
type ErrServiceUnavailable struct {
	Err error
}

func (e *ErrServiceUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrServiceUnavailable) Unwrap() error { return e.Err }

// ErrAuthentication indicates the credential was rejected.
type ErrAuthentication struct {
	Err error
}

func (e *ErrAuthentication) Error() string {
	return fmt.Sprintf("LLM authentication failed: %v", e.Err)
}

func (e *ErrAuthentication) Unwrap() error { return e.Err }

// ErrUnknown wraps any failure that does not fit another kind, including
// responses that carry no text.
type ErrUnknown struct {
	Err error
}

func (e *ErrUnknown) Error() string {
	return fmt.Sprintf("LLM call failed: %v", e.Err)
}

func (e *ErrUnknown) Unwrap() error { return e.Err }

// IsRateLimited reports whether err is (or wraps) ErrRateLimited.
func IsRateLimited(err error) bool {
	var rl *ErrRateLimited
	return errors.As(err, &rl)
}

// classifyStatus maps an HTTP status code to an error kind.
// ok is false when the status carries no classification.
func classifyStatus(code int, err error) (classified error, ok bool) {
	switch {
	case code == http.StatusTooManyRequests:
		return &ErrRateLimited{Err: err}, true
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &ErrAuthentication{Err: err}, true
	case code >= 500:
		return &ErrServiceUnavailable{Err: err}, true
	}
	return nil, false
}

// classifyMessage classifies provider errors that only expose a message.
func classifyMessage(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "RESOURCE_EXHAUSTED") || strings.Contains(msg, "429"):
		return &ErrRateLimited{Err: err}
	case strings.Contains(msg, "UNAUTHENTICATED") || strings.Contains(msg, "PERMISSION_DENIED") ||
		strings.Contains(msg, "API key not valid"):
		return &ErrAuthentication{Err: err}
	case strings.Contains(msg, "UNAVAILABLE") || strings.Contains(msg, "503") ||
		strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host"):
		return &ErrServiceUnavailable{Err: err}
	default:
		return &ErrUnknown{Err: err}
	}
}

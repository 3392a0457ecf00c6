package llm

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockClient.
type MockResponse struct {
	Text string
	Err  error
}

// MockCall records one Complete invocation.
type MockCall struct {
	Prompt string
	Tier   ModelTier
}

// MockClient is a deterministic Client for testing.
// It returns canned responses in FIFO order and records all calls.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []MockCall
}

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// Complete returns the next canned response, or ErrServiceUnavailable when
// the queue is empty.
func (m *MockClient) Complete(_ context.Context, prompt string, tier ModelTier) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{Prompt: prompt, Tier: tier})

	if len(m.responses) == 0 {
		return "", &ErrServiceUnavailable{}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Text, nil
}

// Model returns "mock" for every tier.
func (m *MockClient) Model(ModelTier) string { return "mock" }

// Close is a no-op.
func (m *MockClient) Close() error { return nil }

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Complete calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded calls.
func (m *MockClient) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

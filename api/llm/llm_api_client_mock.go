package llm

import (
	"context"
	"fmt"
	"sync"
)

// LLMApiClientMock replays a scripted queue of responses, one per Complete
// call, so tests can drive the generate/repair loop deterministically.
type LLMApiClientMock struct {
	mu        sync.Mutex
	responses []string
	calls     []string
}

// NewLLMApiClientMock creates a mock that will replay the given responses in order.
func NewLLMApiClientMock(responses ...string) *LLMApiClientMock {
	return &LLMApiClientMock{responses: responses}
}

// Enqueue appends another scripted response.
func (m *LLMApiClientMock) Enqueue(response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, response)
}

// Complete pops the next scripted response. Running out of script is an error
// so tests fail loudly instead of looping.
func (m *LLMApiClientMock) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, user)
	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock llm script exhausted after %d calls", len(m.calls))
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	return next, nil
}

// CallCount returns how many Complete calls were made.
func (m *LLMApiClientMock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Call returns the user content of the i-th Complete call.
func (m *LLMApiClientMock) Call(i int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[i]
}

package llm

import (
	"context"
	"strings"
	"sync"
)

// MockClient is a canned Client for tests and offline runs. When Err is set
// Generate fails with it; otherwise it returns Text, or a simple generated
// placeholder when Text is empty. Calls records every request received.
type MockClient struct {
	mu    sync.Mutex
	Text  string
	Err   error
	Calls []Request
}

func (m *MockClient) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	text := m.Text
	if text == "" {
		var sb strings.Builder
		sb.WriteString("# Generated Content (offline)\n\n")
		sb.WriteString("No generation service is configured, so this is a placeholder.\n\n")
		sb.WriteString("Prompt sent:\n\n```\n")
		sb.WriteString(req.User)
		sb.WriteString("\n```\n")
		text = sb.String()
	}

	return &Response{Text: text, Model: "mock"}, nil
}

// CallCount returns how many requests the mock has received.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

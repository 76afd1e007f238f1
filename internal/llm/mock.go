package llm

import (
	"context"

	"relay-llm/internal/domain"
)

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error
	LastSent []domain.Message
}

func (m *MockClient) Complete(_ context.Context, messages []domain.Message) (string, error) {
	m.LastSent = messages
	return m.Response, m.Err
}

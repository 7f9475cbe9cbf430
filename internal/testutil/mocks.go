package testutil

import (
	"context"
	"fmt"
)

// MockProvider mocks a translation provider. It satisfies
// translation.Provider without importing it.
type MockProvider struct {
	Responses map[string]string
	Errors    map[string]error
	// Err, when set, is returned for every call
	Err error
	// Transform computes the response for texts without an explicit entry
	Transform func(text string) string
	Calls     []string
}

// NewMockProvider creates a mock that tags every text with the target
// language, e.g. "hi" -> "[fr] hi".
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Responses: make(map[string]string),
		Errors:    make(map[string]error),
	}
}

// Translate records the call and returns the configured response
func (m *MockProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	m.Calls = append(m.Calls, text)

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if resp, ok := m.Responses[text]; ok {
		return resp, nil
	}
	if m.Transform != nil {
		return m.Transform(text), nil
	}
	return fmt.Sprintf("[%s] %s", target, text), nil
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// IsAvailable always succeeds
func (m *MockProvider) IsAvailable() error {
	return nil
}

// CallCount returns the number of Translate calls
func (m *MockProvider) CallCount() int {
	return len(m.Calls)
}

// ConnectionError mimics a transport failure from a remote service
type ConnectionError struct {
	Host string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection refused: %s", e.Host)
}

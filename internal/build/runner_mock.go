package build

import (
	"context"
	"sync"
)

// MockRunner is a mock implementation of Runner for testing.
type MockRunner struct {
	Output []byte
	Err    error
	// OnRun, when set, runs before the mock returns (e.g. to emit artifacts).
	OnRun func(ctx context.Context, name string, args []string) error

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records a single Run invocation.
type MockCall struct {
	Name string
	Args []string
}

// NewMockRunner creates a mock runner that succeeds with no output.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

func (m *MockRunner) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Name: name, Args: append([]string(nil), args...)})
	m.mu.Unlock()

	if m.OnRun != nil {
		if err := m.OnRun(ctx, name, args); err != nil {
			return m.Output, err
		}
	}
	return m.Output, m.Err
}

// Calls returns the recorded invocations.
func (m *MockRunner) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

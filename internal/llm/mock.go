package llm

import (
	"context"
	"sync"
)

// Mock is a deterministic Generator for tests and local debugging.
// It replays configured responses in order (repeating the last one when
// exhausted), optionally fails, and counts calls so tests can assert how
// many generation calls a pipeline made.
type Mock struct {
	mu sync.Mutex

	// responses are returned in order; the last one repeats.
	responses []string

	// err, when set, is returned by every call after the first
	// FailAfter successful calls.
	err error

	// failAfter is the number of successful calls before err applies.
	failAfter int

	// calls is the number of Generate invocations so far.
	calls int

	// prompts records every prompt received, in order.
	prompts []string
}

// NewMock creates a Mock that replays the given responses.
func NewMock(responses ...string) *Mock {
	return &Mock{responses: responses}
}

// FailWith makes the mock return err on every call after n successful ones.
// Pass n=0 to fail immediately.
func (m *Mock) FailWith(err error, n int) *Mock {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	m.failAfter = n
	return m
}

// Generate returns the next configured response, honoring context
// cancellation and the configured failure point.
func (m *Mock) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil && m.calls >= m.failAfter {
		return "", m.err
	}

	m.calls++
	m.prompts = append(m.prompts, prompt)

	if len(m.responses) == 0 {
		return "", nil
	}
	idx := m.calls - 1
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	return m.responses[idx], nil
}

// Calls returns how many times Generate succeeded.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Prompts returns a copy of every prompt received, in order.
func (m *Mock) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	prompts := make([]string, len(m.prompts))
	copy(prompts, m.prompts)
	return prompts
}

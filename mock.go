package instructor

import (
	"context"
	"errors"
	"sync"
)

// MockTurn scripts one Complete call of a MockAdapter: either a raw response
// or an error.
type MockTurn struct {
	Response string
	Err      error
}

// MockAdapter is a scripted Adapter for tests. Each Complete call consumes
// the next turn of the script; calls past the end of the script return an
// error. The adapter records every request it receives.
//
// MockAdapter is safe for concurrent use.
type MockAdapter struct {
	// Script holds the responses to play back, in order.
	Script []MockTurn

	// ReaskFunc overrides the default reask behavior (replaying the raw
	// response as an assistant message).
	ReaskFunc func(raw string, req *Request) []Message

	mu       sync.Mutex
	calls    int
	requests []*Request
}

// Complete plays back the next scripted turn.
func (m *MockAdapter) Complete(_ context.Context, req *Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req.clone())
	if m.calls >= len(m.Script) {
		m.calls++
		return "", errors.New("mock adapter: script exhausted")
	}
	turn := m.Script[m.calls]
	m.calls++
	return turn.Response, turn.Err
}

// Reask replays the raw response as an assistant message, or delegates to
// ReaskFunc when set.
func (m *MockAdapter) Reask(raw string, req *Request) []Message {
	if m.ReaskFunc != nil {
		return m.ReaskFunc(raw, req)
	}
	return []Message{{ID: GenerateMessageID(), Role: RoleAssistant, Content: raw}}
}

// Calls returns how many times Complete was invoked.
func (m *MockAdapter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Requests returns copies of the requests received by Complete, in order.
func (m *MockAdapter) Requests() []*Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Request, len(m.requests))
	copy(out, m.requests)
	return out
}

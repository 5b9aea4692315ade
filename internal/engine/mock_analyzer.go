package engine

import (
	"context"
	"sync"

	"github.com/ktagirov/nastroenie/internal/model"
)

// MockAnalyzer is a test implementation of the Analyzer interface. It returns
// deterministic results keyed on message text.
type MockAnalyzer struct {
	results  map[string]model.SentimentResult
	calls    []string
	fallback model.SentimentResult
	mu       sync.Mutex
}

// NewMockAnalyzer creates a mock analyzer with a neutral fallback.
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{
		results:  make(map[string]model.SentimentResult),
		fallback: model.SentimentResult{Score: 5.0, Label: model.LabelNeutral},
	}
}

// SetResult fixes the result returned for a given message text.
func (m *MockAnalyzer) SetResult(text string, result model.SentimentResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[text] = result
}

// Analyze returns the configured result for text, or the neutral fallback.
func (m *MockAnalyzer) Analyze(_ context.Context, text string) model.SentimentResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, text)
	if result, ok := m.results[text]; ok {
		return result
	}
	return m.fallback
}

// Calls returns the texts analyzed so far.
func (m *MockAnalyzer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

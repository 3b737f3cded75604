package mocks

import (
	"fmt"

	"github.com/rosterhub/rosterhub/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// If StringResults is non-empty, results are dequeued from it; once
// exhausted (or if never set) it returns deterministic sequential strings
// so generated IDs stay unique within a test.
type MockRandom struct {
	StringResults []string
	stringIndex   int
	counter       int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued result, or a sequential placeholder
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex < len(r.StringResults) {
		result := r.StringResults[r.stringIndex]
		r.stringIndex++
		return result
	}
	r.counter++
	return fmt.Sprintf("mock%06d", r.counter)
}

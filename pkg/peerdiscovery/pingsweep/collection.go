package pingsweep

import (
	"sync"
	"sync/atomic"

	"github.com/projectdiscovery/subnetping/pkg/types"
)

// Counter is a monotonic counter safe for concurrent use
type Counter struct {
	value atomic.Int64
}

// Inc increments the counter and returns the new value
func (c *Counter) Inc() int64 {
	return c.value.Add(1)
}

// Value returns the current count
func (c *Counter) Value() int64 {
	return c.value.Load()
}

// Collection is an append-only multiset of outcomes safe for concurrent
// appends. Insertion order is whatever order probes finished in.
type Collection struct {
	mu       sync.Mutex
	outcomes []types.Outcome
}

// NewCollection creates a collection sized for capacity outcomes
func NewCollection(capacity int) *Collection {
	return &Collection{outcomes: make([]types.Outcome, 0, capacity)}
}

// Append adds an outcome and returns the collection size after the append
func (c *Collection) Append(outcome types.Outcome) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.outcomes = append(c.outcomes, outcome)
	return len(c.outcomes)
}

// Len returns the number of outcomes collected so far
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.outcomes)
}

// Drain returns a copy of every collected outcome
func (c *Collection) Drain() []types.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	drained := make([]types.Outcome, len(c.outcomes))
	copy(drained, c.outcomes)
	return drained
}

// Package identity hands out integer ids for new orders and products.
package identity

import (
	"sync"
	"time"
)

// Assigner produces ids for new records.
type Assigner interface {
	Next() int64
}

// MillisAssigner derives ids from the wall clock in Unix milliseconds. When
// the clock has not moved past the previous id it returns previous+1, so ids
// are strictly increasing within one process.
type MillisAssigner struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewMillisAssigner returns an assigner reading time.Now.
func NewMillisAssigner() *MillisAssigner {
	return &MillisAssigner{now: time.Now}
}

// NewMillisAssignerWithClock is NewMillisAssigner with an injected clock.
func NewMillisAssignerWithClock(now func() time.Time) *MillisAssigner {
	return &MillisAssigner{now: now}
}

// Next returns the next id.
func (a *MillisAssigner) Next() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.now().UnixMilli()
	if id <= a.last {
		id = a.last + 1
	}
	a.last = id
	return id
}

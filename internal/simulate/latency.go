// Package simulate models the artificial network latency every backend
// operation is exposed through. Operations compute their result up front;
// the caller is only notified once a randomized delay elapses, the same way
// the desk client would hear back from a remote API.
package simulate

import (
	"math/rand"
	"sync"
	"time"
)

// Latency draws delays from a configured window. The zero window (min and
// max both zero) disables the delay entirely, which tests rely on.
type Latency struct {
	min time.Duration
	max time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLatency builds a delay source over [min, max). A nil rng seed source is
// replaced with the current time so production delays stay unpredictable.
func NewLatency(min, max time.Duration, seed int64) *Latency {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Latency{
		min: min,
		max: max,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// None returns a latency source that never delays. Completions built from it
// still go through the timer machinery, just with a zero duration.
func None() *Latency {
	return NewLatency(0, 0, 1)
}

// Next draws the delay for one operation.
func (l *Latency) Next() time.Duration {
	span := l.max - l.min
	if span <= 0 {
		return l.min
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.min + time.Duration(l.rng.Int63n(int64(span)))
}

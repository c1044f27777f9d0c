package simulate

import (
	"context"
	"errors"
	"time"
)

// ErrCanceled is returned by Wait after the caller disposed the completion.
var ErrCanceled = errors.New("completion canceled")

// Completion is a single-shot future. The underlying operation has already
// run by the time a Completion exists; only the notification is pending.
type Completion[T any] struct {
	value T
	err   error

	timer    *time.Timer
	fired    chan struct{}
	canceled chan struct{}
}

func newCompletion[T any](lat *Latency, value T, err error) *Completion[T] {
	c := &Completion[T]{
		value:    value,
		err:      err,
		fired:    make(chan struct{}),
		canceled: make(chan struct{}),
	}
	c.timer = time.AfterFunc(lat.Next(), func() { close(c.fired) })
	return c
}

// Resolve schedules a successful completion after a policy-drawn delay.
func Resolve[T any](lat *Latency, value T) *Completion[T] {
	return newCompletion(lat, value, nil)
}

// Reject schedules a failed completion after an equivalent delay.
func Reject[T any](lat *Latency, err error) *Completion[T] {
	var zero T
	return newCompletion(lat, zero, err)
}

// Wait blocks until the delay elapses, the completion is canceled, or ctx
// ends. Cancellation and context expiry only suppress the notification; the
// operation's effect on the store already happened.
func (c *Completion[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-c.fired:
		return c.value, c.err
	case <-c.canceled:
		return zero, ErrCanceled
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Cancel disposes the pending timer. Safe to call more than once and after
// the completion fired, in which case it has no effect.
func (c *Completion[T]) Cancel() {
	if c.timer.Stop() {
		close(c.canceled)
	}
}

// Package localchantest provides a recording root sink for tests of code that
// emits through local channels.
package localchantest

import "sync"

// Receipt is the effect a Recorder returns: the 1-based sequence number of the
// recorded value.
type Receipt int

// Recorder is a root sink that keeps every value it receives. It is safe for
// concurrent use.
type Recorder[R any] struct {
	mu       sync.Mutex
	received []R
}

func NewRecorder[R any]() *Recorder[R] {
	return &Recorder[R]{}
}

// Send records v and returns its receipt.
func (r *Recorder[R]) Send(v R) Receipt {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = append(r.received, v)
	return Receipt(len(r.received))
}

// Received returns a copy of everything recorded so far, in arrival order.
func (r *Recorder[R]) Received() []R {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]R, len(r.received))
	copy(out, r.received)
	return out
}

// Calls returns how many times Send was called.
func (r *Recorder[R]) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

// Last returns the most recently recorded value.
func (r *Recorder[R]) Last() (v R, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.received) == 0 {
		return
	}
	return r.received[len(r.received)-1], true
}

// Reset drops everything recorded.
func (r *Recorder[R]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = nil
}

// Package dispatch marshals callbacks onto the host's rendering goroutine.
//
// The clock core is single-threaded by contract: every mutating call must
// arrive on the one goroutine that also renders. Hosts register their event
// loop here once during startup; off-thread callers (such as the periodic
// tick driver) then hand their work to Dispatch instead of touching the
// clock directly.
package dispatch

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on
// the rendering goroutine. This should be called once by the host during
// initialization.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the rendering goroutine. Returns
// true if the callback was successfully scheduled, false if no dispatch
// function is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// Queue is a serial callback queue a host can register as its dispatcher
// when it has no native event loop (headless rendering, tests).
type Queue struct {
	mu     sync.Mutex
	ch     chan func()
	closed bool
}

// NewQueue creates a queue able to buffer the given number of pending
// callbacks.
func NewQueue(buffer int) *Queue {
	return &Queue{ch: make(chan func(), buffer)}
}

// Dispatch enqueues a callback; it has the signature RegisterDispatch
// expects. Callbacks are dropped when the queue is closed or full — a
// periodic tick feed can always afford to skip a frame.
func (q *Queue) Dispatch(callback func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || callback == nil {
		return
	}
	select {
	case q.ch <- callback:
	default:
	}
}

// Run consumes callbacks on the calling goroutine until Close is called,
// making that goroutine the designated rendering goroutine.
func (q *Queue) Run() {
	for callback := range q.ch {
		callback()
	}
}

// Close stops Run after all pending callbacks have been consumed.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}

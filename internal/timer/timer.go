// Package timer provides a cancellable one-shot delay and a per-key
// debouncer. Debounce and reminder scheduling both follow the same
// contract: scheduling replaces any pending delay for the same key.
package timer

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned by Debouncer.Wait when a newer call for the
// same key replaced the pending one.
var ErrSuperseded = errors.New("superseded by a newer call")

// Handle is a scheduled one-shot callback
type Handle struct {
	t *time.Timer
}

// After schedules fn to run once after d and returns a cancel handle
func After(d time.Duration, fn func()) *Handle {
	return &Handle{t: time.AfterFunc(d, fn)}
}

// Cancel stops the pending callback. It reports whether the callback
// was still pending; a callback that already started keeps running.
func (h *Handle) Cancel() bool {
	return h.t.Stop()
}

// Debouncer delays work per key, so only the most recent burst of calls
// for a key actually proceeds.
type Debouncer struct {
	mu      sync.Mutex
	pending map[string]*waiter
}

type waiter struct {
	superseded chan struct{}
}

// NewDebouncer creates an empty debouncer
func NewDebouncer() *Debouncer {
	return &Debouncer{pending: make(map[string]*waiter)}
}

// Wait blocks until delay elapses and returns nil, unless a newer Wait
// for the same key arrives first (ErrSuperseded) or the context ends.
func (d *Debouncer) Wait(ctx context.Context, key string, delay time.Duration) error {
	w := &waiter{superseded: make(chan struct{})}

	d.mu.Lock()
	if prev, ok := d.pending[key]; ok {
		close(prev.superseded)
	}
	d.pending[key] = w
	d.mu.Unlock()

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-t.C:
		d.clear(key, w)
		return nil
	case <-w.superseded:
		return ErrSuperseded
	case <-ctx.Done():
		d.clear(key, w)
		return ctx.Err()
	}
}

func (d *Debouncer) clear(key string, w *waiter) {
	d.mu.Lock()
	if d.pending[key] == w {
		delete(d.pending, key)
	}
	d.mu.Unlock()
}

// Package idle implements a restartable inactivity countdown.
package idle

import (
	"sync"
	"time"
)

// Timer calls its expiry callback once the countdown elapses without a
// Reset. A stale expiry from an earlier Arm never fires the callback.
type Timer struct {
	mu      sync.Mutex
	timeout time.Duration
	expire  func()
	t       *time.Timer
	gen     uint64
}

// New returns a disarmed timer. expire runs on its own goroutine.
func New(timeout time.Duration, expire func()) *Timer {
	return &Timer{timeout: timeout, expire: expire}
}

func (t *Timer) Timeout() time.Duration { return t.timeout }

// Arm starts the countdown, restarting it if already running.
func (t *Timer) Arm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start()
}

// Reset restarts a running countdown. It is a no-op on a disarmed timer and
// reports whether the countdown was running.
func (t *Timer) Reset() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.t == nil {
		return false
	}
	t.start()
	return true
}

// Disarm cancels the countdown.
func (t *Timer) Disarm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stop()
}

func (t *Timer) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.t != nil
}

func (t *Timer) start() {
	t.stop()
	gen := t.gen
	t.t = time.AfterFunc(t.timeout, func() { t.fire(gen) })
}

func (t *Timer) stop() {
	t.gen++
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}

func (t *Timer) fire(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.t == nil {
		t.mu.Unlock()
		return
	}
	t.t = nil
	t.gen++
	t.mu.Unlock()

	t.expire()
}

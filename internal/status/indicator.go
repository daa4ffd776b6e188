// Package status tracks the transient "saving" indicator shown after
// each mutation. The indicator is cosmetic: it carries no data, only a
// visible/hidden signal.
package status

import (
	"sync"
	"time"
)

// DefaultDelay is how long the indicator stays visible after the most
// recent mutation.
const DefaultDelay = 1000 * time.Millisecond

// Indicator is a show/hide toggle with a single cancellable hide timer.
// Each Flash restarts the timer, so the indicator always remains visible
// for a full delay after the latest mutation.
type Indicator struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64
	visible bool
}

// NewIndicator creates an indicator that hides itself after delay.
// A non-positive delay falls back to DefaultDelay.
func NewIndicator(delay time.Duration) *Indicator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Indicator{delay: delay}
}

// Flash makes the indicator visible immediately and schedules it to hide
// after the configured delay. Any pending hide from an earlier Flash is
// cancelled first.
func (in *Indicator) Flash() {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.visible = true
	if in.timer != nil {
		in.timer.Stop()
	}

	// A stopped timer may already have fired and be waiting on the lock;
	// the generation check makes such a stale callback a no-op.
	in.gen++
	gen := in.gen
	in.timer = time.AfterFunc(in.delay, func() { in.hide(gen) })
}

func (in *Indicator) hide(gen uint64) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if gen != in.gen {
		return
	}
	in.visible = false
	in.timer = nil
}

// Visible reports whether the indicator is currently shown.
func (in *Indicator) Visible() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.visible
}

// Stop cancels any pending hide timer. It is intended for shutdown and
// leaves the visibility state untouched.
func (in *Indicator) Stop() {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.timer != nil {
		in.timer.Stop()
		in.timer = nil
	}
	in.gen++
}

package dashboard

import (
	"sync"
	"time"
)

// SearchDebounceDelay is how long gene-search keystrokes are coalesced
// before a query fires.
const SearchDebounceDelay = 200 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback after a
// quiet period. Only the last trigger before the delay elapses wins.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the quiet period. A pending
// earlier trigger is cancelled, so fn from the latest call runs.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending trigger.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package services

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long triggers must stay quiet before the pending
// function fires.
const DefaultQuietPeriod = 180 * time.Millisecond

// Debouncer collapses rapid consecutive triggers into a single invocation
// after a quiet period. Each new trigger cancels the one still pending, so
// only the most recent function runs and the observed effect always reflects
// the latest trigger.
type Debouncer struct {
	quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{quiet: quiet}
}

// Do schedules fn to run once the quiet period elapses, cancelling any
// trigger still pending.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels a pending trigger, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package describe

import (
	"sync"
	"time"
)

// Status is the visible phase of a generation request.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ResetDelay is how long success/error stay visible before returning to idle.
const ResetDelay = 2 * time.Second

// Tracker holds the generation status shown in the editor. Terminal states
// fall back to idle after ResetDelay; starting a new request cancels any
// pending reset.
type Tracker struct {
	mu    sync.Mutex
	state Status
	reset *time.Timer
	delay time.Duration
}

// NewTracker returns an idle tracker with the standard reset delay.
func NewTracker() *Tracker {
	return &Tracker{state: StatusIdle, delay: ResetDelay}
}

// SetResetDelay overrides the idle fallback delay (primarily for tests).
func (t *Tracker) SetResetDelay(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d > 0 {
		t.delay = d
	}
}

// Begin marks a request in flight.
func (t *Tracker) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.reset != nil {
		t.reset.Stop()
		t.reset = nil
	}
	t.state = StatusLoading
}

// Finish records the outcome and schedules the fall back to idle.
func (t *Tracker) Finish(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.state = StatusError
	} else {
		t.state = StatusSuccess
	}
	if t.reset != nil {
		t.reset.Stop()
	}
	t.reset = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.state == StatusSuccess || t.state == StatusError {
			t.state = StatusIdle
		}
		t.reset = nil
	})
}

// Status returns the current phase.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

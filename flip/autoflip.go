package flip

import "time"

// AutoFlip triggers exactly one unattended Toggle after a configured delay.
// It is armed once at widget mount and never re-arms; Cancel before expiry
// guarantees the trigger never fires, including after teardown.
type AutoFlip struct {
	enabled  bool
	deadline time.Time
	fired    bool
	toggle   func() bool
}

// NewAutoFlip arms the scheduler at mount time. With enabled false the
// scheduler performs no action, ever.
func NewAutoFlip(enabled bool, delay time.Duration, now time.Time, toggle func() bool) *AutoFlip {
	return &AutoFlip{
		enabled:  enabled,
		deadline: now.Add(delay),
		toggle:   toggle,
	}
}

// Advance fires the one-shot trigger once the deadline has passed
func (a *AutoFlip) Advance(now time.Time) {
	if !a.enabled || a.fired {
		return
	}
	if now.Before(a.deadline) {
		return
	}

	a.fired = true
	a.toggle()
}

// Cancel disarms the scheduler; the trigger will never fire afterward
func (a *AutoFlip) Cancel() {
	a.enabled = false
}

// Pending reports whether the trigger is still armed and unfired
func (a *AutoFlip) Pending() bool {
	return a.enabled && !a.fired
}

// Remaining returns the time left until the trigger, 0 once due or disarmed
func (a *AutoFlip) Remaining(now time.Time) time.Duration {
	if !a.Pending() {
		return 0
	}
	d := a.deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

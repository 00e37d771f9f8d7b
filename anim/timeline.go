package anim

import "time"

// Direction selects which face a transition is flipping toward
type Direction uint8

const (
	ToBack Direction = iota
	ToFront
)

// String returns the direction name for logs and test failures
func (d Direction) String() string {
	if d == ToFront {
		return "ToFront"
	}
	return "ToBack"
}

// Timeline advances a normalized progress value from 0 to 1 over wall-clock
// time and fires a completion callback exactly once when it gets there.
//
// Progress is owned exclusively by the timeline: 0 at rest, in (0,1) while a
// transition is in flight, momentarily exactly 1 inside the completion
// callback, then back to 0. Within a single transition progress never
// decreases, even if the clock source misbehaves.
//
// The timeline is cooperatively scheduled: the host calls Advance from its
// frame loop. It is not safe for concurrent use from multiple goroutines.
type Timeline struct {
	running    bool
	direction  Direction
	startTime  time.Time
	duration   time.Duration
	progress   float64
	onComplete func()
}

// NewTimeline creates an idle timeline at rest
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Start begins a transition at now, advancing progress to 1 over duration.
// onComplete may be nil. Returns false if a transition is already in flight;
// the running transition is neither queued behind nor interrupted.
func (t *Timeline) Start(now time.Time, dir Direction, duration time.Duration, onComplete func()) bool {
	if t.running {
		return false
	}
	t.running = true
	t.direction = dir
	t.startTime = now
	t.duration = duration
	t.progress = 0
	t.onComplete = onComplete
	return true
}

// Advance moves progress according to elapsed time since Start. When progress
// reaches 1 the completion callback fires once and progress resets to rest.
func (t *Timeline) Advance(now time.Time) {
	if !t.running {
		return
	}

	p := 1.0
	if t.duration > 0 {
		p = Clamp01(float64(now.Sub(t.startTime)) / float64(t.duration))
	}
	if p < t.progress {
		p = t.progress
	}
	t.progress = p

	if p >= 1 {
		t.running = false
		fn := t.onComplete
		t.onComplete = nil
		// Callback observes the settled value; rest value restored after
		t.progress = 1
		if fn != nil {
			fn()
		}
		t.progress = 0
	}
}

// Cancel tears the timeline down mid-transition. The pending completion
// callback is dropped and will never fire.
func (t *Timeline) Cancel() {
	t.running = false
	t.onComplete = nil
	t.progress = 0
}

// Running reports whether a transition is in flight
func (t *Timeline) Running() bool {
	return t.running
}

// Progress returns the current normalized progress
func (t *Timeline) Progress() float64 {
	return t.progress
}

// Direction returns the direction of the current or last transition
func (t *Timeline) Direction() Direction {
	return t.direction
}

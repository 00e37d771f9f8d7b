package anim

import "time"

// Pulse is the cosmetic press feedback: a quick scale-down followed by a
// slower recovery to rest. It runs concurrently with the flip timeline but is
// fully independent of it — it never gates flip completion and carries no
// callback of its own.
type Pulse struct {
	running   bool
	startTime time.Time
	down      time.Duration
	up        time.Duration
	lowScale  float64
	scale     float64
}

// NewPulse creates a pulse that dips to lowScale over down, then recovers
// over up
func NewPulse(down, up time.Duration, lowScale float64) *Pulse {
	return &Pulse{
		down:     down,
		up:       up,
		lowScale: lowScale,
		scale:    1.0,
	}
}

// Start begins the pulse at now. A pulse already in flight restarts; the
// effect is purely visual so last-writer-wins is fine.
func (p *Pulse) Start(now time.Time) {
	p.running = true
	p.startTime = now
	p.scale = 1.0
}

// Advance updates the current scale from elapsed time
func (p *Pulse) Advance(now time.Time) {
	if !p.running {
		return
	}

	elapsed := now.Sub(p.startTime)
	switch {
	case elapsed < p.down:
		t := float64(elapsed) / float64(p.down)
		p.scale = Lerp(1.0, p.lowScale, t)
	case elapsed < p.down+p.up:
		t := float64(elapsed-p.down) / float64(p.up)
		p.scale = Lerp(p.lowScale, 1.0, t)
	default:
		p.scale = 1.0
		p.running = false
	}
}

// Cancel stops the pulse and snaps the scale back to rest
func (p *Pulse) Cancel() {
	p.running = false
	p.scale = 1.0
}

// Running reports whether the pulse is mid-flight
func (p *Pulse) Running() bool {
	return p.running
}

// Scale returns the current scale channel value
func (p *Pulse) Scale() float64 {
	return p.scale
}

package haptic

import "sync"

// Intensity classifies the strength of a tactile pulse
type Intensity uint8

const (
	Light Intensity = iota
	Medium
	Heavy
)

// String returns the intensity name
func (i Intensity) String() string {
	switch i {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	}
	return "unknown"
}

// Adapter fires a discrete tactile pulse. Fire-and-forget: callers never
// consume a result and never gate state progression on delivery.
type Adapter interface {
	Pulse(intensity Intensity)
}

// Nop is the adapter used when feedback is disabled or unavailable
type Nop struct{}

// Pulse does nothing
func (Nop) Pulse(Intensity) {}

// Recorder captures pulses for tests
type Recorder struct {
	mu     sync.Mutex
	pulses []Intensity
}

// Pulse records the intensity
func (r *Recorder) Pulse(intensity Intensity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pulses = append(r.pulses, intensity)
}

// Pulses returns a copy of the recorded intensities in order
func (r *Recorder) Pulses() []Intensity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Intensity, len(r.pulses))
	copy(out, r.pulses)
	return out
}

package haptic

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// clickSpec maps an intensity class to the synthesized click shape
type clickSpec struct {
	freq     float64
	duration time.Duration
	gain     float64
}

var clickSpecs = map[Intensity]clickSpec{
	Light:  {freq: 1800, duration: 18 * time.Millisecond, gain: 0.35},
	Medium: {freq: 1100, duration: 28 * time.Millisecond, gain: 0.55},
	Heavy:  {freq: 700, duration: 45 * time.Millisecond, gain: 0.80},
}

// click generates a short sine burst with an exponential decay envelope.
// The decay keeps the tail silent so a pulse never pops when it ends.
type click struct {
	freq     float64
	gain     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewClick creates a click streamer for the given intensity
func NewClick(intensity Intensity, rate beep.SampleRate) beep.Streamer {
	spec, ok := clickSpecs[intensity]
	if !ok {
		spec = clickSpecs[Light]
	}
	return &click{
		freq:     spec.freq,
		gain:     spec.gain,
		duration: rate.N(spec.duration),
		rate:     rate,
	}
}

func (c *click) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, i > 0
		}

		// Envelope: fast exponential decay over the burst
		env := math.Exp(-5 * float64(c.position) / float64(c.duration))
		val := math.Sin(2*math.Pi*c.phase) * env * c.gain

		samples[i][0] = val
		samples[i][1] = val

		c.phase += c.freq / float64(c.rate)
		if c.phase >= 1.0 {
			c.phase -= 1.0
		}
		c.position++
	}
	return len(samples), true
}

func (c *click) Err() error {
	return nil
}

package parameter

import "time"

// Flip transition timing
const (
	// FlipDuration is how long the rotation/opacity transition takes
	FlipDuration = 600 * time.Millisecond

	// PulseDownDuration is the scale-down leg of the cosmetic press pulse
	PulseDownDuration = 100 * time.Millisecond

	// PulseUpDuration is the recovery leg back to rest scale
	PulseUpDuration = 200 * time.Millisecond

	// PulseScale is the reduced scale at the bottom of the pulse
	PulseScale = 0.95

	// RestScale is the scale of a card at rest
	RestScale = 1.0
)

// Auto-flip defaults
const (
	// AutoFlipDefaultDelay is the delay before the one-shot unattended flip
	AutoFlipDefaultDelay = 3000 * time.Millisecond
)

// Opacity crossover
const (
	// OpacityMidpoint is the progress value where the outgoing face is fully
	// faded and the incoming face starts appearing
	OpacityMidpoint = 0.5
)

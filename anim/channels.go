package anim

import "github.com/halcyard/calmdeck/parameter"

// Surface holds the derived per-frame channel values the renderer consumes.
// Rotation angles are in degrees; opacities in [0,1]; scale multiplies the
// card's rest dimensions.
type Surface struct {
	FrontAngle   float64
	BackAngle    float64
	FrontOpacity float64
	BackOpacity  float64
	Scale        float64
}

// Channels derives the rotation and opacity values for a transition at the
// given progress. For ToBack the front face sweeps 0°→180° while fading out
// by the midpoint, and the back face sweeps 180°→360° while fading in after
// it; ToFront is the exact mirror. With back-face culling applied through the
// opacity curves, at most one face is perceptible at any progress.
func Channels(p float64, dir Direction) Surface {
	p = Clamp01(p)
	if dir == ToFront {
		p = 1 - p
	}

	mid := parameter.OpacityMidpoint
	return Surface{
		FrontAngle:   Lerp(0, 180, p),
		BackAngle:    Lerp(180, 360, p),
		FrontOpacity: Curve3(p, mid, 1, 0, 0),
		BackOpacity:  Curve3(p, mid, 0, 0, 1),
		Scale:        1.0,
	}
}

// RestSurface returns the channel values for a settled widget
func RestSurface(showingBack bool) Surface {
	if showingBack {
		return Channels(1, ToBack)
	}
	return Channels(0, ToBack)
}

// Package flip implements the two-sided card widget state machine.
//
// The engine owns the discrete phase (ShowingFront, TransitioningToBack,
// ShowingBack, TransitioningToFront) and drives two independent timelines:
// the rotation/opacity transition and a cosmetic press pulse. Rendering is
// decoupled: hosts read the {Phase, Surface} snapshot each frame and draw
// however they like.
//
// Everything is cooperatively scheduled. The host frame loop calls Advance
// with the current time; no goroutine inside this package ever mutates
// widget state. Teardown cancels the auto-flip timer and both timelines,
// after which no callback fires.
package flip

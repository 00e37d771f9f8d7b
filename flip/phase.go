package flip

// Phase is the discrete state of the flip widget. Exactly one phase holds at
// any instant; the cycle has no terminal state.
type Phase uint8

const (
	PhaseShowingFront Phase = iota
	PhaseTransitioningToBack
	PhaseShowingBack
	PhaseTransitioningToFront
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseShowingFront:
		return "ShowingFront"
	case PhaseTransitioningToBack:
		return "TransitioningToBack"
	case PhaseShowingBack:
		return "ShowingBack"
	case PhaseTransitioningToFront:
		return "TransitioningToFront"
	}
	return "Unknown"
}

// Transitioning reports whether a flip is in flight
func (p Phase) Transitioning() bool {
	return p == PhaseTransitioningToBack || p == PhaseTransitioningToFront
}

// ShowingBack reports whether the widget is settled on its back face
func (p Phase) ShowingBack() bool {
	return p == PhaseShowingBack
}

// CanTransition checks if a phase transition is valid
// Toggle moves a resting phase into a transition; completion settles it
func CanTransition(from, to Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseShowingFront:         {PhaseTransitioningToBack},
		PhaseTransitioningToBack:  {PhaseShowingBack},
		PhaseShowingBack:          {PhaseTransitioningToFront},
		PhaseTransitioningToFront: {PhaseShowingFront},
	}

	for _, valid := range validTransitions[from] {
		if valid == to {
			return true
		}
	}
	return false
}

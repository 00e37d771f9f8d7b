package anim

// Lerp linearly interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps v to the [0, 1] range
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Curve3 evaluates a 3-point piecewise-linear curve with anchors at
// progress 0, mid and 1 holding values v0, vm and v1
func Curve3(p, mid, v0, vm, v1 float64) float64 {
	p = Clamp01(p)
	if p <= mid {
		if mid <= 0 {
			return vm
		}
		return Lerp(v0, vm, p/mid)
	}
	if mid >= 1 {
		return vm
	}
	return Lerp(vm, v1, (p-mid)/(1-mid))
}

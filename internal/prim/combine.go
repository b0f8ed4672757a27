package prim

// WrapAdd adds two fixed-point magnitudes and wraps the sum back into
// [0, 1000), treating the range as a circular angle/amount.
func WrapAdd(a, b int) int {
	s := (a + b) % NoiseMax
	if s < 0 {
		s += NoiseMax
	}
	return s
}

// ScaleMul multiplies two fixed-point magnitudes, keeping the 0..1000
// convention (1000 acts as 1.0).
func ScaleMul(a, b int) int {
	return a * b / NoiseMax
}

// Mix linearly interpolates between two magnitudes by t in 0..1000.
func Mix(a, b, t int) int {
	return a + (b-a)*t/NoiseMax
}

// Remap rescales v from [inMin, inMax] to [outMin, outMax]. A degenerate
// input range maps everything to outMin.
func Remap(v, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

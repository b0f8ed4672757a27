package prim

import "math"

// AngleSteps is the resolution of the integer trig tables: one full turn
// is 3600 tenth-degree steps.
const AngleSteps = 3600

// Amplitude is the fixed-point amplitude of the trig tables: ISin and
// ICos return values in [-1000, 1000].
const Amplitude = 1000

// sinTable is precomputed once at startup; lookups are branch-free apart
// from angle normalization.
var sinTable [AngleSteps]int

func init() {
	for i := range sinTable {
		sinTable[i] = int(math.Round(math.Sin(float64(i)*math.Pi/1800.0) * Amplitude))
	}
}

// ISin returns the sine of a tenth-degree angle scaled to [-1000, 1000].
// Angles outside [0, 3600) wrap.
func ISin(angle int) int {
	return sinTable[normAngle(angle)]
}

// ICos returns the cosine of a tenth-degree angle scaled to [-1000, 1000].
func ICos(angle int) int {
	return ISin(angle + AngleSteps/4)
}

// IAtan2 returns the tenth-degree angle of the vector (x, y) in [0, 3600).
func IAtan2(y, x int) int {
	if x == 0 && y == 0 {
		return 0
	}
	a := int(math.Round(math.Atan2(float64(y), float64(x)) * 1800.0 / math.Pi))
	return normAngle(a)
}

// ISqrt returns the integer square root of n, 0 for negative input.
func ISqrt(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(n)))
}

func normAngle(angle int) int {
	a := angle % AngleSteps
	if a < 0 {
		a += AngleSteps
	}
	return a
}

package prim

// EasingFunc maps a fixed-point progress t in 0..1000 to an eased value
// in 0..1000.
type EasingFunc func(t int) int

var easings = map[string]EasingFunc{
	"linear":      Linear,
	"quad-in":     QuadIn,
	"quad-out":    QuadOut,
	"quad-in-out": QuadInOut,
	"cubic-in":    CubicIn,
	"cubic-out":   CubicOut,
	"sine-in":     SineIn,
	"sine-out":    SineOut,
	"elastic-out": ElasticOut,
	"bounce-out":  BounceOut,
}

// Easing resolves a curve by name. Unknown names resolve to Linear, the
// identity curve.
func Easing(name string) EasingFunc {
	if e, ok := easings[name]; ok {
		return e
	}
	return Linear
}

// Linear is the identity curve.
func Linear(t int) int { return clamp01k(t) }

// QuadIn accelerates from zero: t^2.
func QuadIn(t int) int {
	t = clamp01k(t)
	return t * t / 1000
}

// QuadOut decelerates to one: 1-(1-t)^2.
func QuadOut(t int) int {
	t = clamp01k(t)
	inv := 1000 - t
	return 1000 - inv*inv/1000
}

// QuadInOut accelerates then decelerates.
func QuadInOut(t int) int {
	t = clamp01k(t)
	if t < 500 {
		return 2 * t * t / 1000
	}
	inv := 1000 - t
	return 1000 - 2*inv*inv/1000
}

// CubicIn accelerates from zero: t^3.
func CubicIn(t int) int {
	t64 := int64(clamp01k(t))
	return int(t64 * t64 * t64 / (1000 * 1000))
}

// CubicOut decelerates to one: 1-(1-t)^3.
func CubicOut(t int) int {
	inv := int64(1000 - clamp01k(t))
	return int(1000 - inv*inv*inv/(1000*1000))
}

// SineIn follows a quarter sine wave from zero slope.
func SineIn(t int) int {
	t = clamp01k(t)
	return 1000 - ICos(t*900/1000)
}

// SineOut follows a quarter sine wave into zero slope.
func SineOut(t int) int {
	t = clamp01k(t)
	return ISin(t * 900 / 1000)
}

// ElasticOut overshoots with a decaying oscillation.
func ElasticOut(t int) int {
	t = clamp01k(t)
	if t == 0 || t == 1000 {
		return t
	}
	// Three decaying half-turns past the target.
	decay := (1000 - t) * (1000 - t) / 1000
	osc := ISin(t * 3 * AngleSteps / 2 / 1000)
	return clamp01kWide(1000 + osc*decay/1000)
}

// BounceOut simulates a ball settling in three bounces.
func BounceOut(t int) int {
	t = clamp01k(t)
	switch {
	case t < 364: // 1/2.75
		return 7563 * t / 1000 * t / 1000
	case t < 727: // 2/2.75
		u := t - 545
		return 7563*u/1000*u/1000 + 750
	case t < 909: // 2.5/2.75
		u := t - 818
		return 7563*u/1000*u/1000 + 938
	default:
		u := t - 955
		return 7563*u/1000*u/1000 + 984
	}
}

func clamp01k(t int) int {
	if t < 0 {
		return 0
	}
	if t > 1000 {
		return 1000
	}
	return t
}

// clamp01kWide clamps eased results that may legitimately overshoot.
func clamp01kWide(v int) int {
	if v < 0 {
		return 0
	}
	if v > 1250 {
		return 1250
	}
	return v
}

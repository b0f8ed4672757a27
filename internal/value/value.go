package value

import "fmt"

// Domain is the semantic category of a value flowing through the graph.
type Domain int

const (
	// DomainAudio values carry a single PCM sample in [-1.0, 1.0].
	DomainAudio Domain = iota
	// DomainVisual values carry a fixed-point integer magnitude (0-1000
	// usually represents a normalized angle or amount) or an RGB color.
	DomainVisual
	// DomainControl values carry an unrestricted float64 scalar.
	DomainControl
)

// String returns the lowercase name of the domain.
func (d Domain) String() string {
	switch d {
	case DomainAudio:
		return "audio"
	case DomainVisual:
		return "visual"
	case DomainControl:
		return "control"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// ParseDomain maps a domain name to its Domain. Unknown names map to
// DomainControl, the most permissive domain.
func ParseDomain(s string) Domain {
	switch s {
	case "audio":
		return DomainAudio
	case "visual":
		return DomainVisual
	default:
		return DomainControl
	}
}

// Value is the domain-tagged result of evaluating one node. Exactly one
// payload group is meaningful, selected by Domain (and IsColor within the
// visual domain). Values are small and always passed by value.
type Value struct {
	Domain Domain

	// Audio payload.
	Sample float32

	// Visual payload: either an integer magnitude or an RGB triple.
	Magnitude int
	R, G, B   uint8
	IsColor   bool

	// Control payload.
	Scalar float64
}

// Audio returns an audio-domain value holding one PCM sample.
func Audio(sample float32) Value {
	return Value{Domain: DomainAudio, Sample: sample}
}

// Visual returns a visual-domain value holding an integer magnitude.
func Visual(magnitude int) Value {
	return Value{Domain: DomainVisual, Magnitude: magnitude}
}

// Color returns a visual-domain value holding an RGB triple.
func Color(r, g, b uint8) Value {
	return Value{Domain: DomainVisual, R: r, G: g, B: b, IsColor: true}
}

// Control returns a control-domain value holding a scalar.
func Control(scalar float64) Value {
	return Value{Domain: DomainControl, Scalar: scalar}
}

// Zero returns the default zero value for a domain. The evaluator hands
// these out for missing inputs and detected cycles.
func Zero(d Domain) Value {
	return Value{Domain: d}
}

// AsScalar coerces any value to a control-domain scalar: visual magnitudes
// are divided by 1000, audio samples widen to float64, colors collapse to
// their perceived luma normalized to 0..1.
func (v Value) AsScalar() float64 {
	switch v.Domain {
	case DomainAudio:
		return float64(v.Sample)
	case DomainVisual:
		if v.IsColor {
			return float64(luma(v.R, v.G, v.B)) / 255.0
		}
		return float64(v.Magnitude) / 1000.0
	default:
		return v.Scalar
	}
}

// AsAngle coerces any value to a tenth-degree angle integer: visual
// magnitudes are taken as-is, control scalars and audio samples scale by
// 3600 (one full turn per unit).
func (v Value) AsAngle() int {
	switch v.Domain {
	case DomainAudio:
		return int(v.Sample * 3600)
	case DomainVisual:
		if v.IsColor {
			return int(luma(v.R, v.G, v.B)) * 3600 / 255
		}
		return v.Magnitude
	default:
		return int(v.Scalar * 3600)
	}
}

// AsMagnitude coerces any value to a visual fixed-point magnitude in the
// 0..1000 convention: control scalars and audio samples scale by 1000,
// colors collapse to scaled luma.
func (v Value) AsMagnitude() int {
	switch v.Domain {
	case DomainAudio:
		return int(v.Sample * 1000)
	case DomainVisual:
		if v.IsColor {
			return int(luma(v.R, v.G, v.B)) * 1000 / 255
		}
		return v.Magnitude
	default:
		return int(v.Scalar * 1000)
	}
}

// String renders the value for diagnostics and JSON-free logging.
func (v Value) String() string {
	switch v.Domain {
	case DomainAudio:
		return fmt.Sprintf("audio(%g)", v.Sample)
	case DomainVisual:
		if v.IsColor {
			return fmt.Sprintf("visual(#%02x%02x%02x)", v.R, v.G, v.B)
		}
		return fmt.Sprintf("visual(%d)", v.Magnitude)
	default:
		return fmt.Sprintf("control(%g)", v.Scalar)
	}
}

// luma is the integer BT.601 weighting used when a color has to collapse
// to a single magnitude.
func luma(r, g, b uint8) uint8 {
	return uint8((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
}

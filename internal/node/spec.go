package node

// Spec carries a node's kind-specific parameters. One pointer struct
// exists per kind; the evaluator dispatches on the concrete type. Specs
// are always held by pointer so setters (and the oscillator's phase
// accumulator) mutate the node in place.
type Spec interface {
	Kind() Kind
}

// WaveShape selects the waveform of oscillators and wave transforms.
type WaveShape int

const (
	ShapeSine WaveShape = iota
	ShapeSquare
	ShapeSawtooth
	ShapeTriangle
)

// ParseWaveShape maps a shape name to its WaveShape. Unknown names fall
// back to sine.
func ParseWaveShape(s string) WaveShape {
	switch s {
	case "square":
		return ShapeSquare
	case "sawtooth":
		return ShapeSawtooth
	case "triangle":
		return ShapeTriangle
	default:
		return ShapeSine
	}
}

// String returns the shape's lowercase name.
func (w WaveShape) String() string {
	switch w {
	case ShapeSquare:
		return "square"
	case ShapeSawtooth:
		return "sawtooth"
	case ShapeTriangle:
		return "triangle"
	default:
		return "sine"
	}
}

// ConstantSpec emits a fixed control scalar.
type ConstantSpec struct {
	Value float64
}

func (*ConstantSpec) Kind() Kind { return KindConstant }

// ContextInputSpec reads a named coordinate or custom scalar from the
// evaluation context.
type ContextInputSpec struct {
	Name string
}

func (*ContextInputSpec) Kind() Kind { return KindContextInput }

// OscillatorSpec generates an audio waveform. Phase is node-owned mutable
// state in [0, 1): it advances by Frequency/SampleRate on every
// evaluation and deliberately survives the per-pass state reset. It is
// the one piece of cross-call memory in the engine.
type OscillatorSpec struct {
	Shape     WaveShape
	Frequency float64
	Phase     float64
}

func (*OscillatorSpec) Kind() Kind { return KindOscillator }

// NoiseKind selects the noise algorithm of a noise source.
type NoiseKind int

const (
	NoiseWhite NoiseKind = iota
	NoiseFractal
)

// ParseNoiseKind maps a noise name to its NoiseKind, defaulting to white.
func ParseNoiseKind(s string) NoiseKind {
	if s == "fractal" {
		return NoiseFractal
	}
	return NoiseWhite
}

// NoiseSourceSpec generates deterministic visual noise from the pixel
// coordinate, the frame number, and a seed.
type NoiseSourceSpec struct {
	Noise   NoiseKind
	Seed    int
	Scale   int
	Octaves int
}

func (*NoiseSourceSpec) Kind() Kind { return KindNoiseSource }

// MathOp selects the operation of a math node.
type MathOp int

const (
	// OpNone is the zero op: the node passes its first input through.
	OpNone MathOp = iota
	OpAdd
	OpMul
	OpLerp
	OpMap
	OpAbs
	OpClamp
)

// ParseMathOp maps an op name to its MathOp. Unknown names map to OpNone,
// which behaves as identity on the first input.
func ParseMathOp(s string) MathOp {
	switch s {
	case "add":
		return OpAdd
	case "mul":
		return OpMul
	case "lerp":
		return OpLerp
	case "map":
		return OpMap
	case "abs":
		return OpAbs
	case "clamp":
		return OpClamp
	default:
		return OpNone
	}
}

// MathSpec combines its inputs with an arity-dependent operation. Params
// feeds the operations that need constants: clamp bounds, a lerp factor,
// map ranges.
type MathSpec struct {
	Op     MathOp
	Params []float64
}

func (*MathSpec) Kind() Kind { return KindMath }

// WaveSpec converts its input to an angle and shapes it through the
// waveform table. Frequency multiplies the incoming angle; Phase is a
// fixed tenth-degree offset.
type WaveSpec struct {
	Shape     WaveShape
	Frequency float64
	Phase     int
}

func (*WaveSpec) Kind() Kind { return KindWave }

// PolarOp selects between the two polar measurements.
type PolarOp int

const (
	PolarDistance PolarOp = iota
	PolarAngle
)

// ParsePolarOp maps an op name to its PolarOp, defaulting to distance.
func ParsePolarOp(s string) PolarOp {
	if s == "angle" {
		return PolarAngle
	}
	return PolarDistance
}

// PolarSpec measures distance or angle of a point relative to a center.
// The point comes from inputs 0 and 1, falling back to the context's
// pixel coordinate when unconnected.
type PolarSpec struct {
	Op               PolarOp
	CenterX, CenterY int
}

func (*PolarSpec) Kind() Kind { return KindPolar }

// ColorSpec normalizes its input into 0..255 over [RangeMin, RangeMax]
// and maps it through a named palette.
type ColorSpec struct {
	Palette  string
	RangeMin int
	RangeMax int
}

func (*ColorSpec) Kind() Kind { return KindColor }

// EasingSpec shapes its input through a named easing curve.
type EasingSpec struct {
	Curve string
}

func (*EasingSpec) Kind() Kind { return KindEasing }

// MixSpec blends its first two inputs by Amount in [0, 1].
type MixSpec struct {
	Amount float64
}

func (*MixSpec) Kind() Kind { return KindMix }

// AudioOutSpec is the terminal audio sink; it passes input 0 through.
type AudioOutSpec struct{}

func (*AudioOutSpec) Kind() Kind { return KindAudioOut }

// VisualOutSpec is the terminal visual sink; it passes input 0 through.
type VisualOutSpec struct{}

func (*VisualOutSpec) Kind() Kind { return KindVisualOut }

// ValueOutSpec is the terminal control sink; it passes input 0 through.
type ValueOutSpec struct{}

func (*ValueOutSpec) Kind() Kind { return KindValueOut }

// ReservedSpec stands in for the declared-but-unimplemented kinds. Such
// nodes evaluate to their domain's zero value.
type ReservedSpec struct {
	Which Kind
}

func (r *ReservedSpec) Kind() Kind { return r.Which }

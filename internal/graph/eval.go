package graph

import (
	"math"

	"github.com/vk/patchbay/internal/node"
	"github.com/vk/patchbay/internal/prim"
	"github.com/vk/patchbay/internal/value"
)

// evaluateNode is the recursive, cycle-safe, memoizing core. Seeing a
// node already in Processing means the pull has looped back into itself:
// the evaluator logs it and substitutes the node's domain zero without
// touching its state, which guarantees termination on any graph shape.
func (g *Graph) evaluateNode(n *node.Node, ctx Context) value.Value {
	switch n.State {
	case node.Processing:
		g.logger.Warn("cycle detected, substituting zero value",
			"node", n.ID, "kind", n.Kind().String())
		return value.Zero(n.Domain)
	case node.Processed:
		return n.Cached
	}

	n.State = node.Processing
	result := g.computeNode(n, ctx)
	n.Cached = result
	n.State = node.Processed
	return result
}

// inputValue pulls the i-th input of n, or hands back n's domain zero
// when nothing is connected there. A missing input is the documented
// default, not an error.
func (g *Graph) inputValue(n *node.Node, i int, ctx Context) value.Value {
	in := n.Input(i)
	if in == nil {
		return value.Zero(n.Domain)
	}
	return g.evaluateNode(in, ctx)
}

// computeNode dispatches on the node's spec type and produces its value.
func (g *Graph) computeNode(n *node.Node, ctx Context) value.Value {
	switch spec := n.Spec.(type) {
	case *node.ConstantSpec:
		return value.Control(spec.Value)

	case *node.ContextInputSpec:
		return contextValue(spec.Name, ctx)

	case *node.OscillatorSpec:
		// The waveform is sampled before the phase advances, so sample 0
		// of a sine starts at exactly zero.
		sample := oscillatorSample(spec.Shape, spec.Phase)
		sr := ctx.SampleRate
		if sr <= 0 {
			sr = 44100
		}
		spec.Phase += spec.Frequency / float64(sr)
		spec.Phase -= math.Floor(spec.Phase)
		return value.Audio(float32(sample))

	case *node.NoiseSourceSpec:
		if spec.Noise == node.NoiseFractal {
			return value.Visual(prim.Fractal(ctx.X, ctx.Y, spec.Octaves, spec.Scale, spec.Seed))
		}
		return value.Visual(prim.White(ctx.X, ctx.Y, ctx.Frame, spec.Seed))

	case *node.MathSpec:
		return g.computeMath(n, spec, ctx)

	case *node.WaveSpec:
		in := g.inputValue(n, 0, ctx)
		angle := int(float64(in.AsAngle())*spec.Frequency) + spec.Phase
		return value.Visual(waveMagnitude(spec.Shape, angle))

	case *node.PolarSpec:
		x, y := ctx.X, ctx.Y
		if in := n.Input(0); in != nil {
			x = g.evaluateNode(in, ctx).AsMagnitude()
		}
		if in := n.Input(1); in != nil {
			y = g.evaluateNode(in, ctx).AsMagnitude()
		}
		dx, dy := x-spec.CenterX, y-spec.CenterY
		if spec.Op == node.PolarAngle {
			return value.Visual(prim.IAtan2(dy, dx))
		}
		return value.Visual(prim.ISqrt(dx*dx + dy*dy))

	case *node.ColorSpec:
		in := g.inputValue(n, 0, ctx)
		t := prim.Remap(in.AsMagnitude(), spec.RangeMin, spec.RangeMax, 0, 255)
		r, gg, b := prim.Palette(spec.Palette)(uint8(prim.Clamp(t, 0, 255)))
		return value.Color(r, gg, b)

	case *node.EasingSpec:
		in := g.inputValue(n, 0, ctx)
		eased := prim.Easing(spec.Curve)(in.AsMagnitude())
		return value.Visual(eased)

	case *node.MixSpec:
		if len(n.Inputs) < 2 {
			return value.Control(0)
		}
		a := g.evaluateNode(n.Inputs[0], ctx)
		b := g.evaluateNode(n.Inputs[1], ctx)
		if a.Domain == value.DomainVisual && b.Domain == value.DomainVisual && !a.IsColor && !b.IsColor {
			return value.Visual(prim.Mix(a.Magnitude, b.Magnitude, int(spec.Amount*1000)))
		}
		as, bs := a.AsScalar(), b.AsScalar()
		return value.Control(as + (bs-as)*spec.Amount)

	case *node.AudioOutSpec, *node.VisualOutSpec, *node.ValueOutSpec:
		// Terminal sinks pass input 0 through verbatim.
		if in := n.Input(0); in != nil {
			return g.evaluateNode(in, ctx)
		}
		return value.Zero(n.Domain)

	default:
		// Reserved kinds and anything unrecognized: explicitly
		// unimplemented, never an error.
		return value.Zero(n.Domain)
	}
}

// contextValue resolves a named context input. Well-known coordinate
// names produce visual values, clock names produce control values, and
// anything else falls through to the custom scalar map.
func contextValue(name string, ctx Context) value.Value {
	switch name {
	case "x":
		return value.Visual(ctx.X)
	case "y":
		return value.Visual(ctx.Y)
	case "width":
		return value.Visual(ctx.Width)
	case "height":
		return value.Visual(ctx.Height)
	case "frame":
		return value.Control(float64(ctx.Frame))
	case "time":
		return value.Control(ctx.Time)
	default:
		return value.Control(ctx.CustomInput(name))
	}
}

// oscillatorSample maps a phase in [0, 1) to a waveform sample in
// [-1, 1].
func oscillatorSample(shape node.WaveShape, phase float64) float64 {
	switch shape {
	case node.ShapeSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case node.ShapeSawtooth:
		return 2*phase - 1
	case node.ShapeTriangle:
		switch {
		case phase < 0.25:
			return 4 * phase
		case phase < 0.75:
			return 2 - 4*phase
		default:
			return 4*phase - 4
		}
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// waveMagnitude shapes a tenth-degree angle into the 0..1000 visual
// range through the integer waveform tables.
func waveMagnitude(shape node.WaveShape, angle int) int {
	switch shape {
	case node.ShapeSquare:
		if prim.ISin(angle) >= 0 {
			return 1000
		}
		return 0
	case node.ShapeSawtooth:
		a := angle % prim.AngleSteps
		if a < 0 {
			a += prim.AngleSteps
		}
		return a * 1000 / prim.AngleSteps
	case node.ShapeTriangle:
		a := angle % prim.AngleSteps
		if a < 0 {
			a += prim.AngleSteps
		}
		if a < prim.AngleSteps/2 {
			return a * 2000 / prim.AngleSteps
		}
		return 2000 - a*2000/prim.AngleSteps
	default:
		return (prim.ISin(angle) + prim.Amplitude) / 2
	}
}

package graph

import (
	"math"

	"github.com/vk/patchbay/internal/node"
	"github.com/vk/patchbay/internal/prim"
	"github.com/vk/patchbay/internal/value"
)

// computeMath implements the arity-dependent math node.
//
// Zero inputs yield Control{0}. One input selects the unary ops, applied
// in the input's own domain. Two or more inputs select the binary ops:
// same-domain visual pairs combine through the integer wave helpers,
// same-domain control pairs through plain arithmetic, and mixed-domain
// pairs are coerced to control scalars (visual magnitudes divide by
// 1000) before combining. The coercion applies uniformly to every
// binary op, so add, mul, and lerp all coerce the same way. Unknown ops
// pass the first input through unchanged.
func (g *Graph) computeMath(n *node.Node, spec *node.MathSpec, ctx Context) value.Value {
	if len(n.Inputs) == 0 {
		return value.Control(0)
	}

	a := g.evaluateNode(n.Inputs[0], ctx)

	// map rescales the first input regardless of arity and stays in the
	// visual fixed-point convention.
	if spec.Op == node.OpMap {
		return mathMap(a, spec.Params)
	}

	if len(n.Inputs) == 1 {
		return mathUnary(a, spec)
	}

	b := g.evaluateNode(n.Inputs[1], ctx)

	if a.Domain == value.DomainVisual && b.Domain == value.DomainVisual && !a.IsColor && !b.IsColor {
		return mathVisual(a.Magnitude, b.Magnitude, spec, g.lerpFactor(n, spec, ctx))
	}
	if a.Domain == value.DomainControl && b.Domain == value.DomainControl {
		return mathControl(a.Scalar, b.Scalar, spec, g.lerpFactor(n, spec, ctx))
	}
	// Mixed domains: coerce both operands to control scalars.
	return mathControl(a.AsScalar(), b.AsScalar(), spec, g.lerpFactor(n, spec, ctx))
}

// lerpFactor resolves the interpolation factor for lerp: a third input
// (as a control scalar) wins over params[0].
func (g *Graph) lerpFactor(n *node.Node, spec *node.MathSpec, ctx Context) float64 {
	if in := n.Input(2); in != nil {
		return g.evaluateNode(in, ctx).AsScalar()
	}
	if len(spec.Params) > 0 {
		return spec.Params[0]
	}
	return 0
}

func mathUnary(a value.Value, spec *node.MathSpec) value.Value {
	switch spec.Op {
	case node.OpAbs:
		switch a.Domain {
		case value.DomainVisual:
			if a.IsColor {
				return a
			}
			if a.Magnitude < 0 {
				return value.Visual(-a.Magnitude)
			}
			return a
		case value.DomainAudio:
			return value.Audio(float32(math.Abs(float64(a.Sample))))
		default:
			return value.Control(math.Abs(a.Scalar))
		}
	case node.OpClamp:
		lo, hi := 0.0, 1.0
		if len(spec.Params) > 0 {
			lo = spec.Params[0]
		}
		if len(spec.Params) > 1 {
			hi = spec.Params[1]
		}
		switch a.Domain {
		case value.DomainVisual:
			if a.IsColor {
				return a
			}
			return value.Visual(prim.Clamp(a.Magnitude, int(lo), int(hi)))
		case value.DomainAudio:
			return value.Audio(float32(clampFloat(float64(a.Sample), lo, hi)))
		default:
			return value.Control(clampFloat(a.Scalar, lo, hi))
		}
	default:
		return a
	}
}

func mathVisual(a, b int, spec *node.MathSpec, t float64) value.Value {
	switch spec.Op {
	case node.OpAdd:
		return value.Visual(prim.WrapAdd(a, b))
	case node.OpMul:
		return value.Visual(prim.ScaleMul(a, b))
	case node.OpLerp:
		return value.Visual(prim.Mix(a, b, int(t*1000)))
	default:
		return value.Visual(a)
	}
}

func mathControl(a, b float64, spec *node.MathSpec, t float64) value.Value {
	switch spec.Op {
	case node.OpAdd:
		return value.Control(a + b)
	case node.OpMul:
		return value.Control(a * b)
	case node.OpLerp:
		return value.Control(a + (b-a)*t)
	default:
		return value.Control(a)
	}
}

// mathMap rescales a visual magnitude from [params[0], params[1]] to
// [params[2], params[3]]. Non-visual inputs coerce into the fixed-point
// convention first; the result stays visual.
func mathMap(a value.Value, params []float64) value.Value {
	inMin, inMax, outMin, outMax := 0.0, 1000.0, 0.0, 1000.0
	if len(params) > 0 {
		inMin = params[0]
	}
	if len(params) > 1 {
		inMax = params[1]
	}
	if len(params) > 2 {
		outMin = params[2]
	}
	if len(params) > 3 {
		outMax = params[3]
	}
	return value.Visual(prim.Remap(a.AsMagnitude(), int(inMin), int(inMax), int(outMin), int(outMax)))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

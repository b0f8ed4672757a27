package patch

import (
	"fmt"

	"github.com/vk/patchbay/internal/node"
	"github.com/vk/patchbay/internal/value"
)

// builder turns the evaluated attributes of one node block into a spec
// and an output domain.
type builder func(a attrs) (node.Spec, value.Domain, error)

// builders is the registry of patch-file node kinds. Reserved kinds are
// deliberately absent: a patch cannot instantiate them.
var builders = map[string]builder{
	"constant":      buildConstant,
	"context_input": buildContextInput,
	"oscillator":    buildOscillator,
	"noise":         buildNoise,
	"math":          buildMath,
	"wave":          buildWave,
	"polar":         buildPolar,
	"color":         buildColor,
	"easing":        buildEasing,
	"mix":           buildMix,
	"audio_out":     buildAudioOut,
	"visual_out":    buildVisualOut,
	"value_out":     buildValueOut,
}

// buildNode resolves a kind name and runs its builder.
func buildNode(kind string, a attrs) (node.Spec, value.Domain, error) {
	b, ok := builders[kind]
	if !ok {
		return nil, 0, fmt.Errorf("unknown node kind %q", kind)
	}
	return b(a)
}

func buildConstant(a attrs) (node.Spec, value.Domain, error) {
	v, err := a.num("value", 0)
	if err != nil {
		return nil, 0, err
	}
	return &node.ConstantSpec{Value: v}, value.DomainControl, nil
}

func buildContextInput(a attrs) (node.Spec, value.Domain, error) {
	name, err := a.str("input", "")
	if err != nil {
		return nil, 0, err
	}
	// Coordinate inputs emit visual values; everything else is control.
	domain := value.DomainControl
	switch name {
	case "x", "y", "width", "height":
		domain = value.DomainVisual
	}
	return &node.ContextInputSpec{Name: name}, domain, nil
}

func buildOscillator(a attrs) (node.Spec, value.Domain, error) {
	shape, err := a.str("shape", "sine")
	if err != nil {
		return nil, 0, err
	}
	freq, err := a.num("frequency", 440)
	if err != nil {
		return nil, 0, err
	}
	return &node.OscillatorSpec{
		Shape:     node.ParseWaveShape(shape),
		Frequency: freq,
	}, value.DomainAudio, nil
}

func buildNoise(a attrs) (node.Spec, value.Domain, error) {
	kind, err := a.str("noise", "white")
	if err != nil {
		return nil, 0, err
	}
	seed, err := a.intval("seed", 0)
	if err != nil {
		return nil, 0, err
	}
	scale, err := a.intval("scale", 8)
	if err != nil {
		return nil, 0, err
	}
	octaves, err := a.intval("octaves", 1)
	if err != nil {
		return nil, 0, err
	}
	return &node.NoiseSourceSpec{
		Noise:   node.ParseNoiseKind(kind),
		Seed:    seed,
		Scale:   scale,
		Octaves: octaves,
	}, value.DomainVisual, nil
}

func buildMath(a attrs) (node.Spec, value.Domain, error) {
	op, err := a.str("op", "")
	if err != nil {
		return nil, 0, err
	}
	params, err := a.floats("params")
	if err != nil {
		return nil, 0, err
	}
	domainName, err := a.str("domain", "control")
	if err != nil {
		return nil, 0, err
	}
	return &node.MathSpec{Op: node.ParseMathOp(op), Params: params}, value.ParseDomain(domainName), nil
}

func buildWave(a attrs) (node.Spec, value.Domain, error) {
	shape, err := a.str("shape", "sine")
	if err != nil {
		return nil, 0, err
	}
	freq, err := a.num("frequency", 1)
	if err != nil {
		return nil, 0, err
	}
	phase, err := a.intval("phase", 0)
	if err != nil {
		return nil, 0, err
	}
	return &node.WaveSpec{
		Shape:     node.ParseWaveShape(shape),
		Frequency: freq,
		Phase:     phase,
	}, value.DomainVisual, nil
}

func buildPolar(a attrs) (node.Spec, value.Domain, error) {
	op, err := a.str("op", "distance")
	if err != nil {
		return nil, 0, err
	}
	cx, err := a.intval("center_x", 0)
	if err != nil {
		return nil, 0, err
	}
	cy, err := a.intval("center_y", 0)
	if err != nil {
		return nil, 0, err
	}
	return &node.PolarSpec{Op: node.ParsePolarOp(op), CenterX: cx, CenterY: cy}, value.DomainVisual, nil
}

func buildColor(a attrs) (node.Spec, value.Domain, error) {
	palette, err := a.str("palette", "grayscale")
	if err != nil {
		return nil, 0, err
	}
	min, err := a.intval("range_min", 0)
	if err != nil {
		return nil, 0, err
	}
	max, err := a.intval("range_max", 1000)
	if err != nil {
		return nil, 0, err
	}
	return &node.ColorSpec{Palette: palette, RangeMin: min, RangeMax: max}, value.DomainVisual, nil
}

func buildEasing(a attrs) (node.Spec, value.Domain, error) {
	curve, err := a.str("curve", "linear")
	if err != nil {
		return nil, 0, err
	}
	return &node.EasingSpec{Curve: curve}, value.DomainVisual, nil
}

func buildMix(a attrs) (node.Spec, value.Domain, error) {
	amount, err := a.num("amount", 0.5)
	if err != nil {
		return nil, 0, err
	}
	domainName, err := a.str("domain", "control")
	if err != nil {
		return nil, 0, err
	}
	return &node.MixSpec{Amount: amount}, value.ParseDomain(domainName), nil
}

func buildAudioOut(a attrs) (node.Spec, value.Domain, error) {
	return &node.AudioOutSpec{}, value.DomainAudio, nil
}

func buildVisualOut(a attrs) (node.Spec, value.Domain, error) {
	return &node.VisualOutSpec{}, value.DomainVisual, nil
}

func buildValueOut(a attrs) (node.Spec, value.Domain, error) {
	return &node.ValueOutSpec{}, value.DomainControl, nil
}

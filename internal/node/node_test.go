package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "oscillator", KindOscillator.String())
	assert.Equal(t, "context_input", KindContextInput.String())
	assert.Equal(t, "audio_out", KindAudioOut.String())
	assert.Equal(t, "unknown", Kind(999).String())
}

func TestKindClassification(t *testing.T) {
	t.Run("output kinds", func(t *testing.T) {
		assert.True(t, KindAudioOut.IsOutput())
		assert.True(t, KindVisualOut.IsOutput())
		assert.True(t, KindValueOut.IsOutput())
		assert.False(t, KindMath.IsOutput())
		assert.False(t, KindOscillator.IsOutput())
	})
	t.Run("reserved kinds", func(t *testing.T) {
		for _, k := range []Kind{KindFilter, KindDelay, KindSplit, KindAnalyzer, KindEnvelope, KindAudioInput} {
			assert.True(t, k.IsReserved(), "kind %s", k)
		}
		assert.False(t, KindMix.IsReserved())
	})
}

func TestSpecKinds(t *testing.T) {
	cases := []struct {
		spec Spec
		want Kind
	}{
		{&ConstantSpec{}, KindConstant},
		{&ContextInputSpec{}, KindContextInput},
		{&OscillatorSpec{}, KindOscillator},
		{&NoiseSourceSpec{}, KindNoiseSource},
		{&MathSpec{}, KindMath},
		{&WaveSpec{}, KindWave},
		{&PolarSpec{}, KindPolar},
		{&ColorSpec{}, KindColor},
		{&EasingSpec{}, KindEasing},
		{&MixSpec{}, KindMix},
		{&AudioOutSpec{}, KindAudioOut},
		{&VisualOutSpec{}, KindVisualOut},
		{&ValueOutSpec{}, KindValueOut},
		{&ReservedSpec{Which: KindDelay}, KindDelay},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.spec.Kind())
	}
}

func TestParseWaveShape(t *testing.T) {
	assert.Equal(t, ShapeSquare, ParseWaveShape("square"))
	assert.Equal(t, ShapeSawtooth, ParseWaveShape("sawtooth"))
	assert.Equal(t, ShapeTriangle, ParseWaveShape("triangle"))
	assert.Equal(t, ShapeSine, ParseWaveShape("sine"))
	assert.Equal(t, ShapeSine, ParseWaveShape("anything-else"))
}

func TestParseMathOp(t *testing.T) {
	assert.Equal(t, OpAdd, ParseMathOp("add"))
	assert.Equal(t, OpMul, ParseMathOp("mul"))
	assert.Equal(t, OpLerp, ParseMathOp("lerp"))
	assert.Equal(t, OpMap, ParseMathOp("map"))
	assert.Equal(t, OpAbs, ParseMathOp("abs"))
	assert.Equal(t, OpClamp, ParseMathOp("clamp"))
	assert.Equal(t, OpNone, ParseMathOp("divide"))
}

func TestParseNoiseKind(t *testing.T) {
	assert.Equal(t, NoiseFractal, ParseNoiseKind("fractal"))
	assert.Equal(t, NoiseWhite, ParseNoiseKind("white"))
	assert.Equal(t, NoiseWhite, ParseNoiseKind(""))
}

func TestParsePolarOp(t *testing.T) {
	assert.Equal(t, PolarAngle, ParsePolarOp("angle"))
	assert.Equal(t, PolarDistance, ParsePolarOp("distance"))
	assert.Equal(t, PolarDistance, ParsePolarOp(""))
}

func TestNodeInput(t *testing.T) {
	a := &Node{ID: 0, Spec: &ConstantSpec{}}
	b := &Node{ID: 1, Spec: &MathSpec{}, Inputs: []*Node{a}}

	assert.Same(t, a, b.Input(0))
	assert.Nil(t, b.Input(1))
	assert.Nil(t, b.Input(-1))
	assert.Nil(t, a.Input(0))
}

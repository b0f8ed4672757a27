package prim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISin(t *testing.T) {
	assert.Equal(t, 0, ISin(0))
	assert.Equal(t, 1000, ISin(900))
	assert.Equal(t, 0, ISin(1800))
	assert.Equal(t, -1000, ISin(2700))

	t.Run("wraps out-of-range angles", func(t *testing.T) {
		assert.Equal(t, ISin(100), ISin(100+AngleSteps))
		assert.Equal(t, ISin(3500), ISin(-100))
	})
}

func TestICos(t *testing.T) {
	assert.Equal(t, 1000, ICos(0))
	assert.Equal(t, 0, ICos(900))
	assert.Equal(t, -1000, ICos(1800))
}

func TestIAtan2(t *testing.T) {
	assert.Equal(t, 0, IAtan2(0, 1))
	assert.Equal(t, 900, IAtan2(1, 0))
	assert.Equal(t, 1800, IAtan2(0, -1))
	assert.Equal(t, 2700, IAtan2(-1, 0))
	assert.Equal(t, 0, IAtan2(0, 0))
}

func TestISqrt(t *testing.T) {
	assert.Equal(t, 0, ISqrt(0))
	assert.Equal(t, 0, ISqrt(-4))
	assert.Equal(t, 3, ISqrt(9))
	assert.Equal(t, 5, ISqrt(25))
	assert.Equal(t, 10, ISqrt(100))
}

func TestWhiteNoise(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, White(5, 5, 0, 42), White(5, 5, 0, 42))
	})
	t.Run("in range", func(t *testing.T) {
		for x := 0; x < 50; x++ {
			for y := 0; y < 50; y++ {
				v := White(x, y, 3, 7)
				assert.GreaterOrEqual(t, v, 0)
				assert.LessOrEqual(t, v, NoiseMax)
			}
		}
	})
	t.Run("seed changes output somewhere", func(t *testing.T) {
		differs := false
		for x := 0; x < 16 && !differs; x++ {
			differs = White(x, 0, 0, 1) != White(x, 0, 0, 2)
		}
		assert.True(t, differs)
	})
}

func TestFractalNoise(t *testing.T) {
	t.Run("deterministic and in range", func(t *testing.T) {
		for x := -20; x < 20; x++ {
			v := Fractal(x, 7, 3, 8, 42)
			assert.Equal(t, v, Fractal(x, 7, 3, 8, 42))
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, NoiseMax)
		}
	})
	t.Run("degenerate parameters clamp", func(t *testing.T) {
		v := Fractal(3, 3, 0, 0, 1)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, NoiseMax)
	})
}

func TestPaletteLookup(t *testing.T) {
	t.Run("known names cover the full intensity range", func(t *testing.T) {
		for _, name := range []string{"plasma", "fire", "ocean", "heatmap", "coolwarm", "neon", "matrix", "grayscale"} {
			p := Palette(name)
			r0, g0, b0 := p(0)
			r1, g1, b1 := p(255)
			assert.NotEqual(t, [3]uint8{r0, g0, b0}, [3]uint8{r1, g1, b1}, "palette %s endpoints must differ", name)
		}
	})
	t.Run("unknown falls back to grayscale", func(t *testing.T) {
		r, g, b := Palette("nope")(77)
		assert.Equal(t, uint8(77), r)
		assert.Equal(t, uint8(77), g)
		assert.Equal(t, uint8(77), b)
	})
	t.Run("grayscale is identity per channel", func(t *testing.T) {
		r, g, b := Grayscale(200)
		assert.Equal(t, uint8(200), r)
		assert.Equal(t, uint8(200), g)
		assert.Equal(t, uint8(200), b)
	})
}

func TestEasingEndpoints(t *testing.T) {
	for _, name := range []string{"linear", "quad-in", "quad-out", "quad-in-out", "cubic-in", "cubic-out", "sine-in", "sine-out", "elastic-out"} {
		e := Easing(name)
		assert.Equal(t, 0, e(0), "curve %s at 0", name)
		assert.Equal(t, 1000, e(1000), "curve %s at 1000", name)
	}
	t.Run("bounce settles near 1000", func(t *testing.T) {
		assert.InDelta(t, 1000, BounceOut(1000), 2)
	})
	t.Run("unknown name is linear", func(t *testing.T) {
		assert.Equal(t, 437, Easing("nope")(437))
	})
	t.Run("inputs clamp to the unit range", func(t *testing.T) {
		assert.Equal(t, 0, QuadIn(-50))
		assert.Equal(t, 1000, QuadOut(2000))
	})
}

func TestCombineHelpers(t *testing.T) {
	t.Run("wrap add", func(t *testing.T) {
		assert.Equal(t, 500, WrapAdd(200, 300))
		assert.Equal(t, 200, WrapAdd(700, 500))
		assert.Equal(t, 900, WrapAdd(-100, 0))
	})
	t.Run("scale mul", func(t *testing.T) {
		assert.Equal(t, 250, ScaleMul(500, 500))
		assert.Equal(t, 0, ScaleMul(0, 1000))
		assert.Equal(t, 1000, ScaleMul(1000, 1000))
	})
	t.Run("mix", func(t *testing.T) {
		assert.Equal(t, 0, Mix(0, 1000, 0))
		assert.Equal(t, 500, Mix(0, 1000, 500))
		assert.Equal(t, 1000, Mix(0, 1000, 1000))
	})
	t.Run("remap", func(t *testing.T) {
		assert.Equal(t, 127, Remap(500, 0, 1000, 0, 255))
		assert.Equal(t, 42, Remap(7, 3, 3, 42, 99))
	})
	t.Run("clamp", func(t *testing.T) {
		assert.Equal(t, 0, Clamp(-5, 0, 255))
		assert.Equal(t, 255, Clamp(300, 0, 255))
		assert.Equal(t, 128, Clamp(128, 0, 255))
	})
}

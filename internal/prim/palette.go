package prim

// PaletteFunc maps a normalized intensity t in 0..255 to an RGB triple.
type PaletteFunc func(t uint8) (r, g, b uint8)

// palettes is the closed set of named palettes. Lookups for unknown names
// fall back to grayscale rather than failing, matching the engine's
// keep-running error posture.
var palettes = map[string]PaletteFunc{
	"plasma":    Plasma,
	"fire":      Fire,
	"ocean":     Ocean,
	"heatmap":   Heatmap,
	"coolwarm":  Coolwarm,
	"neon":      Neon,
	"matrix":    Matrix,
	"grayscale": Grayscale,
}

// Palette resolves a palette by name, defaulting to Grayscale.
func Palette(name string) PaletteFunc {
	if p, ok := palettes[name]; ok {
		return p
	}
	return Grayscale
}

// Grayscale maps intensity straight to a gray level.
func Grayscale(t uint8) (uint8, uint8, uint8) {
	return t, t, t
}

// Plasma is the classic phase-shifted sine palette.
func Plasma(t uint8) (uint8, uint8, uint8) {
	angle := int(t) * AngleSteps / 256
	r := sinChannel(angle)
	g := sinChannel(angle + AngleSteps/3)
	b := sinChannel(angle + 2*AngleSteps/3)
	return r, g, b
}

// Fire ramps black, red, orange, yellow, white.
func Fire(t uint8) (uint8, uint8, uint8) {
	switch {
	case t < 64:
		return uint8(int(t) * 4), 0, 0
	case t < 128:
		return 255, uint8((int(t) - 64) * 4), 0
	case t < 192:
		return 255, 255, 0
	default:
		return 255, 255, uint8((int(t) - 192) * 4)
	}
}

// Ocean ramps black, deep blue, cyan, white.
func Ocean(t uint8) (uint8, uint8, uint8) {
	switch {
	case t < 85:
		return 0, 0, uint8(int(t) * 3)
	case t < 170:
		return 0, uint8((int(t) - 85) * 3), 255
	default:
		return uint8((int(t) - 170) * 3), 255, 255
	}
}

// Heatmap ramps blue, cyan, green, yellow, red.
func Heatmap(t uint8) (uint8, uint8, uint8) {
	switch {
	case t < 64:
		return 0, uint8(int(t) * 4), 255
	case t < 128:
		return 0, 255, uint8(255 - (int(t)-64)*4)
	case t < 192:
		return uint8((int(t) - 128) * 4), 255, 0
	default:
		return 255, uint8(255 - (int(t)-192)*4), 0
	}
}

// Coolwarm ramps blue through white to red.
func Coolwarm(t uint8) (uint8, uint8, uint8) {
	if t < 128 {
		v := uint8(int(t) * 2)
		return v, v, 255
	}
	v := uint8(255 - (int(t)-128)*2)
	return 255, v, v
}

// Neon sweeps magenta to cyan at full saturation.
func Neon(t uint8) (uint8, uint8, uint8) {
	return uint8(255 - int(t)), uint8(int(t) / 2), 255
}

// Matrix ramps black to bright terminal green.
func Matrix(t uint8) (uint8, uint8, uint8) {
	g := t
	dim := uint8(int(t) / 4)
	return dim, g, dim
}

// sinChannel maps a sine lookup to the 0..255 channel range.
func sinChannel(angle int) uint8 {
	return uint8((ISin(angle) + Amplitude) * 255 / (2 * Amplitude))
}

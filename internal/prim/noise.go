package prim

// NoiseMax is the upper bound of the noise functions' fixed-point range.
const NoiseMax = 1000

// hash32 mixes three coordinates and a seed into a well-distributed 32-bit
// value. It is a xorshift-multiply avalanche over prime-weighted inputs,
// chosen so neighboring coordinates decorrelate fully.
func hash32(x, y, z, seed int) uint32 {
	h := uint32(seed) * 0x9E3779B1
	h ^= uint32(x) * 0x85EBCA77
	h = h<<13 | h>>19
	h ^= uint32(y) * 0xC2B2AE3D
	h = h<<13 | h>>19
	h ^= uint32(z) * 0x27D4EB2F
	h ^= h >> 16
	h *= 0x7FEB352D
	h ^= h >> 15
	h *= 0x846CA68B
	h ^= h >> 16
	return h
}

// White returns deterministic white noise in [0, 1000] for a pixel
// coordinate, frame number, and seed. Identical arguments always produce
// identical output.
func White(x, y, frame, seed int) int {
	return int(hash32(x, y, frame, seed) % (NoiseMax + 1))
}

// lattice returns the noise value pinned to an integer lattice point.
func lattice(ix, iy, seed int) int {
	return int(hash32(ix, iy, 0, seed) % (NoiseMax + 1))
}

// smoothstep eases t in [0, 1000] with 3t^2 - 2t^3 in fixed point.
func smoothstep(t int) int {
	t64 := int64(t)
	return int((3*t64*t64*1000 - 2*t64*t64*t64) / (1000 * 1000))
}

// valueNoise samples bilinear value noise at (x, y) with the given lattice
// cell size. Result is in [0, 1000].
func valueNoise(x, y, cell, seed int) int {
	if cell < 1 {
		cell = 1
	}
	ix, iy := floorDiv(x, cell), floorDiv(y, cell)
	fx := (x - ix*cell) * 1000 / cell
	fy := (y - iy*cell) * 1000 / cell
	sx, sy := smoothstep(fx), smoothstep(fy)

	n00 := lattice(ix, iy, seed)
	n10 := lattice(ix+1, iy, seed)
	n01 := lattice(ix, iy+1, seed)
	n11 := lattice(ix+1, iy+1, seed)

	top := Mix(n00, n10, sx)
	bottom := Mix(n01, n11, sx)
	return Mix(top, bottom, sy)
}

// Fractal returns multi-octave value noise in [0, 1000]. scale is the
// lattice cell size of the first octave in pixels; each further octave
// halves the cell size and the amplitude. octaves below 1 clamp to 1.
func Fractal(x, y, octaves, scale, seed int) int {
	if octaves < 1 {
		octaves = 1
	}
	if scale < 1 {
		scale = 8
	}
	sum, amp, total := 0, 1000, 0
	cell := scale
	for o := 0; o < octaves; o++ {
		sum += valueNoise(x, y, cell, seed+o) * amp / 1000
		total += amp
		amp /= 2
		cell /= 2
		if cell < 1 {
			cell = 1
		}
	}
	if total == 0 {
		return 0
	}
	return sum * 1000 / total
}

// floorDiv divides rounding toward negative infinity, so lattice cells
// tile correctly across negative coordinates.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

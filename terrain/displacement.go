// SPDX-License-Identifier: MIT

package terrain

import "math/rand"

// MidpointDisplacement generates an h×w field with the diamond-square
// algorithm and rescales it into [0.001, 0.999].
//
// Steps:
//  1. Pick the smallest canvas side s = 2^k+1 with s ≥ max(h, w).
//  2. Seed the four corners with U[0, 1).
//  3. Per level: diamond step (mean of the four surrounding corners plus
//     U(-1, 1)·r), then square step (mean of the four edge midpoints, indices
//     wrapped modulo s-1, plus U(-1, 1)·r; the wrapped edge is mirrored onto
//     the opposite side). Halve r.
//  4. Crop to h×w, min-max normalize, map v → v·0.998 + 0.001.
func MidpointDisplacement(h, w int, roughness float64, rng *rand.Rand) [][]float64 {
	// 1) canvas side
	side := 3
	for side < h || side < w {
		side = (side-1)*2 + 1
	}
	canvas := make([][]float64, side)
	for i := range canvas {
		canvas[i] = make([]float64, side)
	}
	last := side - 1

	// 2) corners
	canvas[0][0] = rng.Float64()
	canvas[0][last] = rng.Float64()
	canvas[last][0] = rng.Float64()
	canvas[last][last] = rng.Float64()

	jitter := func(r float64) float64 { return (rng.Float64()*2 - 1) * r }

	// 3) levels
	r := roughness
	for step := last; step > 1; step /= 2 {
		half := step / 2

		// diamond
		for i := half; i < side; i += step {
			for j := half; j < side; j += step {
				avg := (canvas[i-half][j-half] + canvas[i-half][j+half] +
					canvas[i+half][j-half] + canvas[i+half][j+half]) / 4
				canvas[i][j] = avg + jitter(r)
			}
		}

		// square
		for i := 0; i < last; i += half {
			for j := (i + half) % step; j < last; j += step {
				avg := (canvas[(i-half+last)%last][j] +
					canvas[(i+half)%last][j] +
					canvas[i][(j+half)%last] +
					canvas[i][(j-half+last)%last]) / 4
				canvas[i][j] = avg + jitter(r)
				if i == 0 {
					canvas[last][j] = canvas[i][j]
				}
				if j == 0 {
					canvas[i][last] = canvas[i][j]
				}
			}
		}

		r /= 2
	}

	// 4) crop, normalize, rescale
	out := make([][]float64, h)
	for i := range out {
		out[i] = append([]float64(nil), canvas[i][:w]...)
	}
	normalize(out)
	for _, row := range out {
		for j := range row {
			row[j] = row[j]*0.998 + 0.001
		}
	}

	return out
}

// normalize rescales f in place into [0, 1]. A constant field maps to 0.5.
func normalize(f [][]float64) {
	lo, hi := f[0][0], f[0][0]
	for _, row := range f {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	span := hi - lo
	for _, row := range f {
		for j, v := range row {
			if span == 0 {
				row[j] = 0.5
				continue
			}
			row[j] = (v - lo) / span
		}
	}
}

// Blend averages two fields of identical shape.
func Blend(a, b [][]float64) ([][]float64, error) {
	if len(a) != len(b) {
		return nil, ErrShapeMismatch
	}
	out := make([][]float64, len(a))
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return nil, ErrShapeMismatch
		}
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			out[i][j] = (a[i][j] + b[i][j]) / 2
		}
	}

	return out, nil
}

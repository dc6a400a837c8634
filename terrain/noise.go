// SPDX-License-Identifier: MIT

package terrain

import (
	"context"

	"github.com/aquilax/go-perlin"
	"golang.org/x/sync/errgroup"
)

// Perlin shape parameters: persistence divisor and frequency multiplier per octave.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// CoherentNoise samples multi-octave Perlin noise at (col/scale, row/scale)
// for every cell of an h×w grid and normalizes the field into [0, 1].
//
// Rows are computed concurrently with at most workers goroutines
// (workers ≤ 0 means one goroutine per row). The result is independent of
// workers. Returns ctx.Err() if the context is cancelled mid-run.
func CoherentNoise(ctx context.Context, h, w int, scale float64, octaves int, seed int64, workers int) ([][]float64, error) {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, int32(octaves), seed)
	out := make([][]float64, h)

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for row := 0; row < h; row++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			line := make([]float64, w)
			y := float64(row) / scale
			for col := range line {
				line[col] = p.Noise2D(float64(col)/scale, y)
			}
			out[row] = line

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	normalize(out)

	return out, nil
}

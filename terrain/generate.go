// SPDX-License-Identifier: MIT

package terrain

import (
	"context"
	"fmt"
	"math/rand"
)

// Generate produces a classified terrain Map from p.
//
// Steps:
//  1. Validate p and its table (DefaultTable when nil).
//  2. MidpointDisplacement seeded with p.Seed.
//  3. CoherentNoise seeded with p.Seed.
//  4. Blend, then classify every cell.
func Generate(ctx context.Context, p Params) (*Map, error) {
	// 1) validation
	if err := p.Validate(); err != nil {
		return nil, err
	}
	table := p.Table
	if table == nil {
		table = DefaultTable()
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	// 2) displacement field
	rng := rand.New(rand.NewSource(p.Seed))
	ds := MidpointDisplacement(p.Height, p.Width, p.Roughness, rng)

	// 3) noise field
	ns, err := CoherentNoise(ctx, p.Height, p.Width, p.Scale, p.Octaves, p.Seed, p.Workers)
	if err != nil {
		return nil, fmt.Errorf("terrain: noise field: %w", err)
	}

	// 4) blend and classify
	raw, err := Blend(ds, ns)
	if err != nil {
		return nil, err
	}
	class := make([][]int, p.Height)
	for r := range raw {
		class[r] = make([]int, p.Width)
		for c, v := range raw[r] {
			if class[r][c], err = table.Index(v); err != nil {
				return nil, fmt.Errorf("terrain: cell (%d,%d): %w", r, c, err)
			}
		}
	}

	return &Map{Height: p.Height, Width: p.Width, Raw: raw, Class: class, Table: table}, nil
}

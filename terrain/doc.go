// SPDX-License-Identifier: MIT

// Package terrain synthesizes the raw height field of a map and classifies
// every cell into a terrain band.
//
// Two scalar fields are generated over the same height×width grid and
// averaged:
//
//  1. MidpointDisplacement: diamond-square on a square canvas of side 2^k+1
//     that covers the grid, seeded corners, roughness halved per level,
//     wraparound on the square step, cropped and rescaled into
//     [0.001, 0.999].
//  2. CoherentNoise: multi-octave 2D Perlin gradient noise sampled at
//     (column/scale, row/scale) and min-max normalized into [0, 1].
//     Rows are computed concurrently; each worker owns its own row slice,
//     so the result does not depend on the worker count.
//
// The blended raw value is mapped to a Band through a Table of ascending
// upper bounds: the first band whose Max is ≥ the value wins. A validated
// Table covers all of [0, 1] with no gap and no overlap.
//
// Passability is decided per band name and, optionally, by a boolean rule
// expression compiled with github.com/expr-lang/expr over RuleEnv.
//
// Determinism: the same Params (seed, dimensions, scale, octaves,
// roughness) always produce a bit-identical Map.
//
// Complexity:
//
//   - Time:  O(S² + H·W·O) where S is the canvas side and O the octave count.
//   - Space: O(S² + H·W).
package terrain

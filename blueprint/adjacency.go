// SPDX-License-Identifier: MIT

package blueprint

// compass lists neighbor offsets (dRow, dCol) in enumeration order:
// NW, N, NE, E, SE, S, SW, W.
var compass = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, 1},
	{1, 1}, {1, 0}, {1, -1},
	{0, -1},
}

// neighbors returns the linear indices adjacent to cell (r, c) of a
// rows×cols grid under policy, in compass order.
//
// For BoundaryClip this reproduces n-(w+1), n-w, n-(w-1), n+1, n+(w+1),
// n+w, n+(w-1), n-1 with out-of-grid entries dropped. For BoundaryWrap,
// indices are taken modulo the grid size; duplicates produced by narrow
// grids and self-links are skipped.
func neighbors(policy BoundaryPolicy, rows, cols, r, c int) []int {
	n := r*cols + c
	out := make([]int, 0, len(compass))
	for _, d := range compass {
		nr, nc := r+d[0], c+d[1]
		if policy == BoundaryWrap {
			nr = (nr + rows) % rows
			nc = (nc + cols) % cols
		} else if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
			continue
		}
		m := nr*cols + nc
		if m == n || contains(out, m) {
			continue
		}
		out = append(out, m)
	}

	return out
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}

// Asymmetric lists every link u→v whose target v does not list u back.
// Both built-in policies yield an empty result.
func (b *Blueprint) Asymmetric() []Link {
	var out []Link
	for u := range b.entries {
		for _, v := range b.links[u] {
			if !contains(b.links[v], u) {
				out = append(out, Link{From: b.entries[u].ID, To: b.entries[v].ID})
			}
		}
	}

	return out
}

// Linked reports whether v appears in the adjacency list of u.
func (b *Blueprint) Linked(u, v int) bool {
	return contains(b.links[u], v)
}

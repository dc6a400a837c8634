// SPDX-License-Identifier: MIT

package blueprint

// buildQuadrants assigns every entry to a pixel block and returns the
// quadrants in order of first appearance.
func (b *Blueprint) buildQuadrants() {
	side := b.cfg.CellSize * b.cfg.QuadrantFactor * b.cfg.GridScale
	ids := make(map[[2]int]int)
	for i := range b.entries {
		e := &b.entries[i]
		key := [2]int{e.X / side, e.Y / side}
		id, ok := ids[key]
		if !ok {
			id = len(b.quadrants)
			ids[key] = id
			b.quadrants = append(b.quadrants, Quadrant{ID: id, BlockX: key[0], BlockY: key[1]})
		}
		e.Quadrant = id
		b.quadrants[id].Cells = append(b.quadrants[id].Cells, e.ID)
	}
}

// QuadrantSide returns the pixel side length of a quadrant block.
func (b *Blueprint) QuadrantSide() int {
	return b.cfg.CellSize * b.cfg.QuadrantFactor * b.cfg.GridScale
}

// Quadrants returns a copy of the quadrant partition.
func (b *Blueprint) Quadrants() []Quadrant {
	out := make([]Quadrant, len(b.quadrants))
	for i, q := range b.quadrants {
		q.Cells = append([]string(nil), q.Cells...)
		out[i] = q
	}

	return out
}

// Quadrant returns quadrant id.
func (b *Blueprint) Quadrant(id int) (Quadrant, bool) {
	if id < 0 || id >= len(b.quadrants) {
		return Quadrant{}, false
	}
	q := b.quadrants[id]
	q.Cells = append([]string(nil), q.Cells...)

	return q, true
}

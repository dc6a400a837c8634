// SPDX-License-Identifier: MIT

package blueprint

// buildRegions labels connected components of passable cells, walking
// only links present in both directions. Region IDs follow the index of
// each component's first cell.
//
// Time:   O(N·d), d ≤ 8.
// Memory: O(N) for the BFS queue.
func (b *Blueprint) buildRegions() {
	for i := range b.entries {
		b.entries[i].Region = NoRegion
	}
	region := 0
	queue := make([]int, 0, len(b.entries))
	for i0 := range b.entries {
		if !b.entries[i0].Passable || b.entries[i0].Region != NoRegion {
			continue
		}
		// BFS to collect the component
		queue = append(queue[:0], i0)
		b.entries[i0].Region = region
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range b.links[u] {
				e := &b.entries[v]
				if !e.Passable || e.Region != NoRegion || !b.Linked(v, u) {
					continue
				}
				e.Region = region
				queue = append(queue, v)
			}
		}
		region++
	}
	b.regions = region
}

// Regions returns the number of passable regions.
func (b *Blueprint) Regions() int { return b.regions }

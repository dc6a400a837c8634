// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Verify recomputes every derived and custom group from cell state and
// returns ErrGroupDrift on the first disagreement.
func (g *Grid) Verify() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	checks := []struct {
		name string
		set  mapset.Set[int]
		pred func(*cellState) bool
	}{
		{GroupOccupied, g.occupied, func(s *cellState) bool { return s.occupied }},
		{GroupObstructed, g.obstructed, func(s *cellState) bool { return s.obstructed }},
		{GroupEntitled, g.entitled, func(s *cellState) bool { return s.entitled }},
	}
	for _, c := range checks {
		want := 0
		for i := range g.cells {
			s := &g.cells[i]
			if c.pred(s) {
				want++
			}
			if c.pred(s) != c.set.Has(i) {
				return fmt.Errorf("%w: %s group and cell %s disagree", ErrGroupDrift, c.name, g.bp.Space().IDAt(i))
			}
		}
		if want != c.set.Size() {
			return fmt.Errorf("%w: %s group has %d members, want %d", ErrGroupDrift, c.name, c.set.Size(), want)
		}
	}

	for name, set := range g.custom {
		for i := range g.cells {
			if set.Has(i) != g.cells[i].groups.Has(name) {
				return fmt.Errorf("%w: custom group %q and cell %s disagree", ErrGroupDrift, name, g.bp.Space().IDAt(i))
			}
		}
	}
	for i := range g.cells {
		var err error
		g.cells[i].groups.Each(func(name string) {
			if _, ok := g.custom[name]; !ok && err == nil {
				err = fmt.Errorf("%w: cell %s lists unknown group %q", ErrGroupDrift, g.bp.Space().IDAt(i), name)
			}
		})
		if err != nil {
			return err
		}
	}

	return nil
}

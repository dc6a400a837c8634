// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// ids converts a set of indices into cell IDs in index order.
func (g *Grid) ids(set mapset.Set[int]) []string {
	idx := make([]int, 0, set.Size())
	set.Each(func(i int) { idx = append(idx, i) })
	sort.Ints(idx)
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = g.bp.Space().IDAt(i)
	}

	return out
}

// Occupied returns the IDs of occupied cells in cell order.
func (g *Grid) Occupied() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ids(g.occupied)
}

// Obstructed returns the IDs of obstructed cells in cell order.
func (g *Grid) Obstructed() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ids(g.obstructed)
}

// Entitled returns the IDs of owned cells in cell order.
func (g *Grid) Entitled() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ids(g.entitled)
}

func reserved(name string) bool {
	return name == GroupOccupied || name == GroupObstructed || name == GroupEntitled
}

// NewGroup creates a custom group holding ids. The derived group names are
// reserved and fail with ErrGroupExists.
func (g *Grid) NewGroup(name string, ids ...string) error {
	idx := make([]int, len(ids))
	for k, id := range ids {
		i, err := g.lookup(id)
		if err != nil {
			return err
		}
		idx[k] = i
	}

	g.mu.Lock()
	if _, ok := g.custom[name]; ok || reserved(name) || name == "" {
		g.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrGroupExists, name)
	}
	set := mapset.New[int]()
	g.custom[name] = set
	var events []Event
	for _, i := range idx {
		if set.Has(i) {
			continue
		}
		set.Put(i)
		g.cells[i].groups.Put(name)
		events = append(events, Event{Kind: EventJoin, Cell: g.bp.Space().IDAt(i), Group: name})
	}
	g.mu.Unlock()
	g.publish(events)

	return nil
}

// DeleteGroup removes a custom group and every membership in it.
func (g *Grid) DeleteGroup(name string) error {
	g.mu.Lock()
	set, ok := g.custom[name]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	members := g.ids(set)
	events := make([]Event, len(members))
	for k, id := range members {
		i, _ := g.bp.Index(id)
		g.cells[i].groups.Remove(name)
		events[k] = Event{Kind: EventLeave, Cell: id, Group: name}
	}
	delete(g.custom, name)
	g.mu.Unlock()
	g.publish(events)

	return nil
}

// Join adds cell id to custom group name. It is a no-op if already a member.
func (g *Grid) Join(name, id string) error {
	return g.membership(name, id, true)
}

// Leave removes cell id from custom group name. It is a no-op if not a member.
func (g *Grid) Leave(name, id string) error {
	return g.membership(name, id, false)
}

func (g *Grid) membership(name, id string, join bool) error {
	i, err := g.lookup(id)
	if err != nil {
		return err
	}
	g.mu.Lock()
	set, ok := g.custom[name]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}
	var events []Event
	switch {
	case join && !set.Has(i):
		set.Put(i)
		g.cells[i].groups.Put(name)
		events = append(events, Event{Kind: EventJoin, Cell: id, Group: name})
	case !join && set.Has(i):
		set.Remove(i)
		g.cells[i].groups.Remove(name)
		events = append(events, Event{Kind: EventLeave, Cell: id, Group: name})
	}
	g.mu.Unlock()
	g.publish(events)

	return nil
}

// Group returns the members of a derived or custom group in cell order.
func (g *Grid) Group(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	switch name {
	case GroupOccupied:
		return g.ids(g.occupied), nil
	case GroupObstructed:
		return g.ids(g.obstructed), nil
	case GroupEntitled:
		return g.ids(g.entitled), nil
	}
	set, ok := g.custom[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}

	return g.ids(set), nil
}

// Groups returns the names of all groups, derived first, then custom sorted.
func (g *Grid) Groups() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := []string{GroupOccupied, GroupObstructed, GroupEntitled}
	custom := make([]string, 0, len(g.custom))
	for name := range g.custom {
		custom = append(custom, name)
	}
	sort.Strings(custom)

	return append(out, custom...)
}

// SPDX-License-Identifier: MIT

package grid

import "fmt"

// mutate runs fn on cell id under the write lock and publishes the events
// it returns once the lock is released.
func (g *Grid) mutate(id string, fn func(i int) []Event) error {
	i, err := g.lookup(id)
	if err != nil {
		return err
	}
	g.mu.Lock()
	events := fn(i)
	g.mu.Unlock()
	g.publish(events)

	return nil
}

func (g *Grid) publish(events []Event) {
	if g.opts.observer == nil {
		return
	}
	for _, ev := range events {
		g.opts.observer(ev)
	}
}

// The set* helpers are the fixed grid-level callbacks: each flips one cell
// flag and the matching derived group together. Callers hold the write lock.

func (g *Grid) setOccupant(i int, ref Ref) Event {
	s := &g.cells[i]
	s.occupied, s.occupant = true, ref
	g.occupied.Put(i)

	return Event{Kind: EventOccupy, Cell: g.bp.Space().IDAt(i), Ref: ref}
}

func (g *Grid) clearOccupant(i int) Event {
	s := &g.cells[i]
	ref := s.occupant
	s.occupied, s.occupant = false, nil
	g.occupied.Remove(i)

	return Event{Kind: EventVacate, Cell: g.bp.Space().IDAt(i), Ref: ref}
}

func (g *Grid) setObstruction(i int, ref Ref) Event {
	s := &g.cells[i]
	s.obstructed, s.obstruction = true, ref
	g.obstructed.Put(i)

	return Event{Kind: EventObstruct, Cell: g.bp.Space().IDAt(i), Ref: ref}
}

func (g *Grid) clearObstruction(i int) Event {
	s := &g.cells[i]
	ref := s.obstruction
	s.obstructed, s.obstruction = false, nil
	g.obstructed.Remove(i)

	return Event{Kind: EventDestruct, Cell: g.bp.Space().IDAt(i), Ref: ref}
}

func (g *Grid) setOwner(i int, ref Ref) Event {
	s := &g.cells[i]
	s.entitled, s.owner = true, ref
	g.entitled.Put(i)

	return Event{Kind: EventEntitle, Cell: g.bp.Space().IDAt(i), Ref: ref}
}

func (g *Grid) clearOwner(i int) Event {
	s := &g.cells[i]
	ref := s.owner
	s.entitled, s.owner = false, nil
	g.entitled.Remove(i)

	return Event{Kind: EventDivest, Cell: g.bp.Space().IDAt(i), Ref: ref}
}

// Occupy places occupant on cell id. It is a no-op if the cell is already occupied.
func (g *Grid) Occupy(id string, occupant Ref) error {
	if occupant == nil {
		return ErrNilReference
	}

	return g.mutate(id, func(i int) []Event {
		if g.cells[i].occupied {
			return nil
		}
		return []Event{g.setOccupant(i, occupant)}
	})
}

// Vacate clears the occupant of cell id. It is a no-op if the cell is empty.
func (g *Grid) Vacate(id string) error {
	return g.mutate(id, func(i int) []Event {
		if !g.cells[i].occupied {
			return nil
		}
		return []Event{g.clearOccupant(i)}
	})
}

// Receive toggles occupant on cell id: an empty cell is occupied, a cell
// already holding the same occupant is vacated, and a cell holding another
// occupant is left alone. Occupants are compared with ==; non-comparable
// occupants always count as different.
func (g *Grid) Receive(id string, occupant Ref) error {
	if occupant == nil {
		return ErrNilReference
	}

	return g.mutate(id, func(i int) []Event {
		s := &g.cells[i]
		switch {
		case !s.occupied:
			return []Event{g.setOccupant(i, occupant)}
		case sameRef(s.occupant, occupant):
			return []Event{g.clearOccupant(i)}
		}
		return nil
	})
}

// sameRef compares two references without panicking on non-comparable values.
func sameRef(a, b Ref) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()

	return a == b
}

// Move transfers the occupant of from to to in one step. It is a no-op if
// from is empty. ErrMoveBlocked is returned when to is occupied or impassable.
func (g *Grid) Move(from, to string) error {
	i, err := g.lookup(from)
	if err != nil {
		return err
	}
	j, err := g.lookup(to)
	if err != nil {
		return err
	}

	g.mu.Lock()
	if !g.cells[i].occupied || i == j {
		g.mu.Unlock()
		return nil
	}
	if g.cells[j].occupied || !g.passable(j) {
		g.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrMoveBlocked, to)
	}
	occupant := g.cells[i].occupant
	events := []Event{g.clearOccupant(i), g.setOccupant(j, occupant)}
	g.mu.Unlock()
	g.publish(events)

	return nil
}

// Obstruct places obstruction on cell id, making it impassable. It is a
// no-op if the cell is already obstructed.
func (g *Grid) Obstruct(id string, obstruction Ref) error {
	if obstruction == nil {
		return ErrNilReference
	}

	return g.mutate(id, func(i int) []Event {
		if g.cells[i].obstructed {
			return nil
		}
		return []Event{g.setObstruction(i, obstruction)}
	})
}

// Destruct removes the obstruction of cell id. It is a no-op if the cell is clear.
func (g *Grid) Destruct(id string) error {
	return g.mutate(id, func(i int) []Event {
		if !g.cells[i].obstructed {
			return nil
		}
		return []Event{g.clearObstruction(i)}
	})
}

// Entitle assigns owner to cell id. It is a no-op if the cell is already owned.
func (g *Grid) Entitle(id string, owner Ref) error {
	if owner == nil {
		return ErrNilReference
	}

	return g.mutate(id, func(i int) []Event {
		if g.cells[i].entitled {
			return nil
		}
		return []Event{g.setOwner(i, owner)}
	})
}

// Divest removes the owner of cell id. It is a no-op if the cell is unowned.
func (g *Grid) Divest(id string) error {
	return g.mutate(id, func(i int) []Event {
		if !g.cells[i].entitled {
			return nil
		}
		return []Event{g.clearOwner(i)}
	})
}

// SPDX-License-Identifier: MIT

package coords

import "fmt"

// Space is the immutable label space of a rows×columns grid.
type Space struct {
	rows    []string
	cols    []string
	rowIdx  map[string]int
	colIdx  map[string]int
	cellIDs []string
}

// NewSpace builds the label space and the canonical cell-ID sequence.
func NewSpace(rows, cols int) (*Space, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySpace, rows, cols)
	}
	rl, err := RowLabels(rows)
	if err != nil {
		return nil, err
	}
	cl, err := ColumnLabels(cols)
	if err != nil {
		return nil, err
	}

	s := &Space{
		rows:    rl,
		cols:    cl,
		rowIdx:  make(map[string]int, rows),
		colIdx:  make(map[string]int, cols),
		cellIDs: make([]string, 0, rows*cols),
	}
	for i, r := range rl {
		s.rowIdx[r] = i
	}
	for i, c := range cl {
		s.colIdx[c] = i
	}
	for _, r := range rl {
		for _, c := range cl {
			s.cellIDs = append(s.cellIDs, r+c)
		}
	}

	return s, nil
}

// Rows returns the row count.
func (s *Space) Rows() int { return len(s.rows) }

// Columns returns the column count.
func (s *Space) Columns() int { return len(s.cols) }

// Len returns the number of cells.
func (s *Space) Len() int { return len(s.cellIDs) }

// RowLabel returns the label of row r. It panics if r is out of range.
func (s *Space) RowLabel(r int) string { return s.rows[r] }

// ColumnLabel returns the label of column c. It panics if c is out of range.
func (s *Space) ColumnLabel(c int) string { return s.cols[c] }

// ID returns the identifier of the cell at (r, c).
func (s *Space) ID(r, c int) string { return s.rows[r] + s.cols[c] }

// IDAt returns the identifier of the cell with linear index i.
func (s *Space) IDAt(i int) string { return s.cellIDs[i] }

// IDs returns a copy of the canonical cell-ID sequence.
func (s *Space) IDs() []string {
	out := make([]string, len(s.cellIDs))
	copy(out, s.cellIDs)

	return out
}

// Split returns the row and column indices of id.
func (s *Space) Split(id string) (int, int, error) {
	if len(id) <= ColumnWidth {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	cut := len(id) - ColumnWidth
	r, ok := s.rowIdx[id[:cut]]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown row in %q", ErrMalformedID, id)
	}
	c, ok := s.colIdx[id[cut:]]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown column in %q", ErrMalformedID, id)
	}

	return r, c, nil
}

// Index returns the linear index of id.
func (s *Space) Index(id string) (int, error) {
	r, c, err := s.Split(id)
	if err != nil {
		return 0, err
	}

	return r*len(s.cols) + c, nil
}

// SPDX-License-Identifier: MIT

package coords

import "errors"

const (
	// ColumnWidth is the fixed digit width of every column label.
	ColumnWidth = 5

	// MaxRows is the number of distinct row labels the alphabet scheme can produce.
	MaxRows = 26 + 26 + 26*26 + 25*26 + 26*26*26

	// MaxColumns is the largest column count representable in ColumnWidth digits.
	MaxColumns = 99999
)

// Sentinel errors returned by coords.
var (
	// ErrEmptySpace indicates a non-positive row or column count.
	ErrEmptySpace = errors.New("coords: rows and columns must be positive")

	// ErrRowCapacity indicates the requested row count exceeds MaxRows.
	ErrRowCapacity = errors.New("coords: row count exceeds label capacity")

	// ErrColumnCapacity indicates the requested column count exceeds MaxColumns.
	ErrColumnCapacity = errors.New("coords: column count exceeds label capacity")

	// ErrMalformedID indicates an identifier that does not name a cell of the space.
	ErrMalformedID = errors.New("coords: malformed cell identifier")
)

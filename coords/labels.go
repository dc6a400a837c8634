// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"
	"strconv"
	"strings"
)

// RowLabels returns the first n row labels in canonical order.
// Returns ErrEmptySpace for n < 1 and ErrRowCapacity for n > MaxRows.
func RowLabels(n int) ([]string, error) {
	if n < 1 {
		return nil, ErrEmptySpace
	}
	if n > MaxRows {
		return nil, fmt.Errorf("%w: %d > %d", ErrRowCapacity, n, MaxRows)
	}

	out := make([]string, 0, n)
	emit := func(label string) bool {
		out = append(out, label)
		return len(out) == n
	}

	// 1) single letters, lower then upper case
	for i := 0; i < 26; i++ {
		if emit(string(rune('a' + i))) {
			return out, nil
		}
	}
	for i := 0; i < 26; i++ {
		if emit(string(rune('A' + i))) {
			return out, nil
		}
	}
	// 2) two letters, lower case
	for i := 0; i < 26; i++ {
		for j := 0; j < 26; j++ {
			if emit(string([]rune{rune('a' + i), rune('a' + j)})) {
				return out, nil
			}
		}
	}
	// 3) capitalised pairs, starting at "Ba"
	for i := 1; i < 26; i++ {
		for j := 0; j < 26; j++ {
			if emit(string([]rune{rune('A' + i), rune('a' + j)})) {
				return out, nil
			}
		}
	}
	// 4) three letters, lower case
	for i := 0; i < 26; i++ {
		for j := 0; j < 26; j++ {
			for k := 0; k < 26; k++ {
				if emit(string([]rune{rune('a' + i), rune('a' + j), rune('a' + k)})) {
					return out, nil
				}
			}
		}
	}

	return out, nil
}

// ColumnLabels returns the first n column labels ("00001" … ).
// Returns ErrEmptySpace for n < 1 and ErrColumnCapacity for n > MaxColumns.
func ColumnLabels(n int) ([]string, error) {
	if n < 1 {
		return nil, ErrEmptySpace
	}
	if n > MaxColumns {
		return nil, fmt.Errorf("%w: %d > %d", ErrColumnCapacity, n, MaxColumns)
	}

	out := make([]string, n)
	for i := range out {
		out[i] = columnLabel(i)
	}

	return out, nil
}

// columnLabel formats the zero-based column index i.
func columnLabel(i int) string {
	s := strconv.Itoa(i + 1)

	return strings.Repeat("0", ColumnWidth-len(s)) + s
}

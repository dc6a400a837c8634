// SPDX-License-Identifier: MIT

// Package coords builds the label space used to address grid cells.
//
// A cell identifier is the concatenation of a row label and a column label.
// Row labels are alphabetic and grow in width as the row count grows:
//
//	a … z        (26)
//	A … Z        (26)
//	aa … zz      (676)
//	Ba … Zz      (650)
//	aaa … zzz    (17 576)
//
// for a total capacity of MaxRows = 18 954 rows. Column labels are decimal
// numbers starting at 1 and zero-padded to ColumnWidth digits, so that
// lexicographic order equals numeric order ("00001", "00002", …).
//
// Because every column label has the same width, an identifier is split
// back into its parts by taking the trailing ColumnWidth characters as the
// column and the rest as the row.
//
// Cells are enumerated row by row, the column varying fastest, so the linear
// index of (row, col) is row*Columns()+col.
//
// Errors (sentinel):
//
//	– ErrEmptySpace      if rows < 1 or columns < 1.
//	– ErrRowCapacity     if rows > MaxRows.
//	– ErrColumnCapacity  if columns > MaxColumns.
//	– ErrMalformedID     if an identifier cannot be split into known labels.
package coords

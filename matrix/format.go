// SPDX-License-Identifier: MIT

// Package matrix: human-readable rendering for diagnostics and examples.
// Rendering is not part of the numeric contract; it never fails.
package matrix

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen     = "["
	_fmtRowClose    = "]"
	_fmtSep         = " "
	_fmtVectorOpen  = "Vector(["
	_fmtVectorClose = "])"
	_fmtNil         = "<nil>"
)

// formatScalar renders x with the shortest representation that round-trips.
func formatScalar(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// String renders the vector as Vector([x0 x1 ...]).
func (v *Vector) String() string {
	if v == nil {
		return _fmtNil
	}
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = formatScalar(x)
	}

	return _fmtVectorOpen + strings.Join(parts, _fmtSep) + _fmtVectorClose
}

// String renders m as a right-aligned fixed-width grid, one bracketed line
// per row. Every cell is padded to the widest rendered entry:
//
//	[  1  20]
//	[300   4]
func (m *Dense) String() string {
	if m == nil {
		return _fmtNil
	}
	cells := make([]string, len(m.data))
	width := 0
	for idx, x := range m.data {
		cells[idx] = formatScalar(x)
		if len(cells[idx]) > width {
			width = len(cells[idx])
		}
	}

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			cell := cells[i*m.c+j]
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

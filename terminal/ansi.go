// @focus: #terminal { ansi }
package terminal

import (
	"strconv"
)

// ANSI control strings written by views and the terminal lifecycle
const (
	SGRReset  = "\x1b[0m"
	ClearHome = "\x1b[2J\x1b[H"

	CursorHide = "\x1b[?25l"
	CursorShow = "\x1b[?25h"

	AltScreenEnter = "\x1b[?1049h"
	AltScreenExit  = "\x1b[?1049l"

	// DECAWM: Auto-Wrap Mode
	AutoWrapOn = "\x1b[?7h"

	// Reset to Initial State (emergency)
	resetInitialState = "\x1bc"
)

// AppendMoveCursor appends a cursor positioning sequence (0-indexed input) to dst
func AppendMoveCursor(dst []byte, row, col int) []byte {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row+1), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col+1), 10)
	return append(dst, 'H')
}

// MoveCursor returns the cursor positioning sequence for a 0-indexed cell
func MoveCursor(row, col int) string {
	var buf [16]byte
	return string(AppendMoveCursor(buf[:0], row, col))
}

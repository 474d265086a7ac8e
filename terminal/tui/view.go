package tui

import (
	"bytes"
	"io"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

// Screen reports terminal dimensions, (0, 0) when the query fails
type Screen interface {
	Size() (columns, rows int)
}

// ScreenSize is a fixed-size Screen
type ScreenSize struct {
	Columns int
	Rows    int
}

func (s ScreenSize) Size() (int, int) {
	return s.Columns, s.Rows
}

// frame is one full repaint assembled before a single write
type frame struct {
	bytes.Buffer
}

// begin clears the screen, homes the cursor and skips the top margin
func (f *frame) begin(topMargin int) {
	f.WriteString(terminal.ClearHome)
	for i := 0; i < topMargin; i++ {
		f.WriteByte('\n')
	}
}

// flush writes the frame; any short or failed write is IOWriteFailure
func (f *frame) flush(op string, w io.Writer) error {
	n, err := w.Write(f.Bytes())
	if err != nil {
		return fault.Wrap(fault.IOWriteFailure, op, err)
	}
	if n != f.Len() {
		return fault.Newf(fault.IOWriteFailure, op, "short write %d of %d bytes", n, f.Len())
	}
	return nil
}

// screenSize queries s and fails on the (0, 0) sentinel
func screenSize(op string, s Screen) (int, int, error) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, fault.Newf(fault.IOReadFailure, op, "terminal size %dx%d", cols, rows)
	}
	return cols, rows, nil
}

func checkMargins(op string, values ...int) error {
	for _, v := range values {
		if v < 0 {
			return fault.Newf(fault.InvalidArgument, op, "negative layout option %d", v)
		}
	}
	return nil
}

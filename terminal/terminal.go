package terminal

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/lixenwraith/oolong/fault"
)

// Terminal provides low-level terminal access over stdin/stdout
// Single-threaded: ReadKey, Write and Size are called from the caller's key loop
type Terminal struct {
	in     *os.File
	out    *os.File
	reader *Reader

	restore     func() error
	initialized bool
	finalized   bool
}

// New creates a Terminal on the process's stdin and stdout
func New() *Terminal {
	return NewFiles(os.Stdin, os.Stdout)
}

// NewFiles creates a Terminal on explicit files
func NewFiles(in, out *os.File) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		reader: NewReader(in),
	}
}

// Init enters cbreak mode, the alternate screen, and hides the cursor
func (t *Terminal) Init() error {
	if t.initialized {
		return nil
	}

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fault.New(fault.IOReadFailure, "terminal.Init", "stdin is not a terminal")
	}

	restore, err := enterCbreak(fd)
	if err != nil {
		return fault.Wrap(fault.IOReadFailure, "terminal.Init", err)
	}
	t.restore = restore

	if _, err := io.WriteString(t.out, AltScreenEnter+CursorHide+ClearHome); err != nil {
		t.restore()
		return fault.Wrap(fault.IOWriteFailure, "terminal.Init", err)
	}

	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	if !t.initialized || t.finalized {
		return
	}

	io.WriteString(t.out, SGRReset+CursorShow+AltScreenExit)
	if t.restore != nil {
		t.restore()
	}

	t.finalized = true
}

// Size returns current terminal dimensions, (0, 0) when the query fails
func (t *Terminal) Size() (columns, rows int) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0
	}
	return w, h
}

// ReadKey blocks until the next keystroke
func (t *Terminal) ReadKey() (Event, error) {
	ev, err := t.reader.ReadKey()
	if err != nil {
		return Event{}, fault.Wrap(fault.IOReadFailure, "terminal.ReadKey", err)
	}
	return ev, nil
}

// Write sends rendered output to the terminal
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	io.WriteString(w, CursorShow+AltScreenExit+SGRReset+AutoWrapOn+resetInitialState)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

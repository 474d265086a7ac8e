// Package tcellterm drives oolong views through a tcell screen
//
// Views write plain ANSI frames; Screen interprets the small subset they emit
// (SGR, clear, cursor position) into tcell cells, and converts tcell key and
// resize events into terminal.Event values.
package tcellterm

import (
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

// maxPending bounds an unterminated escape sequence carried between writes
const maxPending = 64

// Screen adapts a tcell.Screen to the oolong Screen, KeyReader and io.Writer roles
type Screen struct {
	screen tcell.Screen

	mu       sync.Mutex
	row, col int
	lastCol  int // column of the last printed glyph, for combining marks
	style    tcell.Style
	pending  []byte
}

// New creates a Screen on the process's terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fault.Wrap(fault.IOReadFailure, "tcellterm.New", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing tcell screen, typically a simulation screen in tests
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s, style: tcell.StyleDefault, lastCol: -1}
}

// Init initializes the underlying screen
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fault.Wrap(fault.IOReadFailure, "tcellterm.Init", err)
	}
	s.screen.HideCursor()
	return nil
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

// Size returns the screen dimensions, (0, 0) when unknown
func (s *Screen) Size() (columns, rows int) {
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return w, h
}

// --- Input ---

// ReadKey blocks until the next key or resize event
// Other tcell events are skipped; a finalized screen reports io.EOF
func (s *Screen) ReadKey() (terminal.Event, error) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return terminal.Event{}, fault.Wrap(fault.IOReadFailure, "tcellterm.ReadKey", io.EOF)
		}
		if out, ok := convertEvent(ev); ok {
			return out, nil
		}
	}
}

// convertEvent maps tcell key and resize events; ok is false for anything else
func convertEvent(ev tcell.Event) (terminal.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		out := terminal.Event{
			Type:      terminal.EventKey,
			Key:       convertKey(e.Key()),
			Modifiers: convertModifiers(e.Modifiers()),
		}
		if out.Key == terminal.KeyRune {
			out.Rune = e.Rune()
		}
		return out, true
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.Event{Type: terminal.EventResize, Width: w, Height: h}, true
	}
	return terminal.Event{}, false
}

// tcellKeys covers keys with a direct counterpart
// tcell aliases Backspace, Tab, Enter and Escape onto Ctrl codes, so those are matched here first
var tcellKeys = map[tcell.Key]terminal.Key{
	tcell.KeyRune:       terminal.KeyRune,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,

	tcell.KeyCtrlSpace:      terminal.KeyCtrlSpace,
	tcell.KeyCtrlBackslash:  terminal.KeyCtrlBackslash,
	tcell.KeyCtrlRightSq:    terminal.KeyCtrlBracketRight,
	tcell.KeyCtrlCarat:      terminal.KeyCtrlCaret,
	tcell.KeyCtrlUnderscore: terminal.KeyCtrlUnderscore,
}

func convertKey(k tcell.Key) terminal.Key {
	if out, ok := tcellKeys[k]; ok {
		return out
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return terminal.KeyCtrlA + terminal.Key(k-tcell.KeyCtrlA)
	}
	return terminal.KeyNone
}

func convertModifiers(m tcell.ModMask) terminal.Modifier {
	var out terminal.Modifier
	if m&tcell.ModShift != 0 {
		out |= terminal.ModShift
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= terminal.ModCtrl
	}
	return out
}

// --- Output ---

// Write interprets one ANSI frame and shows it
// Escape sequences split across writes are completed by the next write
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := p
	if len(s.pending) > 0 {
		data = append(s.pending, p...)
		s.pending = nil
	}

	i := 0
	for i < len(data) {
		n, ok := s.step(data[i:])
		if !ok {
			if len(data)-i <= maxPending {
				s.pending = append([]byte(nil), data[i:]...)
			}
			break
		}
		i += n
	}

	s.screen.Show()
	return len(p), nil
}

// step consumes one control, escape sequence or glyph
// ok is false when data starts with an incomplete sequence
func (s *Screen) step(data []byte) (n int, ok bool) {
	switch b := data[0]; {
	case b == 0x1b:
		return s.escape(data)
	case b == '\n':
		s.row++
		s.col = 0
		s.lastCol = -1
		return 1, true
	case b == '\r':
		s.col = 0
		s.lastCol = -1
		return 1, true
	case b < 0x20 || b == 0x7f:
		return 1, true
	}

	if !utf8.FullRune(data) {
		return 0, false
	}
	r, size := utf8.DecodeRune(data)
	s.put(r)
	return size, true
}

// put draws r at the cursor; zero-width runes join the previous glyph
func (s *Screen) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		if s.lastCol >= 0 {
			mainc, comb, style, _ := s.screen.GetContent(s.lastCol, s.row)
			s.screen.SetContent(s.lastCol, s.row, mainc, append(comb, r), style)
		}
		return
	}
	s.screen.SetContent(s.col, s.row, r, nil, s.style)
	s.lastCol = s.col
	s.col += w
}

func (s *Screen) escape(data []byte) (int, bool) {
	if len(data) < 2 {
		return 0, false
	}
	if data[1] != '[' {
		// ESC c and other two-byte forms
		if data[1] == 'c' {
			s.reset()
		}
		return 2, true
	}

	for j := 2; j < len(data); j++ {
		b := data[j]
		if b >= 0x40 && b <= 0x7e {
			s.csi(string(data[2:j]), b)
			return j + 1, true
		}
		if j-2 >= maxPending {
			return j + 1, true
		}
	}
	return 0, false
}

// csi applies a control sequence; private modes (?25l, ?1049h) are ignored
func (s *Screen) csi(params string, final byte) {
	if strings.HasPrefix(params, "?") {
		return
	}
	args := parseParams(params)

	switch final {
	case 'm':
		s.sgr(args)
	case 'J':
		if len(args) > 0 && args[0] == 2 {
			s.screen.Clear()
		}
	case 'H', 'f':
		row, col := 1, 1
		if len(args) > 0 && args[0] > 0 {
			row = args[0]
		}
		if len(args) > 1 && args[1] > 0 {
			col = args[1]
		}
		s.row, s.col = row-1, col-1
		s.lastCol = -1
	}
}

func (s *Screen) sgr(args []int) {
	if len(args) == 0 {
		args = []int{0}
	}
	for _, a := range args {
		switch {
		case a == 0:
			s.style = tcell.StyleDefault
		case a == 1:
			s.style = s.style.Bold(true)
		case a == 3:
			s.style = s.style.Italic(true)
		case a == 4:
			s.style = s.style.Underline(true)
		case a >= 30 && a <= 37:
			s.style = s.style.Foreground(tcell.PaletteColor(a - 30))
		case a == 39:
			s.style = s.style.Foreground(tcell.ColorDefault)
		case a >= 40 && a <= 47:
			s.style = s.style.Background(tcell.PaletteColor(a - 40))
		case a == 49:
			s.style = s.style.Background(tcell.ColorDefault)
		}
	}
}

func (s *Screen) reset() {
	s.style = tcell.StyleDefault
	s.row, s.col = 0, 0
	s.lastCol = -1
	s.screen.Clear()
}

// parseParams splits "1;31" into ints; empty fields read as 0
func parseParams(params string) []int {
	if params == "" {
		return nil
	}
	fields := strings.Split(params, ";")
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i], _ = strconv.Atoi(f)
	}
	return out
}

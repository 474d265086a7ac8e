package terminal

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int // For EventResize
	Height    int // For EventResize
}

// String formats the event for debug logs
func (e Event) String() string {
	if e.Type == EventResize {
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	}
	name := KeyName(e.Key)
	switch {
	case e.Key == KeyRune:
		name = fmt.Sprintf("rune %q", e.Rune)
	case name == "":
		name = fmt.Sprintf("key(%d)", e.Key)
	}
	if e.Modifiers != ModNone {
		name = fmt.Sprintf("%s mod=%d", name, e.Modifiers)
	}
	return name
}

// KeyReader delivers one logical keystroke per call, blocking until one is available
type KeyReader interface {
	ReadKey() (Event, error)
}

// maxEmptyReads bounds consecutive zero-byte reads before giving up
const maxEmptyReads = 100

// Reader decodes keystrokes from a byte stream
// Sequences are decoded whole; bytes left over from a read are kept for the next call
type Reader struct {
	src   io.Reader
	buf   []byte
	chunk []byte
	err   error
}

// NewReader creates a keystroke reader over src
func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:   src,
		buf:   make([]byte, 0, 64),
		chunk: make([]byte, 256),
	}
}

// ReadKey blocks until one keystroke is decoded
// Unknown escape sequences are swallowed, a lone ESC ending a read is Escape
// The source's error (io.EOF included) is returned once buffered keys are drained
func (r *Reader) ReadKey() (Event, error) {
	for {
		if n, ev := decode(r.buf, r.err != nil); n > 0 {
			r.consume(n)
			if ev.Key == KeyNone {
				continue
			}
			return ev, nil
		}

		if r.err != nil {
			return Event{}, r.err
		}

		// Incomplete: a bare ESC at the end of the last read is the Escape key
		if len(r.buf) == 1 && r.buf[0] == 0x1b {
			r.consume(1)
			return Event{Type: EventKey, Key: KeyEscape}, nil
		}

		r.fill()
	}
}

// Buffered reports the number of undecoded bytes held from earlier reads
func (r *Reader) Buffered() int {
	return len(r.buf)
}

func (r *Reader) fill() {
	for i := 0; i < maxEmptyReads; i++ {
		n, err := r.src.Read(r.chunk)
		r.buf = append(r.buf, r.chunk[:n]...)
		if err != nil {
			r.err = err
			return
		}
		if n > 0 {
			return
		}
	}
	r.err = io.ErrNoProgress
}

func (r *Reader) consume(n int) {
	if n >= len(r.buf) {
		r.buf = r.buf[:0]
		return
	}
	copy(r.buf, r.buf[n:])
	r.buf = r.buf[:len(r.buf)-n]
}

// --- Decoding ---

// decode parses the first event in data and returns bytes consumed, 0 when incomplete
// With final set no more bytes will arrive, so incomplete input is consumed as-is
func decode(data []byte, final bool) (int, Event) {
	if len(data) == 0 {
		return 0, Event{}
	}

	b := data[0]
	switch {
	case b >= 0x20 && b < 0x7f:
		return 1, Event{Type: EventKey, Key: KeyRune, Rune: rune(b)}
	case b == 0x7f:
		return 1, Event{Type: EventKey, Key: KeyBackspace}
	case b == 0x1b:
		n, ev := decodeEscape(data)
		if n == 0 && final {
			return 1, Event{Type: EventKey, Key: KeyEscape}
		}
		return n, ev
	case b < 0x20:
		return 1, Event{Type: EventKey, Key: controlKey(b)}
	}

	// UTF-8 multibyte
	if !utf8.FullRune(data) {
		if final {
			return 1, Event{Type: EventKey, Key: KeyRune, Rune: utf8.RuneError}
		}
		return 0, Event{}
	}
	rn, size := utf8.DecodeRune(data)
	return size, Event{Type: EventKey, Key: KeyRune, Rune: rn}
}

// decodeEscape parses a sequence starting with ESC, returns 0 on incomplete
func decodeEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch c := data[1]; {
	case c == 0x1b:
		// ESC ESC -> Alt+Escape
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case c == '[':
		return decodeCSI(data)
	case c == 'O':
		if len(data) < 3 {
			return 0, Event{}
		}
		// Unknown SS3 is consumed as KeyNone to prevent garbage
		return 3, ss3Keys[data[2]]
	case c < 0x20:
		return 2, Event{Type: EventKey, Key: controlKey(c), Modifiers: ModAlt}
	case c < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(c), Modifiers: ModAlt}
	}
	// ESC followed by a non-ASCII byte: plain Escape, the byte is decoded next
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// maxCSILen bounds the scan for a CSI final byte
const maxCSILen = 16

// decodeCSI parses ESC [ params final
func decodeCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	// Linux console function keys: ESC [ [ X
	if data[2] == '[' {
		if len(data) < 4 {
			return 0, Event{}
		}
		return 4, Event{Type: EventKey, Key: linuxConsoleKeys[data[3]]}
	}

	end := 2
	for ; end < len(data) && end < maxCSILen; end++ {
		b := data[end]
		if isCSIFinal(b) {
			break
		}
		if b < 0x20 || b > 0x7e {
			// Malformed: drop the introducer only
			return 2, Event{}
		}
	}
	if end >= len(data) {
		return 0, Event{}
	}
	if end >= maxCSILen {
		return end, Event{}
	}

	final := data[end]
	params, ok := parseCSIParams(data[2:end])
	n := end + 1
	if !ok {
		return n, Event{}
	}

	switch {
	case final == '~' && len(params) > 0:
		key := csiTildeKeys[params[0]]
		var mod Modifier
		if len(params) > 1 {
			mod = xtermModifier(params[1])
		}
		return n, Event{Type: EventKey, Key: key, Modifiers: mod}
	case final == 'Z' && len(params) == 0:
		return n, Event{Type: EventKey, Key: KeyBacktab, Modifiers: ModShift}
	}

	key, known := csiLetterKeys[final]
	if !known {
		return n, Event{}
	}
	switch len(params) {
	case 0:
		return n, Event{Type: EventKey, Key: key}
	case 2:
		if params[0] == 1 {
			return n, Event{Type: EventKey, Key: key, Modifiers: xtermModifier(params[1])}
		}
	}
	return n, Event{}
}

func isCSIFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

// parseCSIParams splits "N;M" into integers, empty input gives no params
func parseCSIParams(data []byte) ([]int, bool) {
	if len(data) == 0 {
		return nil, true
	}
	params := make([]int, 0, 2)
	val := 0
	for _, b := range data {
		switch {
		case b == ';':
			params = append(params, val)
			val = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			if val > 9999 { // Sanity limit
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return append(params, val), true
}

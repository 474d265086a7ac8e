package terminal

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader returns one chunk per Read call, then io.EOF
type chunkReader struct {
	chunks [][]byte
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks = c.chunks[1:]
	return n, nil
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var events []Event
	for {
		ev, err := r.ReadKey()
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, ev)
	}
}

func TestReader_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Event
	}{
		{"ascii", "j", Event{Key: KeyRune, Rune: 'j'}},
		{"space", " ", Event{Key: KeyRune, Rune: ' '}},
		{"enter cr", "\r", Event{Key: KeyEnter}},
		{"enter lf", "\n", Event{Key: KeyEnter}},
		{"tab", "\t", Event{Key: KeyTab}},
		{"del", "\x7f", Event{Key: KeyBackspace}},
		{"ctrl h", "\x08", Event{Key: KeyBackspace}},
		{"ctrl c", "\x03", Event{Key: KeyCtrlC}},
		{"ctrl z", "\x1a", Event{Key: KeyCtrlZ}},
		{"up", "\x1b[A", Event{Key: KeyUp}},
		{"down ss3", "\x1bOB", Event{Key: KeyDown}},
		{"shift tab", "\x1b[Z", Event{Key: KeyBacktab, Modifiers: ModShift}},
		{"ctrl right", "\x1b[1;5C", Event{Key: KeyRight, Modifiers: ModCtrl}},
		{"shift alt up", "\x1b[1;4A", Event{Key: KeyUp, Modifiers: ModShift | ModAlt}},
		{"delete", "\x1b[3~", Event{Key: KeyDelete}},
		{"ctrl page down", "\x1b[6;5~", Event{Key: KeyPageDown, Modifiers: ModCtrl}},
		{"f5", "\x1b[15~", Event{Key: KeyF5}},
		{"f12 shift", "\x1b[24;2~", Event{Key: KeyF12, Modifiers: ModShift}},
		{"f1 linux console", "\x1b[[A", Event{Key: KeyF1}},
		{"keypad enter", "\x1bOM", Event{Key: KeyEnter}},
		{"keypad 7", "\x1bOw", Event{Key: KeyRune, Rune: '7'}},
		{"alt x", "\x1bx", Event{Key: KeyRune, Rune: 'x', Modifiers: ModAlt}},
		{"alt escape", "\x1b\x1b", Event{Key: KeyEscape, Modifiers: ModAlt}},
		{"utf8", "é", Event{Key: KeyRune, Rune: 'é'}},
		{"wide", "世", Event{Key: KeyRune, Rune: '世'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader([]byte(tt.input)))
			ev, err := r.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev)
			assert.Zero(t, r.Buffered())
		})
	}
}

func TestReader_LoneEscapeEndingRead(t *testing.T) {
	r := NewReader(&chunkReader{chunks: [][]byte{[]byte("a\x1b"), []byte("b")}})

	events := readAll(t, r)
	require.Len(t, events, 3)
	assert.Equal(t, Event{Key: KeyRune, Rune: 'a'}, events[0])
	assert.Equal(t, Event{Key: KeyEscape}, events[1])
	assert.Equal(t, Event{Key: KeyRune, Rune: 'b'}, events[2])
}

func TestReader_SplitSequenceAcrossReads(t *testing.T) {
	r := NewReader(&chunkReader{chunks: [][]byte{[]byte("\x1b["), []byte("B")}})

	ev, err := r.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Event{Key: KeyDown}, ev)
}

func TestReader_SplitUTF8AcrossReads(t *testing.T) {
	euro := []byte("€")
	r := NewReader(&chunkReader{chunks: [][]byte{euro[:1], euro[1:]}})

	ev, err := r.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Event{Key: KeyRune, Rune: '€'}, ev)
}

func TestReader_BufferedKeysInOrder(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("jk\x1b[A\r\x7fq")))

	events := readAll(t, r)
	want := []Event{
		{Key: KeyRune, Rune: 'j'},
		{Key: KeyRune, Rune: 'k'},
		{Key: KeyUp},
		{Key: KeyEnter},
		{Key: KeyBackspace},
		{Key: KeyRune, Rune: 'q'},
	}
	assert.Equal(t, want, events)
}

func TestReader_UnknownSequenceSwallowed(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("\x1b[99q\x1bOzx")))

	events := readAll(t, r)
	assert.Equal(t, []Event{{Key: KeyRune, Rune: 'x'}}, events)
}

func TestReader_IncompleteAtEOF(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("\x1b[")))

	events := readAll(t, r)
	require.NotEmpty(t, events)
	assert.Equal(t, Event{Key: KeyEscape}, events[0])
}

func TestReader_EmptyReadsGiveUp(t *testing.T) {
	r := NewReader(readerFunc(func(p []byte) (int, error) { return 0, nil }))

	_, err := r.ReadKey()
	assert.ErrorIs(t, err, io.ErrNoProgress)
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestKeyByName(t *testing.T) {
	tests := []struct {
		name string
		want Key
		ok   bool
	}{
		{"enter", KeyEnter, true},
		{"escape", KeyEscape, true},
		{"esc", KeyEscape, true},
		{"ctrl_a", KeyCtrlA, true},
		{"ctrl_q", KeyCtrlQ, true},
		{"page_down", KeyPageDown, true},
		{"shift_tab", KeyBacktab, true},
		{"pgup", KeyPageUp, true},
		{"f10", KeyF10, true},
		{"hyper_x", KeyNone, false},
	}
	for _, tt := range tests {
		k, ok := KeyByName(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, k, tt.name)
	}

	assert.Equal(t, "ctrl_z", KeyName(KeyCtrlZ))
	assert.Equal(t, "escape", KeyName(KeyEscape), "canonical name over alias")
	assert.Equal(t, "f12", KeyName(KeyF12))
	assert.Equal(t, "", KeyName(KeyRune))
}

func TestMoveCursor(t *testing.T) {
	assert.Equal(t, "\x1b[1;1H", MoveCursor(0, 0))
	assert.Equal(t, "\x1b[24;80H", MoveCursor(23, 79))
	assert.Equal(t, "\x1b[1;1H", MoveCursor(-3, -1))
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "enter", Event{Key: KeyEnter}.String())
	assert.Equal(t, `rune 'q'`, Event{Key: KeyRune, Rune: 'q'}.String())
	assert.Equal(t, "resize 80x24", Event{Type: EventResize, Width: 80, Height: 24}.String())
}

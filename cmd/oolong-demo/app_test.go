package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/oolong/audio"
	"github.com/lixenwraith/oolong/config"
	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
	"github.com/lixenwraith/oolong/terminal/tui"
)

// cueLog records played cues
type cueLog []audio.Cue

func (c *cueLog) Play(cue audio.Cue) { *c = append(*c, cue) }

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a, err := newApp(config.Default(), tui.ScreenSize{Columns: 60, Rows: 20}, &out, fault.NewReporter(fault.ModeAccumulate), audio.NewCuePlayer())
	require.NoError(t, err)
	return a, &out
}

func newRecordingApp(t *testing.T, cfg *config.Config, out io.Writer) (*app, *cueLog) {
	t.Helper()
	r := fault.NewReporter(fault.ModeAccumulate)
	r.Logger = log.New(io.Discard, "", 0)
	cues := &cueLog{}
	a, err := newApp(cfg, tui.ScreenSize{Columns: 60, Rows: 20}, out, r, cues)
	require.NoError(t, err)
	return a, cues
}

func keyEv(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func runeEv(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func feed(t *testing.T, a *app, events ...terminal.Event) bool {
	t.Helper()
	for _, ev := range events {
		if a.handle(ev) {
			return true
		}
		require.NoError(t, a.render())
	}
	return false
}

func selected(t *testing.T, a *app) int {
	t.Helper()
	id, ok := a.page.Selected()
	require.True(t, ok)
	return id
}

func TestApp_MenuNavigation(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, idRed, selected(t, a))

	feed(t, a, runeEv('j'), keyEv(terminal.KeyDown))
	assert.Equal(t, idBlue, selected(t, a))

	feed(t, a, runeEv('j'), runeEv('j'))
	assert.Equal(t, idQuit, selected(t, a))

	feed(t, a, runeEv('j'))
	assert.Equal(t, idRed, selected(t, a), "wraps past the title")

	feed(t, a, runeEv('k'))
	assert.Equal(t, idQuit, selected(t, a))
}

func TestApp_Highlight(t *testing.T) {
	a, out := newTestApp(t)

	feed(t, a, runeEv('j'), keyEv(terminal.KeyEnter))
	assert.Equal(t, "oolong (green)", a.title.Content)
	assert.Contains(t, out.String(), tui.BgGreen.Escape())
	for _, b := range a.buttons {
		assert.Equal(t, tui.BgGreen, b.StyleSelected.Tokens()[len(b.StyleSelected.Tokens())-1])
	}
}

func TestApp_NameEntry(t *testing.T) {
	a, out := newTestApp(t)

	feed(t, a, runeEv('j'), runeEv('j'), runeEv('j'))
	assert.Equal(t, idName, selected(t, a))

	feed(t, a, keyEv(terminal.KeyEnter), runeEv('q'), runeEv('j'), keyEv(terminal.KeyBackspace), runeEv('o'))
	assert.Equal(t, "qo", a.name.Entered())
	assert.Same(t, a.menu, a.page, "q typed into the box does not open the dialog")

	feed(t, a, keyEv(terminal.KeyEscape))
	assert.Nil(t, a.menu.Stack().ActiveTextBox())
	assert.Contains(t, out.String(), "qo")

	feed(t, a, runeEv('q'))
	assert.Same(t, a.dialog, a.page)
}

func TestApp_SpaceActivatesNameBox(t *testing.T) {
	cfg := config.Default()
	cfg.Keys.Activate = []string{"space"}
	cfg.Keys.Deactivate = []string{"escape"}
	a, cues := newRecordingApp(t, cfg, io.Discard)

	keys := terminal.NewReader(strings.NewReader("jjj a b"))
	for {
		ev, err := keys.ReadKey()
		if err != nil {
			break
		}
		a.handle(ev)
	}

	assert.Same(t, a.name, a.menu.Stack().ActiveTextBox())
	assert.Equal(t, "a b", a.name.Entered())
	assert.Contains(t, *cues, audio.CueActivate)

	a.handle(keyEv(terminal.KeyEscape))
	assert.Nil(t, a.menu.Stack().ActiveTextBox())
}

func TestApp_EnterNoLongerActivatesWhenRebound(t *testing.T) {
	cfg := config.Default()
	cfg.Keys.Activate = []string{"i"}
	a, cues := newRecordingApp(t, cfg, io.Discard)

	feed(t, a, runeEv('j'), runeEv('j'), runeEv('j'), keyEv(terminal.KeyEnter))
	assert.Nil(t, a.menu.Stack().ActiveTextBox())
	assert.NotContains(t, *cues, audio.CueActivate)

	feed(t, a, runeEv('i'))
	assert.Same(t, a.name, a.menu.Stack().ActiveTextBox())
}

func TestLoop_RenderFailurePlaysErrorCue(t *testing.T) {
	a, cues := newRecordingApp(t, config.Default(), failWriter{})
	keys := terminal.NewReader(strings.NewReader("j"))

	require.NoError(t, loop(a, keys))
	assert.Equal(t, cueLog{audio.CueError, audio.CueMove, audio.CueError}, *cues)
}

func TestApp_QuitDialog(t *testing.T) {
	a, out := newTestApp(t)

	assert.False(t, feed(t, a, runeEv('q')))
	assert.Same(t, a.dialog, a.page)
	assert.Contains(t, out.String(), "Are you sure")
	assert.Equal(t, idCancel, selected(t, a))

	assert.False(t, feed(t, a, keyEv(terminal.KeyEnter)))
	assert.Same(t, a.menu, a.page, "cancel returns to the menu")

	assert.False(t, feed(t, a, runeEv('q'), keyEv(terminal.KeyEscape)))
	assert.Same(t, a.menu, a.page)

	assert.False(t, feed(t, a, runeEv('q'), runeEv('l')))
	assert.Equal(t, idConfirm, selected(t, a))
	assert.True(t, feed(t, a, keyEv(terminal.KeyEnter)))
}

func TestApp_QuitButton(t *testing.T) {
	a, _ := newTestApp(t)
	feed(t, a, runeEv('k'), keyEv(terminal.KeyEnter))
	assert.Same(t, a.dialog, a.page)

	// reopening always starts on Cancel
	feed(t, a, runeEv('l'), keyEv(terminal.KeyEscape), runeEv('q'))
	assert.Equal(t, idCancel, selected(t, a))
}

func TestLoop_EndsOnEOF(t *testing.T) {
	a, out := newTestApp(t)
	keys := terminal.NewReader(bytes.NewReader([]byte("jj")))

	require.NoError(t, loop(a, keys))
	assert.Equal(t, idBlue, selected(t, a))
	assert.NotZero(t, out.Len())
}

func TestLoop_QuitSequence(t *testing.T) {
	a, _ := newTestApp(t)
	keys := terminal.NewReader(bytes.NewReader([]byte("ql\rj")))

	require.NoError(t, loop(a, keys))
	assert.Same(t, a.dialog, a.page, "loop stops at confirm before reading j")
}

func TestNewBackend_Unknown(t *testing.T) {
	_, err := newBackend("vt52")
	assert.Equal(t, fault.InvalidArgument, fault.KindOf(err))
}

// failWriter rejects every write
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

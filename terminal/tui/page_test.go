package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

func TestPage_ForwardsToStack(t *testing.T) {
	v := stackWith(t, ScreenSize{20, 5}, StackOptions{})
	for _, s := range []State{StateSelected, StateNormal} {
		b, err := NewButton(ButtonOptions{ID: len(v.Widgets()) + 1, State: s, Text: "b"})
		require.NoError(t, err)
		require.NoError(t, v.Add(b))
	}

	p, err := NewStackPage(v)
	require.NoError(t, err)
	assert.Equal(t, PageStack, p.Kind())
	assert.Same(t, v, p.Stack())
	assert.Nil(t, p.Dialog())

	p.SelectNext()
	id, _ := p.Selected()
	assert.Equal(t, 2, id)

	p.SelectPrevious()
	id, _ = p.Selected()
	assert.Equal(t, 1, id)

	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	assert.Equal(t, terminal.ClearHome+"b\nb", buf.String())

	err = p.RegisterKeystroke(char('x'))
	assert.Equal(t, fault.NoSuchElement, fault.KindOf(err))
}

func TestPage_ForwardsToDialog(t *testing.T) {
	r := quietReporter()
	opts := quitOptions
	opts.Reporter = r
	d := quitDialog(t, ScreenSize{20, 10}, opts)

	p, err := NewDialogPage(d)
	require.NoError(t, err)
	assert.Equal(t, PageDialog, p.Kind())
	assert.Equal(t, "dialog", p.Kind().String())
	assert.Nil(t, p.Stack())

	p.SelectNext()
	id, _ := p.Selected()
	assert.Equal(t, 2, id)

	var direct, paged bytes.Buffer
	require.NoError(t, d.Render(&direct))
	require.NoError(t, p.Render(&paged))
	assert.Equal(t, direct.String(), paged.String())

	err = p.RegisterKeystroke(char('x'))
	assert.Equal(t, fault.InvalidArgument, fault.KindOf(err))
	assert.True(t, r.Has(fault.InvalidArgument))
}

func TestNewPage_Nil(t *testing.T) {
	_, err := NewStackPage(nil)
	assert.Equal(t, fault.InvalidArgument, fault.KindOf(err))

	_, err = NewDialogPage(nil)
	assert.Equal(t, fault.InvalidArgument, fault.KindOf(err))
}

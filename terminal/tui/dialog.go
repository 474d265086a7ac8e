package tui

import (
	"io"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

// DialogButton is one of a dialog's mutually exclusive choices
// State is restricted to Normal, Selected or Disabled; zero means Normal
type DialogButton struct {
	ID            int
	Text          string
	Style         *StyleSet
	StyleSelected *StyleSet
	State         State
}

func (b *DialogButton) SelectionState() State     { return b.State }
func (b *DialogButton) SetSelectionState(s State) { b.State = s }
func (b *DialogButton) CanSelect() bool           { return b.State != StateDisabled }

// style returns the set for the button's state; disabled buttons use the normal set
func (b *DialogButton) style() *StyleSet {
	if b.State == StateSelected {
		return b.StyleSelected
	}
	return b.Style
}

// DialogOptions configures a DialogView
type DialogOptions struct {
	ButtonGap     int // spaces between buttons
	ButtonPadding int // spaces inside each button's share, both sides
	TextButtonGap int // minimum blank rows between the text and the button row
	TopMargin     int
	SideMargin    int

	// Reporter records every error the view returns, nil only returns them
	Reporter *fault.Reporter
}

// DialogView shows word-wrapped text above one row of buttons
type DialogView struct {
	opts    DialogOptions
	screen  Screen
	text    string
	buttons []*DialogButton
}

// NewDialogView creates a dialog with the given text and no buttons
func NewDialogView(screen Screen, text string, opts DialogOptions) (*DialogView, error) {
	const op = "NewDialogView"
	if screen == nil {
		return nil, opts.Reporter.Record(fault.New(fault.InvalidArgument, op, "nil screen"))
	}
	if err := checkMargins(op, opts.ButtonGap, opts.ButtonPadding, opts.TextButtonGap, opts.TopMargin, opts.SideMargin); err != nil {
		return nil, opts.Reporter.Record(err)
	}
	return &DialogView{opts: opts, screen: screen, text: text}, nil
}

// Options returns the layout options
func (d *DialogView) Options() DialogOptions {
	return d.opts
}

// SetText replaces the paragraph text
func (d *DialogView) SetText(text string) {
	d.text = text
}

// Text returns the paragraph text
func (d *DialogView) Text() string {
	return d.text
}

// AddButton appends a button to the row
func (d *DialogView) AddButton(b *DialogButton) error {
	const op = "DialogView.AddButton"
	if b == nil {
		return d.opts.Reporter.Record(fault.New(fault.InvalidArgument, op, "nil button"))
	}
	if b.State == 0 {
		b.State = StateNormal
	}
	switch b.State {
	case StateNormal, StateSelected, StateDisabled:
	default:
		return d.opts.Reporter.Record(fault.Newf(fault.InvalidArgument, op, "state %v not supported", b.State))
	}
	d.buttons = append(d.buttons, b)
	return nil
}

// Buttons returns the buttons in row order
func (d *DialogView) Buttons() []*DialogButton {
	return d.buttons
}

// Button finds a button by identifier
func (d *DialogView) Button(id int) (*DialogButton, error) {
	for _, b := range d.buttons {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, d.opts.Reporter.Record(fault.Newf(fault.NoSuchElement, "DialogView.Button", "id %d", id))
}

// --- Selection ---

// SelectNext moves focus right, wrapping
func (d *DialogView) SelectNext() {
	SelectNext(d.buttons)
}

// SelectPrevious moves focus left, wrapping
func (d *DialogView) SelectPrevious() {
	SelectPrevious(d.buttons)
}

// Selected returns the identifier of the Selected button
func (d *DialogView) Selected() (int, bool) {
	i := SelectedIndex(d.buttons)
	if i < 0 {
		return 0, false
	}
	return d.buttons[i].ID, true
}

// HandleKey moves focus with left/right/h/l/tab and chooses with Enter
// Returns the chosen identifier and true when Enter lands on a selection
func (d *DialogView) HandleKey(ev terminal.Event) (int, bool) {
	switch ev.Key {
	case terminal.KeyLeft, terminal.KeyBacktab:
		d.SelectPrevious()
	case terminal.KeyRight, terminal.KeyTab:
		d.SelectNext()
	case terminal.KeyEnter:
		return d.Selected()
	case terminal.KeyRune:
		switch ev.Rune {
		case 'h':
			d.SelectPrevious()
		case 'l':
			d.SelectNext()
		}
	}
	return 0, false
}

// --- Rendering ---

// Render repaints the dialog to w in a single write
// The button row sits TopMargin rows above the bottom, pushed down to clear the text
func (d *DialogView) Render(w io.Writer) error {
	const op = "DialogView.Render"

	cols, rows, err := screenSize(op, d.screen)
	if err != nil {
		return d.opts.Reporter.Record(err)
	}
	side := d.opts.SideMargin

	lines, err := Wrap(d.text, cols-2*side)
	if err != nil {
		return d.opts.Reporter.Record(err)
	}

	var f frame
	f.begin(d.opts.TopMargin)
	for _, line := range lines {
		f.WriteString(spaces(side))
		f.WriteString(line)
		f.WriteByte('\n')
	}

	if n := len(d.buttons); n > 0 {
		textEnd := d.opts.TopMargin + len(lines)
		row := max(rows-1-d.opts.TopMargin, textEnd+d.opts.TextButtonGap)
		share := max(0, (cols-2*side-d.opts.ButtonGap*(n-1))/n)

		// a button never outgrows its share, padding gives way before text
		pad := min(d.opts.ButtonPadding, share/2)
		f.WriteString(terminal.MoveCursor(row, 0))
		f.WriteString(spaces(side))
		for i, b := range d.buttons {
			text := Truncate(b.Text, share-2*pad)
			s, _, _, err := composeString(op, AlignLeft, b.style(), text, pad, share)
			if err != nil {
				return d.opts.Reporter.Record(err)
			}
			f.WriteString(s)
			if i < n-1 {
				f.WriteString(spaces(d.opts.ButtonGap))
			}
		}
	}

	return d.opts.Reporter.Record(f.flush(op, w))
}

package tui

import (
	"io"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

// StackOptions configures a StackView
// ElementWidth and ElementPadding apply at Add to widgets that leave them zero
type StackOptions struct {
	ElementWidth   int
	ElementPadding int
	ElementGap     int // blank lines between widgets
	TopMargin      int
	SideMargin     int
	Align          Align

	// Reporter records every error the view returns, nil only returns them
	Reporter *fault.Reporter
}

// StackView lays widgets out top to bottom under one alignment policy
type StackView struct {
	opts    StackOptions
	screen  Screen
	widgets []Widget
}

// NewStackView creates an empty stack view
func NewStackView(screen Screen, opts StackOptions) (*StackView, error) {
	const op = "NewStackView"
	if screen == nil {
		return nil, opts.Reporter.Record(fault.New(fault.InvalidArgument, op, "nil screen"))
	}
	if err := checkMargins(op, opts.ElementWidth, opts.ElementPadding, opts.ElementGap, opts.TopMargin, opts.SideMargin); err != nil {
		return nil, opts.Reporter.Record(err)
	}
	if opts.Align > AlignWidth {
		return nil, opts.Reporter.Record(fault.Newf(fault.InvalidArgument, op, "alignment %d", opts.Align))
	}
	return &StackView{opts: opts, screen: screen}, nil
}

// Options returns the layout options
func (v *StackView) Options() StackOptions {
	return v.opts
}

// Add appends a widget
func (v *StackView) Add(w Widget) error {
	if w == nil || w.base() == nil {
		return v.opts.Reporter.Record(fault.New(fault.InvalidArgument, "StackView.Add", "nil widget"))
	}
	e := w.base()
	if e.Width == 0 {
		e.Width = v.opts.ElementWidth
	}
	if e.Padding == 0 {
		e.Padding = v.opts.ElementPadding
	}
	v.widgets = append(v.widgets, w)
	return nil
}

// Widgets returns the widgets in layout order
func (v *StackView) Widgets() []Widget {
	return v.widgets
}

// Element finds a widget by identifier
func (v *StackView) Element(id int) (Widget, error) {
	for _, w := range v.widgets {
		if w.base().ID == id {
			return w, nil
		}
	}
	return nil, v.opts.Reporter.Record(fault.Newf(fault.NoSuchElement, "StackView.Element", "id %d", id))
}

// --- Selection ---

// SelectNext moves focus forward, wrapping; no-op without a current selection
func (v *StackView) SelectNext() {
	SelectNext(v.widgets)
}

// SelectPrevious moves focus backward, wrapping
func (v *StackView) SelectPrevious() {
	SelectPrevious(v.widgets)
}

// Selected returns the identifier of the Selected or Active widget
func (v *StackView) Selected() (int, bool) {
	i := SelectedIndex(v.widgets)
	if i < 0 {
		return 0, false
	}
	return v.widgets[i].base().ID, true
}

// ActiveTextBox returns the text box currently taking input, nil when none
func (v *StackView) ActiveTextBox() *TextBox {
	for _, w := range v.widgets {
		if tb, ok := w.(*TextBox); ok && tb.State == StateActive {
			return tb
		}
	}
	return nil
}

// RegisterKeystroke routes a key to the focused text box
func (v *StackView) RegisterKeystroke(ev terminal.Event) error {
	const op = "StackView.RegisterKeystroke"
	i := SelectedIndex(v.widgets)
	if i < 0 {
		return v.opts.Reporter.Record(fault.New(fault.NoSuchElement, op, "no selection"))
	}
	tb, ok := v.widgets[i].(*TextBox)
	if !ok {
		return v.opts.Reporter.Record(fault.Newf(fault.NoSuchElement, op, "selected id %d is not a text box", v.widgets[i].base().ID))
	}
	return v.opts.Reporter.Record(tb.RegisterKeystroke(ev))
}

// --- Rendering ---

// Render repaints the whole view to w in a single write
func (v *StackView) Render(w io.Writer) error {
	const op = "StackView.Render"

	cols, _, err := screenSize(op, v.screen)
	if err != nil {
		return v.opts.Reporter.Record(err)
	}
	side := v.opts.SideMargin
	avail := max(0, cols-2*side)

	var f frame
	f.begin(v.opts.TopMargin)

	for i, wd := range v.widgets {
		if i > 0 {
			for j := 0; j <= v.opts.ElementGap; j++ {
				f.WriteByte('\n')
			}
		}

		e := wd.base()
		align := e.Align
		if v.opts.Align == AlignWidth || align == AlignWidth {
			e.Width = avail
			align = AlignLeft
		}
		if err := wd.renderAs(align); err != nil {
			return v.opts.Reporter.Record(err)
		}

		f.WriteString(spaces(v.column(e.RenderedWidth(), cols)))
		f.WriteString(e.Rendered())
	}

	return v.opts.Reporter.Record(f.flush(op, w))
}

// column returns the starting column for a widget of the given display width
func (v *StackView) column(width, cols int) int {
	side := v.opts.SideMargin
	switch v.opts.Align {
	case AlignRight:
		return max(0, cols-side-width)
	case AlignCenter:
		return max(side, (cols-width)/2)
	}
	return side
}

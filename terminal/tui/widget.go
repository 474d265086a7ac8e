package tui

// Widget is the closed set of stack view entries: *Label, *Button, *TextBox
type Widget interface {
	Selectable

	// Render refreshes the cached display string
	Render() error

	base() *Element
	renderAs(align Align) error
}

// Label is static text, it only supports StateNormal
type Label struct {
	Element
}

// LabelOptions configures a Label
type LabelOptions struct {
	ID      int
	Align   Align
	Padding int
	Width   int
	Style   *StyleSet
	Text    string
}

// NewLabel creates a label
func NewLabel(opts LabelOptions) (*Label, error) {
	l := &Label{Element{
		ID:          opts.ID,
		Supported:   StateNormal,
		State:       StateNormal,
		Align:       opts.Align,
		Padding:     opts.Padding,
		Width:       opts.Width,
		StyleNormal: opts.Style,
		Content:     opts.Text,
	}}
	if err := l.validate("NewLabel"); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) base() *Element { return &l.Element }

// Button is a selectable element without an active state
type Button struct {
	Element
}

// ButtonOptions configures a Button, a zero State means StateNormal
type ButtonOptions struct {
	ID            int
	State         State
	Align         Align
	Padding       int
	Width         int
	Style         *StyleSet
	StyleSelected *StyleSet
	StyleDisabled *StyleSet
	Text          string
}

// NewButton creates a button
func NewButton(opts ButtonOptions) (*Button, error) {
	b := &Button{Element{
		ID:            opts.ID,
		Supported:     StateNormal | StateSelected | StateDisabled,
		State:         opts.State,
		Align:         opts.Align,
		Padding:       opts.Padding,
		Width:         opts.Width,
		StyleNormal:   opts.Style,
		StyleSelected: opts.StyleSelected,
		StyleDisabled: opts.StyleDisabled,
		Content:       opts.Text,
	}}
	if err := b.validate("NewButton"); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Button) base() *Element { return &b.Element }

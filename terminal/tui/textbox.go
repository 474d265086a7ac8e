package tui

import (
	"slices"
	"unicode"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

// KeyMatcher reports whether a key event belongs to a binding
type KeyMatcher func(terminal.Event) bool

// MatchKeys matches any of the named keys
// KeySpace also matches a typed space, which decoders report as KeyRune ' '
func MatchKeys(keys ...terminal.Key) KeyMatcher {
	return func(ev terminal.Event) bool {
		if ev.Type != terminal.EventKey {
			return false
		}
		if ev.Key == terminal.KeyRune && ev.Rune == ' ' {
			return slices.Contains(keys, terminal.KeySpace)
		}
		return ev.Key != terminal.KeyRune && slices.Contains(keys, ev.Key)
	}
}

// Default matchers for entering and leaving text input
var (
	DefaultActivation   = MatchKeys(terminal.KeyEnter)
	DefaultDeactivation = MatchKeys(terminal.KeyEnter, terminal.KeyEscape)
)

// TextBox accepts typed text while Active
// It shows the entered text when non-empty or Active, the placeholder otherwise
// Styles come from the placeholder/entered pairs, the Element style fields are unused
type TextBox struct {
	Element

	placeholder string
	entered     string

	stylePlaceholder         *StyleSet
	stylePlaceholderSelected *StyleSet
	styleEntered             *StyleSet
	styleEnteredSelected     *StyleSet

	activation   KeyMatcher
	deactivation KeyMatcher
}

// TextBoxOptions configures a TextBox, nil matchers use the defaults
type TextBoxOptions struct {
	ID      int
	State   State
	Align   Align
	Padding int
	Width   int

	Placeholder string

	StylePlaceholder         *StyleSet
	StylePlaceholderSelected *StyleSet
	StyleEntered             *StyleSet
	StyleEnteredSelected     *StyleSet

	Activation   KeyMatcher
	Deactivation KeyMatcher
}

// NewTextBox creates a text box with empty entered text
func NewTextBox(opts TextBoxOptions) (*TextBox, error) {
	t := &TextBox{
		Element: Element{
			ID:        opts.ID,
			Supported: StateNormal | StateSelected | StateActive | StateDisabled,
			State:     opts.State,
			Align:     opts.Align,
			Padding:   opts.Padding,
			Width:     opts.Width,
		},
		placeholder:              opts.Placeholder,
		stylePlaceholder:         opts.StylePlaceholder,
		stylePlaceholderSelected: opts.StylePlaceholderSelected,
		styleEntered:             opts.StyleEntered,
		styleEnteredSelected:     opts.StyleEnteredSelected,
		activation:               opts.Activation,
		deactivation:             opts.Deactivation,
	}
	if t.activation == nil {
		t.activation = DefaultActivation
	}
	if t.deactivation == nil {
		t.deactivation = DefaultDeactivation
	}
	if err := t.validate("NewTextBox"); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TextBox) base() *Element { return &t.Element }

// Placeholder returns the text shown while idle and empty
func (t *TextBox) Placeholder() string {
	return t.placeholder
}

// Entered returns the typed text
func (t *TextBox) Entered() string {
	return t.entered
}

// SetEntered replaces the typed text
func (t *TextBox) SetEntered(s string) {
	t.entered = s
}

func (t *TextBox) showingEntered() bool {
	return t.entered != "" || t.State == StateActive
}

// Displayed returns the content a render shows
func (t *TextBox) Displayed() string {
	if t.showingEntered() {
		return t.entered
	}
	return t.placeholder
}

// Style returns the style set for the current state and shown content
func (t *TextBox) Style() *StyleSet {
	focused := t.State == StateSelected || t.State == StateActive
	switch {
	case t.showingEntered() && focused:
		return t.styleEnteredSelected
	case t.showingEntered():
		return t.styleEntered
	case focused:
		return t.stylePlaceholderSelected
	}
	return t.stylePlaceholder
}

// Render composes the displayed content into the cached string
func (t *TextBox) Render() error {
	return t.renderAs(t.Align)
}

func (t *TextBox) renderAs(align Align) error {
	return t.compose("TextBox.Render", align, t.Style(), t.Displayed())
}

// RegisterKeystroke applies one key to the state machine
// Selected + activation key enters Active, Active + deactivation key returns to Selected,
// while Active backspace drops the last character and printable runes append
func (t *TextBox) RegisterKeystroke(ev terminal.Event) error {
	if ev.Type != terminal.EventKey || ev.Key == terminal.KeyNone {
		return fault.Newf(fault.InvalidArgument, "TextBox.RegisterKeystroke", "event %v", ev)
	}

	switch t.State {
	case StateSelected:
		if t.activation(ev) {
			t.State = StateActive
		}
		return nil
	case StateActive:
	default:
		return nil
	}

	if t.deactivation(ev) {
		t.State = StateSelected
		return nil
	}

	switch ev.Key {
	case terminal.KeyBackspace:
		t.entered = TrimLastGrapheme(t.entered)
	case terminal.KeySpace:
		t.entered += " "
	case terminal.KeyRune:
		if ev.Modifiers&(terminal.ModAlt|terminal.ModCtrl) == 0 && unicode.IsPrint(ev.Rune) {
			t.entered += string(ev.Rune)
		}
	}
	return nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

// State is an element state; values are bit flags so a mask can declare supported states
type State uint8

const (
	StateNormal State = 1 << iota
	StateSelected
	StateActive
	StateDisabled
)

// Has reports whether mask s includes every flag in x
func (s State) Has(x State) bool {
	return x != 0 && s&x == x
}

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateSelected:
		return "selected"
	case StateActive:
		return "active"
	case StateDisabled:
		return "disabled"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Align places content within an element, or elements within a view
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	// AlignWidth stretches to the columns available; only a container can resolve it
	AlignWidth
)

var alignNames = [...]string{"left", "center", "right", "width"}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "unknown"
}

// ParseAlign resolves "left", "center", "right" or "width"
func ParseAlign(name string) (Align, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range alignNames {
		if n == name {
			return Align(i), nil
		}
	}
	return AlignLeft, fault.Newf(fault.InvalidArgument, "tui.ParseAlign", "unknown alignment %q", name)
}

// maxRenderBytes caps a single rendered string
const maxRenderBytes = 1 << 20

// Element is the shared part of every widget
// Width is the minimum display width including padding
// Style fields are per state, a nil style renders without prefix and reset suffix
type Element struct {
	ID        int
	Supported State
	State     State
	Align     Align
	Padding   int
	Width     int

	StyleNormal   *StyleSet
	StyleSelected *StyleSet
	StyleActive   *StyleSet
	StyleDisabled *StyleSet

	Content string

	rendered string
	lead     int
	trail    int
}

// Style returns the style set configured for the current state
func (e *Element) Style() *StyleSet {
	switch e.State {
	case StateSelected:
		return e.StyleSelected
	case StateActive:
		return e.StyleActive
	case StateDisabled:
		return e.StyleDisabled
	}
	return e.StyleNormal
}

// Render composes the element into its cached display string
// On failure the previous cache is left in place
func (e *Element) Render() error {
	return e.renderAs(e.Align)
}

func (e *Element) renderAs(align Align) error {
	return e.compose("Element.Render", align, e.Style(), e.Content)
}

// compose builds and caches the styled string for content
func (e *Element) compose(op string, align Align, style *StyleSet, content string) error {
	s, lead, trail, err := composeString(op, align, style, content, e.Padding, e.Width)
	if err != nil {
		return err
	}
	e.rendered, e.lead, e.trail = s, lead, trail
	return nil
}

// Rendered returns the cached string from the last successful render
func (e *Element) Rendered() string {
	return e.rendered
}

// EscapeBytes returns the leading and trailing escape byte counts of the cached string
func (e *Element) EscapeBytes() (lead, trail int) {
	return e.lead, e.trail
}

// RenderedWidth returns the display width of the cached string, escapes excluded
func (e *Element) RenderedWidth() int {
	return DisplayWidth(e.rendered[e.lead : len(e.rendered)-e.trail])
}

// --- Selection ---

func (e *Element) SelectionState() State {
	return e.State
}

func (e *Element) SetSelectionState(s State) {
	e.State = s
}

// CanSelect reports whether focus may land on the element
func (e *Element) CanSelect() bool {
	return e.Supported.Has(StateSelected) && e.State != StateDisabled
}

// validate checks the fields every constructor shares
func (e *Element) validate(op string) error {
	if e.State == 0 {
		e.State = StateNormal
	}
	if !e.Supported.Has(e.State) {
		return fault.Newf(fault.InvalidArgument, op, "state %v not supported", e.State)
	}
	if e.Padding < 0 || e.Width < 0 {
		return fault.Newf(fault.InvalidArgument, op, "padding %d width %d", e.Padding, e.Width)
	}
	if e.Align > AlignWidth {
		return fault.Newf(fault.InvalidArgument, op, "alignment %d", e.Align)
	}
	return nil
}

// composeString lays out [style][padding][content per alignment][fill][reset]
// Fill brings the visible width up to width; center puts the smaller half first
func composeString(op string, align Align, style *StyleSet, content string, padding, width int) (string, int, int, error) {
	if padding < 0 || width < 0 {
		return "", 0, 0, fault.Newf(fault.InvalidArgument, op, "padding %d width %d", padding, width)
	}
	if align == AlignWidth {
		return "", 0, 0, fault.New(fault.InvalidArgument, op, "width alignment must be resolved by a container")
	}
	if align > AlignWidth {
		return "", 0, 0, fault.Newf(fault.InvalidArgument, op, "alignment %d", align)
	}

	prefix := style.String()
	suffix := ""
	if style != nil {
		suffix = terminal.SGRReset
	}

	fill := width - DisplayWidth(content) - 2*padding
	if fill < 0 {
		fill = 0
	}

	size := len(prefix) + len(content) + 2*padding + fill + len(suffix)
	if size > maxRenderBytes || size < 0 {
		return "", 0, 0, fault.Newf(fault.NotEnoughMemory, op, "render of %d bytes", size)
	}

	var sb strings.Builder
	sb.Grow(size)
	sb.WriteString(prefix)
	switch align {
	case AlignLeft:
		sb.WriteString(spaces(padding))
		sb.WriteString(content)
		sb.WriteString(spaces(fill + padding))
	case AlignRight:
		sb.WriteString(spaces(fill + padding))
		sb.WriteString(content)
		sb.WriteString(spaces(padding))
	case AlignCenter:
		sb.WriteString(spaces(fill/2 + padding))
		sb.WriteString(content)
		sb.WriteString(spaces(fill - fill/2 + padding))
	}
	sb.WriteString(suffix)

	return sb.String(), len(prefix), len(suffix), nil
}

package tui

import (
	"io"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

// PageKind tags which view a Page wraps
type PageKind uint8

const (
	PageStack PageKind = iota
	PageDialog
)

func (k PageKind) String() string {
	if k == PageDialog {
		return "dialog"
	}
	return "stack"
}

// Page forwards render and selection calls to a stack or dialog view
type Page struct {
	kind   PageKind
	stack  *StackView
	dialog *DialogView
}

// NewStackPage wraps a stack view
func NewStackPage(v *StackView) (*Page, error) {
	if v == nil {
		return nil, fault.New(fault.InvalidArgument, "NewStackPage", "nil view")
	}
	return &Page{kind: PageStack, stack: v}, nil
}

// NewDialogPage wraps a dialog view
func NewDialogPage(d *DialogView) (*Page, error) {
	if d == nil {
		return nil, fault.New(fault.InvalidArgument, "NewDialogPage", "nil view")
	}
	return &Page{kind: PageDialog, dialog: d}, nil
}

func (p *Page) Kind() PageKind {
	return p.kind
}

// Stack returns the wrapped stack view, nil for dialog pages
func (p *Page) Stack() *StackView {
	return p.stack
}

// Dialog returns the wrapped dialog view, nil for stack pages
func (p *Page) Dialog() *DialogView {
	return p.dialog
}

func (p *Page) Render(w io.Writer) error {
	if p.kind == PageDialog {
		return p.dialog.Render(w)
	}
	return p.stack.Render(w)
}

func (p *Page) SelectNext() {
	if p.kind == PageDialog {
		p.dialog.SelectNext()
		return
	}
	p.stack.SelectNext()
}

func (p *Page) SelectPrevious() {
	if p.kind == PageDialog {
		p.dialog.SelectPrevious()
		return
	}
	p.stack.SelectPrevious()
}

func (p *Page) Selected() (int, bool) {
	if p.kind == PageDialog {
		return p.dialog.Selected()
	}
	return p.stack.Selected()
}

// RegisterKeystroke routes a key to the stack's focused text box
// Dialog pages have no text input and report InvalidArgument
func (p *Page) RegisterKeystroke(ev terminal.Event) error {
	if p.kind == PageDialog {
		return p.dialog.opts.Reporter.Record(fault.New(fault.InvalidArgument, "Page.RegisterKeystroke", "dialog page has no text input"))
	}
	return p.stack.RegisterKeystroke(ev)
}

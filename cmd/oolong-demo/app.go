package main

import (
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/oolong/audio"
	"github.com/lixenwraith/oolong/config"
	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
	"github.com/lixenwraith/oolong/terminal/tui"
)

// Element identifiers
const (
	idTitle = iota + 1
	idRed
	idGreen
	idBlue
	idName
	idQuit

	idCancel
	idConfirm
)

// highlights maps each colour button to the selection background it applies
var highlights = map[int]struct {
	name string
	bg   tui.StyleToken
}{
	idRed:   {"red", tui.BgRed},
	idGreen: {"green", tui.BgGreen},
	idBlue:  {"blue", tui.BgBlue},
}

const quitPrompt = "Are you sure you want to quit?"

// cuePlayer is the sound sink, *audio.CuePlayer in the program
type cuePlayer interface {
	Play(audio.Cue)
}

// app owns the two pages of the demo and routes keys between them
type app struct {
	out      io.Writer
	keys     *config.Bindings
	styles   *config.Styles
	reporter *fault.Reporter
	cues     cuePlayer

	title   *tui.Label
	buttons []*tui.Button
	name    *tui.TextBox

	menu   *tui.Page
	dialog *tui.Page
	page   *tui.Page
}

// newApp builds the menu and quit dialog on screen
func newApp(cfg *config.Config, screen tui.Screen, out io.Writer, r *fault.Reporter, cues cuePlayer) (*app, error) {
	keys, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	styles, err := cfg.Styles()
	if err != nil {
		return nil, err
	}
	a := &app{out: out, keys: keys, styles: styles, reporter: r, cues: cues}

	stackOpts, err := cfg.StackOptions(r)
	if err != nil {
		return nil, err
	}
	stack, err := tui.NewStackView(screen, stackOpts)
	if err != nil {
		return nil, err
	}

	a.title, err = tui.NewLabel(tui.LabelOptions{ID: idTitle, Align: tui.AlignCenter, Style: styles.Title, Text: "oolong"})
	if err != nil {
		return nil, err
	}
	if err := stack.Add(a.title); err != nil {
		return nil, err
	}

	for _, id := range []int{idRed, idGreen, idBlue, idQuit} {
		state := tui.StateNormal
		if id == idRed {
			state = tui.StateSelected
		}
		text := "Quit"
		if h, ok := highlights[id]; ok {
			text = "Highlight " + h.name
		}
		b, err := tui.NewButton(tui.ButtonOptions{
			ID:            id,
			State:         state,
			Align:         tui.AlignCenter,
			Style:         styles.Button,
			StyleSelected: styles.ButtonSelected,
			StyleDisabled: styles.ButtonDisabled,
			Text:          text,
		})
		if err != nil {
			return nil, err
		}
		a.buttons = append(a.buttons, b)

		// the name box sits between the colour buttons and Quit
		if id == idQuit {
			if err := a.addNameBox(stack); err != nil {
				return nil, err
			}
		}
		if err := stack.Add(b); err != nil {
			return nil, err
		}
	}

	dlg, err := tui.NewDialogView(screen, quitPrompt, cfg.DialogOptions(r))
	if err != nil {
		return nil, err
	}
	for _, b := range []*tui.DialogButton{
		{ID: idCancel, Text: "Cancel", State: tui.StateSelected, Style: styles.Button, StyleSelected: styles.ButtonSelected},
		{ID: idConfirm, Text: "Confirm", Style: styles.Button, StyleSelected: styles.ButtonSelected},
	} {
		if err := dlg.AddButton(b); err != nil {
			return nil, err
		}
	}

	if a.menu, err = tui.NewStackPage(stack); err != nil {
		return nil, err
	}
	if a.dialog, err = tui.NewDialogPage(dlg); err != nil {
		return nil, err
	}
	a.page = a.menu
	return a, nil
}

func (a *app) addNameBox(stack *tui.StackView) error {
	var err error
	a.name, err = tui.NewTextBox(tui.TextBoxOptions{
		ID:                       idName,
		Align:                    tui.AlignLeft,
		Placeholder:              "Type your name",
		StylePlaceholder:         a.styles.Placeholder,
		StylePlaceholderSelected: a.styles.PlaceholderSelected,
		StyleEntered:             a.styles.Entered,
		StyleEnteredSelected:     a.styles.EnteredSelected,
		Activation:               a.keys.Activate.Matches,
		Deactivation:             a.keys.Deactivate.Matches,
	})
	if err != nil {
		return err
	}
	return stack.Add(a.name)
}

// render repaints the current page
func (a *app) render() error {
	return a.page.Render(a.out)
}

// handle applies one event and reports whether the program should exit
func (a *app) handle(ev terminal.Event) (quit bool) {
	if ev.Type == terminal.EventResize {
		log.Printf("resize %dx%d", ev.Width, ev.Height)
		return false
	}
	if a.page == a.dialog {
		return a.handleDialog(ev)
	}
	a.handleMenu(ev)
	return false
}

func (a *app) handleDialog(ev terminal.Event) bool {
	if ev.Key == terminal.KeyEscape {
		a.page = a.menu
		return false
	}
	before, _ := a.page.Selected()
	id, chosen := a.dialog.Dialog().HandleKey(ev)
	if !chosen {
		if after, _ := a.page.Selected(); after != before {
			a.cues.Play(audio.CueMove)
		}
		return false
	}
	if id == idConfirm {
		log.Printf("quit confirmed")
		return true
	}
	a.cues.Play(audio.CueDeactivate)
	a.page = a.menu
	return false
}

func (a *app) handleMenu(ev terminal.Event) {
	stack := a.menu.Stack()

	// an active text box takes every key until it deactivates
	if stack.ActiveTextBox() != nil {
		if err := a.menu.RegisterKeystroke(ev); err != nil {
			a.cues.Play(audio.CueError)
			return
		}
		if stack.ActiveTextBox() == nil {
			a.cues.Play(audio.CueDeactivate)
			log.Printf("name entered: %q", a.name.Entered())
		}
		return
	}

	switch {
	case a.keys.Quit.Matches(ev):
		a.openDialog()
	case a.keys.Next.Matches(ev):
		a.menu.SelectNext()
		a.cues.Play(audio.CueMove)
	case a.keys.Previous.Matches(ev):
		a.menu.SelectPrevious()
		a.cues.Play(audio.CueMove)
	case a.keys.Activate.Matches(ev):
		a.activate(ev)
	}
}

// activate applies Enter to the selected element
func (a *app) activate(ev terminal.Event) {
	id, ok := a.menu.Selected()
	if !ok {
		return
	}
	switch id {
	case idName:
		if err := a.menu.RegisterKeystroke(ev); err == nil && a.menu.Stack().ActiveTextBox() != nil {
			a.cues.Play(audio.CueActivate)
		}
	case idQuit:
		a.openDialog()
	default:
		if h, ok := highlights[id]; ok {
			a.setHighlight(h.name, h.bg)
		}
	}
}

// setHighlight rebuilds the selected style of every button around bg
func (a *app) setHighlight(name string, bg tui.StyleToken) {
	style := tui.NewStyleSet(append(a.styles.ButtonSelected.Tokens(), bg)...)
	for _, b := range a.buttons {
		b.StyleSelected = style
	}
	a.title.Content = fmt.Sprintf("oolong (%s)", name)
	a.cues.Play(audio.CueActivate)
	log.Printf("highlight set to %s", name)
}

func (a *app) openDialog() {
	d := a.dialog.Dialog()
	for _, b := range d.Buttons() {
		b.State = tui.StateNormal
	}
	if b, err := d.Button(idCancel); err == nil {
		b.State = tui.StateSelected
	}
	a.page = a.dialog
	a.cues.Play(audio.CueActivate)
}

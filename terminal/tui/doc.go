// FILE: terminal/tui/doc.go
// Package tui renders stateful widgets onto a character terminal with ANSI styling.
//
// Core abstractions are Element (shared by Label, Button and TextBox) and two
// views: StackView lists widgets top to bottom under one alignment policy,
// DialogView shows word-wrapped text above a row of buttons. Page dispatches
// to either view.
//
// Design principles:
//   - Full repaint: every Render clears the screen and writes one frame
//   - Display-width math: columns come from go-runewidth, escape bytes never count
//   - Caller-owned loop: views never read input, the app feeds keys in
//   - Explicit errors: every failure carries a fault.Kind, optionally recorded by a fault.Reporter
//
// Usage pattern:
//
//	view, _ := tui.NewStackView(term, tui.StackOptions{TopMargin: 1, SideMargin: 2, Align: tui.AlignCenter})
//	title, _ := tui.NewLabel(tui.LabelOptions{ID: 0, Text: "oolong"})
//	ok, _ := tui.NewButton(tui.ButtonOptions{ID: 1, State: tui.StateSelected, Text: "OK"})
//	view.Add(title)
//	view.Add(ok)
//
//	for {
//	    view.Render(term)
//	    ev, err := term.ReadKey()
//	    ...
//	    view.SelectNext()
//	}
package tui

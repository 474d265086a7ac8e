// Package config loads layout, key bindings and theme for oolong programs from TOML
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal/tui"
)

// Config is the decoded configuration file
type Config struct {
	Debug  bool         `toml:"debug"`
	Stack  StackConfig  `toml:"stack"`
	Dialog DialogConfig `toml:"dialog"`
	Keys   KeyConfig    `toml:"keys"`
	Theme  ThemeConfig  `toml:"theme"`
	Errors ErrorConfig  `toml:"errors"`
}

// StackConfig mirrors tui.StackOptions
type StackConfig struct {
	ElementWidth   int    `toml:"element_width"`
	ElementPadding int    `toml:"element_padding"`
	ElementGap     int    `toml:"element_gap"`
	TopMargin      int    `toml:"top_margin"`
	SideMargin     int    `toml:"side_margin"`
	Align          string `toml:"align"`
}

// DialogConfig mirrors tui.DialogOptions
type DialogConfig struct {
	ButtonGap     int `toml:"button_gap"`
	ButtonPadding int `toml:"button_padding"`
	TextButtonGap int `toml:"text_button_gap"`
	TopMargin     int `toml:"top_margin"`
	SideMargin    int `toml:"side_margin"`
}

// KeyConfig lists key names per action, either terminal key names or single characters
type KeyConfig struct {
	Next       []string `toml:"next"`
	Previous   []string `toml:"previous"`
	Activate   []string `toml:"activate"`
	Deactivate []string `toml:"deactivate"`
	Quit       []string `toml:"quit"`
}

// ThemeConfig lists style token names per role
type ThemeConfig struct {
	Title               []string `toml:"title"`
	Button              []string `toml:"button"`
	ButtonSelected      []string `toml:"button_selected"`
	ButtonDisabled      []string `toml:"button_disabled"`
	Placeholder         []string `toml:"placeholder"`
	PlaceholderSelected []string `toml:"placeholder_selected"`
	Entered             []string `toml:"entered"`
	EnteredSelected     []string `toml:"entered_selected"`
}

// ErrorConfig selects the fault reporter mode
type ErrorConfig struct {
	Mode string `toml:"mode"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Stack: StackConfig{
			ElementWidth:   24,
			ElementPadding: 1,
			ElementGap:     1,
			TopMargin:      1,
			SideMargin:     2,
			Align:          "center",
		},
		Dialog: DialogConfig{
			ButtonGap:     2,
			ButtonPadding: 1,
			TextButtonGap: 1,
			TopMargin:     1,
			SideMargin:    2,
		},
		Keys: KeyConfig{
			Next:       []string{"j", "down", "tab"},
			Previous:   []string{"k", "up", "backtab"},
			Activate:   []string{"enter"},
			Deactivate: []string{"enter", "escape"},
			Quit:       []string{"q", "ctrl_c"},
		},
		Theme: ThemeConfig{
			Title:               []string{"bold", "underline"},
			Button:              []string{"white"},
			ButtonSelected:      []string{"bold", "black", "bg_cyan"},
			ButtonDisabled:      []string{"black"},
			Placeholder:         []string{"italic", "black"},
			PlaceholderSelected: []string{"italic", "bg_blue"},
			Entered:             []string{"white"},
			EnteredSelected:     []string{"bold", "bg_blue"},
		},
		Errors: ErrorConfig{Mode: "accumulate"},
	}
}

// Load decodes path over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Wrap(fault.IOReadFailure, "config.Load", err)
	}
	if err := Decode(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data on cfg and validates it
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fault.Wrap(fault.InvalidArgument, "config.Decode", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fault.Newf(fault.InvalidArgument, "config.Decode", "unknown key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks every field that the option and binding builders would reject
func (c *Config) Validate() error {
	const op = "config.Validate"

	margins := []struct {
		name  string
		value int
	}{
		{"stack.element_width", c.Stack.ElementWidth},
		{"stack.element_padding", c.Stack.ElementPadding},
		{"stack.element_gap", c.Stack.ElementGap},
		{"stack.top_margin", c.Stack.TopMargin},
		{"stack.side_margin", c.Stack.SideMargin},
		{"dialog.button_gap", c.Dialog.ButtonGap},
		{"dialog.button_padding", c.Dialog.ButtonPadding},
		{"dialog.text_button_gap", c.Dialog.TextButtonGap},
		{"dialog.top_margin", c.Dialog.TopMargin},
		{"dialog.side_margin", c.Dialog.SideMargin},
	}
	for _, m := range margins {
		if m.value < 0 {
			return fault.Newf(fault.InvalidArgument, op, "%s is negative: %d", m.name, m.value)
		}
	}

	if _, err := tui.ParseAlign(c.Stack.Align); err != nil {
		return err
	}
	if _, err := fault.ParseMode(c.Errors.Mode); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	if _, err := c.Styles(); err != nil {
		return err
	}
	return nil
}

// --- Builders ---

// StackOptions converts the stack section, attaching r as the view's reporter
func (c *Config) StackOptions(r *fault.Reporter) (tui.StackOptions, error) {
	align, err := tui.ParseAlign(c.Stack.Align)
	if err != nil {
		return tui.StackOptions{}, err
	}
	return tui.StackOptions{
		ElementWidth:   c.Stack.ElementWidth,
		ElementPadding: c.Stack.ElementPadding,
		ElementGap:     c.Stack.ElementGap,
		TopMargin:      c.Stack.TopMargin,
		SideMargin:     c.Stack.SideMargin,
		Align:          align,
		Reporter:       r,
	}, nil
}

// DialogOptions converts the dialog section
func (c *Config) DialogOptions(r *fault.Reporter) tui.DialogOptions {
	return tui.DialogOptions{
		ButtonGap:     c.Dialog.ButtonGap,
		ButtonPadding: c.Dialog.ButtonPadding,
		TextButtonGap: c.Dialog.TextButtonGap,
		TopMargin:     c.Dialog.TopMargin,
		SideMargin:    c.Dialog.SideMargin,
		Reporter:      r,
	}
}

// Reporter creates a reporter in the configured mode
func (c *Config) Reporter() (*fault.Reporter, error) {
	mode, err := fault.ParseMode(c.Errors.Mode)
	if err != nil {
		return nil, err
	}
	return fault.NewReporter(mode), nil
}

// Styles holds the compiled theme
type Styles struct {
	Title               *tui.StyleSet
	Button              *tui.StyleSet
	ButtonSelected      *tui.StyleSet
	ButtonDisabled      *tui.StyleSet
	Placeholder         *tui.StyleSet
	PlaceholderSelected *tui.StyleSet
	Entered             *tui.StyleSet
	EnteredSelected     *tui.StyleSet
}

// Styles compiles the theme section
func (c *Config) Styles() (*Styles, error) {
	t := c.Theme
	s := &Styles{}
	for _, f := range []struct {
		dst   **tui.StyleSet
		names []string
	}{
		{&s.Title, t.Title},
		{&s.Button, t.Button},
		{&s.ButtonSelected, t.ButtonSelected},
		{&s.ButtonDisabled, t.ButtonDisabled},
		{&s.Placeholder, t.Placeholder},
		{&s.PlaceholderSelected, t.PlaceholderSelected},
		{&s.Entered, t.Entered},
		{&s.EnteredSelected, t.EnteredSelected},
	} {
		set, err := tui.ParseStyleSet(f.names)
		if err != nil {
			return nil, err
		}
		*f.dst = set
	}
	return s, nil
}

package config

import (
	"slices"
	"unicode/utf8"

	"github.com/lixenwraith/oolong/fault"
	"github.com/lixenwraith/oolong/terminal"
)

// Binding matches either a named key or a single unmodified character
type Binding struct {
	Key  terminal.Key
	Rune rune
}

// Matches reports whether ev is this binding's keystroke
func (b Binding) Matches(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	if b.Key == terminal.KeySpace && ev.Key == terminal.KeyRune && ev.Rune == ' ' {
		return true
	}
	if ev.Key != b.Key {
		return false
	}
	if b.Key == terminal.KeyRune {
		return ev.Rune == b.Rune && ev.Modifiers&(terminal.ModAlt|terminal.ModCtrl) == 0
	}
	return true
}

// ParseBinding resolves a terminal key name, falling back to a single character
func ParseBinding(name string) (Binding, error) {
	if k, ok := terminal.KeyByName(name); ok {
		return Binding{Key: k}, nil
	}
	if r, size := utf8.DecodeRuneInString(name); r != utf8.RuneError && size == len(name) {
		if r == ' ' {
			return Binding{Key: terminal.KeySpace}, nil
		}
		return Binding{Key: terminal.KeyRune, Rune: r}, nil
	}
	return Binding{}, fault.Newf(fault.InvalidArgument, "config.ParseBinding", "unknown key %q", name)
}

// KeySet is the bindings of one action
type KeySet []Binding

// Matches reports whether any binding matches ev
func (ks KeySet) Matches(ev terminal.Event) bool {
	return slices.ContainsFunc(ks, func(b Binding) bool { return b.Matches(ev) })
}

// Bindings holds the resolved key section
type Bindings struct {
	Next       KeySet
	Previous   KeySet
	Activate   KeySet
	Deactivate KeySet
	Quit       KeySet
}

// Bindings resolves the key section
func (c *Config) Bindings() (*Bindings, error) {
	k := c.Keys
	b := &Bindings{}
	for _, f := range []struct {
		dst   *KeySet
		names []string
	}{
		{&b.Next, k.Next},
		{&b.Previous, k.Previous},
		{&b.Activate, k.Activate},
		{&b.Deactivate, k.Deactivate},
		{&b.Quit, k.Quit},
	} {
		set := make(KeySet, 0, len(f.names))
		for _, name := range f.names {
			bind, err := ParseBinding(name)
			if err != nil {
				return nil, err
			}
			set = append(set, bind)
		}
		*f.dst = set
	}
	return b, nil
}

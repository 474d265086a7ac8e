package tui

import (
	"strings"

	"github.com/lixenwraith/oolong/fault"
)

// StyleToken is one SGR terminal attribute
type StyleToken uint8

const (
	StyleClear StyleToken = iota
	StyleBold
	StyleItalic
	StyleUnderline

	FgBlack
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgPurple
	FgCyan
	FgWhite

	BgBlack
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgPurple
	BgCyan
	BgWhite

	styleTokenCount
)

// styleEscapes is indexed by StyleToken
var styleEscapes = [styleTokenCount]string{
	StyleClear:     "\x1b[0m",
	StyleBold:      "\x1b[1m",
	StyleItalic:    "\x1b[3m",
	StyleUnderline: "\x1b[4m",

	FgBlack:  "\x1b[30m",
	FgRed:    "\x1b[31m",
	FgGreen:  "\x1b[32m",
	FgYellow: "\x1b[33m",
	FgBlue:   "\x1b[34m",
	FgPurple: "\x1b[35m",
	FgCyan:   "\x1b[36m",
	FgWhite:  "\x1b[37m",

	BgBlack:  "\x1b[40m",
	BgRed:    "\x1b[41m",
	BgGreen:  "\x1b[42m",
	BgYellow: "\x1b[43m",
	BgBlue:   "\x1b[44m",
	BgPurple: "\x1b[45m",
	BgCyan:   "\x1b[46m",
	BgWhite:  "\x1b[47m",
}

// styleNames is indexed by StyleToken, used by config files
var styleNames = [styleTokenCount]string{
	"clear", "bold", "italic", "underline",
	"black", "red", "green", "yellow", "blue", "purple", "cyan", "white",
	"bg_black", "bg_red", "bg_green", "bg_yellow", "bg_blue", "bg_purple", "bg_cyan", "bg_white",
}

func (t StyleToken) valid() bool {
	return t < styleTokenCount
}

// Escape returns the token's SGR sequence, empty for unknown tokens
func (t StyleToken) Escape() string {
	if !t.valid() {
		return ""
	}
	return styleEscapes[t]
}

func (t StyleToken) String() string {
	if !t.valid() {
		return "unknown"
	}
	return styleNames[t]
}

// ParseStyleToken resolves a config name such as "bold" or "bg_blue"
func ParseStyleToken(name string) (StyleToken, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return StyleToken(i), nil
		}
	}
	return 0, fault.Newf(fault.InvalidArgument, "tui.ParseStyleToken", "unknown style %q", name)
}

// StyleSet is an ordered, append-only token list compiled to escape sequences
// Adding StyleClear discards every earlier token
// A nil *StyleSet is valid and compiles to the empty string
type StyleSet struct {
	tokens   []StyleToken
	compiled strings.Builder
}

// NewStyleSet creates a style set from tokens in order, unknown tokens are skipped
func NewStyleSet(tokens ...StyleToken) *StyleSet {
	s := &StyleSet{}
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// ParseStyleSet builds a style set from config names
func ParseStyleSet(names []string) (*StyleSet, error) {
	s := &StyleSet{}
	for _, n := range names {
		t, err := ParseStyleToken(n)
		if err != nil {
			return nil, err
		}
		s.Add(t)
	}
	return s, nil
}

// Add appends a token; duplicates and contradictions concatenate as the terminal resolves them
func (s *StyleSet) Add(t StyleToken) error {
	if s == nil || !t.valid() {
		return fault.Newf(fault.InvalidArgument, "StyleSet.Add", "token %d", uint8(t))
	}
	if t == StyleClear {
		s.tokens = s.tokens[:0]
		s.compiled.Reset()
		return nil
	}
	s.tokens = append(s.tokens, t)
	s.compiled.WriteString(styleEscapes[t])
	return nil
}

// String returns the compiled escape sequence
func (s *StyleSet) String() string {
	if s == nil {
		return ""
	}
	return s.compiled.String()
}

// Tokens returns a copy of the tokens since the last clear
func (s *StyleSet) Tokens() []StyleToken {
	if s == nil {
		return nil
	}
	return append([]StyleToken(nil), s.tokens...)
}

// Len returns the compiled length in bytes
func (s *StyleSet) Len() int {
	if s == nil {
		return 0
	}
	return s.compiled.Len()
}

package terminal

import "strconv"

// namedKeys lists config names per key; the first name is canonical, the rest are aliases
// F-keys and ctrl letters are appended in init
var namedKeys = []struct {
	key   Key
	names []string
}{
	{KeyEscape, []string{"escape", "esc"}},
	{KeyEnter, []string{"enter", "return"}},
	{KeyTab, []string{"tab"}},
	{KeyBacktab, []string{"backtab", "shift_tab"}},
	{KeyBackspace, []string{"backspace"}},
	{KeyDelete, []string{"delete", "del"}},
	{KeySpace, []string{"space"}},
	{KeyInsert, []string{"insert", "ins"}},

	{KeyUp, []string{"up"}},
	{KeyDown, []string{"down"}},
	{KeyLeft, []string{"left"}},
	{KeyRight, []string{"right"}},
	{KeyHome, []string{"home"}},
	{KeyEnd, []string{"end"}},
	{KeyPageUp, []string{"page_up", "pgup"}},
	{KeyPageDown, []string{"page_down", "pgdn"}},

	{KeyCtrlSpace, []string{"ctrl_space"}},
	{KeyCtrlBackslash, []string{"ctrl_backslash"}},
	{KeyCtrlBracketLeft, []string{"ctrl_bracket_left"}},
	{KeyCtrlBracketRight, []string{"ctrl_bracket_right"}},
	{KeyCtrlCaret, []string{"ctrl_caret"}},
	{KeyCtrlUnderscore, []string{"ctrl_underscore"}},
}

var (
	canonicalName = make(map[Key]string)
	keysByName    = make(map[string]Key)
)

func init() {
	for i := range 12 {
		canonicalName[KeyF1+Key(i)] = "f" + strconv.Itoa(i+1)
	}
	for i := range 26 {
		canonicalName[KeyCtrlA+Key(i)] = "ctrl_" + string(rune('a'+i))
	}
	for k, name := range canonicalName {
		keysByName[name] = k
	}

	for _, nk := range namedKeys {
		canonicalName[nk.key] = nk.names[0]
		for _, name := range nk.names {
			keysByName[name] = nk.key
		}
	}
}

// KeyName returns the canonical config name of k, empty for KeyNone and KeyRune
func KeyName(k Key) string {
	return canonicalName[k]
}

// KeyByName resolves a canonical name or alias
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

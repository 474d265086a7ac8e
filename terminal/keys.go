// @focus: #sys { io } #input { keys }
package terminal

// Key represents a parsed input key
type Key uint16

// Key constants - designed for expansion
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete
	KeySpace

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, contiguous so KeyCtrlA+n is Ctrl+(A+n)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH // Often same as Backspace
	KeyCtrlI // Often same as Tab
	KeyCtrlJ // Often same as Enter
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM // Often same as Enter
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketLeft
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
// Values match the xterm modifier parameter minus one (ESC [ 1 ; 1+mod X)
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// --- Sequence tables ---

// csiLetterKeys maps CSI final bytes to keys: ESC [ X or ESC [ 1 ; mod X
var csiLetterKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// csiTildeKeys maps the numeric parameter of ESC [ N ~ or ESC [ N ; mod ~
var csiTildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// linuxConsoleKeys maps ESC [ [ X (linux console F1-F5)
var linuxConsoleKeys = map[byte]Key{
	'A': KeyF1,
	'B': KeyF2,
	'C': KeyF3,
	'D': KeyF4,
	'E': KeyF5,
}

// ss3Keys maps ESC O X, keypad application mode yields the keypad's rune
var ss3Keys = map[byte]Event{
	'A': {Type: EventKey, Key: KeyUp},
	'B': {Type: EventKey, Key: KeyDown},
	'C': {Type: EventKey, Key: KeyRight},
	'D': {Type: EventKey, Key: KeyLeft},
	'H': {Type: EventKey, Key: KeyHome},
	'F': {Type: EventKey, Key: KeyEnd},
	'P': {Type: EventKey, Key: KeyF1},
	'Q': {Type: EventKey, Key: KeyF2},
	'R': {Type: EventKey, Key: KeyF3},
	'S': {Type: EventKey, Key: KeyF4},
	'M': {Type: EventKey, Key: KeyEnter},
}

// ss3Keypad lists keypad runes in SS3 final-byte order starting at 'j'
const ss3Keypad = "*+,-./0123456789"

func init() {
	for i, r := range ss3Keypad {
		ss3Keys[byte('j'+i)] = Event{Type: EventKey, Key: KeyRune, Rune: r}
	}
	ss3Keys['X'] = Event{Type: EventKey, Key: KeyRune, Rune: '='}
}

// xtermModifier converts the xterm modifier parameter (1 = none) to flags
func xtermModifier(param int) Modifier {
	if param < 2 || param > 8 {
		return ModNone
	}
	return Modifier(param - 1)
}

// controlKey maps C0 control bytes to keys
func controlKey(b byte) Key {
	switch {
	case b == 0x00:
		return KeyCtrlSpace
	case b == 0x08:
		return KeyBackspace
	case b == 0x09:
		return KeyTab
	case b == 0x0a, b == 0x0d:
		return KeyEnter
	case b == 0x1b:
		return KeyEscape
	case b >= 0x01 && b <= 0x1a:
		return KeyCtrlA + Key(b-0x01)
	case b == 0x1c:
		return KeyCtrlBackslash
	case b == 0x1d:
		return KeyCtrlBracketRight
	case b == 0x1e:
		return KeyCtrlCaret
	case b == 0x1f:
		return KeyCtrlUnderscore
	}
	return KeyNone
}

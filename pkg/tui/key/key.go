// ABOUTME: Key models one decoded keypress; IsCancel recognises the reveal exit keys
// ABOUTME: ParseKey maps a complete byte sequence (rune, control byte, or escape) to a Key

package key

import (
	"unicode/utf8"
)

// Key is a decoded keypress.
type Key struct {
	Type KeyType
	Rune rune // For KeyRune
	Alt  bool
	Ctrl bool
}

// KeyType enumerates the key classes a reveal can observe.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlD                    // Ctrl+D
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyPageUp                   // Page Up
	KeyPageDown                 // Page Down
	KeyDelete                   // Delete
	KeyUnknown                  // Unrecognised input
)

// IsCancel reports whether k ends a reveal: Escape, q, Enter, or Ctrl+C.
func (k Key) IsCancel() bool {
	switch k.Type {
	case KeyEscape, KeyEnter, KeyCtrlC:
		return true
	case KeyRune:
		return k.Rune == 'q' && !k.Alt
	}
	return false
}

// ParseKey decodes one complete key sequence.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseSingleByte(b byte) Key {
	switch {
	case b == '\r' || b == '\n':
		return Key{Type: KeyEnter}
	case b == '\t':
		return Key{Type: KeyTab}
	case b == 0x7f || b == 0x08:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b == 0x03:
		return Key{Type: KeyCtrlC, Ctrl: true}
	case b == 0x04:
		return Key{Type: KeyCtrlD, Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}
	// Alt+letter: ESC followed by one printable byte.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: KeyUnknown}
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Delete",
}

// String returns a short label for debug logging.
func (k Key) String() string {
	if k.Type == KeyRune {
		if k.Alt {
			return "Alt+" + string(k.Rune)
		}
		return string(k.Rune)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

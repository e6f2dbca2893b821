// ABOUTME: Table-driven tests for ParseKey, IsCancel, and the Next/Flush buffer decoder
// ABOUTME: Covers runes, control bytes, navigation sequences, and partial input

package key

import "testing"

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		{name: "lowercase a", data: "a", want: Key{Type: KeyRune, Rune: 'a'}},
		{name: "q", data: "q", want: Key{Type: KeyRune, Rune: 'q'}},
		{name: "uppercase Q", data: "Q", want: Key{Type: KeyRune, Rune: 'Q'}},
		{name: "space", data: " ", want: Key{Type: KeyRune, Rune: ' '}},
		{name: "multibyte rune", data: "é", want: Key{Type: KeyRune, Rune: 'é'}},

		{name: "ctrl+c", data: "\x03", want: Key{Type: KeyCtrlC, Ctrl: true}},
		{name: "ctrl+d", data: "\x04", want: Key{Type: KeyCtrlD, Ctrl: true}},
		{name: "enter cr", data: "\r", want: Key{Type: KeyEnter}},
		{name: "enter lf", data: "\n", want: Key{Type: KeyEnter}},
		{name: "tab", data: "\t", want: Key{Type: KeyTab}},
		{name: "backspace", data: "\x7f", want: Key{Type: KeyBackspace}},
		{name: "escape", data: "\x1b", want: Key{Type: KeyEscape}},

		{name: "arrow up", data: "\x1b[A", want: Key{Type: KeyUp}},
		{name: "arrow left", data: "\x1b[D", want: Key{Type: KeyLeft}},
		{name: "ss3 down", data: "\x1bOB", want: Key{Type: KeyDown}},
		{name: "page down", data: "\x1b[6~", want: Key{Type: KeyPageDown}},
		{name: "alt+x", data: "\x1bx", want: Key{Type: KeyRune, Rune: 'x', Alt: true}},

		{name: "empty", data: "", want: Key{Type: KeyUnknown}},
		{name: "unknown ctrl", data: "\x01", want: Key{Type: KeyUnknown}},
		{name: "unknown sequence", data: "\x1b[99X", want: Key{Type: KeyUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseKey(tt.data)
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestKey_IsCancel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want bool
	}{
		{name: "escape", key: Key{Type: KeyEscape}, want: true},
		{name: "enter", key: Key{Type: KeyEnter}, want: true},
		{name: "ctrl+c", key: Key{Type: KeyCtrlC, Ctrl: true}, want: true},
		{name: "q", key: Key{Type: KeyRune, Rune: 'q'}, want: true},
		{name: "Q", key: Key{Type: KeyRune, Rune: 'Q'}, want: false},
		{name: "alt+q", key: Key{Type: KeyRune, Rune: 'q', Alt: true}, want: false},
		{name: "space", key: Key{Type: KeyRune, Rune: ' '}, want: false},
		{name: "arrow", key: Key{Type: KeyUp}, want: false},
		{name: "ctrl+d", key: Key{Type: KeyCtrlD, Ctrl: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.IsCancel(); got != tt.want {
				t.Errorf("%v.IsCancel() = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestKey_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  Key
		want string
	}{
		{key: Key{Type: KeyRune, Rune: 'q'}, want: "q"},
		{key: Key{Type: KeyRune, Rune: 'x', Alt: true}, want: "Alt+x"},
		{key: Key{Type: KeyCtrlC, Ctrl: true}, want: "Ctrl+C"},
		{key: Key{Type: KeyEscape}, want: "Escape"},
		{key: Key{Type: KeyUnknown}, want: "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		buf      string
		consumed int
		key      Key
		wait     bool
	}{
		{name: "empty", buf: "", consumed: 0},
		{name: "rune then more", buf: "qz", consumed: 1, key: Key{Type: KeyRune, Rune: 'q'}},
		{name: "lone escape waits", buf: "\x1b", wait: true},
		{name: "partial csi waits", buf: "\x1b[", wait: true},
		{name: "partial ss3 waits", buf: "\x1bO", wait: true},
		{name: "arrow", buf: "\x1b[Aq", consumed: 3, key: Key{Type: KeyUp}},
		{name: "double escape", buf: "\x1b\x1b", consumed: 1, key: Key{Type: KeyEscape}},
		{name: "unknown csi swallowed", buf: "\x1b[12;5Xq", consumed: 7, key: Key{Type: KeyUnknown}},
		{name: "partial utf8 waits", buf: "\xc3", wait: true},
		{name: "utf8 rune", buf: "\xc3\xa9", consumed: 2, key: Key{Type: KeyRune, Rune: 'é'}},
		{name: "invalid utf8", buf: "\xff", consumed: 1, key: Key{Type: KeyUnknown}},
		{name: "enter", buf: "\r", consumed: 1, key: Key{Type: KeyEnter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, k, wait := Next([]byte(tt.buf))
			if n != tt.consumed || k != tt.key || wait != tt.wait {
				t.Errorf("Next(%q) = (%d, %+v, %v), want (%d, %+v, %v)",
					tt.buf, n, k, wait, tt.consumed, tt.key, tt.wait)
			}
		})
	}
}

func TestFlush(t *testing.T) {
	t.Parallel()

	if n, k := Flush([]byte("\x1b")); n != 1 || k.Type != KeyEscape {
		t.Errorf("Flush(ESC) = (%d, %v), want (1, Escape)", n, k)
	}
	if n, k := Flush([]byte("\x1b[")); n != 1 || k.Type != KeyEscape {
		t.Errorf("Flush(ESC [) = (%d, %v), want (1, Escape)", n, k)
	}
	if n, k := Flush([]byte("\xc3")); n != 1 || k.Type != KeyUnknown {
		t.Errorf("Flush(partial rune) = (%d, %v), want (1, Unknown)", n, k)
	}
	if n, k := Flush([]byte("q")); n != 1 || k.Rune != 'q' {
		t.Errorf("Flush(q) = (%d, %v), want (1, q)", n, k)
	}
	if n, _ := Flush(nil); n != 0 {
		t.Errorf("Flush(nil) consumed %d, want 0", n)
	}
}

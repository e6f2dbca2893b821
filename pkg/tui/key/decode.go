// ABOUTME: Next splits the front of a raw input buffer into one Key
// ABOUTME: Reports when more bytes are needed (lone ESC, partial CSI, partial UTF-8)

package key

import "unicode/utf8"

const maxSequenceLen = 8

// Next decodes the first key in buf. It returns the number of bytes consumed
// and the key, or wait=true when buf holds only the start of a sequence.
// A caller that waited and got nothing more should call Flush.
func Next(buf []byte) (consumed int, k Key, wait bool) {
	if len(buf) == 0 {
		return 0, Key{}, false
	}

	if buf[0] == 0x1b {
		if len(buf) == 1 {
			return 0, Key{}, true
		}
		return nextEscape(buf)
	}

	if !utf8.FullRune(buf) {
		if len(buf) < utf8.UTFMax {
			return 0, Key{}, true
		}
		return 1, Key{Type: KeyUnknown}, false
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return 1, Key{Type: KeyUnknown}, false
	}
	return size, ParseKey(string(buf[:size])), false
}

// Flush decodes buf without waiting for more input: a pending lone ESC
// becomes Escape and any other partial sequence is consumed as unknown.
func Flush(buf []byte) (consumed int, k Key) {
	if len(buf) == 0 {
		return 0, Key{}
	}
	n, k, wait := Next(buf)
	if !wait {
		return n, k
	}
	if buf[0] == 0x1b {
		return 1, Key{Type: KeyEscape}
	}
	return len(buf), Key{Type: KeyUnknown}
}

// nextEscape handles buf[0] == ESC with at least one more byte.
func nextEscape(buf []byte) (int, Key, bool) {
	if buf[1] != '[' && buf[1] != 'O' {
		if k := ParseKey(string(buf[:2])); k.Type != KeyUnknown {
			return 2, k, false
		}
		return 1, Key{Type: KeyEscape}, false
	}

	for end := min(len(buf), maxSequenceLen); end >= 3; end-- {
		if k, ok := legacySequences[string(buf[:end])]; ok {
			return end, k, false
		}
	}

	if buf[1] == 'O' {
		if len(buf) < 3 {
			return 0, Key{}, true
		}
		return 3, Key{Type: KeyUnknown}, false
	}

	// Unknown CSI: swallow through its final byte so the tail is not read as keys.
	for i := 2; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i + 1, Key{Type: KeyUnknown}, false
		}
	}
	return 0, Key{}, true
}

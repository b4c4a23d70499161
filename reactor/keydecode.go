package reactor

// decodeKeyBytes splits a chunk of raw stdin bytes into key events and
// invokes emit with one EventKey Event per recognized key, the mirror image
// of the teacher's keyToBytesMap (cli/input.go), which goes the other
// direction (key name -> bytes for a PTY). No external key-decoder
// dependency is resolvable in the pack (see SPEC_FULL.md §14), so the table
// is reimplemented directly here, the way the teacher owns its own table.
func decodeKeyBytes(b []byte, emit func(Event)) {
	for len(b) > 0 {
		name, n := decodeOneKey(b)
		consumed := b[:n]
		emit(Event{Kind: EventKey, Key: name, Bytes: append([]byte(nil), consumed...)})
		b = b[n:]
	}
}

// escSequences maps a CSI/SS3 byte sequence (including the leading ESC) to
// its key name, longest-sequence-first within each prefix so ambiguous
// prefixes resolve to the longer match.
var escSequences = map[string]string{
	"\x1b[A": "Up", "\x1b[B": "Down", "\x1b[C": "Right", "\x1b[D": "Left",
	"\x1b[H": "Home", "\x1b[F": "End",
	"\x1b[2~": "Insert", "\x1b[3~": "Delete",
	"\x1b[5~": "PageUp", "\x1b[6~": "PageDown",
	"\x1bOP": "F1", "\x1bOQ": "F2", "\x1bOR": "F3", "\x1bOS": "F4",
	"\x1b[15~": "F5", "\x1b[17~": "F6", "\x1b[18~": "F7", "\x1b[19~": "F8",
	"\x1b[20~": "F9", "\x1b[21~": "F10", "\x1b[23~": "F11", "\x1b[24~": "F12",
}

func decodeOneKey(b []byte) (name string, n int) {
	if b[0] == 0x1b {
		maxLen := len(b)
		if maxLen > 6 {
			maxLen = 6
		}
		for length := maxLen; length >= 2; length-- {
			if key, ok := escSequences[string(b[:length])]; ok {
				return key, length
			}
		}
		if len(b) >= 2 {
			// Alt+key: ESC followed by a single printable byte.
			return "M-" + string(b[1]), 2
		}
		return "Escape", 1
	}

	switch b[0] {
	case 13:
		return "Enter", 1
	case 9:
		return "Tab", 1
	case 127:
		return "Backspace", 1
	case 0:
		return "^@", 1
	}
	if b[0] >= 1 && b[0] <= 26 {
		return "^" + string(b[0]+'A'-1), 1
	}

	r, size := decodeUTF8Rune(b)
	return string(r), size
}

func decodeUTF8Rune(b []byte) (rune, int) {
	c := b[0]
	switch {
	case c < 0x80:
		return rune(c), 1
	case c&0xE0 == 0xC0 && len(b) >= 2:
		return (rune(c&0x1F) << 6) | rune(b[1]&0x3F), 2
	case c&0xF0 == 0xE0 && len(b) >= 3:
		return (rune(c&0x0F) << 12) | (rune(b[1]&0x3F) << 6) | rune(b[2]&0x3F), 3
	case c&0xF8 == 0xF0 && len(b) >= 4:
		return (rune(c&0x07) << 18) | (rune(b[1]&0x3F) << 12) | (rune(b[2]&0x3F) << 6) | rune(b[3]&0x3F), 4
	default:
		return rune(c), 1
	}
}

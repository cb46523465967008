package terminal

import "unicode/utf8"

const (
	keyEsc = 0x1b
	keyCR  = '\r'
	keyLF  = '\n'
	keyDEL = 0x7f
)

// DecodeKeys splits a raw byte stream into key names using the bubbletea
// vocabulary. A trailing lone ESC is reported as "esc". Unrecognised escape
// sequences are swallowed.
func DecodeKeys(data []byte) []string {
	var out []string
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b == keyEsc:
			name, n := decodeEscape(data[i:])
			if name != "" {
				out = append(out, name)
			}
			i += n
		case b == keyCR || b == keyLF:
			out = append(out, "enter")
			i++
		case b == '\t':
			out = append(out, "tab")
			i++
		case b == keyDEL || b == 0x08:
			out = append(out, "backspace")
			i++
		case b < 0x20:
			out = append(out, "ctrl+"+string(rune('a'+b-1)))
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				i++
				continue
			}
			if r == ' ' {
				out = append(out, "space")
			} else {
				out = append(out, string(r))
			}
			i += size
		}
	}
	return out
}

// decodeEscape handles a sequence starting with ESC and returns the key name
// and bytes consumed.
func decodeEscape(data []byte) (string, int) {
	if len(data) == 1 {
		return "esc", 1
	}
	switch data[1] {
	case '[', 'O':
		end := 2
		for end < len(data) && (data[end] < 0x40 || data[end] > 0x7e) {
			end++
		}
		if end >= len(data) {
			return "", len(data)
		}
		return csiName(data[end]), end + 1
	case keyEsc:
		return "esc", 1
	default:
		return "esc", 1
	}
}

func csiName(final byte) string {
	switch final {
	case 'A':
		return "up"
	case 'B':
		return "down"
	case 'C':
		return "right"
	case 'D':
		return "left"
	case 'H':
		return "home"
	case 'F':
		return "end"
	default:
		return ""
	}
}

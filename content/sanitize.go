package content

import "strings"

// sanitizeText scrubs user-supplied card text before it reaches the
// terminal: ANSI escape sequences are stripped, tabs become spaces, and
// remaining control characters are dropped. Card decks are plain data and
// must never be able to reprogram the host terminal.
func sanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inEscape := false
	for _, r := range s {
		if inEscape {
			// CSI sequences terminate on a letter in @-~; bare escapes
			// consume exactly one following byte
			if (r >= '@' && r <= '~') && r != '[' {
				inEscape = false
			}
			continue
		}

		switch {
		case r == 0x1b:
			inEscape = true
		case r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// Drop control characters
		default:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

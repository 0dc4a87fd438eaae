package vaxyaml

import (
	"fmt"
	"strings"
)

// decodeScalar decodes the double-quoted literal starting at s[pos] and
// returns its value and the offset just past the closing quote. Only \n,
// \" and \\ are recognized.
func decodeScalar(s string, pos int) (string, int, error) {
	if pos >= len(s) || s[pos] != '"' {
		return "", pos, ErrExpectedQuote
	}
	var b strings.Builder
	i := pos + 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '"':
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", i, fmt.Errorf("%w: dangling escape", ErrUnterminatedString)
			}
			e := s[i+1]
			switch e {
			case 'n':
				b.WriteByte('\n')
			case '"', '\\':
				b.WriteByte(e)
			default:
				return "", i, fmt.Errorf("%w: \\%c", ErrUnsupportedEscape, e)
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", i, ErrUnterminatedString
}

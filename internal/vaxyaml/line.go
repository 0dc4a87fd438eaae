package vaxyaml

import (
	"fmt"
	"strings"
)

// asciiSpace matches the C locale's isspace set.
const asciiSpace = " \t\n\v\f\r"

// line is one significant input line after classification.
type line struct {
	num    int
	indent int
	text   string
}

// classify strips trailing whitespace and measures indentation. Only spaces
// count as indentation. Blank and comment lines report false.
func classify(num int, raw string) (line, bool) {
	raw = strings.TrimRight(raw, asciiSpace)
	indent := 0
	for indent < len(raw) && raw[indent] == ' ' {
		indent++
	}
	text := strings.TrimLeft(raw[indent:], asciiSpace)
	if text == "" || text[0] == '#' {
		return line{}, false
	}
	return line{num: num, indent: indent, text: text}, true
}

func (l line) isListItem() bool {
	return strings.HasPrefix(l.text, "-")
}

// afterMarker returns the content following the list-item marker.
func (l line) afterMarker() string {
	return strings.TrimLeft(l.text[1:], asciiSpace)
}

// field is a `key: "value"` or bare `key:` pair.
type field struct {
	key      string
	value    string
	hasValue bool
}

// splitKeyValue splits s at its first colon. ok is false when s has no colon
// or an empty key. A non-empty remainder must be a quoted scalar; anything
// after the closing quote is ignored.
func splitKeyValue(s string) (f field, ok bool, err error) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return field{}, false, nil
	}
	key := strings.TrimRight(s[:colon], asciiSpace)
	if key == "" {
		return field{}, false, nil
	}
	rest := strings.TrimLeft(s[colon+1:], asciiSpace)
	if rest == "" {
		return field{key: key}, true, nil
	}
	if rest[0] != '"' {
		return field{}, true, fmt.Errorf("%w for key %q", ErrExpectedQuote, key)
	}
	v, _, err := decodeScalar(rest, 0)
	if err != nil {
		return field{}, true, err
	}
	return field{key: key, value: v, hasValue: true}, true, nil
}

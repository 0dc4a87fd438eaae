// Package contact reads and writes the flat contact record behind the HTML
// header fragment. The reader accepts one `"key": "value"` pair per line and
// copies values verbatim: JSON escapes are not decoded.
package contact

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformed is returned for a contact record outside the supported JSON
// subset.
var ErrMalformed = errors.New("malformed JSON")

// Contact holds the header fields. Empty means absent.
type Contact struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Parse reads a contact record. Lines that are braces, blank, or do not
// start with a quoted key are skipped, as are pairs whose value is not a
// string. Unknown keys are ignored.
func Parse(r io.Reader) (*Contact, error) {
	c := &Contact{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	num := 0
	for sc.Scan() {
		num++
		line := strings.Trim(sc.Text(), " \t\n\v\f\r")
		if line == "" || line[0] != '"' {
			continue
		}
		end := strings.IndexByte(line[1:], '"')
		if end < 0 {
			return nil, fmt.Errorf("%w: line %d: unterminated key string", ErrMalformed, num)
		}
		key := line[1 : 1+end]
		rest := line[end+2:]

		colon := strings.IndexByte(rest, ':')
		if colon < 0 {
			continue
		}
		rest = strings.TrimLeft(rest[colon+1:], " \t\n\v\f\r")
		if rest == "" || rest[0] != '"' {
			continue
		}
		val, ok := rawString(rest[1:])
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unterminated value string", ErrMalformed, num)
		}
		if dst := c.field(key); dst != nil {
			*dst = val
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// rawString returns the bytes of s up to the first unescaped quote. A
// backslash only keeps the next byte from closing the string; the escape
// itself is copied as-is.
func rawString(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return s[:i], true
		}
	}
	return "", false
}

func (c *Contact) field(key string) *string {
	switch key {
	case "name":
		return &c.Name
	case "label":
		return &c.Label
	case "email":
		return &c.Email
	case "github":
		return &c.GitHub
	case "linkedin":
		return &c.LinkedIn
	}
	return nil
}

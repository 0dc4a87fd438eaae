package roff

import "strings"

// Escape makes s safe to place on roff text lines. Every line that would
// begin with a control character ('.' or '\'') gets a zero-width \& guard,
// backslashes are doubled, and in NAME/SYNOPSIS context hyphens become \-.
func Escape(s string, nameContext bool) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	atLineStart := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if atLineStart && (c == '.' || c == '\'') {
			b.WriteString(`\&`)
		}
		atLineStart = c == '\n'
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '-' && nameContext:
			b.WriteString(`\-`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// quoteArg renders s as a double-quoted macro argument.
func quoteArg(s string) string {
	s = Escape(s, false)
	s = strings.ReplaceAll(s, "\n", " ")
	return `"` + strings.ReplaceAll(s, `"`, `\(dq`) + `"`
}

package roff

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrap greedily fills lines up to width display columns. Words longer than
// width are kept whole on their own line.
func wrap(text string, width int) []string {
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if curW > 0 && curW+1+w > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(word)
		curW += w
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// ellipsize marks line as truncated, keeping it within width columns.
func ellipsize(line string, width int) string {
	if runewidth.StringWidth(line)+3 <= width {
		return line + "..."
	}
	return runewidth.Truncate(line, width-3, "") + "..."
}

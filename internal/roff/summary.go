package roff

import (
	"strings"
)

// Summary is the NAME, DESCRIPTION and CONTACT content of a page emitted by
// Emit, with roff escapes removed.
type Summary struct {
	NameLine     string
	Description  string
	ContactLines []string
}

var unescaper = strings.NewReplacer(
	`\\-`, "-",
	`\-`, "-",
	`\\(bu`, "•",
	`\(bu`, "•",
	`\(dq`, `"`,
	`\\`, `\`,
)

func unescapeText(s string) string {
	s = strings.TrimPrefix(s, `\&`)
	return unescaper.Replace(s)
}

// ParseSummary extracts the summary sections from man(7) source. It only
// understands the subset Emit produces: macros other than .SH are skipped
// and plain text lines are collected under the current section.
func ParseSummary(src string) Summary {
	var (
		section     string
		name, descr []string
		s           Summary
	)
	for _, raw := range strings.Split(src, "\n") {
		line := strings.TrimRight(raw, "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ".") {
			macro, arg, _ := strings.Cut(line[1:], " ")
			if macro == "SH" {
				section = strings.ToUpper(strings.TrimSpace(arg))
			}
			continue
		}
		text := strings.TrimSpace(unescapeText(line))
		if text == "" {
			continue
		}
		switch section {
		case "NAME":
			name = append(name, text)
		case "DESCRIPTION":
			descr = append(descr, text)
		case "CONTACT":
			s.ContactLines = append(s.ContactLines, text)
		}
	}
	s.NameLine = strings.Join(name, " ")
	s.Description = strings.Join(descr, " ")
	return s
}

// RenderSummaryText lays the summary out as an indented plain-text excerpt.
// The description is wrapped to width columns; when maxDescriptionLines is
// positive it is cut to that many lines and the last ends with "...".
func RenderSummaryText(s Summary, width, maxDescriptionLines int) string {
	const indent = "    "
	bodyWidth := max(10, width-len(indent))

	var out []string
	out = append(out, "DESCRIPTION")
	lines := wrap(s.Description, bodyWidth)
	if maxDescriptionLines > 0 && len(lines) > maxDescriptionLines {
		lines = lines[:maxDescriptionLines]
		lines[len(lines)-1] = ellipsize(lines[len(lines)-1], bodyWidth)
	}
	for _, l := range lines {
		out = append(out, strings.TrimRight(indent+l, " "))
	}
	out = append(out, "")

	out = append(out, "CONTACT")
	if len(s.ContactLines) == 0 {
		out = append(out, indent+"(none)")
	}
	for _, l := range s.ContactLines {
		out = append(out, strings.TrimRight(indent+l, " "))
	}
	out = append(out, "")
	return strings.Join(out, "\n")
}

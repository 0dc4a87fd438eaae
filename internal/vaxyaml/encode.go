package vaxyaml

import (
	"bytes"
	"io"
	"strings"

	"github.com/agentflare-ai/go-resman/internal/resume"
)

// Encode writes r in the canonical subset form: fixed key order, two-space
// indentation, double-quoted single-line scalars. Runs of whitespace inside
// values collapse to one space, so the output never carries tabs, CRs or
// embedded newlines.
func Encode(w io.Writer, r *resume.Resume) error {
	var e encoder
	e.scalar(0, "schemaVersion", r.SchemaVersion)
	e.scalar(0, "buildDate", r.BuildDate)
	e.scalar(0, "name", r.Name)
	e.scalar(0, "label", r.Label)
	if r.HasContact() {
		e.key(0, "contact")
		e.optional(1, "email", r.Email)
		e.optional(1, "url", r.URL)
		e.optional(1, "linkedin", r.LinkedIn)
	}
	e.scalar(0, "summary", r.Summary)
	if len(r.Work) > 0 {
		e.key(0, "work")
		for _, item := range r.Work {
			e.marker(1)
			e.optional(2, "company", item.Company)
			e.optional(2, "position", item.Position)
			e.optional(2, "dateRange", item.DateRange)
			e.optional(2, "location", item.Location)
			e.list(2, "highlights", item.Highlights)
		}
	}
	if len(r.Skills) > 0 {
		e.key(0, "skills")
		for _, g := range r.Skills {
			e.marker(1)
			e.optional(2, "group", g.Group)
			e.list(2, "keywords", g.Keywords)
		}
	}
	_, err := w.Write(e.buf.Bytes())
	return err
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) indent(level int) {
	e.buf.WriteString(strings.Repeat("  ", level))
}

func (e *encoder) key(level int, k string) {
	e.indent(level)
	e.buf.WriteString(k)
	e.buf.WriteString(":\n")
}

func (e *encoder) scalar(level int, k, v string) {
	e.indent(level)
	e.buf.WriteString(k)
	e.buf.WriteString(": ")
	e.buf.WriteString(Quote(v))
	e.buf.WriteByte('\n')
}

func (e *encoder) optional(level int, k, v string) {
	if v != "" {
		e.scalar(level, k, v)
	}
}

func (e *encoder) marker(level int) {
	e.indent(level)
	e.buf.WriteString("-\n")
}

func (e *encoder) list(level int, k string, items []string) {
	if len(items) == 0 {
		return
	}
	e.key(level, k)
	for _, it := range items {
		e.indent(level + 1)
		e.buf.WriteString("- ")
		e.buf.WriteString(Quote(it))
		e.buf.WriteByte('\n')
	}
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Quote flattens whitespace in v and returns it as a double-quoted scalar.
func Quote(v string) string {
	return `"` + quoteReplacer.Replace(strings.Join(strings.Fields(v), " ")) + `"`
}

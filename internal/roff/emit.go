// Package roff renders résumé records as man(7) source and reads the
// summary sections of such pages back into plain text.
package roff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/go-resman/internal/resume"
)

// Options controls the .TH title line and the NAME section.
type Options struct {
	// Page is the page name, upper-cased in the title line.
	Page    string
	Section string
	// Source fills the fourth .TH field (usually the site or package).
	Source string
}

// DefaultOptions matches the published brad(1) page.
func DefaultOptions() Options {
	return Options{Page: "brad", Section: "1", Source: "brfid.github.io"}
}

// Emit writes r as man(7) source. Sections appear in a fixed order and
// empty ones are left out. Nothing is written to w when an
// error is returned.
func Emit(w io.Writer, r *resume.Resume, opts Options) error {
	d := DefaultOptions()
	if opts.Page == "" {
		opts.Page = d.Page
	}
	if opts.Section == "" {
		opts.Section = d.Section
	}
	var buf bytes.Buffer
	e := emitter{w: &buf}

	fmt.Fprintf(&buf, ".TH %s %s %s %s \"\"\n",
		Escape(strings.ToUpper(opts.Page), false), Escape(opts.Section, false),
		quoteArg(r.BuildDate), quoteArg(opts.Source))

	e.section("NAME")
	e.text(Escape(opts.Page, true) + ` \- ` + Escape(r.Label, false))

	if r.Summary != "" {
		e.section("DESCRIPTION")
		e.text(Escape(r.Summary, false))
	}

	if r.HasContact() {
		e.section("CONTACT")
		var lines []string
		if r.Email != "" {
			lines = append(lines, "Email: "+Escape(r.Email, false))
		}
		if r.URL != "" {
			lines = append(lines, "Web: "+Escape(r.URL, false))
		}
		if r.LinkedIn != "" {
			lines = append(lines, "LinkedIn: "+Escape(r.LinkedIn, false))
		}
		e.text(strings.Join(lines, "\n.br\n"))
	}

	e.experience(r.Work)
	e.skills(r.Skills)

	if r.Name != "" {
		e.section("AUTHOR")
		e.text(Escape(r.Name, false))
	}

	_, err := w.Write(buf.Bytes())
	return err
}

type emitter struct {
	w *bytes.Buffer
}

func (e emitter) section(name string) {
	e.w.WriteString(".SH " + name + "\n")
}

func (e emitter) macro(name, arg string) {
	e.w.WriteString("." + name + " " + arg + "\n")
}

func (e emitter) text(s string) {
	e.w.WriteString(s)
	e.w.WriteByte('\n')
}

// experience writes the EXPERIENCE section whenever work is non-empty.
// Entries with neither company nor position are skipped.
func (e emitter) experience(work []resume.WorkEntry) {
	if len(work) == 0 {
		return
	}
	e.section("EXPERIENCE")
	for _, w := range work {
		if w.Company == "" && w.Position == "" {
			continue
		}
		e.w.WriteString(".TP\n")
		heading, tail := w.Company, w.Position
		if heading == "" {
			heading, tail = w.Position, ""
		}
		e.macro("B", Escape(heading, false))
		if w.DateRange != "" {
			tail = strings.TrimLeft(tail+" ("+w.DateRange+")", " ")
		}
		if tail != "" {
			e.text(Escape(tail, false))
		}
		if w.Location != "" {
			e.macro("I", Escape(w.Location, false))
		}
		for _, h := range w.Highlights {
			e.w.WriteString(`.IP \(bu 2` + "\n")
			e.text(Escape(h, false))
		}
	}
}

func (e emitter) skills(groups []resume.SkillGroup) {
	if len(groups) == 0 {
		return
	}
	e.section("SKILLS")
	for _, g := range groups {
		if g.Group == "" {
			continue
		}
		e.macro("SS", Escape(g.Group, false))
		if len(g.Keywords) == 0 {
			continue
		}
		kws := make([]string, len(g.Keywords))
		for i, k := range g.Keywords {
			kws[i] = Escape(k, false)
		}
		e.text(strings.Join(kws, ", "))
	}
}

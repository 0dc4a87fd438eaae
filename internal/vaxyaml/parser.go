// Package vaxyaml reads and writes the restricted YAML subset used for
// résumé sources: double-quoted scalars only, two-space indentation and a
// fixed four-level hierarchy (root, section, list item, nested list).
package vaxyaml

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/go-resman/internal/resume"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

type state int

const (
	stateNone state = iota
	stateContact
	stateWork
	stateSkills
)

// parser is the line-driven state machine. The top-level state changes only
// on depth-0 lines; the two sub-modes are cleared by any line at depth 2 or
// shallower.
type parser struct {
	r            *resume.Resume
	state        state
	inHighlights bool
	inKeywords   bool
	work         int
	skill        int
}

// Parse consumes the whole document and returns the populated record. It
// performs no schema validation; see resume.Resume.Validate.
func Parse(r io.Reader) (*resume.Resume, error) {
	p := &parser{r: &resume.Resume{}, work: -1, skill: -1}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	num := 0
	for sc.Scan() {
		num++
		l, ok := classify(num, sc.Text())
		if !ok {
			continue
		}
		if err := p.step(l); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", num+1, err)
	}
	return p.r, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(s string) (*resume.Resume, error) {
	return Parse(strings.NewReader(s))
}

func (p *parser) step(l line) error {
	if l.indent <= 2 {
		p.inHighlights = false
		p.inKeywords = false
	}
	switch {
	case l.indent == 0:
		return p.root(l)
	case l.indent == 2 && p.state == stateContact:
		return p.contactField(l)
	case l.indent == 2 && p.state == stateWork:
		return p.workItem(l)
	case l.indent == 4 && p.state == stateWork:
		return p.workField(l)
	case l.indent == 6 && p.state == stateWork && p.inHighlights:
		return p.highlight(l)
	case l.indent == 2 && p.state == stateSkills:
		return p.skillItem(l)
	case l.indent == 4 && p.state == stateSkills:
		return p.skillField(l)
	case l.indent == 6 && p.state == stateSkills && p.inKeywords:
		return p.keyword(l)
	}
	// Anything else belongs to a structure we do not track.
	return nil
}

func fail(l line, err error, format string, args ...any) error {
	return &SyntaxError{Line: l.num, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// keyValue splits s, which is part of l, and reports failures against l.
func keyValue(l line, s string) (field, error) {
	f, ok, err := splitKeyValue(s)
	if err != nil {
		return field{}, &SyntaxError{Line: l.num, Err: err}
	}
	if !ok {
		return field{}, fail(l, ErrInvalidLine, "%s", l.text)
	}
	return f, nil
}

func (p *parser) root(l line) error {
	f, err := keyValue(l, l.text)
	if err != nil {
		return err
	}
	p.state = stateNone
	p.work = -1
	p.skill = -1

	if dst := rootScalar(p.r, f.key); dst != nil {
		if !f.hasValue {
			return fail(l, ErrMissingValue, "%s must have a value", f.key)
		}
		*dst = f.value
		if f.key == "label" {
			p.r.HasLabel = true
		}
		return nil
	}
	var next state
	switch f.key {
	case "contact":
		next = stateContact
	case "work":
		next = stateWork
	case "skills":
		next = stateSkills
	default:
		// Unknown top-level keys are ignored.
		return nil
	}
	if f.hasValue {
		return fail(l, ErrUnexpectedValue, "%s must be a mapping or sequence", f.key)
	}
	p.state = next
	return nil
}

func (p *parser) contactField(l line) error {
	f, err := keyValue(l, l.text)
	if err != nil {
		return err
	}
	if !f.hasValue {
		return fail(l, ErrMissingValue, "contact field %s", f.key)
	}
	if dst := contactScalar(p.r, f.key); dst != nil {
		*dst = f.value
	}
	return nil
}

func (p *parser) workItem(l line) error {
	if !l.isListItem() {
		return fail(l, ErrExpectedListItem, "in work: %s", l.text)
	}
	rest := l.afterMarker()
	if strings.HasPrefix(rest, "-") {
		return fail(l, ErrInvalidLine, "nested list in work: %s", l.text)
	}
	p.work = p.r.AddWork()
	if rest == "" {
		return nil
	}
	f, err := keyValue(l, rest)
	if err != nil {
		return err
	}
	if !f.hasValue {
		return fail(l, ErrMissingValue, "work field %s", f.key)
	}
	if dst := workScalar(&p.r.Work[p.work], f.key); dst != nil {
		*dst = f.value
	}
	return nil
}

func (p *parser) workField(l line) error {
	if p.work < 0 {
		return fail(l, ErrOutOfOrder, "work field before first list item: %s", l.text)
	}
	f, err := keyValue(l, l.text)
	if err != nil {
		return err
	}
	if f.key == "highlights" {
		if f.hasValue {
			return fail(l, ErrUnexpectedValue, "highlights must be a sequence")
		}
		p.inHighlights = true
		return nil
	}
	if !f.hasValue {
		return fail(l, ErrMissingValue, "work field %s", f.key)
	}
	if dst := workScalar(&p.r.Work[p.work], f.key); dst != nil {
		*dst = f.value
	}
	return nil
}

func (p *parser) highlight(l line) error {
	if p.work < 0 {
		return fail(l, ErrOutOfOrder, "highlight before work item")
	}
	v, err := listScalar(l)
	if err != nil {
		return err
	}
	w := &p.r.Work[p.work]
	w.Highlights = resume.Push(w.Highlights, v)
	return nil
}

func (p *parser) skillItem(l line) error {
	if !l.isListItem() {
		return fail(l, ErrExpectedListItem, "in skills: %s", l.text)
	}
	rest := l.afterMarker()
	p.skill = p.r.AddSkill()
	if rest == "" {
		return nil
	}
	f, err := keyValue(l, rest)
	if err != nil {
		return err
	}
	if !f.hasValue {
		return fail(l, ErrMissingValue, "skill field %s", f.key)
	}
	if f.key == "group" {
		p.r.Skills[p.skill].Group = f.value
	}
	return nil
}

func (p *parser) skillField(l line) error {
	if p.skill < 0 {
		return fail(l, ErrOutOfOrder, "skill field before first list item: %s", l.text)
	}
	f, err := keyValue(l, l.text)
	if err != nil {
		return err
	}
	if f.key == "keywords" {
		if f.hasValue {
			return fail(l, ErrUnexpectedValue, "keywords must be a sequence")
		}
		p.inKeywords = true
		return nil
	}
	if !f.hasValue {
		return fail(l, ErrMissingValue, "skill field %s", f.key)
	}
	if f.key == "group" {
		p.r.Skills[p.skill].Group = f.value
	}
	return nil
}

func (p *parser) keyword(l line) error {
	if p.skill < 0 {
		return fail(l, ErrOutOfOrder, "keyword before skill item")
	}
	v, err := listScalar(l)
	if err != nil {
		return err
	}
	g := &p.r.Skills[p.skill]
	g.Keywords = resume.Push(g.Keywords, v)
	return nil
}

// listScalar decodes a depth-6 `- "value"` line.
func listScalar(l line) (string, error) {
	if !l.isListItem() {
		return "", fail(l, ErrExpectedListItem, "%s", l.text)
	}
	rest := l.afterMarker()
	v, _, err := decodeScalar(rest, 0)
	if err != nil {
		return "", &SyntaxError{Line: l.num, Err: err}
	}
	return v, nil
}

func rootScalar(r *resume.Resume, key string) *string {
	switch key {
	case "schemaVersion":
		return &r.SchemaVersion
	case "buildDate":
		return &r.BuildDate
	case "name":
		return &r.Name
	case "label":
		return &r.Label
	case "summary":
		return &r.Summary
	}
	return nil
}

func contactScalar(r *resume.Resume, key string) *string {
	switch key {
	case "email":
		return &r.Email
	case "url":
		return &r.URL
	case "linkedin":
		return &r.LinkedIn
	}
	return nil
}

func workScalar(w *resume.WorkEntry, key string) *string {
	switch key {
	case "company":
		return &w.Company
	case "position":
		return &w.Position
	case "dateRange":
		return &w.DateRange
	case "location":
		return &w.Location
	}
	return nil
}

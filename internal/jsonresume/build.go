package jsonresume

import (
	"strings"
	"time"

	"github.com/agentflare-ai/go-resman/internal/contact"
	"github.com/agentflare-ai/go-resman/internal/resume"
)

// Limits caps how much of a long resume survives into the reduced record.
// A value of zero or less disables that cap.
type Limits struct {
	MaxWorkItems      int
	MaxWorkHighlights int
	MaxSkillGroups    int
	MaxSkillKeywords  int
}

// DefaultLimits returns the caps used when no encode.* settings are given.
func DefaultLimits() Limits {
	return Limits{
		MaxWorkItems:      6,
		MaxWorkHighlights: 2,
		MaxSkillGroups:    5,
		MaxSkillKeywords:  8,
	}
}

// BuildResume reduces doc to a v1 résumé stamped with buildDate.
func BuildResume(doc *Document, buildDate time.Time, lim Limits) *resume.Resume {
	b := doc.Basics
	r := &resume.Resume{
		SchemaVersion: resume.SchemaV1,
		BuildDate:     buildDate.Format(time.DateOnly),
		Name:          clean(b.Name),
		Label:         clean(b.Label),
		Email:         clean(b.Email),
		URL:           profileURL(b.Profiles, "Personal"),
		LinkedIn:      profileURL(b.Profiles, "LinkedIn"),
		Summary:       clean(b.Summary),
	}
	if r.URL == "" {
		r.URL = clean(b.URL)
	}

	for _, w := range doc.Work {
		if capped(len(r.Work), lim.MaxWorkItems) {
			break
		}
		company := firstNonEmpty(w.Name, w.Company)
		position := clean(w.Position)
		if company == "" && position == "" {
			continue
		}
		r.Work = resume.Push(r.Work, resume.WorkEntry{
			Company:    company,
			Position:   position,
			DateRange:  FormatDateRange(w.StartDate, w.EndDate),
			Location:   clean(w.Location),
			Highlights: cleanList(w.Highlights, lim.MaxWorkHighlights),
		})
	}

	for _, s := range doc.Skills {
		if capped(len(r.Skills), lim.MaxSkillGroups) {
			break
		}
		group := firstNonEmpty(s.Name, s.Group)
		if group == "" {
			continue
		}
		r.Skills = resume.Push(r.Skills, resume.SkillGroup{
			Group:    group,
			Keywords: cleanList(s.Keywords, lim.MaxSkillKeywords),
		})
	}
	return r
}

// BuildContact extracts the header contact record from doc.
func BuildContact(doc *Document) *contact.Contact {
	b := doc.Basics
	return &contact.Contact{
		Name:     clean(b.Name),
		Label:    clean(b.Label),
		Email:    clean(b.Email),
		GitHub:   profileURL(b.Profiles, "GitHub"),
		LinkedIn: profileURL(b.Profiles, "LinkedIn"),
	}
}

// profileURL returns the URL of the first profile on network that has one.
// Network names match case-insensitively.
func profileURL(profiles []Profile, network string) string {
	for _, p := range profiles {
		if !strings.EqualFold(clean(p.Network), network) {
			continue
		}
		if u := clean(p.URL); u != "" {
			return u
		}
	}
	return ""
}

func cleanList(in []string, max int) []string {
	var out []string
	for _, s := range in {
		if capped(len(out), max) {
			break
		}
		if s = clean(s); s != "" {
			out = resume.Push(out, s)
		}
	}
	return out
}

func capped(n, max int) bool {
	return max > 0 && n >= max
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = clean(v); v != "" {
			return v
		}
	}
	return ""
}

func clean(s string) string {
	return strings.TrimSpace(s)
}

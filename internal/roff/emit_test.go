package roff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/go-resman/internal/resume"
)

func emitString(t *testing.T, r *resume.Resume, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, r, opts))
	return buf.String()
}

func TestEmitFullPage(t *testing.T) {
	r := &resume.Resume{
		SchemaVersion: "v1",
		BuildDate:     "2026-01-25",
		Name:          "Ada Example",
		Label:         "Senior Platform-Engineer",
		Email:         "ada@example.com",
		URL:           "https://example.com",
		Summary:       "Builds things.\n.Ships them.",
		Work: []resume.WorkEntry{
			{
				Company:    "Acme",
				Position:   "Staff Engineer",
				DateRange:  "Jan 2020 - Present",
				Location:   "Remote",
				Highlights: []string{"Cut deploy time", ".Hidden"},
			},
			{Location: "dropped: no company or position"},
		},
		Skills: []resume.SkillGroup{
			{Group: "Languages", Keywords: []string{"Go", "C"}},
			{Keywords: []string{"dropped: no label"}},
		},
	}
	want := strings.Join([]string{
		`.TH BRAD 1 "2026-01-25" "brfid.github.io" ""`,
		`.SH NAME`,
		`brad \- Senior Platform-Engineer`,
		`.SH DESCRIPTION`,
		`Builds things.`,
		`\&.Ships them.`,
		`.SH CONTACT`,
		`Email: ada@example.com`,
		`.br`,
		`Web: https://example.com`,
		`.SH EXPERIENCE`,
		`.TP`,
		`.B Acme`,
		`Staff Engineer (Jan 2020 - Present)`,
		`.I Remote`,
		`.IP \(bu 2`,
		`Cut deploy time`,
		`.IP \(bu 2`,
		`\&.Hidden`,
		`.SH SKILLS`,
		`.SS Languages`,
		`Go, C`,
		`.SH AUTHOR`,
		`Ada Example`,
		``,
	}, "\n")
	assert.Equal(t, want, emitString(t, r, DefaultOptions()))
}

func TestEmitAcmeScenario(t *testing.T) {
	r := &resume.Resume{
		SchemaVersion: "v1",
		Label:         "Engineer",
		Work: []resume.WorkEntry{{
			Company:    "Acme",
			Highlights: []string{"First", "Second"},
		}},
	}
	out := emitString(t, r, DefaultOptions())
	assert.Equal(t, 1, strings.Count(out, ".SH EXPERIENCE\n"))
	assert.Equal(t, 1, strings.Count(out, ".TP\n"))
	assert.Equal(t, 2, strings.Count(out, ".IP \\(bu 2\n"))
	assert.NotContains(t, out, ".SH SKILLS")
	assert.NotContains(t, out, ".SH CONTACT")
	assert.NotContains(t, out, ".SH DESCRIPTION")
	assert.NotContains(t, out, ".SH AUTHOR")
}

func TestEmitWorkHeadings(t *testing.T) {
	tests := []struct {
		name string
		work resume.WorkEntry
		want string
	}{
		{
			name: "company only",
			work: resume.WorkEntry{Company: "Acme"},
			want: ".TP\n.B Acme\n",
		},
		{
			name: "company with date range",
			work: resume.WorkEntry{Company: "Acme", DateRange: "2020"},
			want: ".TP\n.B Acme\n(2020)\n",
		},
		{
			name: "position only",
			work: resume.WorkEntry{Position: "Consultant", DateRange: "2019"},
			want: ".TP\n.B Consultant\n(2019)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &resume.Resume{Label: "x", Work: []resume.WorkEntry{tt.work}}
			out := emitString(t, r, DefaultOptions())
			_, exp, ok := strings.Cut(out, ".SH EXPERIENCE\n")
			require.True(t, ok)
			assert.Equal(t, tt.want, exp)
		})
	}
}

func TestEmitHeadersForNonEmptyLists(t *testing.T) {
	r := &resume.Resume{
		Label:  "x",
		Work:   []resume.WorkEntry{{Highlights: []string{"orphan"}}},
		Skills: []resume.SkillGroup{{Keywords: []string{"orphan"}}},
	}
	out := emitString(t, r, DefaultOptions())
	assert.Contains(t, out, ".SH EXPERIENCE\n.SH SKILLS\n")
	assert.NotContains(t, out, ".TP")
	assert.NotContains(t, out, "orphan")

	out = emitString(t, &resume.Resume{Label: "x"}, DefaultOptions())
	assert.NotContains(t, out, "EXPERIENCE")
	assert.NotContains(t, out, "SKILLS")
}

func TestEmitLabelKeepsHyphens(t *testing.T) {
	out := emitString(t, &resume.Resume{Label: "Senior - Staff"}, Options{Page: "brad-x"})
	assert.Contains(t, out, ".SH NAME\nbrad\\-x \\- Senior - Staff\n")
}

func TestEmitSkillGroupWithoutKeywords(t *testing.T) {
	r := &resume.Resume{Label: "x", Skills: []resume.SkillGroup{{Group: "Soft"}, {Group: "Hard", Keywords: []string{"a"}}}}
	out := emitString(t, r, DefaultOptions())
	assert.Contains(t, out, ".SH SKILLS\n.SS Soft\n.SS Hard\na\n")
}

func TestEmitContactSeparators(t *testing.T) {
	r := &resume.Resume{Label: "x", LinkedIn: "https://linkedin.com/in/x"}
	out := emitString(t, r, DefaultOptions())
	assert.Contains(t, out, ".SH CONTACT\nLinkedIn: https://linkedin.com/in/x\n")
	assert.NotContains(t, out, ".br")
}

func TestEmitTitleOptions(t *testing.T) {
	r := &resume.Resume{Label: "x", BuildDate: `2026 "Q1"`}
	out := emitString(t, r, Options{Page: "ada", Section: "7", Source: ""})
	first, _, _ := strings.Cut(out, "\n")
	assert.Equal(t, `.TH ADA 7 "2026 \(dqQ1\(dq" "" ""`, first)
	assert.Contains(t, out, ".SH NAME\nada \\- x\n")
}

func TestEmitDefaultsEmptyOptions(t *testing.T) {
	out := emitString(t, &resume.Resume{Label: "x"}, Options{})
	assert.True(t, strings.HasPrefix(out, `.TH BRAD 1 "" "" ""`))
}

func TestEmitDeterministic(t *testing.T) {
	r := &resume.Resume{Label: "x", Work: []resume.WorkEntry{{Company: "A", Highlights: []string{"h"}}}}
	assert.Equal(t, emitString(t, r, DefaultOptions()), emitString(t, r, DefaultOptions()))
}

// Package htmlfrag renders a contact record as the fixed <header> fragment
// embedded at the top of the résumé page.
package htmlfrag

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/agentflare-ai/go-resman/internal/contact"
)

// Only these four are escaped. Apostrophes pass through unchanged.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces the reserved characters < > & and " with entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Emit writes the header fragment for c. Empty fields are left out; the nav
// element is always present.
func Emit(w io.Writer, c *contact.Contact) error {
	var buf bytes.Buffer
	buf.WriteString("<header>\n")
	if c.Name != "" {
		fmt.Fprintf(&buf, "  <h1>%s</h1>\n", Escape(c.Name))
	}
	if c.Label != "" {
		fmt.Fprintf(&buf, "  <p class=\"subtitle\">%s</p>\n", Escape(c.Label))
	}
	if c.Email != "" {
		fmt.Fprintf(&buf, "  <p class=\"contact-email\">%s</p>\n", Escape(c.Email))
	}
	buf.WriteString("  <nav>\n")
	pill(&buf, c.LinkedIn, "LinkedIn")
	pill(&buf, c.GitHub, "GitHub")
	buf.WriteString("  </nav>\n")
	buf.WriteString("</header>\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func pill(buf *bytes.Buffer, href, text string) {
	if href == "" {
		return
	}
	fmt.Fprintf(buf, "    <a class=\"pill\" href=\"%s\" rel=\"me noopener noreferrer\">%s</a>\n", Escape(href), text)
}

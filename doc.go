// # go-resman
//
// `go-resman` turns the site's résumé sources into the two formats the site
// publishes: the `brad(1)` man page and the `<header>` fragment at the top of
// the HTML résumé. Both readers are deliberately small: the résumé reader
// understands a fixed subset of YAML ("vax-YAML") and the contact reader a
// line-oriented subset of JSON with one `"key": "value"` pair per line.
//
// Key capabilities:
//
//   - `roff` mode: parse a vax-YAML résumé, check `schemaVersion: "v1"` and a
//     `label` key, and emit man(7) source with NAME, DESCRIPTION,
//     CONTACT, EXPERIENCE, SKILLS and AUTHOR sections.
//   - `html` mode: read the contact record and emit an escaped `<header>`
//     fragment with LinkedIn and GitHub links.
//   - `encode`: build the vax-YAML subset (and the contact record) from a full
//     JSON Resume, validated against an embedded JSON schema.
//   - `summary`: pull a wrapped plain-text excerpt back out of an emitted page.
//   - a Cobra CLI with `--help`, `--version`, shell completion and a
//     `gen-docs` helper for Markdown or man-page reference docs.
//
// ## Usage
//
//	go-resman -i INPUT [-o OUTPUT] [-mode roff|html]
//
// Examples:
//
//   - Render the man page to stdout:
//
//     go-resman -i build/resume.vax.yaml
//
//   - Render the header fragment into the site build:
//
//     go-resman -mode html -i build/contact.json -o site/_includes/header.html
//
//   - Rebuild both inputs from the canonical resume:
//
//     go-resman encode -i resume.yaml -o build/resume.vax.yaml --contact build/contact.json
//
//   - Print the first three description lines of the page:
//
//     go-resman summary -i build/brad.1 --max-lines 3
//
// ## Flags
//
// Go-style single-dash long flags (`-mode`, `-input`, `-output`) are accepted
// alongside the GNU spellings.
//
//   - `-i FILE`: input document (required).
//   - `-o FILE`: write output to `FILE`; stdout when omitted or `-`.
//   - `-mode roff|html`: output format, `roff` by default.
//   - `--config FILE`: read settings from `FILE` instead of searching for
//     `go-resman.yaml`.
//   - `-v`, `--verbose`: log progress to stderr.
//
// ## Configuration
//
// Settings resolve from flags, then `RESMAN_*` environment variables, then
// `go-resman.yaml` in the working directory or `~/.config/go-resman/`:
//
//	mode: roff
//	page:
//	  name: brad
//	  section: 1
//	  source: brfid.github.io
//	summary:
//	  width: 66
//	encode:
//	  max_work_items: 6
//	  max_work_highlights: 2
//	  max_skill_groups: 5
//	  max_skill_keywords: 8
//
// Nested keys map to environment variables with underscores, for example
// `RESMAN_PAGE_NAME=ada`.
//
// ## Errors
//
// Any failure (bad flags, unreadable input, a structural error in the
// document, or a failed schema check) prints one line prefixed `go-resman: `
// on stderr and exits with status 2. Nothing is written to the output on
// failure. Unknown keys in either input are ignored.
//
// ## Shell Completion
//
//	go-resman completion bash        # bash
//	go-resman completion zsh         # zsh
//	go-resman completion fish | source
//	go-resman completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	go-resman gen-docs ./docs/cli
//	go-resman gen-docs --format man ./share/man/man1
package main

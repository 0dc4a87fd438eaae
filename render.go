package main

import (
	"bytes"
	"context"
	"io"

	"github.com/agentflare-ai/go-resman/internal/config"
	"github.com/agentflare-ai/go-resman/internal/contact"
	"github.com/agentflare-ai/go-resman/internal/htmlfrag"
	"github.com/agentflare-ai/go-resman/internal/roff"
	"github.com/agentflare-ai/go-resman/internal/vaxyaml"
)

// renderFunc turns one input document into the complete output. Nothing is
// written until it returns without error.
type renderFunc func(app *cliApp, ctx context.Context, in io.Reader) ([]byte, error)

var renderers = map[string]renderFunc{
	config.ModeRoff: (*cliApp).renderRoff,
	config.ModeHTML: (*cliApp).renderHTML,
}

func (app *cliApp) renderRoff(ctx context.Context, in io.Reader) ([]byte, error) {
	res, err := vaxyaml.Parse(in)
	if err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	app.log.DebugContext(ctx, "parsed resume", "work", len(res.Work), "skills", len(res.Skills))

	var buf bytes.Buffer
	if err := roff.Emit(&buf, res, app.settings.Page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (app *cliApp) renderHTML(ctx context.Context, in io.Reader) ([]byte, error) {
	c, err := contact.Parse(in)
	if err != nil {
		return nil, err
	}
	app.log.DebugContext(ctx, "parsed contact",
		"github", c.GitHub != "", "linkedin", c.LinkedIn != "")

	var buf bytes.Buffer
	if err := htmlfrag.Emit(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

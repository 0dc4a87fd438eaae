package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/agentflare-ai/go-resman/internal/config"
	"github.com/agentflare-ai/go-resman/internal/contact"
	"github.com/agentflare-ai/go-resman/internal/jsonresume"
	"github.com/agentflare-ai/go-resman/internal/roff"
	"github.com/agentflare-ai/go-resman/internal/vaxyaml"
)

type options struct {
	inputPath  string
	outputPath string
	mode       string
	configPath string
	verbose    bool
}

type encodeOptions struct {
	inputPath   string
	outputPath  string
	contactPath string
	buildDate   string
}

type summaryOptions struct {
	inputPath  string
	outputPath string
	width      int
	maxLines   int
}

type cliApp struct {
	stdout   io.Writer
	stderr   io.Writer
	opts     options
	settings *config.Settings
	log      *slog.Logger
	now      func() time.Time
}

func run(argv []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

// configure resolves settings for the command about to run and sets up
// logging. Flags on cmd take precedence over the environment and the
// config file.
func (app *cliApp) configure(ctx context.Context, flags *pflag.FlagSet) error {
	s, err := config.Load(app.opts.configPath, flags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	app.settings = s
	app.log = newLogger(app.stderr, s.Verbose)
	if s.ConfigFile != "" {
		app.log.DebugContext(ctx, "loaded config", "path", s.ConfigFile)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// execute renders the -i document in the configured mode.
func (app *cliApp) execute(ctx context.Context) error {
	if app.opts.inputPath == "" {
		return usageError("missing required -i INPUT")
	}
	if err := app.settings.ValidateRender(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	mode := app.settings.Mode
	render, ok := renderers[mode]
	if !ok {
		return usageError("unknown mode %q", mode)
	}
	app.log.DebugContext(ctx, "render", "input", app.opts.inputPath, "mode", mode)

	f, err := os.Open(app.opts.inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := render(app, ctx, f)
	if err != nil {
		app.log.DebugContext(ctx, "render failed", "kind", errorKind(err))
		return err
	}
	return app.write(ctx, app.opts.outputPath, data)
}

// encode converts a JSON Resume document into the vax-YAML subset and,
// optionally, the contact record.
func (app *cliApp) encode(ctx context.Context, opts encodeOptions) error {
	if opts.inputPath == "" {
		return usageError("missing required -i INPUT")
	}
	buildDate := app.now().UTC()
	if opts.buildDate != "" {
		d, err := time.Parse(time.DateOnly, opts.buildDate)
		if err != nil {
			return usageError("invalid --build-date %q (want YYYY-MM-DD)", opts.buildDate)
		}
		buildDate = d
	}

	f, err := os.Open(opts.inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := jsonresume.Load(f)
	if err != nil {
		return err
	}
	res := jsonresume.BuildResume(doc, buildDate, app.settings.Limits)
	if err := res.Validate(); err != nil {
		return err
	}
	app.log.DebugContext(ctx, "built resume", "work", len(res.Work), "skills", len(res.Skills))

	var buf strings.Builder
	if err := vaxyaml.Encode(&buf, res); err != nil {
		return err
	}
	if err := app.write(ctx, opts.outputPath, []byte(buf.String())); err != nil {
		return err
	}

	if opts.contactPath == "" {
		return nil
	}
	buf.Reset()
	if err := contact.Encode(&buf, jsonresume.BuildContact(doc)); err != nil {
		return err
	}
	return app.write(ctx, opts.contactPath, []byte(buf.String()))
}

// summarize renders the plain-text excerpt of an emitted man page.
func (app *cliApp) summarize(ctx context.Context, opts summaryOptions) error {
	if opts.inputPath == "" {
		return usageError("missing required -i INPUT")
	}
	if opts.maxLines < 0 {
		return usageError("--max-lines must not be negative")
	}
	if err := app.settings.ValidateSummary(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	src, err := os.ReadFile(opts.inputPath)
	if err != nil {
		return err
	}
	s := roff.ParseSummary(string(src))
	app.log.DebugContext(ctx, "parsed summary", "contact_lines", len(s.ContactLines))
	text := roff.RenderSummaryText(s, app.settings.SummaryWidth, opts.maxLines)
	return app.write(ctx, opts.outputPath, []byte(text))
}

func (app *cliApp) write(ctx context.Context, path string, data []byte) error {
	if err := writeOutput(path, app.stdout, data); err != nil {
		return err
	}
	if path != "" && path != "-" {
		app.log.DebugContext(ctx, "wrote output", "path", path, "bytes", len(data))
	}
	return nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Single-dash spellings accepted for long flags, as in -mode html.
var legacyLongFlagSet = map[string]struct{}{
	"input":      {},
	"output":     {},
	"mode":       {},
	"config":     {},
	"verbose":    {},
	"contact":    {},
	"build-date": {},
	"width":      {},
	"max-lines":  {},
	"format":     {},
	"version":    {},
	"help":       {},
}

func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[1:], "=")
		if _, ok := legacyLongFlagSet[name]; ok {
			if hasValue {
				converted = append(converted, "--"+name+"="+value)
			} else {
				converted = append(converted, "--"+name)
			}
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}

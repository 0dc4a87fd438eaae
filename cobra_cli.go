package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

const rootLongDesc = `
go-resman renders the site's résumé sources into the formats the site publishes:

  • roff mode (default) reads the vax-YAML résumé subset and writes the brad(1)
    man page
  • html mode reads the contact JSON record and writes the <header> fragment
    embedded at the top of the résumé page

Helper commands build the vax-YAML subset from a full JSON Resume (encode), pull a
plain-text excerpt back out of an emitted man page (summary), and generate shell
completion and CLI reference docs.

Settings come from flags, then RESMAN_* environment variables, then go-resman.yaml
(in the working directory or ~/.config/go-resman). Every failure prints a single
diagnostic line on stderr and exits with status 2.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr, now: time.Now}
	cmd := &cobra.Command{
		Use:           "go-resman -i INPUT [-o OUTPUT] [--mode roff|html]",
		Short:         "Render résumé sources as a man page or an HTML header",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetVersionTemplate("go-resman {{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&app.opts.configPath, "config", "", "config file (default: ./go-resman.yaml or ~/.config/go-resman/go-resman.yaml)")
	persistent.BoolVarP(&app.opts.verbose, "verbose", "v", false, "log progress to stderr")

	flags := cmd.Flags()
	flags.StringVarP(&app.opts.inputPath, "input", "i", "", "input document (vax-YAML in roff mode, contact JSON in html mode)")
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write output to file instead of stdout (- for stdout)")
	flags.StringVar(&app.opts.mode, "mode", "", "output mode: roff or html (default roff)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.configure(commandContext(cmd), cmd.Flags())
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(commandContext(cmd))
	}

	cmd.AddCommand(newEncodeCmd(app))
	cmd.AddCommand(newSummaryCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError("unexpected argument %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

func newEncodeCmd(app *cliApp) *cobra.Command {
	var opts encodeOptions
	cmd := &cobra.Command{
		Use:   "encode -i RESUME [-o OUTPUT] [--contact CONTACT]",
		Short: "Build the vax-YAML résumé subset from a JSON Resume",
		Long: strings.TrimSpace(`
Read a JSON Resume document (JSON or YAML), check it against the supported
schema, and write the reduced vax-YAML document that roff mode reads. Long
work and skills lists are capped (see the encode.* config keys).

Example:

  go-resman encode -i resume.yaml -o build/resume.vax.yaml --contact build/contact.json
`),
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.inputPath, "input", "i", "", "JSON Resume document (.json or .yaml)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "write vax-YAML to file instead of stdout")
	flags.StringVar(&opts.contactPath, "contact", "", "also write the contact JSON record to this file")
	flags.StringVar(&opts.buildDate, "build-date", "", "build date as YYYY-MM-DD (default today, UTC)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.encode(commandContext(cmd), opts)
	}
	return cmd
}

func newSummaryCmd(app *cliApp) *cobra.Command {
	var opts summaryOptions
	cmd := &cobra.Command{
		Use:   "summary -i PAGE [-o OUTPUT] [--width N] [--max-lines N]",
		Short: "Extract a plain-text excerpt from an emitted man page",
		Long: strings.TrimSpace(`
Read man(7) source written by roff mode and print its DESCRIPTION and CONTACT
sections as indented plain text, wrapped to --width columns.

Example:

  go-resman summary -i build/brad.1 --width 60 --max-lines 3
`),
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.inputPath, "input", "i", "", "man page source")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "write text to file instead of stdout")
	flags.IntVar(&opts.width, "width", 66, "wrap width in columns")
	flags.IntVar(&opts.maxLines, "max-lines", 0, "truncate the description to N lines (0 keeps all)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.summarize(commandContext(cmd), opts)
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for go-resman.

The output should be evaluated by your shell. For example:

  # bash
  go-resman completion bash > /usr/local/etc/bash_completion.d/go-resman

  # zsh
  go-resman completion zsh > "${fpath[1]}/_go-resman"

  # fish
  go-resman completion fish | source

  # PowerShell
  go-resman completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("%w %q", ErrUnsupportedShell, args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate reference docs for the CLI",
		Long: strings.TrimSpace(`
Write one file per command, as Markdown (default) or as man pages.

Example:

  go-resman gen-docs ./docs/cli
  go-resman gen-docs --format man ./share/man/man1
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown or man")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return usageError("target directory is required")
		}
		if format != "markdown" && format != "man" {
			return usageError("unknown docs format %q (want markdown or man)", format)
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		if format == "man" {
			header := &cobradoc.GenManHeader{
				Title:   "GO-RESMAN",
				Section: "1",
				Source:  "go-resman " + Version,
			}
			return cobradoc.GenManTree(root, header, target)
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}

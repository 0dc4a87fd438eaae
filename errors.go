package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/agentflare-ai/go-resman/internal/config"
	"github.com/agentflare-ai/go-resman/internal/contact"
	"github.com/agentflare-ai/go-resman/internal/jsonresume"
	"github.com/agentflare-ai/go-resman/internal/resume"
	"github.com/agentflare-ai/go-resman/internal/vaxyaml"
)

// Every failure exits with the same status; the kind only shows up in
// verbose logs.
const (
	exitSuccess = 0
	exitFailure = 2
)

var (
	ErrUsage            = errors.New("usage")
	ErrUnsupportedShell = errors.New("unsupported shell")
)

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

func exitCodeFor(err error) int {
	if err == nil {
		return exitSuccess
	}
	return exitFailure
}

// errorKind names the class of err for logging.
func errorKind(err error) string {
	var syntax *vaxyaml.SyntaxError
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUsage),
		errors.Is(err, ErrUnsupportedShell),
		errors.Is(err, config.ErrConfigFile),
		errors.Is(err, config.ErrInvalid):
		return "usage"
	case errors.As(err, &pathErr):
		return "io"
	case errors.As(err, &syntax),
		errors.Is(err, contact.ErrMalformed),
		errors.Is(err, jsonresume.ErrEmpty),
		errors.Is(err, jsonresume.ErrSchema):
		return "syntax"
	case errors.Is(err, resume.ErrSchemaVersion),
		errors.Is(err, resume.ErrMissingLabel):
		return "validation"
	}
	return "internal"
}

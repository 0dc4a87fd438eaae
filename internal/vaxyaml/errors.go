package vaxyaml

import (
	"errors"
	"fmt"
)

// Lexer errors.
var (
	ErrExpectedQuote      = errors.New("expected double-quoted string")
	ErrUnterminatedString = errors.New("unterminated quoted string")
	ErrUnsupportedEscape  = errors.New("unsupported escape")
)

// Structural errors.
var (
	ErrInvalidLine      = errors.New("invalid line")
	ErrMissingValue     = errors.New("missing scalar value")
	ErrUnexpectedValue  = errors.New("unexpected scalar value")
	ErrExpectedListItem = errors.New("expected list item")
	ErrOutOfOrder       = errors.New("field appears before its list item")
)

// SyntaxError reports the input line a parse failure occurred on.
type SyntaxError struct {
	Line   int
	Err    error
	Detail string
}

func (e *SyntaxError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

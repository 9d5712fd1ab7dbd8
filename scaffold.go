/*
Package scaffold reads a line-oriented grammar description and generates
scaffolding sources (AST declarations, parser stubs, scanner rules) from it.

Consists of subpackages:
  - cmd/scaffold: console utility converting grammar description to source stubs and listing files;
  - grammar: defines the grammar model (tokens, terminals, keywords, rules, scan rules, scanner states);
  - langdef: converts grammar description to grammar model;
  - lexer: splits production bodies into literals, words, and punctuation;
  - source: defines grammar source and the line cursor shared by block parsers;
  - gen: emits AST, parser, and scanner artifacts from the grammar model.

Typical usage is:

1. Describe grammar: scan rules (ALL-CAPS names), grammar rules (lowercase names),
and exclusive scanner states (<name> markers).

2. Parse grammar description using langdef subpackage.

3. Feed resulting grammar to gen subpackage and write returned files.
*/
package scaffold

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LangDefErrors = 1   // used by langdef
	LexicalErrors = 101 // used by lexer
)

// Error is the error type used by scaffold subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Line and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// Package lexer defines lexical analyzer used to split production bodies.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/scaffold"
	"github.com/ava12/scaffold/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes (e.g. unterminated string literals).
	// The purpose of these tokens is to generate more informative error messages.
	// Lexer will never return a token of this type, an error with message containing token text will be returned instead.
	ErrorTokenType = -1

	// ErrorTokenName is the type name for ErrorTokenType.
	ErrorTokenName = "-error-"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current position.
	WrongCharError = scaffold.LexicalErrors + iota

	// BadTokenError indicates that lexer has fetched a token of ErrorTokenType.
	BadTokenError
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	// Type contains token type, may be any non-negative value. ErrorTokenType is treated specially.
	Type int

	// TypeName contains token type name, may be any value.
	TypeName string
}

// Lexer splits a single source line into tokens using regexp.Regexp.
// Lexer is immutable and safe for concurrent use.
// Each token type maps to its own regexp capturing group index.
// A match containing no captured groups is treated as insignificant lexeme (e.g. whitespace)
// and is skipped. Every byte of the line must belong to some lexeme.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

// New creates new Lexer.
// Each n-th element of types describes token type for (n+1)-th regexp capturing group.
// A group that has no description or that has negative token type is treated as ErrorTokenType.
func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	for i, t := range types {
		ts[i].TypeName = t.TypeName
		if t.Type >= 0 {
			ts[i].Type = t.Type
		} else {
			ts[i].Type = ErrorTokenType
			ts[i].TypeName = ErrorTokenName
		}
	}
	return &Lexer{types: ts, re: re}
}

func wrongCharError(pos scaffold.SourcePos, content string) *scaffold.Error {
	r, _ := utf8.DecodeRuneInString(content)
	return scaffold.FormatErrorPos(pos, WrongCharError, "wrong char \"%c\" (u+%x)", r, r)
}

func wrongTokenError(t *Token) *scaffold.Error {
	return scaffold.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

func (l *Lexer) matchToken(line source.Line, pos int) (*Token, int, error) {
	content := line.Text()[pos:]
	match := l.re.FindStringSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		return nil, 0, wrongCharError(line.Pos(pos), content)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] >= 0 && match[i+1] >= 0 {
			tokenType := ErrorTokenType
			typeName := ErrorTokenName
			if len(l.types) >= (i >> 1) {
				tokenType = l.types[(i>>1)-1].Type
				typeName = l.types[(i>>1)-1].TypeName
			}
			token := NewToken(tokenType, typeName, content[match[i]:match[i+1]], line.Pos(pos+match[i]))
			if tokenType == ErrorTokenType {
				return nil, 0, wrongTokenError(token)
			}

			return token, match[1], nil
		}
	}

	return nil, match[1], nil
}

// Split fetches all tokens of trimmed line text starting at byte offset from.
// Returns nil and scaffold.Error if there is a lexical error.
func (l *Lexer) Split(line source.Line, from int) ([]*Token, error) {
	result := make([]*Token, 0)
	pos := from
	for pos < len(line.Text()) {
		t, advance, e := l.matchToken(line, pos)
		if e != nil {
			return nil, e
		}

		if t != nil {
			result = append(result, t)
		}
		pos += advance
	}

	return result, nil
}

// Token is a lexeme fetched by Lexer.
type Token struct {
	tokenType int
	typeName  string
	text      string
	pos       source.Pos
}

// NewToken creates new token.
func NewToken(tokenType int, typeName, text string, pos source.Pos) *Token {
	return &Token{tokenType, typeName, text, pos}
}

func (t *Token) Type() int {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.typeName
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Pos() source.Pos {
	return t.pos
}

func (t *Token) SourceName() string {
	return t.pos.SourceName()
}

func (t *Token) Line() int {
	return t.pos.Line()
}

func (t *Token) Col() int {
	return t.pos.Col()
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%q)", t.typeName, t.text)
}

package langdef

import (
	"github.com/ava12/scaffold"
)

// Error codes used by langdef:
const (
	// UnknownLineError is never returned, it is the code of a warning about skipped top-level line.
	UnknownLineError = scaffold.LangDefErrors + iota
	// UnmappedCharError is never returned, it is the code of a warning about a literal
	// containing characters that do not contribute to its token name.
	UnmappedCharError
	NonTerminalDefinedError
	ScanRuleDefinedError
	UnterminatedActionError
	TokenCollisionError
	ReservedTokenError
	EmptyLiteralError
	NoNonTerminalsError
)

func unknownLineError(pos scaffold.SourcePos, text string) *scaffold.Error {
	return scaffold.FormatErrorPos(pos, UnknownLineError, "unknown line %q ignored", text)
}

func unmappedCharError(pos scaffold.SourcePos, text, name string) *scaffold.Error {
	return scaffold.FormatErrorPos(pos, UnmappedCharError, "literal %q has unnamed characters, token name is %s", text, name)
}

func defNonTermError(pos scaffold.SourcePos, name string) *scaffold.Error {
	return scaffold.FormatErrorPos(pos, NonTerminalDefinedError, "non-terminal %q already defined", name)
}

func defScanRuleError(pos scaffold.SourcePos, name string) *scaffold.Error {
	return scaffold.FormatErrorPos(pos, ScanRuleDefinedError, "scan rule %q already defined", name)
}

func unterminatedActionError(pos scaffold.SourcePos) *scaffold.Error {
	return scaffold.FormatErrorPos(pos, UnterminatedActionError, "unexpected EoF in action block")
}

func tokenCollisionError(pos scaffold.SourcePos, text, prev, name string) *scaffold.Error {
	return scaffold.FormatErrorPos(pos, TokenCollisionError, "literals %q and %q have the same token name %s", prev, text, name)
}

func reservedTokenError(pos scaffold.SourcePos, name string) *scaffold.Error {
	return scaffold.FormatErrorPos(pos, ReservedTokenError, "token name %s is reserved", name)
}

func emptyLiteralError(pos scaffold.SourcePos) *scaffold.Error {
	return scaffold.FormatErrorPos(pos, EmptyLiteralError, "empty literal")
}

func noNonTermsError(name string) *scaffold.Error {
	return scaffold.FormatError(NoNonTerminalsError, "no non-terminals defined in %q", name)
}

// Package grammar defines grammar model built by langdef and consumed by generators.
package grammar

// FirstTokenType is the type of the first grammar token, types of subsequent tokens are contiguous.
const FirstTokenType = 256

// Names of reserved tokens, they always follow grammar tokens in this order.
const (
	EndOfInputToken = "TOK_END_OF_INPUT"
	EndOfFileToken  = "TOK_END_OF_FILE"
	ErrorToken      = "TOK_ERROR"
)

// UnknownTokenDisplay is the display string for token types not known to grammar.
const UnknownTokenDisplay = "UNKNOWN"

var reservedTokens = []struct{ name, display string }{
	{EndOfInputToken, "END OF INPUT"},
	{EndOfFileToken, "END OF FILE"},
	{ErrorToken, "ERROR"},
}

// IsReserved reports whether name is a reserved token name.
func IsReserved(name string) bool {
	for _, rt := range reservedTokens {
		if rt.name == name {
			return true
		}
	}
	return false
}

type TokenFlags int

const (
	// LiteralToken is produced by a quoted literal.
	LiteralToken TokenFlags = 1 << iota
	// KeywordToken is produced by an identifier-shaped quoted literal.
	KeywordToken
	// SymbolToken is produced by a bare ALL-CAPS reference or by a scan rule name.
	SymbolToken
	// ReservedToken is one of end-of-input, end-of-file, or error tokens.
	ReservedToken
)

// Token describes token type.
type Token struct {
	// Type is unique and never reused, grammar tokens start at FirstTokenType.
	Type int
	// Name is canonical token name, e.g. TOK_PLUS.
	Name string
	// Display is human-readable representation used in messages.
	Display string
	// Flags accumulate all the ways this token was referenced.
	Flags TokenFlags
}

// Terminal is a literal quoted in some production.
type Terminal struct {
	Text  string
	Token string
	// Keyword is set for identifier-shaped literals.
	Keyword bool
}

// Rule is a grammar rule (non-terminal definition).
type Rule struct {
	Name string
	// Productions contain alternatives with leading : or | removed.
	Productions []string
	// Terminated is set if rule block ends with explicit ; line, unset if it ends with blank line or EoF.
	Terminated bool
}

// ScanRule is an explicitly defined lexical rule.
type ScanRule struct {
	Name  string
	Token string
	// Patterns contain alternatives with leading : or | removed.
	Patterns []string
	// Action contains brace-balanced action lines, empty for default action.
	Action []string
	// Terminated is set if rule block ends with explicit ; line.
	Terminated bool
}

// HasAction reports whether rule defines custom action.
// Default action emits matched text as a token of rule type.
func (sr ScanRule) HasAction() bool {
	return len(sr.Action) != 0
}

// State is a block of exclusive scanner state definitions.
type State struct {
	Name string
	// Lines contain <name> marker line followed by body lines, as is.
	Lines []string
}

// Grammar is the complete model of grammar description.
// Grammar is built once and must not be modified afterwards.
type Grammar struct {
	// Tokens contain grammar tokens in the order of first appearance, reserved tokens not included.
	Tokens []Token
	// Terminals contain literals in the order of first appearance.
	Terminals []Terminal
	// Keywords contain texts of identifier-shaped terminals in the order of first appearance.
	Keywords []string
	// Rules contain grammar rules in declaration order, the first one defines start symbol.
	Rules []Rule
	// ScanRules contain scan rules in declaration order.
	ScanRules []ScanRule
	// States contain scanner state blocks in declaration order.
	States []State
	// StateNames contain distinct scanner state names in the order of first appearance.
	StateNames []string
	// Lines contain all source lines as is.
	Lines []string `json:",omitempty"`
	// Warnings contain non-fatal issues found in description.
	Warnings []error `json:"-"`
}

// StartSymbol returns the name of the first rule or empty string.
func (g *Grammar) StartSymbol() string {
	if len(g.Rules) == 0 {
		return ""
	}
	return g.Rules[0].Name
}

// Nonterms returns rule names in declaration order.
func (g *Grammar) Nonterms() []string {
	res := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		res[i] = r.Name
	}
	return res
}

// Rule returns rule by name.
func (g *Grammar) Rule(name string) (Rule, bool) {
	for _, r := range g.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// ScanRule returns scan rule by name.
func (g *Grammar) ScanRule(name string) (ScanRule, bool) {
	for _, sr := range g.ScanRules {
		if sr.Name == name {
			return sr, true
		}
	}
	return ScanRule{}, false
}

// ReservedTokens returns end-of-input, end-of-file, and error tokens with types following grammar tokens.
func (g *Grammar) ReservedTokens() []Token {
	res := make([]Token, len(reservedTokens))
	next := FirstTokenType + len(g.Tokens)
	for i, rt := range reservedTokens {
		res[i] = Token{Type: next + i, Name: rt.name, Display: rt.display, Flags: ReservedToken}
	}
	return res
}

// AllTokens returns grammar tokens followed by reserved ones.
func (g *Grammar) AllTokens() []Token {
	res := make([]Token, 0, len(g.Tokens)+len(reservedTokens))
	res = append(res, g.Tokens...)
	return append(res, g.ReservedTokens()...)
}

// Token returns grammar or reserved token by canonical name.
func (g *Grammar) Token(name string) (Token, bool) {
	for _, t := range g.AllTokens() {
		if t.Name == name {
			return t, true
		}
	}
	return Token{}, false
}

// TokenDisplay returns display string for token type, UnknownTokenDisplay for unknown types.
func (g *Grammar) TokenDisplay(tokenType int) string {
	all := g.AllTokens()
	i := tokenType - FirstTokenType
	if i < 0 || i >= len(all) {
		return UnknownTokenDisplay
	}
	return all[i].Display
}

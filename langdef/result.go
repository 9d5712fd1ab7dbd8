package langdef

import (
	"github.com/ava12/scaffold"
	"github.com/ava12/scaffold/grammar"
)

// parseResult contains registries filled in while parsing.
// Every registry keeps the order of first appearance and ignores repeated entries.
type parseResult struct {
	tokens        []grammar.Token
	tokenIndex    map[string]int
	literalIndex  map[string]string
	terminals     []grammar.Terminal
	terminalIndex map[string]int
	keywords      []string
	keywordIndex  map[string]bool
	rules         []grammar.Rule
	ruleIndex     map[string]int
	scanRules     []grammar.ScanRule
	scanIndex     map[string]int
	states        []grammar.State
	stateNames    []string
	stateIndex    map[string]bool
	warnings      []error
}

func newParseResult() *parseResult {
	return &parseResult{
		tokens:        make([]grammar.Token, 0),
		tokenIndex:    make(map[string]int),
		literalIndex:  make(map[string]string),
		terminals:     make([]grammar.Terminal, 0),
		terminalIndex: make(map[string]int),
		keywords:      make([]string, 0),
		keywordIndex:  make(map[string]bool),
		rules:         make([]grammar.Rule, 0),
		ruleIndex:     make(map[string]int),
		scanRules:     make([]grammar.ScanRule, 0),
		scanIndex:     make(map[string]int),
		states:        make([]grammar.State, 0),
		stateNames:    make([]string, 0),
		stateIndex:    make(map[string]bool),
	}
}

func (pr *parseResult) Warn(e error) {
	pr.warnings = append(pr.warnings, e)
}

// AddToken registers token and returns its type.
// Existing token keeps its type and display string, flags are merged.
func (pr *parseResult) AddToken(pos scaffold.SourcePos, name, display string, flags grammar.TokenFlags) (int, error) {
	if grammar.IsReserved(name) {
		return 0, reservedTokenError(pos, name)
	}

	i, has := pr.tokenIndex[name]
	if has {
		pr.tokens[i].Flags |= flags
		return pr.tokens[i].Type, nil
	}

	i = len(pr.tokens)
	pr.tokens = append(pr.tokens, grammar.Token{Type: grammar.FirstTokenType + i, Name: name, Display: display, Flags: flags})
	pr.tokenIndex[name] = i
	return pr.tokens[i].Type, nil
}

func (pr *parseResult) AddTerminal(text, token string, keyword bool) {
	_, has := pr.terminalIndex[text]
	if !has {
		pr.terminalIndex[text] = len(pr.terminals)
		pr.terminals = append(pr.terminals, grammar.Terminal{Text: text, Token: token, Keyword: keyword})
	}
	if keyword {
		pr.AddKeyword(text)
	}
}

func (pr *parseResult) AddKeyword(text string) {
	if !pr.keywordIndex[text] {
		pr.keywordIndex[text] = true
		pr.keywords = append(pr.keywords, text)
	}
}

// AddAtom registers atom in token, terminal, and keyword registries as needed.
// Returns canonical token name.
func (pr *parseResult) AddAtom(pos scaffold.SourcePos, raw string, kind atomKind) (string, error) {
	name, display, lossy := tokenName(raw, kind)
	flags := grammar.SymbolToken
	keyword := false
	if kind == literalAtom {
		prev, has := pr.literalIndex[name]
		if has && prev != raw {
			return "", tokenCollisionError(pos, raw, prev, name)
		}

		if !has && lossy {
			pr.Warn(unmappedCharError(pos, raw, name))
		}
		pr.literalIndex[name] = raw
		keyword = isIdentifier(raw)
		flags = grammar.LiteralToken
		if keyword {
			flags |= grammar.KeywordToken
		}
	}

	_, e := pr.AddToken(pos, name, display, flags)
	if e != nil {
		return "", e
	}

	if kind == literalAtom {
		pr.AddTerminal(raw, name, keyword)
	}
	return name, nil
}

// AddRule registers new non-terminal.
// Returned pointer is valid until next AddRule call.
func (pr *parseResult) AddRule(pos scaffold.SourcePos, name string) (*grammar.Rule, error) {
	_, has := pr.ruleIndex[name]
	if has {
		return nil, defNonTermError(pos, name)
	}

	pr.ruleIndex[name] = len(pr.rules)
	pr.rules = append(pr.rules, grammar.Rule{Name: name, Productions: make([]string, 0)})
	return &pr.rules[len(pr.rules)-1], nil
}

// AddScanRule registers new scan rule and its token.
// Returned pointer is valid until next AddScanRule call.
func (pr *parseResult) AddScanRule(pos scaffold.SourcePos, name string) (*grammar.ScanRule, error) {
	_, has := pr.scanIndex[name]
	if has {
		return nil, defScanRuleError(pos, name)
	}

	token, e := pr.AddAtom(pos, name, symbolAtom)
	if e != nil {
		return nil, e
	}

	pr.scanIndex[name] = len(pr.scanRules)
	pr.scanRules = append(pr.scanRules, grammar.ScanRule{Name: name, Token: token, Patterns: make([]string, 0)})
	return &pr.scanRules[len(pr.scanRules)-1], nil
}

// AddState adds new scanner state block, state name is registered once.
// Returned pointer is valid until next AddState call.
func (pr *parseResult) AddState(name string) *grammar.State {
	if !pr.stateIndex[name] {
		pr.stateIndex[name] = true
		pr.stateNames = append(pr.stateNames, name)
	}

	pr.states = append(pr.states, grammar.State{Name: name, Lines: make([]string, 0)})
	return &pr.states[len(pr.states)-1]
}

// BuildGrammar returns a grammar that shares no slices with registries.
func (pr *parseResult) BuildGrammar(src string, lines []string) (*grammar.Grammar, error) {
	if len(pr.rules) == 0 {
		return nil, noNonTermsError(src)
	}

	g := &grammar.Grammar{
		Tokens:     append([]grammar.Token{}, pr.tokens...),
		Terminals:  append([]grammar.Terminal{}, pr.terminals...),
		Keywords:   append([]string{}, pr.keywords...),
		Rules:      make([]grammar.Rule, len(pr.rules)),
		ScanRules:  make([]grammar.ScanRule, len(pr.scanRules)),
		States:     make([]grammar.State, len(pr.states)),
		StateNames: append([]string{}, pr.stateNames...),
		Lines:      lines,
		Warnings:   append([]error{}, pr.warnings...),
	}

	for i, r := range pr.rules {
		r.Productions = append([]string{}, r.Productions...)
		g.Rules[i] = r
	}
	for i, sr := range pr.scanRules {
		sr.Patterns = append([]string{}, sr.Patterns...)
		sr.Action = append([]string{}, sr.Action...)
		g.ScanRules[i] = sr
	}
	for i, st := range pr.states {
		st.Lines = append([]string{}, st.Lines...)
		g.States[i] = st
	}

	return g, nil
}

package langdef

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ava12/scaffold"
	"github.com/ava12/scaffold/grammar"
	. "github.com/ava12/scaffold/internal/test"
	"github.com/ava12/scaffold/lexer"
)

func parse(t *testing.T, lines ...string) *grammar.Grammar {
	g, e := ParseString("grammar", strings.Join(lines, "\n"))
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	return g
}

func checkErrorCode(t *testing.T, samples []string, code int) {
	eCode := strconv.Itoa(code)
	for index, src := range samples {
		errPrefix := "input #" + strconv.Itoa(index)
		_, e := ParseString("string", src)

		if e == nil {
			t.Error(errPrefix + ": error expected, got success")
			return
		}

		pe, is := e.(*scaffold.Error)
		if !is {
			t.Error(errPrefix + ": scaffold.Error expected, got \"" + e.Error() + "\"")
			return
		}

		if pe.Code != code {
			t.Error(errPrefix + ": expected error code " + eCode + ", got " + strconv.Itoa(pe.Code) + ": " + pe.Message)
			return
		}
	}
}

func tokenNames(g *grammar.Grammar) []string {
	res := make([]string, len(g.Tokens))
	for i, tok := range g.Tokens {
		res[i] = tok.Name
	}
	return res
}

func terminalTexts(g *grammar.Grammar) []string {
	res := make([]string, len(g.Terminals))
	for i, term := range g.Terminals {
		res[i] = term.Text
	}
	return res
}

func TestExpressionGrammar(t *testing.T) {
	g := parse(t,
		"expr",
		"    : expr '+' term",
		"    | term",
		"    ;",
		"",
		"term",
		"    : NUMBER",
		"    ;",
	)

	ExpectStrings(t, []string{"expr", "term"}, g.Nonterms())
	ExpectString(t, "expr", g.StartSymbol())
	ExpectStrings(t, []string{"+"}, terminalTexts(g))
	ExpectString(t, "TOK_PLUS", g.Terminals[0].Token)
	ExpectStrings(t, []string{}, g.Keywords)
	ExpectStrings(t, []string{"expr '+' term", "term"}, g.Rules[0].Productions)
	ExpectStrings(t, []string{"NUMBER"}, g.Rules[1].Productions)
	ExpectStrings(t, []string{"TOK_PLUS", "TOK_NUMBER"}, tokenNames(g))
	ExpectInt(t, 2+3, len(g.AllTokens()))
	ExpectInt(t, 0, len(g.Warnings))
	ExpectInt(t, 8, len(g.Lines))
}

func TestDefaultActionScanRule(t *testing.T) {
	g := parse(t,
		"NUMBER",
		"    : [0-9]+",
		"    ;",
		"",
		"start",
		"    : NUMBER",
	)

	ExpectInt(t, 1, len(g.ScanRules))
	sr := g.ScanRules[0]
	ExpectString(t, "NUMBER", sr.Name)
	ExpectString(t, "TOK_NUMBER", sr.Token)
	ExpectStrings(t, []string{"[0-9]+"}, sr.Patterns)
	ExpectInt(t, 0, len(sr.Action))
	ExpectBool(t, false, sr.HasAction())
	ExpectBool(t, true, sr.Terminated)
	ExpectStrings(t, []string{"TOK_NUMBER"}, tokenNames(g))
}

func TestActionScanRule(t *testing.T) {
	g := parse(t,
		"STRING",
		"    : \\\"[^\\\"]*\\\"",
		"    | '[^']*'",
		"{",
		"    if(check(yytext)) {",
		"        return TOK_STRING;",
		"    }",
		"",
		"    return TOK_ERROR;",
		"}",
		";",
		"SPACE",
		"    : [ \\t]+",
		"    { /* ignore */ }",
		"start",
		"    : STRING",
	)

	ExpectInt(t, 2, len(g.ScanRules))
	sr := g.ScanRules[0]
	ExpectStrings(t, []string{"\\\"[^\\\"]*\\\"", "'[^']*'"}, sr.Patterns)
	ExpectStrings(t, []string{
		"{",
		"if(check(yytext)) {",
		"return TOK_STRING;",
		"}",
		"",
		"return TOK_ERROR;",
		"}",
	}, sr.Action)
	ExpectBool(t, true, sr.Terminated)

	sr = g.ScanRules[1]
	ExpectStrings(t, []string{"{ /* ignore */ }"}, sr.Action)
	ExpectBool(t, false, sr.Terminated)
	ExpectStrings(t, []string{"start"}, g.Nonterms())
	ExpectStrings(t, []string{"TOK_STRING", "TOK_SPACE"}, tokenNames(g))
}

func TestEagerScanRuleToken(t *testing.T) {
	g := parse(t,
		"EMPTY",
		"",
		"start",
		"    : 'x' EMPTY",
	)

	ExpectStrings(t, []string{"TOK_EMPTY", "TOK_X"}, tokenNames(g))
	ExpectInt(t, 0, len(g.ScanRules[0].Patterns))
}

func TestPunctuationNames(t *testing.T) {
	g := parse(t,
		"assignment",
		"    : NAME '==' value",
		"    | NAME \"!=\" value",
		"    | NAME '=' value ';'",
		"    | '_' '(' ')'",
	)

	ExpectStrings(t, []string{"==", "!=", "=", ";", "_", "(", ")"}, terminalTexts(g))
	ExpectStrings(t, []string{
		"TOK_NAME", "TOK_EQUAL_EQUAL", "TOK_BANG_EQUAL", "TOK_EQUAL", "TOK_SEMICOLON", "TOK__", "TOK_OPAREN", "TOK_CPAREN",
	}, tokenNames(g))
	ExpectString(t, "==", g.Tokens[1].Display)
	ExpectString(t, " ", g.Tokens[5].Display)
	ExpectStrings(t, []string{"_"}, g.Keywords)
}

func TestKeywords(t *testing.T) {
	g := parse(t,
		"statement",
		"    : 'if' expr 'then' statement",
		"    | 'end_if'",
		"    | 'if' 'if'",
		"",
		"expr",
		"    : IDENT_NAME",
	)

	ExpectStrings(t, []string{"if", "then", "end_if"}, g.Keywords)
	ExpectStrings(t, []string{"if", "then", "end_if"}, terminalTexts(g))
	ExpectStrings(t, []string{"TOK_IF", "TOK_THEN", "TOK_END_IF", "TOK_IDENT_NAME"}, tokenNames(g))
	ExpectString(t, "END IF", g.Tokens[2].Display)
	ExpectString(t, "IDENT NAME", g.Tokens[3].Display)
	for _, term := range g.Terminals {
		Assert(t, term.Keyword, "expecting %q to be a keyword", term.Text)
	}

	tok, _ := g.Token("TOK_IF")
	ExpectBool(t, true, tok.Flags&grammar.KeywordToken != 0)
	tok, _ = g.Token("TOK_IDENT_NAME")
	ExpectBool(t, true, tok.Flags == grammar.SymbolToken)
}

func TestKeywordsAreTerminals(t *testing.T) {
	g := parse(t,
		"foo",
		"    : 'a' '+' \"b_c\" ID '-'",
		"    | 'a' \"d\"",
	)

	terms := make(map[string]bool)
	for _, term := range g.Terminals {
		terms[term.Text] = true
	}
	for _, kw := range g.Keywords {
		Assert(t, terms[kw], "keyword %q is not a terminal", kw)
	}
	ExpectStrings(t, []string{"a", "b_c", "d"}, g.Keywords)
}

func TestSymbolReferences(t *testing.T) {
	g := parse(t,
		"foo",
		"    : _ lower_case Mixed ABC2 A_B 'QUOTED'",
	)

	ExpectStrings(t, []string{"TOK_A_B", "TOK_QUOTED"}, tokenNames(g))
	ExpectStrings(t, []string{"QUOTED"}, terminalTexts(g))
}

func TestTokenTypes(t *testing.T) {
	g := parse(t,
		"A_TOKEN",
		": a",
		"",
		"foo",
		": '+' A_TOKEN B_TOKEN '+' 'x'",
		"| B_TOKEN '-' 'x'",
	)

	for i, tok := range g.Tokens {
		ExpectInt(t, grammar.FirstTokenType+i, tok.Type)
	}

	reserved := g.ReservedTokens()
	ExpectInt(t, 3, len(reserved))
	names := []string{grammar.EndOfInputToken, grammar.EndOfFileToken, grammar.ErrorToken}
	for i, tok := range reserved {
		ExpectString(t, names[i], tok.Name)
		ExpectInt(t, grammar.FirstTokenType+len(g.Tokens)+i, tok.Type)
	}

	ExpectString(t, "A TOKEN", g.TokenDisplay(256))
	ExpectString(t, "X", g.TokenDisplay(259))
	ExpectString(t, "-", g.TokenDisplay(260))
	ExpectString(t, "END OF FILE", g.TokenDisplay(262))
	ExpectString(t, grammar.UnknownTokenDisplay, g.TokenDisplay(264))
	ExpectString(t, grammar.UnknownTokenDisplay, g.TokenDisplay(0))
}

func TestDeterminism(t *testing.T) {
	src := strings.Join([]string{
		"ID",
		": [a-z]+",
		"",
		"list",
		": list ',' item",
		"| item",
		";",
		"item",
		": ID | 'nil' | '(' list ')'",
	}, "\n")

	first, e := ParseString("a", src)
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	second, e := ParseString("b", src)
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	ExpectInt(t, len(first.Tokens), len(second.Tokens))
	for i, tok := range first.Tokens {
		Expect(t, tok == second.Tokens[i], tok, second.Tokens[i])
	}
	ExpectStrings(t, terminalTexts(first), terminalTexts(second))
	ExpectStrings(t, first.Keywords, second.Keywords)
	ExpectStrings(t, first.Nonterms(), second.Nonterms())
}

func TestRuleTerminators(t *testing.T) {
	g := parse(t,
		"explicit",
		"    : 'a'",
		"    ;",
		"implicit",
		"    : 'b'",
		"",
		"at_eof",
		"    : 'c'",
	)

	ExpectStrings(t, []string{"explicit", "implicit", "at_eof"}, g.Nonterms())
	ExpectBool(t, true, g.Rules[0].Terminated)
	ExpectBool(t, false, g.Rules[1].Terminated)
	ExpectBool(t, false, g.Rules[2].Terminated)
	ExpectStrings(t, []string{"a"}, g.Rules[0].Productions)
	ExpectStrings(t, []string{"b"}, g.Rules[1].Productions)
}

func TestBlockBoundaries(t *testing.T) {
	g := parse(t,
		"first",
		"    : 'a'",
		"    # comment inside block",
		"    | 'b'",
		"second",
		"    : 'c'",
		"THIRD",
		"    : c+",
		"fourth",
		"    : THIRD",
	)

	ExpectStrings(t, []string{"first", "second", "fourth"}, g.Nonterms())
	ExpectStrings(t, []string{"a", "b"}, g.Rules[0].Productions)
	ExpectStrings(t, []string{"c+"}, g.ScanRules[0].Patterns)
	ExpectInt(t, 0, len(g.Warnings))
}

func TestScannerStates(t *testing.T) {
	g := parse(t,
		"<COMMENT>",
		"  \"*/\" { BEGIN(INITIAL); }",
		"  .    {}",
		"",
		"<STRING>{",
		"  \\\"  { BEGIN(INITIAL); }",
		"}",
		"",
		"<COMMENT>\\n { }",
		"",
		"start",
		"    : 'a'",
	)

	ExpectStrings(t, []string{"COMMENT", "STRING"}, g.StateNames)
	ExpectInt(t, 3, len(g.States))
	ExpectString(t, "COMMENT", g.States[0].Name)
	ExpectStrings(t, []string{"<COMMENT>", "  \"*/\" { BEGIN(INITIAL); }", "  .    {}"}, g.States[0].Lines)
	ExpectStrings(t, []string{"<STRING>{", "  \\\"  { BEGIN(INITIAL); }", "}"}, g.States[1].Lines)
	ExpectStrings(t, []string{"<COMMENT>\\n { }"}, g.States[2].Lines)
	ExpectStrings(t, []string{"start"}, g.Nonterms())
}

func TestUnknownLines(t *testing.T) {
	g := parse(t,
		"# comment",
		"Mixed",
		"start",
		"    : 'a'",
		"",
		"    : 'b'",
		"123",
	)

	ExpectInt(t, 3, len(g.Warnings))
	ExpectErrorCode(t, UnknownLineError, g.Warnings[0])
	ee := g.Warnings[1].(*scaffold.Error)
	ExpectInt(t, 6, ee.Line)
	ExpectInt(t, 5, ee.Col)
	ExpectStrings(t, []string{"a"}, g.Rules[0].Productions)
}

func TestUnmappedCharWarning(t *testing.T) {
	g := parse(t,
		"start",
		"    : '+1' '+1'",
	)

	ExpectStrings(t, []string{"TOK_PLUS"}, tokenNames(g))
	ExpectInt(t, 1, len(g.Warnings))
	ExpectErrorCode(t, UnmappedCharError, g.Warnings[0])
}

func TestNonTerminalDefined(t *testing.T) {
	samples := []string{
		"foo\n: 'a'\n;\nbar\n: 'b'\n;\nfoo\n: 'c'\n;",
		"foo\n: 'a'\n\nfoo",
	}
	checkErrorCode(t, samples, NonTerminalDefinedError)
}

func TestScanRuleDefined(t *testing.T) {
	samples := []string{
		"FOO\n: a\n\nFOO\n: b\n\nfoo\n: FOO",
	}
	checkErrorCode(t, samples, ScanRuleDefinedError)
}

func TestUnterminatedAction(t *testing.T) {
	samples := []string{
		"FOO\n: a\n{\nreturn 1;\n",
		"FOO\n: a\n{ if(x) {\n}\n\nfoo\n: FOO",
	}
	checkErrorCode(t, samples, UnterminatedActionError)
}

func TestTokenCollision(t *testing.T) {
	samples := []string{
		"foo\n: '+' 'plus'",
		"foo\n: 'if'\n| 'IF'",
		"foo\n: '+1' '+2'",
		"foo\n: '.' \"dot\"",
	}
	checkErrorCode(t, samples, TokenCollisionError)
}

func TestSymbolSharesLiteralToken(t *testing.T) {
	g := parse(t,
		"PLUS",
		": \\+",
		"",
		"foo",
		": '+' PLUS 'plus_x'",
	)

	ExpectStrings(t, []string{"TOK_PLUS", "TOK_PLUS_X"}, tokenNames(g))
	tok, _ := g.Token("TOK_PLUS")
	ExpectBool(t, true, tok.Flags == grammar.SymbolToken|grammar.LiteralToken)
}

func TestReservedToken(t *testing.T) {
	samples := []string{
		"ERROR\n: .\n\nfoo\n: 'a'",
		"foo\n: END_OF_FILE",
		"foo\n: 'end_of_input'",
	}
	checkErrorCode(t, samples, ReservedTokenError)
}

func TestBadLiterals(t *testing.T) {
	checkErrorCode(t, []string{"foo\n: ''", "foo\n: 'a' \"\""}, EmptyLiteralError)
	checkErrorCode(t, []string{"foo\n: 'a", "foo\n: \"a' b"}, lexer.BadTokenError)
}

func TestNoNonTerminals(t *testing.T) {
	samples := []string{
		"",
		"# nothing",
		"FOO\n: a",
		"<STATE>\n.",
	}
	checkErrorCode(t, samples, NoNonTerminalsError)
}

func TestErrorPosition(t *testing.T) {
	_, e := ParseString("g.txt", "foo\n  : 'a' '+1'\n  | '+2'")
	ExpectErrorCode(t, TokenCollisionError, e)
	ee := e.(*scaffold.Error)
	ExpectString(t, "g.txt", ee.SourceName)
	ExpectInt(t, 3, ee.Line)
	ExpectInt(t, 5, ee.Col)
}

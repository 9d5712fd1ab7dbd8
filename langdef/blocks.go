package langdef

import (
	"regexp"
	"strings"

	"github.com/ava12/scaffold/lexer"
	"github.com/ava12/scaffold/source"
)

func isAlternative(text string) bool {
	return text[0] == ':' || text[0] == '|'
}

// parseScanRule consumes scan rule block following declaration line.
// Block ends with ; line, blank line, or any line that cannot belong to it.
// The latter is left for the caller.
func (c *parseContext) parseScanRule(decl source.Line) error {
	sr, e := c.result.AddScanRule(decl, decl.Text())
	if e != nil {
		return e
	}

	for {
		line, ok := c.cursor.Peek()
		if !ok {
			return nil
		}

		text := line.Text()
		switch {
		case line.IsBlank():
			c.cursor.Skip()
			return nil

		case line.IsComment():
			c.cursor.Skip()

		case isAlternative(text):
			c.cursor.Skip()
			sr.Patterns = append(sr.Patterns, strings.TrimSpace(text[1:]))

		case text[0] == '{':
			c.cursor.Skip()
			action, e := c.parseAction(line)
			if e != nil {
				return e
			}

			sr.Action = append(sr.Action, action...)

		case text[0] == ';':
			c.cursor.Skip()
			sr.Terminated = true
			return nil

		default:
			return nil
		}
	}
}

// parseAction captures brace-balanced action block starting at open line.
func (c *parseContext) parseAction(open source.Line) ([]string, error) {
	text := open.Text()
	depth := strings.Count(text, "{") - strings.Count(text, "}")
	result := []string{text}
	for depth > 0 {
		line, ok := c.cursor.Next()
		if !ok {
			return nil, unterminatedActionError(open)
		}

		text = line.Text()
		depth -= strings.Count(text, "}")
		result = append(result, text)
		depth += strings.Count(text, "{")
	}

	return result, nil
}

// parseGrammarRule consumes grammar rule block following declaration line
// and registers all literals and token references found in productions.
// Block ends with ; line, blank line, or any line that cannot belong to it.
// The latter is left for the caller.
func (c *parseContext) parseGrammarRule(decl source.Line) error {
	r, e := c.result.AddRule(decl, decl.Text())
	if e != nil {
		return e
	}

	for {
		line, ok := c.cursor.Peek()
		if !ok {
			return nil
		}

		text := line.Text()
		switch {
		case line.IsBlank():
			c.cursor.Skip()
			return nil

		case line.IsComment():
			c.cursor.Skip()

		case isAlternative(text):
			c.cursor.Skip()
			r.Productions = append(r.Productions, strings.TrimSpace(text[1:]))
			e = c.registerAtoms(line)
			if e != nil {
				return e
			}

		case text[0] == ';':
			c.cursor.Skip()
			r.Terminated = true
			return nil

		default:
			return nil
		}
	}
}

func (c *parseContext) registerAtoms(line source.Line) error {
	tokens, e := productionLexer.Split(line, 1)
	if e != nil {
		return e
	}

	for _, t := range tokens {
		switch t.Type() {
		case stringTokType:
			text := t.Text()
			text = text[1 : len(text)-1]
			if text == "" {
				return emptyLiteralError(t)
			}

			_, e = c.result.AddAtom(t, text, literalAtom)

		case wordTokType:
			if isSymbol(t.Text()) {
				_, e = c.result.AddAtom(t, t.Text(), symbolAtom)
			}
		}

		if e != nil {
			return e
		}
	}

	return nil
}

// parseState consumes scanner state block following marker line, block ends with blank line.
// Lines are kept verbatim.
func (c *parseContext) parseState(marker source.Line) error {
	name := stateRe.FindStringSubmatch(marker.Text())[1]
	st := c.result.AddState(name)
	st.Lines = append(st.Lines, marker.Raw())
	for {
		line, ok := c.cursor.Next()
		if !ok || line.IsBlank() {
			return nil
		}

		st.Lines = append(st.Lines, line.Raw())
	}
}

var productionLexer *lexer.Lexer

const (
	stringTokType = iota + 1
	wordTokType
	opTokType
)

func init() {
	tokenTypes := []lexer.TokenType{
		{Type: stringTokType, TypeName: "string"},
		{Type: wordTokType, TypeName: "word"},
		{Type: opTokType, TypeName: "op"},
		{Type: lexer.ErrorTokenType, TypeName: ""},
	}

	re := `^(?:\s+|` +
		`('[^']*'|"[^"]*")|` +
		`([a-zA-Z_][a-zA-Z_0-9]*)|` +
		`([^\s'"a-zA-Z_])|` +
		`(['"].{0,10}))`

	productionLexer = lexer.New(regexp.MustCompile(re), tokenTypes)
}

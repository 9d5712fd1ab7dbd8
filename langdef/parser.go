package langdef

import (
	"regexp"

	"github.com/ava12/scaffold/grammar"
	"github.com/ava12/scaffold/source"
)

// ParseString parses grammar description and returns a grammar on success.
// Returns nil and scaffold.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes parses grammar description and returns a grammar on success.
// Returns nil and scaffold.Error on error.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses grammar description and returns a grammar on success.
// Returns nil and scaffold.Error on error.
// Skipped lines are reported in grammar.Warnings.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	c := newParseContext(s)
	e := c.Parse()
	if e != nil {
		return nil, e
	}

	return c.result.BuildGrammar(s.Name(), s.Lines())
}

type lineKind int

const (
	blankLine lineKind = iota
	commentLine
	scanRuleLine
	grammarRuleLine
	stateLine
	unknownLine
)

var (
	scanRuleRe    = regexp.MustCompile(`^[A-Z_]+$`)
	grammarRuleRe = regexp.MustCompile(`^[a-z_]+$`)
	stateRe       = regexp.MustCompile(`^<([a-zA-Z_]+)>`)
)

func classify(line source.Line) lineKind {
	text := line.Text()
	switch {
	case line.IsBlank():
		return blankLine
	case line.IsComment():
		return commentLine
	case scanRuleRe.MatchString(text):
		return scanRuleLine
	case grammarRuleRe.MatchString(text):
		return grammarRuleLine
	case stateRe.MatchString(text):
		return stateLine
	default:
		return unknownLine
	}
}

type parseContext struct {
	cursor *source.Cursor
	result *parseResult
}

func newParseContext(s *source.Source) *parseContext {
	return &parseContext{
		cursor: source.NewCursor(s),
		result: newParseResult(),
	}
}

func (c *parseContext) Parse() error {
	for {
		line, ok := c.cursor.Next()
		if !ok {
			return nil
		}

		var e error
		switch classify(line) {
		case blankLine, commentLine:
			continue
		case scanRuleLine:
			e = c.parseScanRule(line)
		case grammarRuleLine:
			e = c.parseGrammarRule(line)
		case stateLine:
			e = c.parseState(line)
		default:
			c.result.Warn(unknownLineError(line, line.Text()))
		}

		if e != nil {
			return e
		}
	}
}
